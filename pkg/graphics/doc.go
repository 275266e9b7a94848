// Package graphics provides the 2D geometry shared by portable elements and
// native views: offsets, sizes, rectangles and affine transforms between
// view and window coordinates.
package graphics
