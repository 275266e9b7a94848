// Package core defines the view-model side of platform handlers.
//
// Handlers bind a portable [Element] to native views. The element owns its
// gesture recognizers and, when it lays out children, exposes them through
// [GestureController] so taps can be routed to the innermost element first.
// A [ViewHandler] pairs an element with the native view it is rendered by
// and the native container that receives input.
//
// The object graph itself (layout, properties, rendering) lives elsewhere;
// this package only describes what gesture dispatch needs from it.
package core
