package core

import (
	"strings"

	"github.com/go-drift/handlers/pkg/gestures"
	"github.com/go-drift/handlers/pkg/graphics"
	"github.com/go-drift/handlers/pkg/platform"
)

// ElementKind identifies the built-in control an element represents.
type ElementKind int

const (
	KindView ElementKind = iota
	KindLayout
	KindLabel
	KindImage
	KindEntry
	KindButton
	KindImageButton
	KindCheckBox
	KindRadioButton
	KindSwitch
	KindSlider
	KindStepper
	KindDatePicker
	KindTimePicker
	KindScrollView

	elementKindCount
)

var elementKindNames = [...]string{
	KindView:        "View",
	KindLayout:      "Layout",
	KindLabel:       "Label",
	KindImage:       "Image",
	KindEntry:       "Entry",
	KindButton:      "Button",
	KindImageButton: "ImageButton",
	KindCheckBox:    "CheckBox",
	KindRadioButton: "RadioButton",
	KindSwitch:      "Switch",
	KindSlider:      "Slider",
	KindStepper:     "Stepper",
	KindDatePicker:  "DatePicker",
	KindTimePicker:  "TimePicker",
	KindScrollView:  "ScrollView",
}

func (k ElementKind) String() string {
	if k >= 0 && k < elementKindCount {
		return elementKindNames[k]
	}
	return "Unknown"
}

// ParseElementKind returns the kind with the given name, ignoring case.
func ParseElementKind(name string) (ElementKind, bool) {
	name = strings.TrimSpace(name)
	for k, n := range elementKindNames {
		if strings.EqualFold(n, name) {
			return ElementKind(k), true
		}
	}
	return 0, false
}

// Element is a portable view that carries gesture recognizers.
type Element interface {
	gestures.View

	// Kind reports which built-in control the element is.
	Kind() ElementKind

	// Size is the element's current laid-out size.
	Size() graphics.Size

	// Handler returns the handler binding the element to native views,
	// or nil while the element is not attached.
	Handler() ViewHandler
}

// GestureController is implemented by elements that route gestures to
// their children.
type GestureController interface {
	// ChildElementsAt returns the children under p, innermost first. The
	// point is in the element's coordinate space.
	ChildElementsAt(p graphics.Offset) []Element

	// GestureChildren returns every child whose recognizers the element
	// dispatches on their behalf.
	GestureChildren() []Element
}

// KeyboardTapTarget is implemented by elements that treat Enter and Space as
// a tap while focused.
type KeyboardTapTarget interface {
	AcceptsKeyboardTap() bool
}

// ViewHandler binds an element to its native views.
type ViewHandler interface {
	// VirtualView is the portable element.
	VirtualView() Element

	// PlatformView is the native view rendering the element.
	PlatformView() platform.NativeView

	// ContainerView wraps PlatformView when the handler needs an extra
	// native layer, and returns nil otherwise.
	ContainerView() platform.NativeView
}

// NativeViewOf returns the native view rendering v.
func NativeViewOf(v gestures.View) (platform.NativeView, bool) {
	el, ok := v.(Element)
	if !ok {
		return nil, false
	}
	h := el.Handler()
	if h == nil {
		return nil, false
	}
	nv := h.PlatformView()
	return nv, nv != nil
}
