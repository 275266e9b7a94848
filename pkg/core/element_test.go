package core

import (
	"testing"

	"github.com/go-drift/handlers/pkg/gestures"
	"github.com/go-drift/handlers/pkg/graphics"
	"github.com/go-drift/handlers/pkg/platform"
)

func TestParseElementKind(t *testing.T) {
	tests := []struct {
		name string
		want ElementKind
		ok   bool
	}{
		{"Button", KindButton, true},
		{"scrollview", KindScrollView, true},
		{" TimePicker ", KindTimePicker, true},
		{"Carousel", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseElementKind(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseElementKind(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestElementKindString(t *testing.T) {
	for k := KindView; k < elementKindCount; k++ {
		got, ok := ParseElementKind(k.String())
		if !ok || got != k {
			t.Errorf("round trip of %v failed", k)
		}
	}
	if ElementKind(-1).String() != "Unknown" {
		t.Errorf("String() of invalid kind = %q", ElementKind(-1).String())
	}
}

type stubView struct{ platform.EventHub }

func (*stubView) TransformToRoot() graphics.Transform           { return graphics.IdentityTransform() }
func (*stubView) SetCanDrag(bool)                               {}
func (*stubView) SetAllowDrop(bool)                             {}
func (*stubView) SetManipulationMode(platform.ManipulationMode) {}
func (*stubView) SetTabStop(bool)                               {}
func (*stubView) SetHitTestVisible(bool)                        {}

type stubHandler struct {
	el   Element
	view platform.NativeView
}

func (h *stubHandler) VirtualView() Element               { return h.el }
func (h *stubHandler) PlatformView() platform.NativeView  { return h.view }
func (h *stubHandler) ContainerView() platform.NativeView { return nil }

type stubElement struct {
	handler ViewHandler
}

func (*stubElement) GestureRecognizers() *gestures.Collection { return nil }
func (*stubElement) Kind() ElementKind                        { return KindView }
func (*stubElement) Size() graphics.Size                      { return graphics.Size{} }
func (e *stubElement) Handler() ViewHandler                   { return e.handler }

type bareView struct{}

func (bareView) GestureRecognizers() *gestures.Collection { return nil }

func TestNativeViewOf(t *testing.T) {
	native := &stubView{}
	attached := &stubElement{}
	attached.handler = &stubHandler{el: attached, view: native}

	if got, ok := NativeViewOf(attached); !ok || got != native {
		t.Errorf("NativeViewOf(attached) = %v, %v", got, ok)
	}
	if _, ok := NativeViewOf(&stubElement{}); ok {
		t.Error("NativeViewOf reported a view for a detached element")
	}
	if _, ok := NativeViewOf(bareView{}); ok {
		t.Error("NativeViewOf reported a view for a non-element")
	}
}
