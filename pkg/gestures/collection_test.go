package gestures

import "testing"

func TestCollection_AddRemoveNotifies(t *testing.T) {
	c := NewCollection()
	var changes []Change
	unsub := c.AddListener(func(ch Change) { changes = append(changes, ch) })

	tap := &TapRecognizer{}
	pan := &PanRecognizer{}
	c.Add(tap)
	c.Insert(0, pan)
	if !c.Remove(tap) {
		t.Fatal("expected Remove to find tap")
	}
	c.Clear()

	want := []ChangeAction{ChangeAdd, ChangeAdd, ChangeRemove, ChangeReset}
	if len(changes) != len(want) {
		t.Fatalf("got %d changes, want %d", len(changes), len(want))
	}
	for i, ch := range changes {
		if ch.Action != want[i] {
			t.Errorf("change %d: action = %v, want %v", i, ch.Action, want[i])
		}
	}
	if changes[1].Index != 0 || changes[1].Item != pan {
		t.Errorf("insert change = %+v", changes[1])
	}

	unsub()
	unsub()
	c.Add(tap)
	if len(changes) != len(want) {
		t.Error("listener should not run after unsubscribe")
	}
	if c.ListenerCount() != 0 {
		t.Errorf("ListenerCount() = %d, want 0", c.ListenerCount())
	}
}

func TestCollection_RemoveMissing(t *testing.T) {
	c := NewCollection(&TapRecognizer{})
	if c.Remove(&TapRecognizer{}) {
		t.Error("Remove should report false for an absent recognizer")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestOfAndFilter(t *testing.T) {
	single := &TapRecognizer{}
	double := &TapRecognizer{NumberOfTapsRequired: 2}
	c := NewCollection(single, &PanRecognizer{}, double, &SwipeRecognizer{})

	taps := Of[*TapRecognizer](c)
	if len(taps) != 2 || taps[0] != single || taps[1] != double {
		t.Fatalf("Of[*TapRecognizer] = %v", taps)
	}

	doubles := Filter(c, func(r *TapRecognizer) bool { return r.TapsRequired() == 2 })
	if len(doubles) != 1 || doubles[0] != double {
		t.Errorf("Filter(double) = %v", doubles)
	}

	if !c.Has(KindSwipe) || c.Has(KindPinch) {
		t.Error("Has reported the wrong kinds")
	}
}

func TestNilCollection(t *testing.T) {
	var c *Collection
	if c.Len() != 0 || c.Has(KindTap) || Of[*TapRecognizer](c) != nil || c.Items() != nil {
		t.Error("nil collection should behave as empty")
	}
}
