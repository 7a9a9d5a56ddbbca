package core

import (
	"testing"
	"time"
)

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionHardDrop)
	f.Set(ActionNone)
	f.Set(ActionLeft)
	f.Set(ActionLeft)

	got := f.Actions()
	expected := []Action{ActionHardDrop, ActionLeft, ActionLeft}
	if len(got) != len(expected) {
		t.Fatalf("Actions() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}

	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Has should report only the actions that were set")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRotateCW)
	clone := f.Clone()

	f.Clear()
	if f.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", f.Len())
	}
	if !clone.Has(ActionRotateCW) {
		t.Error("Clone should not be affected by Clear on the original")
	}

	var zero InputFrame
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on a zero-value frame should work")
	}
}

func TestActionString(t *testing.T) {
	if ActionRotateCCW.String() != "RotateCCW" {
		t.Errorf("String() = %q, expected RotateCCW", ActionRotateCCW.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("String() = %q, expected Unknown", Action(99).String())
	}
}

func TestRepeaterFiresOnFirstPress(t *testing.T) {
	r := NewRepeater(DefaultRepeatConfig())
	now := time.Unix(0, 0)

	if !r.Press(ActionLeft, now) {
		t.Error("first press should fire")
	}
	if !r.Press(ActionRight, now) {
		t.Error("first press of another action should fire")
	}
	if r.Press(ActionNone, now) {
		t.Error("ActionNone should never fire")
	}
}

func TestRepeaterDelayAndInterval(t *testing.T) {
	r := NewRepeater(DefaultRepeatConfig())
	start := time.Unix(0, 0)
	ms := func(n int) time.Time { return start.Add(time.Duration(n) * time.Millisecond) }

	fired := 0
	var at []int
	// A terminal auto-repeating every 30ms for 600ms.
	for n := 0; n <= 600; n += 30 {
		if r.Press(ActionLeft, ms(n)) {
			fired++
			at = append(at, n)
		}
	}

	// Initial press, then 300, 390 (>=370), 480 (>=460), 570 (>=550).
	expected := []int{0, 300, 390, 480, 570}
	if len(at) != len(expected) {
		t.Fatalf("fired at %v, expected %v", at, expected)
	}
	for i := range expected {
		if at[i] != expected[i] {
			t.Errorf("fire %d at %dms, expected %dms", i, at[i], expected[i])
		}
	}
}

func TestRepeaterReleaseGap(t *testing.T) {
	r := NewRepeater(DefaultRepeatConfig())
	start := time.Unix(0, 0)

	r.Press(ActionLeft, start)
	if r.Press(ActionLeft, start.Add(50*time.Millisecond)) {
		t.Error("press within the delay should not fire")
	}
	if !r.Press(ActionLeft, start.Add(200*time.Millisecond)) {
		t.Error("press after the release gap should fire as a new press")
	}

	r.Reset()
	if !r.Press(ActionLeft, start.Add(210*time.Millisecond)) {
		t.Error("press after Reset should fire")
	}
}

func TestRepeaterNonRepeatable(t *testing.T) {
	r := NewRepeater(DefaultRepeatConfig())
	now := time.Unix(0, 0)

	for i := 0; i < 3; i++ {
		if !r.Press(ActionRotateCW, now.Add(time.Duration(i)*time.Millisecond)) {
			t.Errorf("rotation press %d should fire", i)
		}
	}
}

func TestFrameDuration(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FrameDuration() != time.Second/60 {
		t.Errorf("FrameDuration() = %v, expected %v", cfg.FrameDuration(), time.Second/60)
	}
	cfg.TickRate = 0
	if cfg.FrameDuration() != time.Second/60 {
		t.Errorf("FrameDuration() with zero rate = %v, expected fallback", cfg.FrameDuration())
	}
}
