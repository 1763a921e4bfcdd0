package datepicker

import (
	"testing"
	"time"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 5, Width: 4, Height: 2}
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 5, true},
		{13, 6, true},
		{14, 5, false},
		{10, 7, false},
		{9, 5, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectOffset(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 3, Height: 4}.Offset(10, 20)
	if r != (Rect{X: 11, Y: 22, Width: 3, Height: 4}) {
		t.Fatalf("Offset = %+v", r)
	}
}

func TestHub_SubscribesOnlyWhileOpen(t *testing.T) {
	hub := NewHub()
	w, _ := newTestWidget(t, WithObserver(hub))

	if hub.Len() != 0 {
		t.Fatalf("closed widget has %d subscriptions", hub.Len())
	}
	w.Toggle()
	if hub.Len() != 1 {
		t.Fatalf("open widget has %d subscriptions, want 1", hub.Len())
	}
	w.Toggle()
	if hub.Len() != 0 {
		t.Fatalf("closed widget has %d subscriptions after toggle", hub.Len())
	}
}

func TestHub_NoLeaksAcrossCycles(t *testing.T) {
	hub := NewHub()
	w, _ := newTestWidget(t, WithObserver(hub))
	w.SetBounds(Rect{X: 0, Y: 0, Width: 20, Height: 10})

	for i := 0; i < 50; i++ {
		w.Toggle()
		switch i % 4 {
		case 0:
			w.Toggle()
		case 1:
			hub.Interact(30, 30)
		case 2:
			w.Pick(w.Today().AddDays(1))
		case 3:
			w.Close()
		}
		if hub.Len() != 0 {
			t.Fatalf("cycle %d leaked %d subscriptions", i, hub.Len())
		}
		if w.IsOpen() {
			t.Fatalf("cycle %d left widget open", i)
		}
	}
}

func TestHub_InsideInteractionKeepsOpen(t *testing.T) {
	hub := NewHub()
	w, _ := newTestWidget(t, WithObserver(hub))
	w.SetBounds(Rect{X: 5, Y: 5, Width: 10, Height: 10})
	w.Toggle()

	if n := hub.Interact(7, 7); n != 0 {
		t.Errorf("notified %d subscribers for inside click", n)
	}
	if !w.IsOpen() {
		t.Fatal("inside interaction closed the widget")
	}

	if n := hub.Interact(0, 0); n != 1 {
		t.Errorf("notified %d subscribers for outside click, want 1", n)
	}
	if w.IsOpen() {
		t.Fatal("outside interaction did not close the widget")
	}
	if hub.Len() != 0 {
		t.Errorf("subscriptions = %d after dismiss", hub.Len())
	}
}

func TestHub_BoundsReadAtInteractionTime(t *testing.T) {
	hub := NewHub()
	w, _ := newTestWidget(t, WithObserver(hub))
	w.Toggle()

	w.SetBounds(Rect{X: 0, Y: 0, Width: 3, Height: 3})
	hub.Interact(1, 1)
	if !w.IsOpen() {
		t.Fatal("click inside updated bounds dismissed the widget")
	}
}

func TestHub_AnyPartKeepsOpen(t *testing.T) {
	hub := NewHub()
	w, _ := newTestWidget(t, WithObserver(hub))
	input := Rect{X: 0, Y: 0, Width: 12, Height: 1}
	button := Rect{X: 14, Y: 0, Width: 10, Height: 1}
	popup := Rect{X: 0, Y: 2, Width: 24, Height: 10}
	w.SetBounds(input, button, popup)
	w.Toggle()

	tests := []struct {
		name string
		x, y int
	}{
		{"input", 3, 0},
		{"button", 15, 0},
		{"popup", 5, 5},
	}
	for _, tt := range tests {
		if n := hub.Interact(tt.x, tt.y); n != 0 {
			t.Errorf("%s: notified %d subscribers", tt.name, n)
		}
	}
	if !w.IsOpen() {
		t.Fatal("click on a widget part closed it")
	}

	// The gap between input and button belongs to no part.
	if n := hub.Interact(13, 0); n != 1 {
		t.Errorf("gap click notified %d, want 1", n)
	}
	if w.IsOpen() {
		t.Fatal("gap click did not close the widget")
	}
}

func TestHub_Blur(t *testing.T) {
	hub := NewHub()
	a, _ := newTestWidget(t, WithObserver(hub))
	b, _ := newTestWidget(t, WithObserver(hub))
	a.Toggle()
	b.Toggle()

	if n := hub.Blur(); n != 2 {
		t.Errorf("Blur notified %d, want 2", n)
	}
	if a.IsOpen() || b.IsOpen() {
		t.Error("expected both widgets closed")
	}
}

type countingObserver struct {
	observed, cancelled int
}

func (c *countingObserver) Observe(Region, func()) func() {
	c.observed++
	return func() { c.cancelled++ }
}

func TestObserver_PairedAcrossTransitions(t *testing.T) {
	obs := &countingObserver{}
	w := New(nil, WithObserver(obs), WithClock(func() time.Time {
		return time.Date(2026, time.October, 18, 0, 0, 0, 0, time.Local)
	}))

	w.Toggle()
	w.Toggle()
	w.Toggle()
	w.Dismiss()
	w.Dismiss()
	w.Close()
	w.Toggle()
	w.Pick(w.Today())

	if obs.observed != 3 || obs.cancelled != 3 {
		t.Errorf("observed=%d cancelled=%d, want 3/3", obs.observed, obs.cancelled)
	}
}
