package datepicker

// Rect is a screen region in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Region is anything that occupies screen cells. Rect is the simplest Region.
type Region interface {
	Contains(x, y int) bool
}

// Observer delivers interactions that happen outside a region.
// The returned cancel func unregisters the callback; calling it more than
// once has no effect.
type Observer interface {
	Observe(region Region, onOutside func()) (cancel func())
}

// Hub is an Observer fed by the host event loop. It is not safe for
// concurrent use; the TUI drives it from a single goroutine.
type Hub struct {
	nextID int
	subs   map[int]subscription
	order  []int
}

type subscription struct {
	region    Region
	onOutside func()
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]subscription)}
}

// Observe implements Observer.
func (h *Hub) Observe(region Region, onOutside func()) func() {
	h.nextID++
	id := h.nextID
	h.subs[id] = subscription{region: region, onOutside: onOutside}
	h.order = append(h.order, id)

	return func() {
		if _, ok := h.subs[id]; !ok {
			return
		}
		delete(h.subs, id)
		for i, v := range h.order {
			if v == id {
				h.order = append(h.order[:i], h.order[i+1:]...)
				break
			}
		}
	}
}

// Interact reports an interaction at (x, y). Every subscriber whose region
// does not contain the point is notified. Returns the number notified.
func (h *Hub) Interact(x, y int) int {
	return h.notify(func(s subscription) bool {
		return !s.region.Contains(x, y)
	})
}

// Blur notifies every subscriber, as for focus moving away from all regions.
func (h *Hub) Blur() int {
	return h.notify(func(subscription) bool { return true })
}

// Len returns the number of active subscriptions.
func (h *Hub) Len() int {
	return len(h.subs)
}

func (h *Hub) notify(match func(subscription) bool) int {
	// Callbacks usually cancel their own subscription, so iterate a snapshot.
	ids := append([]int(nil), h.order...)
	n := 0
	for _, id := range ids {
		s, ok := h.subs[id]
		if !ok || !match(s) {
			continue
		}
		s.onOutside()
		n++
	}
	return n
}
