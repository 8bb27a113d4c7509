package guide

// FrameScheduler runs visual updates on the next animation frame.
type FrameScheduler interface {
	Request(paint func())
}

// Coalescer batches paints into frames. Each guide gets its own Slot; within a
// slot a newer request supersedes the pending one. The host calls Flush once per
// frame and every slot's latest paint runs, in slot order.
type Coalescer struct {
	slots []*Slot
	own   *Slot
	armed bool
}

// Slot is one guide's share of a Coalescer.
type Slot struct {
	paint func()
}

// Request implements FrameScheduler.
func (s *Slot) Request(paint func()) {
	s.paint = paint
}

// Slot returns a new scheduler whose paints never supersede another slot's.
func (c *Coalescer) Slot() *Slot {
	s := &Slot{}
	c.slots = append(c.slots, s)
	return s
}

// Request implements FrameScheduler using the coalescer's own slot.
func (c *Coalescer) Request(paint func()) {
	if c.own == nil {
		c.own = c.Slot()
	}
	c.own.Request(paint)
}

// Pending reports whether a paint is waiting for the next frame.
func (c *Coalescer) Pending() bool {
	for _, s := range c.slots {
		if s.paint != nil {
			return true
		}
	}
	return false
}

// Arm reports true exactly once per pending frame so the host schedules a single
// tick no matter how many requests arrive before it fires.
func (c *Coalescer) Arm() bool {
	if c.armed || !c.Pending() {
		return false
	}
	c.armed = true
	return true
}

// Flush runs the latest paint of every slot. It reports whether anything was painted.
func (c *Coalescer) Flush() bool {
	c.armed = false
	painted := false
	for _, s := range c.slots {
		paint := s.paint
		s.paint = nil
		if paint != nil {
			paint()
			painted = true
		}
	}
	return painted
}

// Immediate paints synchronously. Used by headless runs.
type Immediate struct{}

// Request implements FrameScheduler.
func (Immediate) Request(paint func()) {
	paint()
}
