package gesture

import "math"

// Controller is the swipe state machine for a single card.
type Controller struct {
	params    Params
	viewport  float64
	session   *Session
	committed bool
}

// New returns an idle controller.
func New(params Params, viewport float64) *Controller {
	return &Controller{params: params, viewport: viewport}
}

// SetViewport updates the width the commit threshold scales with.
func (c *Controller) SetViewport(width float64) { c.viewport = width }

// Threshold is the current commit threshold.
func (c *Controller) Threshold() float64 { return c.params.CommitThreshold(c.viewport) }

// Phase is the current state.
func (c *Controller) Phase() Phase {
	switch {
	case c.committed:
		return Committed
	case c.session != nil:
		return c.session.Phase
	}
	return Idle
}

// Session returns a copy of the live session, if any.
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

func (c *Controller) step() Step { return Step{Phase: c.Phase()} }

// Start begins a session at p. A start on a control never creates a session:
// the control owns that input regardless of later movement. Starts while
// committed or while another session is live are ignored.
func (c *Controller) Start(p Point, onControl bool) Step {
	if c.committed || c.session != nil || onControl {
		return c.step()
	}
	c.session = &Session{Origin: p, Current: p, Phase: Undecided}
	return c.step()
}

// Move feeds a pointer position. points is the number of simultaneous
// contacts; anything but one is ignored without disturbing the session.
func (c *Controller) Move(p Point, points int) Step {
	s := c.session
	if c.committed || s == nil || points != 1 {
		return c.step()
	}
	s.Current = p
	dx, dy := s.Delta()

	if s.Phase == Undecided {
		adx := math.Abs(dx)
		if adx <= c.params.MinMove || adx <= c.params.Dominance*math.Abs(dy) {
			return c.step()
		}
		s.Phase = Dragging
	}

	fb := c.params.Feedback(dx)
	return Step{Phase: Dragging, Claimed: true, Feedback: &fb}
}

// End finishes the session.
func (c *Controller) End() Step {
	s := c.session
	if c.committed || s == nil {
		return c.step()
	}
	c.session = nil
	if s.Phase != Dragging {
		return c.step()
	}

	dx, _ := s.Delta()
	if math.Abs(dx) > c.Threshold() {
		dir := Right
		if dx < 0 {
			dir = Left
		}
		c.committed = true
		return Step{Phase: Committed, Claimed: true, Outcome: Commit, Direction: dir}
	}
	return Step{Phase: Idle, Claimed: true, Outcome: SpringBack}
}

// Cancel aborts the session without committing, as when the pointer is lost.
func (c *Controller) Cancel() Step {
	s := c.session
	if c.committed || s == nil {
		return c.step()
	}
	c.session = nil
	if s.Phase == Dragging {
		return Step{Phase: Idle, Claimed: true, Outcome: SpringBack}
	}
	return c.step()
}

// Commit is the control entry point into the same terminal transition a drag
// reaches. It is ignored while a commit is already pending.
func (c *Controller) Commit(dir Direction) Step {
	if c.committed {
		return c.step()
	}
	c.session = nil
	c.committed = true
	return Step{Phase: Committed, Claimed: true, Outcome: Commit, Direction: dir}
}

// Settle returns a committed controller to Idle once the outcome animation has
// finished.
func (c *Controller) Settle() {
	c.committed = false
	c.session = nil
}
