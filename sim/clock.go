package sim

import "time"

// Clock is the coroutine.Clock implementation a simulated protocol's Env
// reads from: a party's virtual time, per §4.11.
type Clock struct {
	view *PartyView
}

// NewClock builds a Clock reading view's virtual time.
func NewClock(view *PartyView) *Clock {
	return &Clock{view: view}
}

// Now returns the party's current virtual elapsed time.
func (c *Clock) Now() time.Duration {
	return c.view.ElapsedTime()
}
