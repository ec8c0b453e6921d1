// Package sim implements a deterministic, single-threaded network simulator:
// parties run as cooperative coroutines (package coroutine) communicating
// over simulated channels whose delivery delay follows a configurable TCP
// throughput model, producing a per-party event trace a Manager can inspect
// or hook into.
package sim

// ChannelID identifies one directed view of a pairwise channel: during a
// simulation every pair of parties is connected by two channels, {i, j} and
// {j, i}, and {i, j} is the one i uses when writing to j. Unlike the
// original's std::hash specialization, a Go struct of comparable fields is
// usable as a map key without any extra plumbing.
type ChannelID struct {
	Local  int
	Remote int
}

// Flip returns the other channel in the pair: the view the remote party
// uses when writing back.
func (c ChannelID) Flip() ChannelID {
	return ChannelID{Local: c.Remote, Remote: c.Local}
}
