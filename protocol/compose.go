package protocol

import "github.com/scl-mpc/scl/coroutine"

// Sequence runs each protocol in steps in order and ends with the last
// step's Result. Every step's output is passed on in the Result returned
// for that step, so an evaluator sees each output in order. It is the Go
// rendering of
// the doc-comment "Composed" pattern: a protocol built out of simpler
// protocols chained one after another.
type Sequence struct {
	name  string
	steps []Protocol
}

// NewSequence builds a Sequence protocol named name out of steps, run in
// order.
func NewSequence(name string, steps []Protocol) *Sequence {
	return &Sequence{name: name, steps: steps}
}

func (s *Sequence) Name() string {
	if s.name == "" {
		return DefaultName
	}
	return s.name
}

func (s *Sequence) Run(aw *coroutine.Awaiter, env *Env) (Result, error) {
	if len(s.steps) == 0 {
		return DoneNoOutput(), nil
	}
	if len(s.steps) == 1 {
		return s.steps[0].Run(aw, env)
	}
	rest := &Sequence{name: s.name, steps: s.steps[1:]}
	result, err := s.steps[0].Run(aw, env)
	if err != nil {
		return Result{}, err
	}
	if result.Next != nil {
		// The step chained on its own; splice the remaining sequence
		// steps after whatever it chained to.
		spliced := NewSequence(s.name, append([]Protocol{result.Next}, rest.steps...))
		return Result{Next: spliced, Output: result.Output, HasOutput: result.HasOutput}, nil
	}
	return Result{Next: rest, Output: result.Output, HasOutput: result.HasOutput}, nil
}
