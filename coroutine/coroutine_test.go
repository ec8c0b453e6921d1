package coroutine

import (
	"errors"
	"testing"
	"time"

	"github.com/scl-mpc/scl/scerr"
	"github.com/stretchr/testify/require"
)

func waitForPending(t *testing.T, rt *Runtime, n int) {
	t.Helper()
	rt.Run(func() bool { return rt.Pending() >= n })
}

func TestTaskCompletesAfterPredicateTrue(t *testing.T) {
	rt := NewRuntime(nil)
	ready := false

	task := Go(rt, 0, func(aw *Awaiter) (int, error) {
		aw.Predicate(func() bool { return ready })
		return 42, nil
	})

	waitForPending(t, rt, 1)
	require.False(t, task.Done())

	ready = true
	rt.Run(task.Done)

	v, err := task.Result()
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestAwaitTaskChaining(t *testing.T) {
	rt := NewRuntime(nil)

	inner := Go(rt, 0, func(aw *Awaiter) (int, error) {
		return 7, nil
	})

	outer := Go(rt, 1, func(aw *Awaiter) (int, error) {
		v, err := AwaitTask(aw, inner)
		if err != nil {
			return 0, err
		}
		return v * 2, nil
	})

	rt.Run(outer.Done)
	v, err := outer.Result()
	require.NoError(t, err)
	require.Equal(t, 14, v)
}

func TestAwaitBatchWaitsForAll(t *testing.T) {
	rt := NewRuntime(nil)

	var tasks []*Task[int]
	gates := make([]bool, 3)
	for i := 0; i < 3; i++ {
		i := i
		tasks = append(tasks, Go(rt, i, func(aw *Awaiter) (int, error) {
			aw.Predicate(func() bool { return gates[i] })
			return i * 10, nil
		}))
	}

	batch := Go(rt, 99, func(aw *Awaiter) ([]int, error) {
		return AwaitBatch(aw, tasks)
	})

	waitForPending(t, rt, 4)
	require.False(t, batch.Done())

	gates[0], gates[1], gates[2] = true, true, true
	rt.Run(batch.Done)

	got, err := batch.Result()
	require.NoError(t, err)
	require.Equal(t, []int{0, 10, 20}, got)
}

func TestCancelledOwnerNeverResumes(t *testing.T) {
	cancelled := map[int]bool{}
	rt := NewRuntime(func(owner int) bool { return cancelled[owner] })

	task := Go(rt, 5, func(aw *Awaiter) (int, error) {
		aw.Predicate(func() bool { return true })
		return 1, nil
	})

	waitForPending(t, rt, 1)
	cancelled[5] = true

	// pump several times; a cancelled owner's waiter must never resume
	for i := 0; i < 5; i++ {
		rt.Next()
	}
	require.False(t, task.Done())
	require.Equal(t, 1, rt.Pending())
}

func TestCancelSelfUnwindsImmediately(t *testing.T) {
	rt := NewRuntime(nil)

	task := Go(rt, 3, func(aw *Awaiter) (int, error) {
		return 0, aw.CancelSelf()
	})

	rt.Run(task.Done)
	_, err := task.Result()
	require.True(t, errors.Is(err, scerr.ErrCancelled))
}

func TestBatchExcludesCancelledTasks(t *testing.T) {
	cancelled := map[int]bool{}
	rt := NewRuntime(func(owner int) bool { return cancelled[owner] })

	stuck := Go(rt, 1, func(aw *Awaiter) (int, error) {
		aw.Predicate(func() bool { return false })
		return 99, nil
	})
	done := Go(rt, 2, func(aw *Awaiter) (int, error) {
		return 5, nil
	})

	waitForPending(t, rt, 1)
	cancelled[1] = true

	batch := Go(rt, 3, func(aw *Awaiter) ([]int, error) {
		return AwaitBatch(aw, []*Task[int]{stuck, done})
	})

	rt.Run(batch.Done)
	got, err := batch.Result()
	require.NoError(t, err)
	require.Equal(t, []int{5}, got)
}

type fakeClock struct{ t time.Duration }

func (c *fakeClock) Now() time.Duration { return c.t }

func TestAwaitDuration(t *testing.T) {
	rt := NewRuntime(nil)
	clock := &fakeClock{}

	task := Go(rt, 0, func(aw *Awaiter) (int, error) {
		aw.Duration(clock, 5*time.Second)
		return 1, nil
	})

	waitForPending(t, rt, 1)
	require.False(t, task.Done())

	clock.t = 5 * time.Second
	rt.Run(task.Done)

	v, err := task.Result()
	require.NoError(t, err)
	require.Equal(t, 1, v)
}
