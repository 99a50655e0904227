package appctx

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ledger records execute and rollback calls across goroutines.
type ledger struct {
	mu    sync.Mutex
	lines []string
}

func (l *ledger) write(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *ledger) read() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.lines)
}

// fakeAction is a domain.Action whose Execute runs before and then returns
// fail. Only successful runs are written to the ledger.
type fakeAction struct {
	name   string
	fail   error
	before func(ctx context.Context) error
	log    *ledger
}

func (a *fakeAction) Execute(ctx context.Context) error {
	if a.before != nil {
		if err := a.before(ctx); err != nil {
			return err
		}
	}
	if a.fail != nil {
		return a.fail
	}
	if a.log != nil {
		a.log.write("do " + a.name)
	}
	return nil
}

func (a *fakeAction) Rollback(context.Context) error {
	if a.log != nil {
		a.log.write("undo " + a.name)
	}
	return nil
}

func (a *fakeAction) Description() string { return a.name }

func TestCommit_Sequential(t *testing.T) {
	t.Parallel()

	boom := errors.New("stage 4 is locked")

	tests := []struct {
		name    string
		failAt  int
		wantErr error
		want    []string
	}{
		{
			name: "all succeed",
			want: []string{"do move 1", "do move 2", "do move 3"},
		},
		{
			name:    "last fails",
			failAt:  3,
			wantErr: boom,
			want:    []string{"do move 1", "do move 2", "undo move 2", "undo move 1"},
		},
		{
			name:    "first fails",
			failAt:  1,
			wantErr: boom,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rc := New(context.Background())
			log := &ledger{}
			for i, name := range []string{"move 1", "move 2", "move 3"} {
				a := &fakeAction{name: name, log: log}
				if i+1 == tt.failAt {
					a.fail = boom
				}
				require.NoError(t, rc.AddAction(a))
			}

			err := rc.Commit(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, log.read())
			assert.True(t, rc.Committed())
		})
	}
}

func TestCommit_OnlyOnce(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	require.NoError(t, rc.Commit(context.Background()))

	assert.ErrorIs(t, rc.Commit(context.Background()), ErrAlreadyCommitted)
	assert.ErrorIs(t, rc.AddAction(&fakeAction{name: "late"}), ErrAlreadyCommitted)
	assert.ErrorIs(t, rc.AddGroup(&fakeAction{name: "late"}), ErrAlreadyCommitted)
}

func TestAdd_RejectsNil(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	assert.ErrorIs(t, rc.AddAction(nil), ErrNilAction)
	assert.ErrorIs(t, rc.AddGroup(&fakeAction{name: "ok"}, nil), ErrNilAction)
}

func TestGroup_FailureUndoesFinishedMembers(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	log := &ledger{}
	boom := errors.New("project api unavailable")

	finished := make(chan struct{})
	quick := &fakeAction{name: "move 10", log: log, before: func(context.Context) error {
		defer close(finished)
		return nil
	}}
	// Fails only after quick has finished, so quick must be undone.
	late := &fakeAction{name: "move 11", log: log, fail: boom, before: func(context.Context) error {
		<-finished
		time.Sleep(20 * time.Millisecond)
		return nil
	}}

	require.NoError(t, rc.AddGroup(quick, late))
	require.ErrorIs(t, rc.Commit(context.Background()), boom)

	assert.Equal(t, []string{"do move 10", "undo move 10"}, log.read())
}

func TestGroup_LaterStepFailureUndoesGroup(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	log := &ledger{}

	require.NoError(t, rc.AddGroup(&fakeAction{name: "a", log: log}, &fakeAction{name: "b", log: log}))
	require.NoError(t, rc.AddAction(&fakeAction{name: "c", log: log, fail: errors.New("nope")}))
	require.Error(t, rc.Commit(context.Background()))

	got := log.read()
	require.Len(t, got, 4)
	assert.ElementsMatch(t, []string{"do a", "do b"}, got[:2])
	assert.ElementsMatch(t, []string{"undo a", "undo b"}, got[2:])
}

func TestGroup_FailureCancelsSiblings(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	var sawCancel atomic.Bool
	started := make(chan struct{})

	slow := &fakeAction{name: "slow", before: func(ctx context.Context) error {
		close(started)
		select {
		case <-ctx.Done():
			sawCancel.Store(true)
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return nil
		}
	}}
	// fast fails only once slow is running, so there is a sibling to cancel.
	fast := &fakeAction{name: "fast", before: func(context.Context) error {
		<-started
		return errors.New("boom")
	}}

	require.NoError(t, rc.AddGroup(slow, fast))
	require.Error(t, rc.Commit(context.Background()))
	assert.True(t, sawCancel.Load())
}

func TestGroup_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	var running, peak atomic.Int32

	actions := make([]*fakeAction, 8)
	for i := range actions {
		actions[i] = &fakeAction{name: "bounded", before: func(context.Context) error {
			n := running.Add(1)
			defer running.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			return nil
		}}
	}

	require.NoError(t, rc.AddBoundedGroup(2,
		actions[0], actions[1], actions[2], actions[3],
		actions[4], actions[5], actions[6], actions[7]))
	require.NoError(t, rc.Commit(context.Background()))
	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.Positive(t, peak.Load())
}

func TestSafeRef_ConcurrentUpdates(t *testing.T) {
	t.Parallel()

	moved := NewRef([]int64{})
	var wg sync.WaitGroup
	for id := range int64(50) {
		wg.Go(func() {
			moved.Update(func(ids *[]int64) { *ids = append(*ids, id+1) })
		})
	}
	wg.Wait()

	got := slices.Clone(moved.Load())
	slices.Sort(got)
	require.Len(t, got, 50)
	assert.Equal(t, int64(1), got[0])
	assert.Equal(t, int64(50), got[49])
}
