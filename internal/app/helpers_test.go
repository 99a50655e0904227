package app

import (
	"context"
	"log/slog"
	"strconv"
	"testing"

	"github.com/jsamuelsen11/stageboard/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/stageboard/internal/domain/stage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func int64Ptr(v int64) *int64 { return &v }

// newBoard wires the real services over an in-memory store.
func newBoard(t *testing.T) (*memory.Store, *Sequencer, *Gateway, *StageService) {
	t.Helper()
	store := memory.New()
	seq := NewSequencer(store, nil, discardLogger())
	gw := NewGateway(seq, store, discardLogger())
	svc := NewStageService(seq, gw, 2, discardLogger())
	return store, seq, gw, svc
}

// mustCreate appends stages in the given order and returns them.
func mustCreate(t *testing.T, seq *Sequencer, stageNames ...string) []*stage.Stage {
	t.Helper()
	out := make([]*stage.Stage, len(stageNames))
	for i, n := range stageNames {
		st, err := seq.Create(context.Background(), n, i+1)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", n, err)
		}
		out[i] = st
	}
	return out
}

// order renders the current list as "Name@pos" entries.
func order(t *testing.T, seq *Sequencer) []string {
	t.Helper()
	stages, err := seq.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if err := stage.CheckDense(stages); err != nil {
		t.Fatalf("density violated: %v", err)
	}
	out := make([]string, len(stages))
	for i, s := range stages {
		out[i] = s.Name + "@" + itoa(s.Position)
	}
	return out
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
