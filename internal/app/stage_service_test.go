package app

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	appctx "github.com/jsamuelsen11/stageboard/internal/app/context"
	"github.com/jsamuelsen11/stageboard/internal/domain"
	"github.com/jsamuelsen11/stageboard/internal/domain/project"
	"github.com/jsamuelsen11/stageboard/internal/domain/stage"
	"github.com/jsamuelsen11/stageboard/mocks"
)

func TestStageService_MoveStage_ConvertsIndexToPosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		index        int
		wantPosition int
	}{
		{name: "head", index: 0, wantPosition: 1},
		{name: "middle", index: 2, wantPosition: 3},
		{name: "tail", index: 3, wantPosition: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			seq := mocks.NewMockStageSequencer(t)
			gw := mocks.NewMockAssignmentGateway(t)

			seq.EXPECT().Move(mock.Anything, int64(5), tt.wantPosition).
				Return(&stage.Stage{ID: 5, Position: tt.wantPosition}, nil).Once()
			seq.EXPECT().List(mock.Anything).Return([]stage.Stage{{ID: 5, Position: 1}}, nil)

			svc := NewStageService(seq, gw, 1, discardLogger())
			got, err := svc.MoveStage(context.Background(), 5, tt.index)
			if err != nil {
				t.Fatalf("MoveStage() error = %v", err)
			}
			if len(got) != 1 {
				t.Errorf("MoveStage() returned %d stages, want canonical list", len(got))
			}
		})
	}
}

func TestStageService_MoveStage_NegativeIndex(t *testing.T) {
	t.Parallel()
	svc := NewStageService(mocks.NewMockStageSequencer(t), mocks.NewMockAssignmentGateway(t), 1, discardLogger())

	_, err := svc.MoveStage(context.Background(), 5, -1)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("MoveStage(-1) error = %v, want *ValidationError", err)
	}
	if _, ok := verr.Fields["index"]; !ok {
		t.Errorf("Fields = %v, want index", verr.Fields)
	}
}

func TestStageService_MoveStage_EndToEnd(t *testing.T) {
	t.Parallel()
	_, seq, _, svc := newBoard(t)
	created := mustCreate(t, seq, "A", "B", "C", "D")

	// Dropping C at the top of the rendered list.
	got, err := svc.MoveStage(context.Background(), created[2].ID, 0)
	if err != nil {
		t.Fatalf("MoveStage() error = %v", err)
	}
	names := make([]string, len(got))
	for i, s := range got {
		names[i] = s.Name
	}
	if want := []string{"C", "A", "B", "D"}; !slices.Equal(names, want) {
		t.Errorf("MoveStage() order = %v, want %v", names, want)
	}
}

func TestStageService_DeleteStage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(seq *mocks.MockStageSequencer, gw *mocks.MockAssignmentGateway)
		wantErr error
	}{
		{
			name: "empty stage is deleted",
			setup: func(seq *mocks.MockStageSequencer, gw *mocks.MockAssignmentGateway) {
				gw.EXPECT().CountProjectsInStage(mock.Anything, int64(2)).Return(0, nil)
				seq.EXPECT().Delete(mock.Anything, int64(2)).Return(nil)
			},
		},
		{
			name: "assigned projects conflict",
			setup: func(_ *mocks.MockStageSequencer, gw *mocks.MockAssignmentGateway) {
				gw.EXPECT().CountProjectsInStage(mock.Anything, int64(2)).Return(3, nil)
			},
			wantErr: domain.ErrConflict,
		},
		{
			name: "unknown stage",
			setup: func(_ *mocks.MockStageSequencer, gw *mocks.MockAssignmentGateway) {
				gw.EXPECT().CountProjectsInStage(mock.Anything, int64(2)).Return(0, domain.ErrNotFound)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			seq := mocks.NewMockStageSequencer(t)
			gw := mocks.NewMockAssignmentGateway(t)
			tt.setup(seq, gw)

			err := NewStageService(seq, gw, 1, discardLogger()).DeleteStage(context.Background(), 2)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("DeleteStage() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DeleteStage() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestStageService_DeleteAfterReassign covers refusing a delete while a
// project is assigned and allowing it once the project has moved away.
func TestStageService_DeleteAfterReassign(t *testing.T) {
	t.Parallel()
	store, seq, _, svc := newBoard(t)
	ctx := context.Background()
	created := mustCreate(t, seq, "A", "B", "C")
	p, err := store.CreateProject(ctx, &project.Project{Name: "P"})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	if err := svc.AssignProject(ctx, p.ID, created[1].ID); err != nil {
		t.Fatalf("AssignProject(B) error = %v", err)
	}
	if err := svc.DeleteStage(ctx, created[1].ID); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("DeleteStage(B) error = %v, want ErrConflict", err)
	}
	if err := svc.AssignProject(ctx, p.ID, created[0].ID); err != nil {
		t.Fatalf("AssignProject(A) error = %v", err)
	}
	if err := svc.DeleteStage(ctx, created[1].ID); err != nil {
		t.Fatalf("DeleteStage(B) after reassign error = %v", err)
	}

	if got, want := order(t, seq), []string{"A@1", "C@2"}; !slices.Equal(got, want) {
		t.Errorf("list = %v, want %v", got, want)
	}
}

func TestStageService_GetStage_Memoized(t *testing.T) {
	t.Parallel()
	seq := mocks.NewMockStageSequencer(t)
	seq.EXPECT().GetByID(mock.Anything, int64(4)).Return(&stage.Stage{ID: 4, Name: "Invoiced"}, nil).Once()

	svc := NewStageService(seq, mocks.NewMockAssignmentGateway(t), 1, discardLogger())
	ctx := appctx.WithRequestContext(context.Background(), appctx.New(context.Background()))

	for range 2 {
		got, err := svc.GetStage(ctx, 4)
		if err != nil {
			t.Fatalf("GetStage() error = %v", err)
		}
		if got.Name != "Invoiced" {
			t.Errorf("GetStage().Name = %q, want Invoiced", got.Name)
		}
	}
}

func TestStageService_Board(t *testing.T) {
	t.Parallel()
	store, seq, _, svc := newBoard(t)
	ctx := context.Background()
	created := mustCreate(t, seq, "Development", "Production", "Completed")

	for i, name := range []string{"Trailer", "Documentary", "Ad"} {
		p, err := store.CreateProject(ctx, &project.Project{Name: name})
		if err != nil {
			t.Fatalf("CreateProject() error = %v", err)
		}
		if err := svc.AssignProject(ctx, p.ID, created[i%2].ID); err != nil {
			t.Fatalf("AssignProject() error = %v", err)
		}
	}

	board, err := svc.Board(ctx)
	if err != nil {
		t.Fatalf("Board() error = %v", err)
	}
	if len(board) != 3 {
		t.Fatalf("len(board) = %d, want 3", len(board))
	}
	wantCounts := []int{2, 1, 0}
	for i, col := range board {
		if col.Stage.Position != i+1 {
			t.Errorf("column %d position = %d, want %d", i, col.Stage.Position, i+1)
		}
		if len(col.Projects) != wantCounts[i] {
			t.Errorf("column %q has %d projects, want %d", col.Stage.Name, len(col.Projects), wantCounts[i])
		}
	}
}

func TestStageService_Board_ColumnFailure(t *testing.T) {
	t.Parallel()
	seq := mocks.NewMockStageSequencer(t)
	gw := mocks.NewMockAssignmentGateway(t)
	seq.EXPECT().List(mock.Anything).Return([]stage.Stage{{ID: 1, Name: "A", Position: 1}, {ID: 2, Name: "B", Position: 2}}, nil)
	gw.EXPECT().ListProjectsInStage(mock.Anything, int64(1)).Return([]project.Project{}, nil)
	gw.EXPECT().ListProjectsInStage(mock.Anything, int64(2)).Return(nil, domain.ErrUnavailable)

	_, err := NewStageService(seq, gw, 2, discardLogger()).Board(context.Background())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Board() error = %v, want ErrUnavailable", err)
	}
}

func TestStageService_DrainStage(t *testing.T) {
	t.Parallel()
	store, seq, gw, svc := newBoard(t)
	ctx := context.Background()
	created := mustCreate(t, seq, "A", "B")

	var ids []int64
	for _, name := range []string{"P1", "P2", "P3"} {
		p, err := store.CreateProject(ctx, &project.Project{Name: name, StageID: int64Ptr(created[0].ID)})
		if err != nil {
			t.Fatalf("CreateProject() error = %v", err)
		}
		ids = append(ids, p.ID)
	}

	result, err := svc.DrainStage(ctx, created[0].ID, created[1].ID)
	if err != nil {
		t.Fatalf("DrainStage() error = %v", err)
	}
	if !slices.Equal(result.Moved, ids) {
		t.Errorf("Moved = %v, want %v", result.Moved, ids)
	}
	if n, _ := gw.CountProjectsInStage(ctx, created[0].ID); n != 0 {
		t.Errorf("drained stage still holds %d projects", n)
	}
	if err := svc.DeleteStage(ctx, created[0].ID); err != nil {
		t.Errorf("DeleteStage() after drain error = %v", err)
	}
}

func TestStageService_DrainStage_RollsBackOnFailure(t *testing.T) {
	t.Parallel()
	seq := mocks.NewMockStageSequencer(t)
	gw := mocks.NewMockAssignmentGateway(t)

	seq.EXPECT().GetByID(mock.Anything, int64(1)).Return(&stage.Stage{ID: 1}, nil)
	seq.EXPECT().GetByID(mock.Anything, int64(2)).Return(&stage.Stage{ID: 2}, nil)
	gw.EXPECT().ListProjectsInStage(mock.Anything, int64(1)).Return([]project.Project{{ID: 10}, {ID: 11}}, nil)

	var mu sync.Mutex
	var rolledBack []int64
	gw.EXPECT().AssignProjectToStage(mock.Anything, int64(10), int64(2)).Return(nil)
	gw.EXPECT().AssignProjectToStage(mock.Anything, int64(11), int64(2)).Return(domain.ErrUnavailable)
	gw.EXPECT().AssignProjectToStage(mock.Anything, int64(10), int64(1)).
		Run(func(_ context.Context, projectID, _ int64) {
			mu.Lock()
			defer mu.Unlock()
			rolledBack = append(rolledBack, projectID)
		}).Return(nil).Maybe()

	// One worker runs the reassignments in order, so project 10 has moved
	// before project 11 fails.
	svc := NewStageService(seq, gw, 1, discardLogger())
	_, err := svc.DrainStage(context.Background(), 1, 2)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("DrainStage() error = %v, want ErrUnavailable", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if !slices.Equal(rolledBack, []int64{10}) {
		t.Errorf("rolled back = %v, want [10]", rolledBack)
	}
}

func TestStageService_DrainStage_SameStage(t *testing.T) {
	t.Parallel()
	svc := NewStageService(mocks.NewMockStageSequencer(t), mocks.NewMockAssignmentGateway(t), 1, discardLogger())

	if _, err := svc.DrainStage(context.Background(), 3, 3); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("DrainStage(3, 3) error = %v, want ErrValidation", err)
	}
}
