package stage

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/stageboard/internal/domain"
)

func TestStage_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		stage      Stage
		wantFields []string
	}{
		{name: "valid", stage: Stage{Name: "Production", Position: 1}},
		{name: "empty name", stage: Stage{Name: "  ", Position: 1}, wantFields: []string{"name"}},
		{name: "long name", stage: Stage{Name: strings.Repeat("x", MaxNameLength+1), Position: 2}, wantFields: []string{"name"}},
		{name: "zero position", stage: Stage{Name: "Invoiced"}, wantFields: []string{"position"}},
		{name: "everything wrong", stage: Stage{Position: -3}, wantFields: []string{"name", "position"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.stage.Validate()
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *domain.ValidationError", err)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Errorf("Fields = %v, want keys %v", verr.Fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("Fields missing %q: %v", f, verr.Fields)
				}
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	got, err := NormalizeName("  Post production ")
	if err != nil {
		t.Fatalf("NormalizeName() error = %v", err)
	}
	if got != "Post production" {
		t.Errorf("NormalizeName() = %q, want %q", got, "Post production")
	}

	if _, err := NormalizeName(""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("NormalizeName(\"\") error = %v, want ErrValidation", err)
	}
}
