package appctx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counted returns a fetch func that yields successive call counts.
func counted(calls *int) func(context.Context) (int, error) {
	return func(context.Context) (int, error) {
		*calls++
		return *calls, nil
	}
}

func TestGetOrFetch_HitsStoreOnce(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	calls := 0
	for range 3 {
		got, err := GetOrFetch(rc, "stage:3", counted(&calls))
		require.NoError(t, err)
		assert.Equal(t, 1, got)
	}
	assert.Equal(t, 1, calls)
}

func TestGetOrFetch_RemembersFailures(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	missing := errors.New("stage 9 missing")
	calls := 0
	fetch := func(context.Context) (int, error) {
		calls++
		return 0, missing
	}

	for range 2 {
		_, err := GetOrFetch(rc, "stage:9", fetch)
		require.ErrorIs(t, err, missing)
	}
	assert.Equal(t, 1, calls)
}

func TestGetOrFetch_KeyReusedWithOtherType(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	_, err := GetOrFetch(rc, "stage:1", func(context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)

	_, err = GetOrFetch(rc, "stage:1", func(context.Context) (string, error) { return "development", nil })
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.ErrorContains(t, err, `"stage:1"`)
}

func TestForget(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	calls := 0

	first, _ := GetOrFetch(rc, "stage:1", counted(&calls))
	rc.Forget("stage:1")
	second, _ := GetOrFetch(rc, "stage:1", counted(&calls))

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestGetOrFetch_UsesWrappedContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	rc := New(context.WithValue(context.Background(), key{}, "req-7"))

	got, err := GetOrFetch(rc, "who", func(ctx context.Context) (string, error) {
		return ctx.Value(key{}).(string), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "req-7", got)
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	assert.Same(t, rc, FromContext(WithRequestContext(context.Background(), rc)))

	fresh := FromContext(context.Background())
	require.NotNil(t, fresh)
	assert.NotSame(t, rc, fresh)
	assert.False(t, fresh.Committed())
}
