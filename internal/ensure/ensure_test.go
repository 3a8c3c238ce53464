package ensure_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seojun-dev/denv/internal/ensure"
)

// fakeStep은 Sequence 테스트용 단계다.
type fakeStep struct {
	name   string
	status ensure.Status
	err    error
	runs   int
}

func (s *fakeStep) Name() string { return s.name }

func (s *fakeStep) Ensure(_ context.Context) (ensure.Result, error) {
	s.runs++
	return ensure.Result{Step: s.name, Status: s.status}, s.err
}

func TestSequence_RunsAllInOrder(t *testing.T) {
	t.Parallel()

	a := &fakeStep{name: "a", status: ensure.StatusSatisfied}
	b := &fakeStep{name: "b", status: ensure.StatusChanged}

	results, err := ensure.Sequence(context.Background(), a, b)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Step)
	assert.Equal(t, "b", results[1].Step)
	assert.Equal(t, 1, a.runs)
	assert.Equal(t, 1, b.runs)
}

func TestSequence_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	a := &fakeStep{name: "a", status: ensure.StatusFailed, err: fmt.Errorf("boom")}
	b := &fakeStep{name: "b", status: ensure.StatusSatisfied}

	results, err := ensure.Sequence(context.Background(), a, b)
	require.Error(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, ensure.StatusFailed, results[0].Status)
	assert.Equal(t, 0, b.runs, "steps after a failure must not run")
}

func TestSequence_Empty(t *testing.T) {
	t.Parallel()

	results, err := ensure.Sequence(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
}
