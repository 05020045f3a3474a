package memory_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/errs"
)

func newRoster(t *testing.T, ids ...int64) *memory.WorkerRegistry {
	t.Helper()
	registry := memory.NewWorkerRegistry()
	for _, id := range ids {
		aggregate, err := worker.NewWorker(kernel.WorkerID(id), "Courier")
		require.NoError(t, err)
		require.NoError(t, aggregate.SetContactHandle("@courier"))
		require.NoError(t, registry.Add(t.Context(), aggregate))
	}
	return registry
}

func TestWorkerRegistry_AddAndGet(t *testing.T) {
	ctx := t.Context()
	registry := newRoster(t, 7)

	loaded, err := registry.Get(ctx, kernel.WorkerID(7))

	require.NoError(t, err)
	assert.Equal(t, kernel.WorkerID(7), loaded.ID())
	assert.True(t, loaded.IsEligible())
}

func TestWorkerRegistry_Get_Unknown(t *testing.T) {
	registry := memory.NewWorkerRegistry()

	_, err := registry.Get(t.Context(), kernel.WorkerID(7))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestWorkerRegistry_MarkBusyAndFree(t *testing.T) {
	ctx := t.Context()
	registry := newRoster(t, 7)

	require.NoError(t, registry.MarkBusy(ctx, kernel.WorkerID(7), kernel.JobID(100)))

	loaded, err := registry.Get(ctx, kernel.WorkerID(7))
	require.NoError(t, err)
	assert.False(t, loaded.IsEligible())
	require.NotNil(t, loaded.CurrentJob())
	assert.Equal(t, kernel.JobID(100), *loaded.CurrentJob())

	require.NoError(t, registry.MarkFree(ctx, kernel.WorkerID(7)))

	loaded, err = registry.Get(ctx, kernel.WorkerID(7))
	require.NoError(t, err)
	assert.True(t, loaded.IsEligible())
	assert.Nil(t, loaded.CurrentJob())
}

func TestWorkerRegistry_MarkBusy_WhileBusy(t *testing.T) {
	ctx := t.Context()
	registry := newRoster(t, 7)
	require.NoError(t, registry.MarkBusy(ctx, kernel.WorkerID(7), kernel.JobID(100)))

	err := registry.MarkBusy(ctx, kernel.WorkerID(7), kernel.JobID(101))

	require.ErrorIs(t, err, worker.ErrWorkerAlreadyAssigned)
}

func TestWorkerRegistry_MarkBusy_SamePairIsIdempotent(t *testing.T) {
	ctx := t.Context()
	registry := newRoster(t, 7)
	require.NoError(t, registry.MarkBusy(ctx, kernel.WorkerID(7), kernel.JobID(100)))

	require.NoError(t, registry.MarkBusy(ctx, kernel.WorkerID(7), kernel.JobID(100)))

	loaded, err := registry.Get(ctx, kernel.WorkerID(7))
	require.NoError(t, err)
	require.NotNil(t, loaded.CurrentJob())
	assert.Equal(t, kernel.JobID(100), *loaded.CurrentJob())
}

func TestWorkerRegistry_MarkFree_AlreadyFreeIsFine(t *testing.T) {
	registry := newRoster(t, 7)

	require.NoError(t, registry.MarkFree(t.Context(), kernel.WorkerID(7)))
}

func TestWorkerRegistry_MarkBusy_OneWinnerUnderContention(t *testing.T) {
	ctx := t.Context()
	registry := newRoster(t, 7)

	const attempts = 16
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0

	for i := range attempts {
		wg.Add(1)
		go func(jobID int64) {
			defer wg.Done()
			if registry.MarkBusy(ctx, kernel.WorkerID(7), kernel.JobID(jobID)) == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(int64(100 + i))
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestWorkerRegistry_ListEligible(t *testing.T) {
	ctx := t.Context()
	registry := newRoster(t, 7, 8, 9)

	require.NoError(t, registry.MarkBusy(ctx, kernel.WorkerID(8), kernel.JobID(100)))
	require.NoError(t, registry.SetAvailability(ctx, kernel.WorkerID(9), false))

	// Registered without a handle, so never eligible.
	silent, err := worker.NewWorker(kernel.WorkerID(10), "Silent")
	require.NoError(t, err)
	require.NoError(t, registry.Add(ctx, silent))

	eligible, err := registry.ListEligible(ctx)

	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, kernel.WorkerID(7), eligible[0].ID())
}

func TestWorkerRegistry_SetAvailability_BusyCourierRejected(t *testing.T) {
	ctx := t.Context()
	registry := newRoster(t, 7)
	require.NoError(t, registry.MarkBusy(ctx, kernel.WorkerID(7), kernel.JobID(100)))

	err := registry.SetAvailability(ctx, kernel.WorkerID(7), false)

	require.ErrorIs(t, err, worker.ErrWorkerIsBusy)
}

func TestWorkerRegistry_Remove(t *testing.T) {
	ctx := t.Context()
	registry := newRoster(t, 7)

	require.NoError(t, registry.Remove(ctx, kernel.WorkerID(7)))

	_, err := registry.Get(ctx, kernel.WorkerID(7))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.ErrorIs(t, registry.Remove(ctx, kernel.WorkerID(7)), errs.ErrObjectNotFound)
}
