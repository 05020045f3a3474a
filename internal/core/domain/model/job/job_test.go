package job_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
)

func mustNewJob(t *testing.T) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.JobID(100), "Order #100\n2x Plov", 15000, 120000, nil, nil, nil)
	require.NoError(t, err)
	return j
}

func TestNewJob(t *testing.T) {
	t.Run("minimal job", func(t *testing.T) {
		j, err := job.NewJob(kernel.JobID(100), "Order #100", 15000, 120000, nil, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, kernel.JobID(100), j.ID())
		assert.Equal(t, job.Broadcasting, j.Stage())
		assert.Nil(t, j.Worker())
		assert.Equal(t, "Order #100", j.NoticeText())
		assert.Equal(t, int64(15000), j.DeliveryFee())
		assert.Equal(t, int64(120000), j.DishSubtotal())
		assert.Nil(t, j.CustomerPhone())
		assert.Nil(t, j.CustomerRef())
		assert.Nil(t, j.Location())
		assert.False(t, j.CreatedAt().IsZero())
		assert.True(t, j.IsPending())
		assert.False(t, j.IsCompleted())
		assert.NoError(t, j.Validate())
	})

	t.Run("full job", func(t *testing.T) {
		phone, err := kernel.NewPhone("901234567")
		require.NoError(t, err)
		point, err := kernel.NewGeoPoint(41.311, 69.240)
		require.NoError(t, err)
		ref := int64(555)

		j, err := job.NewJob(kernel.JobID(100), "Order #100", 15000, 120000, &phone, &ref, &point)
		require.NoError(t, err)

		require.NotNil(t, j.CustomerPhone())
		assert.Equal(t, "901234567", j.CustomerPhone().Digits())
		require.NotNil(t, j.CustomerRef())
		assert.Equal(t, int64(555), *j.CustomerRef())
		require.NotNil(t, j.Location())
		assert.InDelta(t, 41.311, j.Location().Latitude(), 0)
	})

	t.Run("zero id", func(t *testing.T) {
		_, err := job.NewJob(kernel.JobID(0), "Order #100", 15000, 120000, nil, nil, nil)
		assert.Error(t, err)
	})

	t.Run("empty notice text", func(t *testing.T) {
		_, err := job.NewJob(kernel.JobID(100), "", 15000, 120000, nil, nil, nil)
		assert.Error(t, err)
	})

	t.Run("negative delivery fee", func(t *testing.T) {
		_, err := job.NewJob(kernel.JobID(100), "Order #100", -1, 120000, nil, nil, nil)
		assert.Error(t, err)
	})

	t.Run("negative dish subtotal", func(t *testing.T) {
		_, err := job.NewJob(kernel.JobID(100), "Order #100", 15000, -1, nil, nil, nil)
		assert.Error(t, err)
	})

	t.Run("invalid customer phone", func(t *testing.T) {
		var phone kernel.Phone
		_, err := job.NewJob(kernel.JobID(100), "Order #100", 15000, 120000, &phone, nil, nil)
		assert.Error(t, err)
	})

	t.Run("invalid location", func(t *testing.T) {
		var point kernel.GeoPoint
		_, err := job.NewJob(kernel.JobID(100), "Order #100", 15000, 120000, nil, nil, &point)
		assert.Error(t, err)
	})
}

func TestJob_Validate(t *testing.T) {
	t.Run("constructed job", func(t *testing.T) {
		assert.NoError(t, mustNewJob(t).Validate())
	})

	t.Run("zero value job", func(t *testing.T) {
		var j job.Job
		assert.ErrorIs(t, j.Validate(), job.ErrJobIsNotConstructed)
	})

	t.Run("nil job", func(t *testing.T) {
		var j *job.Job
		assert.ErrorIs(t, j.Validate(), job.ErrJobIsNotConstructed)
	})
}

func TestJob_Claim(t *testing.T) {
	t.Run("first claim wins", func(t *testing.T) {
		j := mustNewJob(t)

		err := j.Claim(kernel.WorkerID(7))
		require.NoError(t, err)

		assert.Equal(t, job.Claimed, j.Stage())
		require.NotNil(t, j.Worker())
		assert.Equal(t, kernel.WorkerID(7), *j.Worker())
		assert.False(t, j.IsPending())
	})

	t.Run("repeated claim by the assignee is idempotent", func(t *testing.T) {
		j := mustNewJob(t)
		require.NoError(t, j.Claim(kernel.WorkerID(7)))

		err := j.Claim(kernel.WorkerID(7))
		require.NoError(t, err)
		assert.Equal(t, job.Claimed, j.Stage())
	})

	t.Run("second courier is rejected", func(t *testing.T) {
		j := mustNewJob(t)
		require.NoError(t, j.Claim(kernel.WorkerID(7)))

		err := j.Claim(kernel.WorkerID(8))
		assert.ErrorIs(t, err, job.ErrAlreadyClaimed)
		assert.Equal(t, kernel.WorkerID(7), *j.Worker())
	})

	t.Run("zero worker id", func(t *testing.T) {
		j := mustNewJob(t)
		err := j.Claim(kernel.WorkerID(0))
		assert.Error(t, err)
		assert.Nil(t, j.Worker())
	})
}

func TestJob_Advance(t *testing.T) {
	t.Run("full lifecycle by the assignee", func(t *testing.T) {
		j := mustNewJob(t)
		worker := kernel.WorkerID(7)
		require.NoError(t, j.Claim(worker))

		for _, stage := range []job.Stage{job.PickedUp, job.EnRoute, job.Arrived, job.Completed} {
			require.NoError(t, j.Advance(worker, stage))
			assert.Equal(t, stage, j.Stage())
		}

		assert.True(t, j.IsCompleted())
	})

	t.Run("unassigned job", func(t *testing.T) {
		j := mustNewJob(t)
		err := j.Advance(kernel.WorkerID(7), job.PickedUp)
		assert.ErrorIs(t, err, job.ErrNotAssignedWorker)
	})

	t.Run("wrong courier", func(t *testing.T) {
		j := mustNewJob(t)
		require.NoError(t, j.Claim(kernel.WorkerID(7)))

		err := j.Advance(kernel.WorkerID(8), job.PickedUp)
		assert.ErrorIs(t, err, job.ErrNotAssignedWorker)
		assert.Equal(t, job.Claimed, j.Stage())
	})

	t.Run("out of order target", func(t *testing.T) {
		j := mustNewJob(t)
		require.NoError(t, j.Claim(kernel.WorkerID(7)))

		err := j.Advance(kernel.WorkerID(7), job.Arrived)
		assert.ErrorIs(t, err, job.ErrInvalidStageTransition)
		assert.Equal(t, job.Claimed, j.Stage())
	})
}

func TestJob_Clone(t *testing.T) {
	phone, err := kernel.NewPhone("901234567")
	require.NoError(t, err)
	ref := int64(555)

	j, err := job.NewJob(kernel.JobID(100), "Order #100", 15000, 120000, &phone, &ref, nil)
	require.NoError(t, err)
	require.NoError(t, j.Claim(kernel.WorkerID(7)))

	clone := j.Clone()
	require.NotNil(t, clone)
	assert.True(t, j.IsEqual(clone))
	assert.Equal(t, j.Stage(), clone.Stage())
	assert.Equal(t, *j.Worker(), *clone.Worker())

	// Mutating the clone must not leak into the original.
	require.NoError(t, clone.Advance(kernel.WorkerID(7), job.PickedUp))
	assert.Equal(t, job.Claimed, j.Stage())
	assert.Equal(t, job.PickedUp, clone.Stage())
}

func TestJob_IsEqual(t *testing.T) {
	j1 := mustNewJob(t)
	j2 := mustNewJob(t)
	j3, err := job.NewJob(kernel.JobID(200), "Order #200", 15000, 0, nil, nil, nil)
	require.NoError(t, err)

	assert.True(t, j1.IsEqual(j2))
	assert.False(t, j1.IsEqual(j3))
	assert.False(t, j1.IsEqual(nil))
}
