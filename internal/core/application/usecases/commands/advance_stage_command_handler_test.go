package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/keyed"
)

type advanceFixture struct {
	jobs      *MockJobStore
	workers   *MockWorkerRegistry
	records   *MockDeliveryHistory
	accruer   *MockLoyaltyAccruer
	offerer   *MockPendingOfferer
	messenger *MockMessenger
	handler   commands.AdvanceStageCommandHandler
}

func newAdvanceFixture() *advanceFixture {
	f := &advanceFixture{
		jobs:      new(MockJobStore),
		workers:   new(MockWorkerRegistry),
		records:   new(MockDeliveryHistory),
		accruer:   new(MockLoyaltyAccruer),
		offerer:   new(MockPendingOfferer),
		messenger: new(MockMessenger),
	}
	f.handler = commands.NewAdvanceStageCommandHandler(
		keyed.NewMutex[kernel.JobID](), f.jobs, f.workers, f.records,
		f.accruer, f.offerer, f.messenger, newTestCollector())
	return f
}

// claimedJob builds a job assigned to courier 7, advanced to the given stage.
func claimedJob(t *testing.T, stage job.Stage) *job.Job {
	t.Helper()
	phone, err := kernel.NewPhone("+998901112233")
	require.NoError(t, err)
	location, err := kernel.NewGeoPoint(41.311, 69.24)
	require.NoError(t, err)
	ref := int64(555)

	j, err := job.NewJob(kernel.JobID(100), "Order", 15000, 120000, &phone, &ref, &location)
	require.NoError(t, err)
	require.NoError(t, j.Claim(kernel.WorkerID(7)))

	for _, step := range []job.Stage{job.PickedUp, job.EnRoute, job.Arrived} {
		if step > stage {
			break
		}
		require.NoError(t, j.Advance(kernel.WorkerID(7), step))
	}
	return j
}

func TestAdvanceStageCommandHandler_Handle_Progress(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceStageCommand(kernel.JobID(100), kernel.WorkerID(7), job.PickedUp)
	require.NoError(t, err)

	f := newAdvanceFixture()
	aggregate := claimedJob(t, job.Claimed)
	f.jobs.On("Get", ctx, kernel.JobID(100)).Return(aggregate, nil).Once()
	f.jobs.On("Update", ctx, aggregate).Return(nil).Once()
	f.messenger.On("ToChat", int64(555), mock.MatchedBy(func(n ports.Notice) bool {
		return n.Text == "Your order #100 has been picked up."
	})).Once()

	require.NoError(t, f.handler.Handle(ctx, cmd))

	assert.Equal(t, job.PickedUp, aggregate.Stage())
	f.jobs.AssertExpectations(t)
	f.messenger.AssertExpectations(t)
	f.records.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestAdvanceStageCommandHandler_Handle_EnRouteForwardsLocation(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceStageCommand(kernel.JobID(100), kernel.WorkerID(7), job.EnRoute)
	require.NoError(t, err)

	f := newAdvanceFixture()
	aggregate := claimedJob(t, job.PickedUp)
	f.jobs.On("Get", ctx, kernel.JobID(100)).Return(aggregate, nil).Once()
	f.jobs.On("Update", ctx, aggregate).Return(nil).Once()
	f.messenger.On("ToChat", int64(7), mock.MatchedBy(func(n ports.Notice) bool {
		return n.Location != nil
	})).Once()
	f.messenger.On("ToChat", int64(555), mock.MatchedBy(func(n ports.Notice) bool {
		return n.Text == "Your order #100 is on its way."
	})).Once()

	require.NoError(t, f.handler.Handle(ctx, cmd))

	f.messenger.AssertExpectations(t)
}

func TestAdvanceStageCommandHandler_Handle_WrongWorker(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceStageCommand(kernel.JobID(100), kernel.WorkerID(8), job.PickedUp)
	require.NoError(t, err)

	f := newAdvanceFixture()
	aggregate := claimedJob(t, job.Claimed)
	f.jobs.On("Get", ctx, kernel.JobID(100)).Return(aggregate, nil).Once()

	err = f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, job.ErrNotAssignedWorker)
	assert.Equal(t, job.Claimed, aggregate.Stage())
	f.jobs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdvanceStageCommandHandler_Handle_SkippedStage(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceStageCommand(kernel.JobID(100), kernel.WorkerID(7), job.Arrived)
	require.NoError(t, err)

	f := newAdvanceFixture()
	aggregate := claimedJob(t, job.Claimed)
	f.jobs.On("Get", ctx, kernel.JobID(100)).Return(aggregate, nil).Once()

	err = f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, job.ErrInvalidStageTransition)
	assert.Equal(t, job.Claimed, aggregate.Stage())
}

func TestAdvanceStageCommandHandler_Handle_Completion(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceStageCommand(kernel.JobID(100), kernel.WorkerID(7), job.Completed)
	require.NoError(t, err)

	f := newAdvanceFixture()
	aggregate := claimedJob(t, job.Arrived)
	courier := eligibleWorker(t, 7)

	mock.InOrder(
		f.jobs.On("Get", ctx, kernel.JobID(100)).Return(aggregate, nil).Once(),
		f.records.On("Append", ctx, mock.AnythingOfType("*history.Record")).Return(nil).Once(),
		f.jobs.On("Remove", ctx, kernel.JobID(100)).Return(nil).Once(),
		f.workers.On("Get", ctx, kernel.WorkerID(7)).Return(courier, nil).Once(),
		f.workers.On("MarkFree", ctx, kernel.WorkerID(7)).Return(nil).Once(),
		f.offerer.On("OfferPending", ctx, kernel.WorkerID(7)).Return(nil).Once(),
	)
	f.accruer.On("Accrue", ctx, mock.AnythingOfType("kernel.Phone"), int64(120000), mock.Anything).
		Return(nil).Once()
	f.messenger.On("ToChat", int64(555), mock.AnythingOfType("ports.Notice")).Once()
	f.messenger.On("ToOperators", mock.AnythingOfType("ports.Notice")).Once()

	require.NoError(t, f.handler.Handle(ctx, cmd))

	f.jobs.AssertExpectations(t)
	f.workers.AssertExpectations(t)
	f.records.AssertExpectations(t)
	f.accruer.AssertExpectations(t)
	f.offerer.AssertExpectations(t)
	f.messenger.AssertExpectations(t)
}

func TestAdvanceStageCommandHandler_Handle_HistoryFailureAborts(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceStageCommand(kernel.JobID(100), kernel.WorkerID(7), job.Completed)
	require.NoError(t, err)

	f := newAdvanceFixture()
	aggregate := claimedJob(t, job.Arrived)
	f.jobs.On("Get", ctx, kernel.JobID(100)).Return(aggregate, nil).Once()
	f.records.On("Append", ctx, mock.AnythingOfType("*history.Record")).
		Return(assert.AnError).Once()

	err = f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, assert.AnError)
	f.jobs.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	f.workers.AssertNotCalled(t, "MarkFree", mock.Anything, mock.Anything)
	f.accruer.AssertNotCalled(t, "Accrue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdvanceStageCommandHandler_Handle_NoAccrualWithoutPhone(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceStageCommand(kernel.JobID(100), kernel.WorkerID(7), job.Completed)
	require.NoError(t, err)

	f := newAdvanceFixture()
	aggregate := broadcastingJob(t, 100)
	require.NoError(t, aggregate.Claim(kernel.WorkerID(7)))
	for _, step := range []job.Stage{job.PickedUp, job.EnRoute, job.Arrived} {
		require.NoError(t, aggregate.Advance(kernel.WorkerID(7), step))
	}

	f.jobs.On("Get", ctx, kernel.JobID(100)).Return(aggregate, nil).Once()
	f.records.On("Append", ctx, mock.AnythingOfType("*history.Record")).Return(nil).Once()
	f.jobs.On("Remove", ctx, kernel.JobID(100)).Return(nil).Once()
	f.workers.On("Get", ctx, kernel.WorkerID(7)).Return(eligibleWorker(t, 7), nil).Once()
	f.workers.On("MarkFree", ctx, kernel.WorkerID(7)).Return(nil).Once()
	f.offerer.On("OfferPending", ctx, kernel.WorkerID(7)).Return(nil).Once()
	f.messenger.On("ToChat", int64(555), mock.AnythingOfType("ports.Notice")).Once()
	f.messenger.On("ToOperators", mock.AnythingOfType("ports.Notice")).Once()

	require.NoError(t, f.handler.Handle(ctx, cmd))

	f.accruer.AssertNotCalled(t, "Accrue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
