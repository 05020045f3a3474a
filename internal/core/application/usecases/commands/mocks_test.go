package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/loyalty"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/ports"
)

type MockJobStore struct{ mock.Mock }

func (m *MockJobStore) Add(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobStore) Update(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobStore) Get(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobStore) Remove(ctx context.Context, id kernel.JobID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockJobStore) List(ctx context.Context) ([]*job.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobStore) ListPending(ctx context.Context) ([]*job.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

type MockWorkerRegistry struct{ mock.Mock }

func (m *MockWorkerRegistry) Add(ctx context.Context, aggregate *worker.Worker) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockWorkerRegistry) Remove(ctx context.Context, id kernel.WorkerID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWorkerRegistry) Get(ctx context.Context, id kernel.WorkerID) (*worker.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

func (m *MockWorkerRegistry) List(ctx context.Context) ([]*worker.Worker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*worker.Worker), args.Error(1)
}

func (m *MockWorkerRegistry) ListEligible(ctx context.Context) ([]*worker.Worker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*worker.Worker), args.Error(1)
}

func (m *MockWorkerRegistry) MarkBusy(ctx context.Context, id kernel.WorkerID, jobID kernel.JobID) error {
	args := m.Called(ctx, id, jobID)
	return args.Error(0)
}

func (m *MockWorkerRegistry) MarkFree(ctx context.Context, id kernel.WorkerID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWorkerRegistry) SetContactHandle(ctx context.Context, id kernel.WorkerID, handle string) error {
	args := m.Called(ctx, id, handle)
	return args.Error(0)
}

func (m *MockWorkerRegistry) SetAvailability(ctx context.Context, id kernel.WorkerID, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

type MockCustomerDirectory struct{ mock.Mock }

func (m *MockCustomerDirectory) Register(ctx context.Context, chatID int64, phone kernel.Phone) error {
	args := m.Called(ctx, chatID, phone)
	return args.Error(0)
}

func (m *MockCustomerDirectory) Resolve(ctx context.Context, phone kernel.Phone) (int64, error) {
	args := m.Called(ctx, phone)
	return args.Get(0).(int64), args.Error(1)
}

type MockMessenger struct{ mock.Mock }

func (m *MockMessenger) ToChat(chatID int64, notice ports.Notice) {
	m.Called(chatID, notice)
}

func (m *MockMessenger) ToOperators(notice ports.Notice) {
	m.Called(notice)
}

type MockDeadlineScheduler struct{ mock.Mock }

func (m *MockDeadlineScheduler) Arm(jobID kernel.JobID) {
	m.Called(jobID)
}

func (m *MockDeadlineScheduler) Disarm(jobID kernel.JobID) {
	m.Called(jobID)
}

type MockDeliveryHistory struct{ mock.Mock }

func (m *MockDeliveryHistory) Append(ctx context.Context, record *history.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockLoyaltyStore struct{ mock.Mock }

func (m *MockLoyaltyStore) Add(ctx context.Context, aggregate *loyalty.Account) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLoyaltyStore) Update(ctx context.Context, aggregate *loyalty.Account) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLoyaltyStore) Get(ctx context.Context, phone kernel.Phone) (*loyalty.Account, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loyalty.Account), args.Error(1)
}

func (m *MockLoyaltyStore) CodeInUse(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

type MockLoyaltyAccruer struct{ mock.Mock }

func (m *MockLoyaltyAccruer) Accrue(ctx context.Context, phone kernel.Phone, dishSubtotal int64, notifyChat *int64) error {
	args := m.Called(ctx, phone, dishSubtotal, notifyChat)
	return args.Error(0)
}

type MockPendingOfferer struct{ mock.Mock }

func (m *MockPendingOfferer) OfferPending(ctx context.Context, workerID kernel.WorkerID) error {
	args := m.Called(ctx, workerID)
	return args.Error(0)
}
