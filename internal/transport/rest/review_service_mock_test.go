package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Ren-zee/exploremore/internal/domain"
	"github.com/Ren-zee/exploremore/internal/service/review"
)

var _ reviewService = &reviewServiceMock{}

type reviewServiceMock struct {
	ListFunc            func(ctx context.Context, input review.ListInput) ([]*domain.Feedback, int, error)
	GetFunc             func(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	StatsFunc           func(ctx context.Context) (domain.FeedbackStats, error)
	SetVerifiedFunc     func(ctx context.Context, id uuid.UUID, verified bool) (*domain.Feedback, error)
	BulkSetVerifiedFunc func(ctx context.Context, input review.BulkInput) ([]*domain.Feedback, error)

	calls struct {
		List []struct {
			Ctx   context.Context
			Input review.ListInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Stats []struct {
			Ctx context.Context
		}
		SetVerified []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Verified bool
		}
		BulkSetVerified []struct {
			Ctx   context.Context
			Input review.BulkInput
		}
	}
	lockList            sync.RWMutex
	lockGet             sync.RWMutex
	lockStats           sync.RWMutex
	lockSetVerified     sync.RWMutex
	lockBulkSetVerified sync.RWMutex
}

func (mock *reviewServiceMock) List(ctx context.Context, input review.ListInput) ([]*domain.Feedback, int, error) {
	if mock.ListFunc == nil {
		panic("reviewServiceMock.ListFunc: method is nil but reviewService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *reviewServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input review.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *reviewServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	if mock.GetFunc == nil {
		panic("reviewServiceMock.GetFunc: method is nil but reviewService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *reviewServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *reviewServiceMock) Stats(ctx context.Context) (domain.FeedbackStats, error) {
	if mock.StatsFunc == nil {
		panic("reviewServiceMock.StatsFunc: method is nil but reviewService.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *reviewServiceMock) StatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *reviewServiceMock) SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*domain.Feedback, error) {
	if mock.SetVerifiedFunc == nil {
		panic("reviewServiceMock.SetVerifiedFunc: method is nil but reviewService.SetVerified was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Verified bool
	}{Ctx: ctx, ID: id, Verified: verified}
	mock.lockSetVerified.Lock()
	mock.calls.SetVerified = append(mock.calls.SetVerified, callInfo)
	mock.lockSetVerified.Unlock()
	return mock.SetVerifiedFunc(ctx, id, verified)
}

func (mock *reviewServiceMock) SetVerifiedCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Verified bool
} {
	mock.lockSetVerified.RLock()
	calls := mock.calls.SetVerified
	mock.lockSetVerified.RUnlock()
	return calls
}

func (mock *reviewServiceMock) BulkSetVerified(ctx context.Context, input review.BulkInput) ([]*domain.Feedback, error) {
	if mock.BulkSetVerifiedFunc == nil {
		panic("reviewServiceMock.BulkSetVerifiedFunc: method is nil but reviewService.BulkSetVerified was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.BulkInput
	}{Ctx: ctx, Input: input}
	mock.lockBulkSetVerified.Lock()
	mock.calls.BulkSetVerified = append(mock.calls.BulkSetVerified, callInfo)
	mock.lockBulkSetVerified.Unlock()
	return mock.BulkSetVerifiedFunc(ctx, input)
}

func (mock *reviewServiceMock) BulkSetVerifiedCalls() []struct {
	Ctx   context.Context
	Input review.BulkInput
} {
	mock.lockBulkSetVerified.RLock()
	calls := mock.calls.BulkSetVerified
	mock.lockBulkSetVerified.RUnlock()
	return calls
}
