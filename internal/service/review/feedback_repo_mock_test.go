package review

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Ren-zee/exploremore/internal/domain"
)

var _ feedbackRepo = &feedbackRepoMock{}

type feedbackRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	SetVerifiedFunc func(ctx context.Context, id uuid.UUID, verified bool) (*domain.Feedback, error)
	ListFunc        func(ctx context.Context, f domain.FeedbackFilter) ([]*domain.Feedback, int, error)
	StatsFunc       func(ctx context.Context) (domain.FeedbackStats, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		SetVerified []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Verified bool
		}
		List []struct {
			Ctx context.Context
			F   domain.FeedbackFilter
		}
		Stats []struct {
			Ctx context.Context
		}
	}
	lockGetByID     sync.RWMutex
	lockSetVerified sync.RWMutex
	lockList        sync.RWMutex
	lockStats       sync.RWMutex
}

func (mock *feedbackRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	if mock.GetByIDFunc == nil {
		panic("feedbackRepoMock.GetByIDFunc: method is nil but feedbackRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *feedbackRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*domain.Feedback, error) {
	if mock.SetVerifiedFunc == nil {
		panic("feedbackRepoMock.SetVerifiedFunc: method is nil but feedbackRepo.SetVerified was just called")
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

func (mock *feedbackRepoMock) SetVerifiedCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Verified bool
} {
	mock.lockSetVerified.RLock()
	calls := mock.calls.SetVerified
	mock.lockSetVerified.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) List(ctx context.Context, f domain.FeedbackFilter) ([]*domain.Feedback, int, error) {
	if mock.ListFunc == nil {
		panic("feedbackRepoMock.ListFunc: method is nil but feedbackRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.FeedbackFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *feedbackRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.FeedbackFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) Stats(ctx context.Context) (domain.FeedbackStats, error) {
	if mock.StatsFunc == nil {
		panic("feedbackRepoMock.StatsFunc: method is nil but feedbackRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *feedbackRepoMock) StatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
