package feedback

import (
	"context"
	"sync"

	"github.com/Ren-zee/exploremore/internal/domain"
)

var _ feedbackRepo = &feedbackRepoMock{}

type feedbackRepoMock struct {
	InsertFunc func(ctx context.Context, nf domain.NewFeedback) (*domain.Feedback, error)
	ListFunc   func(ctx context.Context, f domain.FeedbackFilter) ([]*domain.Feedback, int, error)

	calls struct {
		Insert []struct {
			Ctx context.Context
			Nf  domain.NewFeedback
		}
		List []struct {
			Ctx context.Context
			F   domain.FeedbackFilter
		}
	}
	lockInsert sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *feedbackRepoMock) Insert(ctx context.Context, nf domain.NewFeedback) (*domain.Feedback, error) {
	if mock.InsertFunc == nil {
		panic("feedbackRepoMock.InsertFunc: method is nil but feedbackRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Nf  domain.NewFeedback
	}{Ctx: ctx, Nf: nf}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, nf)
}

func (mock *feedbackRepoMock) InsertCalls() []struct {
	Ctx context.Context
	Nf  domain.NewFeedback
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
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
