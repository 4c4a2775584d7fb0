package feedback

import (
	"context"
	"sync"

	"github.com/Ren-zee/exploremore/internal/domain"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	FeedbackSubmittedFunc func(ctx context.Context, fb domain.Feedback) error

	calls struct {
		FeedbackSubmitted []struct {
			Ctx context.Context
			Fb  domain.Feedback
		}
	}
	lockFeedbackSubmitted sync.RWMutex
}

func (mock *notifierMock) FeedbackSubmitted(ctx context.Context, fb domain.Feedback) error {
	if mock.FeedbackSubmittedFunc == nil {
		panic("notifierMock.FeedbackSubmittedFunc: method is nil but notifier.FeedbackSubmitted was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fb  domain.Feedback
	}{Ctx: ctx, Fb: fb}
	mock.lockFeedbackSubmitted.Lock()
	mock.calls.FeedbackSubmitted = append(mock.calls.FeedbackSubmitted, callInfo)
	mock.lockFeedbackSubmitted.Unlock()
	return mock.FeedbackSubmittedFunc(ctx, fb)
}

func (mock *notifierMock) FeedbackSubmittedCalls() []struct {
	Ctx context.Context
	Fb  domain.Feedback
} {
	mock.lockFeedbackSubmitted.RLock()
	calls := mock.calls.FeedbackSubmitted
	mock.lockFeedbackSubmitted.RUnlock()
	return calls
}
