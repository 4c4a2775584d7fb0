package rest

import (
	"context"
	"sync"

	"github.com/Ren-zee/exploremore/internal/domain"
	"github.com/Ren-zee/exploremore/internal/service/feedback"
)

var _ feedbackService = &feedbackServiceMock{}

type feedbackServiceMock struct {
	SubmitFunc     func(ctx context.Context, input feedback.SubmitInput) (*domain.Feedback, error)
	ListPublicFunc func(ctx context.Context, input feedback.ListPublicInput) ([]*domain.Feedback, int, error)

	calls struct {
		Submit []struct {
			Ctx   context.Context
			Input feedback.SubmitInput
		}
		ListPublic []struct {
			Ctx   context.Context
			Input feedback.ListPublicInput
		}
	}
	lockSubmit     sync.RWMutex
	lockListPublic sync.RWMutex
}

func (mock *feedbackServiceMock) Submit(ctx context.Context, input feedback.SubmitInput) (*domain.Feedback, error) {
	if mock.SubmitFunc == nil {
		panic("feedbackServiceMock.SubmitFunc: method is nil but feedbackService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input feedback.SubmitInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *feedbackServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input feedback.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *feedbackServiceMock) ListPublic(ctx context.Context, input feedback.ListPublicInput) ([]*domain.Feedback, int, error) {
	if mock.ListPublicFunc == nil {
		panic("feedbackServiceMock.ListPublicFunc: method is nil but feedbackService.ListPublic was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input feedback.ListPublicInput
	}{Ctx: ctx, Input: input}
	mock.lockListPublic.Lock()
	mock.calls.ListPublic = append(mock.calls.ListPublic, callInfo)
	mock.lockListPublic.Unlock()
	return mock.ListPublicFunc(ctx, input)
}

func (mock *feedbackServiceMock) ListPublicCalls() []struct {
	Ctx   context.Context
	Input feedback.ListPublicInput
} {
	mock.lockListPublic.RLock()
	calls := mock.calls.ListPublic
	mock.lockListPublic.RUnlock()
	return calls
}
