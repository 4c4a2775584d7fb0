package wordlist

import (
	"context"
	"sync"

	"github.com/Ren-zee/exploremore/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	ListFunc   func(ctx context.Context) ([]domain.CensorWord, error)
	AddFunc    func(ctx context.Context, word string) (*domain.CensorWord, error)
	RemoveFunc func(ctx context.Context, word string) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Add []struct {
			Ctx  context.Context
			Word string
		}
		Remove []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockList   sync.RWMutex
	lockAdd    sync.RWMutex
	lockRemove sync.RWMutex
}

func (mock *wordRepoMock) List(ctx context.Context) ([]domain.CensorWord, error) {
	if mock.ListFunc == nil {
		panic("wordRepoMock.ListFunc: method is nil but wordRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *wordRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *wordRepoMock) Add(ctx context.Context, word string) (*domain.CensorWord, error) {
	if mock.AddFunc == nil {
		panic("wordRepoMock.AddFunc: method is nil but wordRepo.Add was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, word)
}

func (mock *wordRepoMock) AddCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *wordRepoMock) Remove(ctx context.Context, word string) error {
	if mock.RemoveFunc == nil {
		panic("wordRepoMock.RemoveFunc: method is nil but wordRepo.Remove was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, word)
}

func (mock *wordRepoMock) RemoveCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}
