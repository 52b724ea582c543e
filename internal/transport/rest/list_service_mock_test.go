package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
	"github.com/heartmarshall/myenglish-practice/internal/service/wordlist"
)

var _ listService = &listServiceMock{}

type listServiceMock struct {
	AddWordFunc    func(ctx context.Context, input wordlist.AddWordInput) (*domain.Word, error)
	CreateListFunc func(ctx context.Context, input wordlist.CreateListInput) (*domain.List, error)
	DeleteListFunc func(ctx context.Context, listID uuid.UUID) error
	DeleteWordFunc func(ctx context.Context, wordID uuid.UUID) error
	ListListsFunc  func(ctx context.Context) ([]domain.List, error)
	ListWordsFunc  func(ctx context.Context, listID uuid.UUID) ([]domain.Word, error)

	calls struct {
		AddWord []struct {
			Ctx   context.Context
			Input wordlist.AddWordInput
		}
		CreateList []struct {
			Ctx   context.Context
			Input wordlist.CreateListInput
		}
		DeleteList []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
		DeleteWord []struct {
			Ctx    context.Context
			WordID uuid.UUID
		}
		ListLists []struct {
			Ctx context.Context
		}
		ListWords []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
	}
	lockAddWord    sync.RWMutex
	lockCreateList sync.RWMutex
	lockDeleteList sync.RWMutex
	lockDeleteWord sync.RWMutex
	lockListLists  sync.RWMutex
	lockListWords  sync.RWMutex
}

func (mock *listServiceMock) AddWord(ctx context.Context, input wordlist.AddWordInput) (*domain.Word, error) {
	if mock.AddWordFunc == nil {
		panic("listServiceMock.AddWordFunc: method is nil but listService.AddWord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input wordlist.AddWordInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAddWord.Lock()
	mock.calls.AddWord = append(mock.calls.AddWord, callInfo)
	mock.lockAddWord.Unlock()
	return mock.AddWordFunc(ctx, input)
}

func (mock *listServiceMock) AddWordCalls() []struct {
	Ctx   context.Context
	Input wordlist.AddWordInput
} {
	mock.lockAddWord.RLock()
	calls := mock.calls.AddWord
	mock.lockAddWord.RUnlock()
	return calls
}

func (mock *listServiceMock) CreateList(ctx context.Context, input wordlist.CreateListInput) (*domain.List, error) {
	if mock.CreateListFunc == nil {
		panic("listServiceMock.CreateListFunc: method is nil but listService.CreateList was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input wordlist.CreateListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateList.Lock()
	mock.calls.CreateList = append(mock.calls.CreateList, callInfo)
	mock.lockCreateList.Unlock()
	return mock.CreateListFunc(ctx, input)
}

func (mock *listServiceMock) CreateListCalls() []struct {
	Ctx   context.Context
	Input wordlist.CreateListInput
} {
	mock.lockCreateList.RLock()
	calls := mock.calls.CreateList
	mock.lockCreateList.RUnlock()
	return calls
}

func (mock *listServiceMock) DeleteList(ctx context.Context, listID uuid.UUID) error {
	if mock.DeleteListFunc == nil {
		panic("listServiceMock.DeleteListFunc: method is nil but listService.DeleteList was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{
		Ctx:    ctx,
		ListID: listID,
	}
	mock.lockDeleteList.Lock()
	mock.calls.DeleteList = append(mock.calls.DeleteList, callInfo)
	mock.lockDeleteList.Unlock()
	return mock.DeleteListFunc(ctx, listID)
}

func (mock *listServiceMock) DeleteListCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockDeleteList.RLock()
	calls := mock.calls.DeleteList
	mock.lockDeleteList.RUnlock()
	return calls
}

func (mock *listServiceMock) DeleteWord(ctx context.Context, wordID uuid.UUID) error {
	if mock.DeleteWordFunc == nil {
		panic("listServiceMock.DeleteWordFunc: method is nil but listService.DeleteWord was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WordID uuid.UUID
	}{
		Ctx:    ctx,
		WordID: wordID,
	}
	mock.lockDeleteWord.Lock()
	mock.calls.DeleteWord = append(mock.calls.DeleteWord, callInfo)
	mock.lockDeleteWord.Unlock()
	return mock.DeleteWordFunc(ctx, wordID)
}

func (mock *listServiceMock) DeleteWordCalls() []struct {
	Ctx    context.Context
	WordID uuid.UUID
} {
	mock.lockDeleteWord.RLock()
	calls := mock.calls.DeleteWord
	mock.lockDeleteWord.RUnlock()
	return calls
}

func (mock *listServiceMock) ListLists(ctx context.Context) ([]domain.List, error) {
	if mock.ListListsFunc == nil {
		panic("listServiceMock.ListListsFunc: method is nil but listService.ListLists was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListLists.Lock()
	mock.calls.ListLists = append(mock.calls.ListLists, callInfo)
	mock.lockListLists.Unlock()
	return mock.ListListsFunc(ctx)
}

func (mock *listServiceMock) ListListsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListLists.RLock()
	calls := mock.calls.ListLists
	mock.lockListLists.RUnlock()
	return calls
}

func (mock *listServiceMock) ListWords(ctx context.Context, listID uuid.UUID) ([]domain.Word, error) {
	if mock.ListWordsFunc == nil {
		panic("listServiceMock.ListWordsFunc: method is nil but listService.ListWords was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{
		Ctx:    ctx,
		ListID: listID,
	}
	mock.lockListWords.Lock()
	mock.calls.ListWords = append(mock.calls.ListWords, callInfo)
	mock.lockListWords.Unlock()
	return mock.ListWordsFunc(ctx, listID)
}

func (mock *listServiceMock) ListWordsCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockListWords.RLock()
	calls := mock.calls.ListWords
	mock.lockListWords.RUnlock()
	return calls
}
