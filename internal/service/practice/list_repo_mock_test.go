package practice

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
)

var _ listRepo = &listRepoMock{}

type listRepoMock struct {
	GetListFunc   func(ctx context.Context, userID uuid.UUID, listID uuid.UUID) (*domain.List, error)
	ListListsFunc func(ctx context.Context, userID uuid.UUID) ([]domain.List, error)
	ListWordsFunc func(ctx context.Context, listID uuid.UUID) ([]domain.Word, error)

	calls struct {
		GetList []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ListID uuid.UUID
		}
		ListLists []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListWords []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
	}
	lockGetList   sync.RWMutex
	lockListLists sync.RWMutex
	lockListWords sync.RWMutex
}

func (mock *listRepoMock) GetList(ctx context.Context, userID uuid.UUID, listID uuid.UUID) (*domain.List, error) {
	if mock.GetListFunc == nil {
		panic("listRepoMock.GetListFunc: method is nil but listRepo.GetList was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ListID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		ListID: listID,
	}
	mock.lockGetList.Lock()
	mock.calls.GetList = append(mock.calls.GetList, callInfo)
	mock.lockGetList.Unlock()
	return mock.GetListFunc(ctx, userID, listID)
}

func (mock *listRepoMock) GetListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ListID uuid.UUID
} {
	mock.lockGetList.RLock()
	calls := mock.calls.GetList
	mock.lockGetList.RUnlock()
	return calls
}

func (mock *listRepoMock) ListLists(ctx context.Context, userID uuid.UUID) ([]domain.List, error) {
	if mock.ListListsFunc == nil {
		panic("listRepoMock.ListListsFunc: method is nil but listRepo.ListLists was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListLists.Lock()
	mock.calls.ListLists = append(mock.calls.ListLists, callInfo)
	mock.lockListLists.Unlock()
	return mock.ListListsFunc(ctx, userID)
}

func (mock *listRepoMock) ListListsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListLists.RLock()
	calls := mock.calls.ListLists
	mock.lockListLists.RUnlock()
	return calls
}

func (mock *listRepoMock) ListWords(ctx context.Context, listID uuid.UUID) ([]domain.Word, error) {
	if mock.ListWordsFunc == nil {
		panic("listRepoMock.ListWordsFunc: method is nil but listRepo.ListWords was just called")
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

func (mock *listRepoMock) ListWordsCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockListWords.RLock()
	calls := mock.calls.ListWords
	mock.lockListWords.RUnlock()
	return calls
}
