package wordlist

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
)

var _ listRepo = &listRepoMock{}

type listRepoMock struct {
	CountWordsFunc func(ctx context.Context, listID uuid.UUID) (int, error)
	CreateListFunc func(ctx context.Context, list domain.List) (*domain.List, error)
	CreateWordFunc func(ctx context.Context, word domain.Word) (*domain.Word, error)
	DeleteListFunc func(ctx context.Context, userID uuid.UUID, listID uuid.UUID) error
	DeleteWordFunc func(ctx context.Context, userID uuid.UUID, wordID uuid.UUID) error
	GetListFunc    func(ctx context.Context, userID uuid.UUID, listID uuid.UUID) (*domain.List, error)
	GetWordFunc    func(ctx context.Context, userID uuid.UUID, wordID uuid.UUID) (*domain.Word, error)
	ListListsFunc  func(ctx context.Context, userID uuid.UUID) ([]domain.List, error)
	ListWordsFunc  func(ctx context.Context, listID uuid.UUID) ([]domain.Word, error)

	calls struct {
		CountWords []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
		CreateList []struct {
			Ctx  context.Context
			List domain.List
		}
		CreateWord []struct {
			Ctx  context.Context
			Word domain.Word
		}
		DeleteList []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ListID uuid.UUID
		}
		DeleteWord []struct {
			Ctx    context.Context
			UserID uuid.UUID
			WordID uuid.UUID
		}
		GetList []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ListID uuid.UUID
		}
		GetWord []struct {
			Ctx    context.Context
			UserID uuid.UUID
			WordID uuid.UUID
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
	lockCountWords sync.RWMutex
	lockCreateList sync.RWMutex
	lockCreateWord sync.RWMutex
	lockDeleteList sync.RWMutex
	lockDeleteWord sync.RWMutex
	lockGetList    sync.RWMutex
	lockGetWord    sync.RWMutex
	lockListLists  sync.RWMutex
	lockListWords  sync.RWMutex
}

func (mock *listRepoMock) CountWords(ctx context.Context, listID uuid.UUID) (int, error) {
	if mock.CountWordsFunc == nil {
		panic("listRepoMock.CountWordsFunc: method is nil but listRepo.CountWords was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{
		Ctx:    ctx,
		ListID: listID,
	}
	mock.lockCountWords.Lock()
	mock.calls.CountWords = append(mock.calls.CountWords, callInfo)
	mock.lockCountWords.Unlock()
	return mock.CountWordsFunc(ctx, listID)
}

func (mock *listRepoMock) CountWordsCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockCountWords.RLock()
	calls := mock.calls.CountWords
	mock.lockCountWords.RUnlock()
	return calls
}

func (mock *listRepoMock) CreateList(ctx context.Context, list domain.List) (*domain.List, error) {
	if mock.CreateListFunc == nil {
		panic("listRepoMock.CreateListFunc: method is nil but listRepo.CreateList was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		List domain.List
	}{
		Ctx:  ctx,
		List: list,
	}
	mock.lockCreateList.Lock()
	mock.calls.CreateList = append(mock.calls.CreateList, callInfo)
	mock.lockCreateList.Unlock()
	return mock.CreateListFunc(ctx, list)
}

func (mock *listRepoMock) CreateListCalls() []struct {
	Ctx  context.Context
	List domain.List
} {
	mock.lockCreateList.RLock()
	calls := mock.calls.CreateList
	mock.lockCreateList.RUnlock()
	return calls
}

func (mock *listRepoMock) CreateWord(ctx context.Context, word domain.Word) (*domain.Word, error) {
	if mock.CreateWordFunc == nil {
		panic("listRepoMock.CreateWordFunc: method is nil but listRepo.CreateWord was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word domain.Word
	}{
		Ctx:  ctx,
		Word: word,
	}
	mock.lockCreateWord.Lock()
	mock.calls.CreateWord = append(mock.calls.CreateWord, callInfo)
	mock.lockCreateWord.Unlock()
	return mock.CreateWordFunc(ctx, word)
}

func (mock *listRepoMock) CreateWordCalls() []struct {
	Ctx  context.Context
	Word domain.Word
} {
	mock.lockCreateWord.RLock()
	calls := mock.calls.CreateWord
	mock.lockCreateWord.RUnlock()
	return calls
}

func (mock *listRepoMock) DeleteList(ctx context.Context, userID uuid.UUID, listID uuid.UUID) error {
	if mock.DeleteListFunc == nil {
		panic("listRepoMock.DeleteListFunc: method is nil but listRepo.DeleteList was just called")
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
	mock.lockDeleteList.Lock()
	mock.calls.DeleteList = append(mock.calls.DeleteList, callInfo)
	mock.lockDeleteList.Unlock()
	return mock.DeleteListFunc(ctx, userID, listID)
}

func (mock *listRepoMock) DeleteListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ListID uuid.UUID
} {
	mock.lockDeleteList.RLock()
	calls := mock.calls.DeleteList
	mock.lockDeleteList.RUnlock()
	return calls
}

func (mock *listRepoMock) DeleteWord(ctx context.Context, userID uuid.UUID, wordID uuid.UUID) error {
	if mock.DeleteWordFunc == nil {
		panic("listRepoMock.DeleteWordFunc: method is nil but listRepo.DeleteWord was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		WordID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		WordID: wordID,
	}
	mock.lockDeleteWord.Lock()
	mock.calls.DeleteWord = append(mock.calls.DeleteWord, callInfo)
	mock.lockDeleteWord.Unlock()
	return mock.DeleteWordFunc(ctx, userID, wordID)
}

func (mock *listRepoMock) DeleteWordCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	WordID uuid.UUID
} {
	mock.lockDeleteWord.RLock()
	calls := mock.calls.DeleteWord
	mock.lockDeleteWord.RUnlock()
	return calls
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

func (mock *listRepoMock) GetWord(ctx context.Context, userID uuid.UUID, wordID uuid.UUID) (*domain.Word, error) {
	if mock.GetWordFunc == nil {
		panic("listRepoMock.GetWordFunc: method is nil but listRepo.GetWord was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		WordID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		WordID: wordID,
	}
	mock.lockGetWord.Lock()
	mock.calls.GetWord = append(mock.calls.GetWord, callInfo)
	mock.lockGetWord.Unlock()
	return mock.GetWordFunc(ctx, userID, wordID)
}

func (mock *listRepoMock) GetWordCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	WordID uuid.UUID
} {
	mock.lockGetWord.RLock()
	calls := mock.calls.GetWord
	mock.lockGetWord.RUnlock()
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
