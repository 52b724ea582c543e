package wordlist

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ deleteNotifier = &deleteNotifierMock{}

type deleteNotifierMock struct {
	WordDeletedFunc func(ctx context.Context, userID uuid.UUID, wordID uuid.UUID)

	calls struct {
		WordDeleted []struct {
			Ctx    context.Context
			UserID uuid.UUID
			WordID uuid.UUID
		}
	}
	lockWordDeleted sync.RWMutex
}

func (mock *deleteNotifierMock) WordDeleted(ctx context.Context, userID uuid.UUID, wordID uuid.UUID) {
	if mock.WordDeletedFunc == nil {
		panic("deleteNotifierMock.WordDeletedFunc: method is nil but deleteNotifier.WordDeleted was just called")
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
	mock.lockWordDeleted.Lock()
	mock.calls.WordDeleted = append(mock.calls.WordDeleted, callInfo)
	mock.lockWordDeleted.Unlock()
	mock.WordDeletedFunc(ctx, userID, wordID)
}

func (mock *deleteNotifierMock) WordDeletedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	WordID uuid.UUID
} {
	mock.lockWordDeleted.RLock()
	calls := mock.calls.WordDeleted
	mock.lockWordDeleted.RUnlock()
	return calls
}
