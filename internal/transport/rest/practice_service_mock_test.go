package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-practice/internal/service/practice"
	"github.com/heartmarshall/myenglish-practice/internal/service/study"
)

var _ practiceService = &practiceServiceMock{}

type practiceServiceMock struct {
	AdvanceFunc         func(ctx context.Context, sessionID uuid.UUID, skip bool) (practice.SessionView, error)
	AnswerFunc          func(ctx context.Context, input practice.AnswerInput) (practice.AnswerResult, practice.SessionView, error)
	ChangeDirectionFunc func(ctx context.Context, input practice.ChangeDirectionInput) (practice.SessionView, error)
	CloseSessionFunc    func(ctx context.Context, sessionID uuid.UUID) error
	GetSessionFunc      func(ctx context.Context, sessionID uuid.UUID) (practice.SessionView, error)
	PreviewFunc         func(ctx context.Context, sessionID uuid.UUID) ([]study.Estimate, error)
	RemoveWordFunc      func(ctx context.Context, sessionID uuid.UUID, wordID uuid.UUID) (practice.SessionView, error)
	RestartFunc         func(ctx context.Context, sessionID uuid.UUID) (practice.SessionView, error)
	StartSessionFunc    func(ctx context.Context, input practice.StartSessionInput) (practice.SessionView, error)

	calls struct {
		Advance []struct {
			Ctx       context.Context
			SessionID uuid.UUID
			Skip      bool
		}
		Answer []struct {
			Ctx   context.Context
			Input practice.AnswerInput
		}
		ChangeDirection []struct {
			Ctx   context.Context
			Input practice.ChangeDirectionInput
		}
		CloseSession []struct {
			Ctx       context.Context
			SessionID uuid.UUID
		}
		GetSession []struct {
			Ctx       context.Context
			SessionID uuid.UUID
		}
		Preview []struct {
			Ctx       context.Context
			SessionID uuid.UUID
		}
		RemoveWord []struct {
			Ctx       context.Context
			SessionID uuid.UUID
			WordID    uuid.UUID
		}
		Restart []struct {
			Ctx       context.Context
			SessionID uuid.UUID
		}
		StartSession []struct {
			Ctx   context.Context
			Input practice.StartSessionInput
		}
	}
	lockAdvance         sync.RWMutex
	lockAnswer          sync.RWMutex
	lockChangeDirection sync.RWMutex
	lockCloseSession    sync.RWMutex
	lockGetSession      sync.RWMutex
	lockPreview         sync.RWMutex
	lockRemoveWord      sync.RWMutex
	lockRestart         sync.RWMutex
	lockStartSession    sync.RWMutex
}

func (mock *practiceServiceMock) Advance(ctx context.Context, sessionID uuid.UUID, skip bool) (practice.SessionView, error) {
	if mock.AdvanceFunc == nil {
		panic("practiceServiceMock.AdvanceFunc: method is nil but practiceService.Advance was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
		Skip      bool
	}{
		Ctx:       ctx,
		SessionID: sessionID,
		Skip:      skip,
	}
	mock.lockAdvance.Lock()
	mock.calls.Advance = append(mock.calls.Advance, callInfo)
	mock.lockAdvance.Unlock()
	return mock.AdvanceFunc(ctx, sessionID, skip)
}

func (mock *practiceServiceMock) AdvanceCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
	Skip      bool
} {
	mock.lockAdvance.RLock()
	calls := mock.calls.Advance
	mock.lockAdvance.RUnlock()
	return calls
}

func (mock *practiceServiceMock) Answer(ctx context.Context, input practice.AnswerInput) (practice.AnswerResult, practice.SessionView, error) {
	if mock.AnswerFunc == nil {
		panic("practiceServiceMock.AnswerFunc: method is nil but practiceService.Answer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input practice.AnswerInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAnswer.Lock()
	mock.calls.Answer = append(mock.calls.Answer, callInfo)
	mock.lockAnswer.Unlock()
	return mock.AnswerFunc(ctx, input)
}

func (mock *practiceServiceMock) AnswerCalls() []struct {
	Ctx   context.Context
	Input practice.AnswerInput
} {
	mock.lockAnswer.RLock()
	calls := mock.calls.Answer
	mock.lockAnswer.RUnlock()
	return calls
}

func (mock *practiceServiceMock) ChangeDirection(ctx context.Context, input practice.ChangeDirectionInput) (practice.SessionView, error) {
	if mock.ChangeDirectionFunc == nil {
		panic("practiceServiceMock.ChangeDirectionFunc: method is nil but practiceService.ChangeDirection was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input practice.ChangeDirectionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockChangeDirection.Lock()
	mock.calls.ChangeDirection = append(mock.calls.ChangeDirection, callInfo)
	mock.lockChangeDirection.Unlock()
	return mock.ChangeDirectionFunc(ctx, input)
}

func (mock *practiceServiceMock) ChangeDirectionCalls() []struct {
	Ctx   context.Context
	Input practice.ChangeDirectionInput
} {
	mock.lockChangeDirection.RLock()
	calls := mock.calls.ChangeDirection
	mock.lockChangeDirection.RUnlock()
	return calls
}

func (mock *practiceServiceMock) CloseSession(ctx context.Context, sessionID uuid.UUID) error {
	if mock.CloseSessionFunc == nil {
		panic("practiceServiceMock.CloseSessionFunc: method is nil but practiceService.CloseSession was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
	}{
		Ctx:       ctx,
		SessionID: sessionID,
	}
	mock.lockCloseSession.Lock()
	mock.calls.CloseSession = append(mock.calls.CloseSession, callInfo)
	mock.lockCloseSession.Unlock()
	return mock.CloseSessionFunc(ctx, sessionID)
}

func (mock *practiceServiceMock) CloseSessionCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
} {
	mock.lockCloseSession.RLock()
	calls := mock.calls.CloseSession
	mock.lockCloseSession.RUnlock()
	return calls
}

func (mock *practiceServiceMock) GetSession(ctx context.Context, sessionID uuid.UUID) (practice.SessionView, error) {
	if mock.GetSessionFunc == nil {
		panic("practiceServiceMock.GetSessionFunc: method is nil but practiceService.GetSession was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
	}{
		Ctx:       ctx,
		SessionID: sessionID,
	}
	mock.lockGetSession.Lock()
	mock.calls.GetSession = append(mock.calls.GetSession, callInfo)
	mock.lockGetSession.Unlock()
	return mock.GetSessionFunc(ctx, sessionID)
}

func (mock *practiceServiceMock) GetSessionCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
} {
	mock.lockGetSession.RLock()
	calls := mock.calls.GetSession
	mock.lockGetSession.RUnlock()
	return calls
}

func (mock *practiceServiceMock) Preview(ctx context.Context, sessionID uuid.UUID) ([]study.Estimate, error) {
	if mock.PreviewFunc == nil {
		panic("practiceServiceMock.PreviewFunc: method is nil but practiceService.Preview was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
	}{
		Ctx:       ctx,
		SessionID: sessionID,
	}
	mock.lockPreview.Lock()
	mock.calls.Preview = append(mock.calls.Preview, callInfo)
	mock.lockPreview.Unlock()
	return mock.PreviewFunc(ctx, sessionID)
}

func (mock *practiceServiceMock) PreviewCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
} {
	mock.lockPreview.RLock()
	calls := mock.calls.Preview
	mock.lockPreview.RUnlock()
	return calls
}

func (mock *practiceServiceMock) RemoveWord(ctx context.Context, sessionID uuid.UUID, wordID uuid.UUID) (practice.SessionView, error) {
	if mock.RemoveWordFunc == nil {
		panic("practiceServiceMock.RemoveWordFunc: method is nil but practiceService.RemoveWord was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
		WordID    uuid.UUID
	}{
		Ctx:       ctx,
		SessionID: sessionID,
		WordID:    wordID,
	}
	mock.lockRemoveWord.Lock()
	mock.calls.RemoveWord = append(mock.calls.RemoveWord, callInfo)
	mock.lockRemoveWord.Unlock()
	return mock.RemoveWordFunc(ctx, sessionID, wordID)
}

func (mock *practiceServiceMock) RemoveWordCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
	WordID    uuid.UUID
} {
	mock.lockRemoveWord.RLock()
	calls := mock.calls.RemoveWord
	mock.lockRemoveWord.RUnlock()
	return calls
}

func (mock *practiceServiceMock) Restart(ctx context.Context, sessionID uuid.UUID) (practice.SessionView, error) {
	if mock.RestartFunc == nil {
		panic("practiceServiceMock.RestartFunc: method is nil but practiceService.Restart was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
	}{
		Ctx:       ctx,
		SessionID: sessionID,
	}
	mock.lockRestart.Lock()
	mock.calls.Restart = append(mock.calls.Restart, callInfo)
	mock.lockRestart.Unlock()
	return mock.RestartFunc(ctx, sessionID)
}

func (mock *practiceServiceMock) RestartCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
} {
	mock.lockRestart.RLock()
	calls := mock.calls.Restart
	mock.lockRestart.RUnlock()
	return calls
}

func (mock *practiceServiceMock) StartSession(ctx context.Context, input practice.StartSessionInput) (practice.SessionView, error) {
	if mock.StartSessionFunc == nil {
		panic("practiceServiceMock.StartSessionFunc: method is nil but practiceService.StartSession was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input practice.StartSessionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockStartSession.Lock()
	mock.calls.StartSession = append(mock.calls.StartSession, callInfo)
	mock.lockStartSession.Unlock()
	return mock.StartSessionFunc(ctx, input)
}

func (mock *practiceServiceMock) StartSessionCalls() []struct {
	Ctx   context.Context
	Input practice.StartSessionInput
} {
	mock.lockStartSession.RLock()
	calls := mock.calls.StartSession
	mock.lockStartSession.RUnlock()
	return calls
}
