package dispatch

import (
	"context"
	"sync"
	"time"

	"github.com/atendely/dispatch-backend/internal/domain"
)

var (
	_ consultantRegistry = &consultantRegistryMock{}
	_ ticketCounter      = &ticketCounterMock{}
	_ protocolWriter     = &protocolWriterMock{}
	_ txManager          = &txManagerMock{}
)

type consultantRegistryMock struct {
	ClaimNextFunc func(ctx context.Context, language string, at time.Time) (*domain.Consultant, error)

	calls struct {
		ClaimNext []struct {
			Language string
			At       time.Time
		}
	}
	lockClaimNext sync.RWMutex
}

func (mock *consultantRegistryMock) ClaimNext(ctx context.Context, language string, at time.Time) (*domain.Consultant, error) {
	if mock.ClaimNextFunc == nil {
		panic("consultantRegistryMock.ClaimNextFunc: method is nil but consultantRegistry.ClaimNext was just called")
	}
	callInfo := struct {
		Language string
		At       time.Time
	}{Language: language, At: at}
	mock.lockClaimNext.Lock()
	mock.calls.ClaimNext = append(mock.calls.ClaimNext, callInfo)
	mock.lockClaimNext.Unlock()
	return mock.ClaimNextFunc(ctx, language, at)
}

func (mock *consultantRegistryMock) ClaimNextCalls() []struct {
	Language string
	At       time.Time
} {
	mock.lockClaimNext.RLock()
	calls := mock.calls.ClaimNext
	mock.lockClaimNext.RUnlock()
	return calls
}

type ticketCounterMock struct {
	NextFunc func(ctx context.Context) (int64, error)

	calls struct {
		Next []struct{}
	}
	lockNext sync.RWMutex
}

func (mock *ticketCounterMock) Next(ctx context.Context) (int64, error) {
	if mock.NextFunc == nil {
		panic("ticketCounterMock.NextFunc: method is nil but ticketCounter.Next was just called")
	}
	mock.lockNext.Lock()
	mock.calls.Next = append(mock.calls.Next, struct{}{})
	mock.lockNext.Unlock()
	return mock.NextFunc(ctx)
}

func (mock *ticketCounterMock) NextCalls() []struct{} {
	mock.lockNext.RLock()
	calls := mock.calls.Next
	mock.lockNext.RUnlock()
	return calls
}

type protocolWriterMock struct {
	CreateFunc func(ctx context.Context, p *domain.Protocol) (*domain.Protocol, error)

	calls struct {
		Create []struct {
			P *domain.Protocol
		}
	}
	lockCreate sync.RWMutex
}

func (mock *protocolWriterMock) Create(ctx context.Context, p *domain.Protocol) (*domain.Protocol, error) {
	if mock.CreateFunc == nil {
		panic("protocolWriterMock.CreateFunc: method is nil but protocolWriter.Create was just called")
	}
	callInfo := struct{ P *domain.Protocol }{P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *protocolWriterMock) CreateCalls() []struct{ P *domain.Protocol } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

// txManagerMock runs the callback inline. RolledBack reports whether the last
// RunInTx returned an error, mirroring the real manager's rollback behavior.
type txManagerMock struct {
	rolledBack bool
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	mock.rolledBack = err != nil
	return err
}

func (mock *txManagerMock) RolledBack() bool { return mock.rolledBack }
