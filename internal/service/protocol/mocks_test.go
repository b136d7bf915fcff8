package protocol

import (
	"context"
	"sync"

	pgprotocol "github.com/atendely/dispatch-backend/internal/adapter/postgres/protocol"
	"github.com/atendely/dispatch-backend/internal/domain"
)

var (
	_ protocolRepo  = &protocolRepoMock{}
	_ ticketCounter = &ticketCounterMock{}
	_ txManager     = &txManagerMock{}
)

type protocolRepoMock struct {
	CreateFunc  func(ctx context.Context, p *domain.Protocol) (*domain.Protocol, error)
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Protocol, error)
	UpdateFunc  func(ctx context.Context, id int64, p pgprotocol.UpdateParams) (*domain.Protocol, error)
	ListFunc    func(ctx context.Context, f pgprotocol.ListFilter) ([]*domain.Protocol, int, error)

	calls struct {
		Create []struct {
			P *domain.Protocol
		}
		GetByID []struct {
			ID int64
		}
		Update []struct {
			ID int64
			P  pgprotocol.UpdateParams
		}
		List []struct {
			F pgprotocol.ListFilter
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockUpdate  sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *protocolRepoMock) Create(ctx context.Context, p *domain.Protocol) (*domain.Protocol, error) {
	if mock.CreateFunc == nil {
		panic("protocolRepoMock.CreateFunc: method is nil but protocolRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		P *domain.Protocol
	}{P: p})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *protocolRepoMock) CreateCalls() []struct {
	P *domain.Protocol
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *protocolRepoMock) GetByID(ctx context.Context, id int64) (*domain.Protocol, error) {
	if mock.GetByIDFunc == nil {
		panic("protocolRepoMock.GetByIDFunc: method is nil but protocolRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		ID int64
	}{ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *protocolRepoMock) GetByIDCalls() []struct {
	ID int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *protocolRepoMock) Update(ctx context.Context, id int64, p pgprotocol.UpdateParams) (*domain.Protocol, error) {
	if mock.UpdateFunc == nil {
		panic("protocolRepoMock.UpdateFunc: method is nil but protocolRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID int64
		P  pgprotocol.UpdateParams
	}{ID: id, P: p})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *protocolRepoMock) UpdateCalls() []struct {
	ID int64
	P  pgprotocol.UpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *protocolRepoMock) List(ctx context.Context, f pgprotocol.ListFilter) ([]*domain.Protocol, int, error) {
	if mock.ListFunc == nil {
		panic("protocolRepoMock.ListFunc: method is nil but protocolRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		F pgprotocol.ListFilter
	}{F: f})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *protocolRepoMock) ListCalls() []struct {
	F pgprotocol.ListFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
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

// txManagerMock runs the callback inline and records whether it returned an
// error, standing in for a rollback.
type txManagerMock struct {
	mu      sync.Mutex
	lastErr error
	runs    int
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	mock.mu.Lock()
	mock.lastErr = err
	mock.runs++
	mock.mu.Unlock()
	return err
}

func (mock *txManagerMock) RolledBack() bool {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.lastErr != nil
}

func (mock *txManagerMock) Runs() int {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.runs
}
