package registry

import (
	"context"
	"sync"

	pgconsultant "github.com/atendely/dispatch-backend/internal/adapter/postgres/consultant"
	"github.com/atendely/dispatch-backend/internal/domain"
)

var _ consultantRepo = &consultantRepoMock{}

type consultantRepoMock struct {
	CreateFunc    func(ctx context.Context, c *domain.Consultant) (*domain.Consultant, error)
	GetByIDFunc   func(ctx context.Context, id int64) (*domain.Consultant, error)
	ListFunc      func(ctx context.Context) ([]*domain.Consultant, error)
	UpdateFunc    func(ctx context.Context, id int64, p pgconsultant.UpdateParams) (*domain.Consultant, error)
	SetOnlineFunc func(ctx context.Context, id int64, online bool) (*domain.Consultant, error)
	DeleteFunc    func(ctx context.Context, id int64) error

	calls struct {
		Create []struct {
			C *domain.Consultant
		}
		GetByID []struct {
			ID int64
		}
		List   []struct{}
		Update []struct {
			ID int64
			P  pgconsultant.UpdateParams
		}
		SetOnline []struct {
			ID     int64
			Online bool
		}
		Delete []struct {
			ID int64
		}
	}
	lockCreate    sync.RWMutex
	lockGetByID   sync.RWMutex
	lockList      sync.RWMutex
	lockUpdate    sync.RWMutex
	lockSetOnline sync.RWMutex
	lockDelete    sync.RWMutex
}

func (mock *consultantRepoMock) Create(ctx context.Context, c *domain.Consultant) (*domain.Consultant, error) {
	if mock.CreateFunc == nil {
		panic("consultantRepoMock.CreateFunc: method is nil but consultantRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		C *domain.Consultant
	}{C: c})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *consultantRepoMock) CreateCalls() []struct {
	C *domain.Consultant
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *consultantRepoMock) GetByID(ctx context.Context, id int64) (*domain.Consultant, error) {
	if mock.GetByIDFunc == nil {
		panic("consultantRepoMock.GetByIDFunc: method is nil but consultantRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		ID int64
	}{ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *consultantRepoMock) List(ctx context.Context) ([]*domain.Consultant, error) {
	if mock.ListFunc == nil {
		panic("consultantRepoMock.ListFunc: method is nil but consultantRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *consultantRepoMock) Update(ctx context.Context, id int64, p pgconsultant.UpdateParams) (*domain.Consultant, error) {
	if mock.UpdateFunc == nil {
		panic("consultantRepoMock.UpdateFunc: method is nil but consultantRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID int64
		P  pgconsultant.UpdateParams
	}{ID: id, P: p})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *consultantRepoMock) UpdateCalls() []struct {
	ID int64
	P  pgconsultant.UpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *consultantRepoMock) SetOnline(ctx context.Context, id int64, online bool) (*domain.Consultant, error) {
	if mock.SetOnlineFunc == nil {
		panic("consultantRepoMock.SetOnlineFunc: method is nil but consultantRepo.SetOnline was just called")
	}
	mock.lockSetOnline.Lock()
	mock.calls.SetOnline = append(mock.calls.SetOnline, struct {
		ID     int64
		Online bool
	}{ID: id, Online: online})
	mock.lockSetOnline.Unlock()
	return mock.SetOnlineFunc(ctx, id, online)
}

func (mock *consultantRepoMock) SetOnlineCalls() []struct {
	ID     int64
	Online bool
} {
	mock.lockSetOnline.RLock()
	calls := mock.calls.SetOnline
	mock.lockSetOnline.RUnlock()
	return calls
}

func (mock *consultantRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("consultantRepoMock.DeleteFunc: method is nil but consultantRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		ID int64
	}{ID: id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *consultantRepoMock) DeleteCalls() []struct {
	ID int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
