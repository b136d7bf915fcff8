package rest

import (
	"context"

	"github.com/atendely/dispatch-backend/internal/domain"
	"github.com/atendely/dispatch-backend/internal/service/protocol"
	"github.com/atendely/dispatch-backend/internal/service/registry"
)

var (
	_ registryService = &registryServiceMock{}
	_ dispatchService = &dispatchServiceMock{}
	_ protocolService = &protocolServiceMock{}
)

type registryServiceMock struct {
	CreateFunc        func(ctx context.Context, input registry.CreateInput) (*domain.Consultant, error)
	GetFunc           func(ctx context.Context, id int64) (*domain.Consultant, error)
	ListFunc          func(ctx context.Context) ([]*domain.Consultant, error)
	UpdateFunc        func(ctx context.Context, id int64, input registry.UpdateInput) (*domain.Consultant, error)
	SetConnectionFunc func(ctx context.Context, id int64, online bool) (*domain.Consultant, error)
	DeleteFunc        func(ctx context.Context, id int64) error
}

func (m *registryServiceMock) Create(ctx context.Context, input registry.CreateInput) (*domain.Consultant, error) {
	return m.CreateFunc(ctx, input)
}

func (m *registryServiceMock) Get(ctx context.Context, id int64) (*domain.Consultant, error) {
	return m.GetFunc(ctx, id)
}

func (m *registryServiceMock) List(ctx context.Context) ([]*domain.Consultant, error) {
	return m.ListFunc(ctx)
}

func (m *registryServiceMock) Update(ctx context.Context, id int64, input registry.UpdateInput) (*domain.Consultant, error) {
	return m.UpdateFunc(ctx, id, input)
}

func (m *registryServiceMock) SetConnection(ctx context.Context, id int64, online bool) (*domain.Consultant, error) {
	return m.SetConnectionFunc(ctx, id, online)
}

func (m *registryServiceMock) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

type dispatchServiceMock struct {
	DispatchFunc func(ctx context.Context, language string) (*domain.DispatchResult, error)
}

func (m *dispatchServiceMock) Dispatch(ctx context.Context, language string) (*domain.DispatchResult, error) {
	return m.DispatchFunc(ctx, language)
}

type protocolServiceMock struct {
	IssueFunc    func(ctx context.Context, input protocol.IssueInput) (*domain.Protocol, error)
	GenerateFunc func(ctx context.Context) (*domain.Protocol, error)
	GetFunc      func(ctx context.Context, id int64) (*domain.Protocol, error)
	ListFunc     func(ctx context.Context, input protocol.ListInput) ([]*domain.Protocol, int, error)
	UpdateFunc   func(ctx context.Context, id int64, input protocol.UpdateInput) (*domain.Protocol, error)
}

func (m *protocolServiceMock) Issue(ctx context.Context, input protocol.IssueInput) (*domain.Protocol, error) {
	return m.IssueFunc(ctx, input)
}

func (m *protocolServiceMock) Generate(ctx context.Context) (*domain.Protocol, error) {
	return m.GenerateFunc(ctx)
}

func (m *protocolServiceMock) Get(ctx context.Context, id int64) (*domain.Protocol, error) {
	return m.GetFunc(ctx, id)
}

func (m *protocolServiceMock) List(ctx context.Context, input protocol.ListInput) ([]*domain.Protocol, int, error) {
	return m.ListFunc(ctx, input)
}

func (m *protocolServiceMock) Update(ctx context.Context, id int64, input protocol.UpdateInput) (*domain.Protocol, error) {
	return m.UpdateFunc(ctx, id, input)
}
