package registry

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"testing"

	pgconsultant "github.com/atendely/dispatch-backend/internal/adapter/postgres/consultant"
	"github.com/atendely/dispatch-backend/internal/domain"
)

func newTestService(repo *consultantRepoMock) *Service {
	return &Service{consultants: repo, log: slog.Default()}
}

func ptrString(v string) *string { return &v }
func ptrInt64(v int64) *int64    { return &v }
func ptrBool(v bool) *bool       { return &v }

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	repo := &consultantRepoMock{
		CreateFunc: func(ctx context.Context, c *domain.Consultant) (*domain.Consultant, error) {
			out := *c
			out.ID = 1
			return &out, nil
		},
	}
	svc := newTestService(repo)

	got, err := svc.Create(context.Background(), CreateInput{
		Name:              "  Bia Souza ",
		Email:             ptrString(" bia@example.com "),
		Languages:         []string{" pt", "en", "pt", ""},
		Active:            true,
		SequentialEnabled: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Name != "Bia Souza" {
		t.Errorf("name not trimmed: %q", got.Name)
	}
	if got.Email == nil || *got.Email != "bia@example.com" {
		t.Errorf("email not trimmed: %v", got.Email)
	}
	if want := []string{"pt", "en"}; !reflect.DeepEqual(got.Languages, want) {
		t.Errorf("languages: got %v, want %v", got.Languages, want)
	}
	if got.Online {
		t.Error("new consultants must start offline")
	}
	if got.LastServedAt != nil {
		t.Errorf("new consultants must start never served, got %v", got.LastServedAt)
	}
}

func TestCreate_CollectsAllFieldErrors(t *testing.T) {
	t.Parallel()

	svc := newTestService(&consultantRepoMock{})

	_, err := svc.Create(context.Background(), CreateInput{
		Name:      "  ",
		Email:     ptrString("not-an-email"),
		CRMID:     ptrInt64(-4),
		Languages: []string{"", "  "},
	})

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vErr.Errors) != 4 {
		t.Errorf("field errors: got %d, want 4 (%v)", len(vErr.Errors), vErr.Errors)
	}
}

func TestCreate_DuplicatePassesThrough(t *testing.T) {
	t.Parallel()

	repo := &consultantRepoMock{
		CreateFunc: func(ctx context.Context, c *domain.Consultant) (*domain.Consultant, error) {
			return nil, domain.ErrAlreadyExists
		},
	}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateInput{
		Name:      "Bia",
		Languages: []string{"pt"},
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestGet_InvalidID(t *testing.T) {
	t.Parallel()

	svc := newTestService(&consultantRepoMock{})

	_, err := svc.Get(context.Background(), -1)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUpdate_PartialForwardsOnlySetFields(t *testing.T) {
	t.Parallel()

	repo := &consultantRepoMock{
		UpdateFunc: func(ctx context.Context, id int64, p pgconsultant.UpdateParams) (*domain.Consultant, error) {
			return &domain.Consultant{ID: id}, nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), 7, UpdateInput{
		SequentialEnabled: ptrBool(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := repo.UpdateCalls()
	if len(calls) != 1 {
		t.Fatalf("update calls: got %d, want 1", len(calls))
	}
	p := calls[0].P
	if p.SequentialEnabled == nil || *p.SequentialEnabled {
		t.Error("sequential_enabled not forwarded as false")
	}
	if p.Name != nil || p.Email != nil || p.Phone != nil || p.CRMID != nil ||
		p.Languages != nil || p.Active != nil || p.Online != nil {
		t.Errorf("unset fields leaked into params: %+v", p)
	}
}

func TestUpdate_BlankNameRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(&consultantRepoMock{})

	_, err := svc.Update(context.Background(), 7, UpdateInput{Name: ptrString("   ")})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUpdate_EmptyLanguagesRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(&consultantRepoMock{})

	_, err := svc.Update(context.Background(), 7, UpdateInput{Languages: []string{" ", ""}})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUpdate_NotFoundPassesThrough(t *testing.T) {
	t.Parallel()

	repo := &consultantRepoMock{
		UpdateFunc: func(ctx context.Context, id int64, p pgconsultant.UpdateParams) (*domain.Consultant, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), 404, UpdateInput{Name: ptrString("x")})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetConnection_Forwards(t *testing.T) {
	t.Parallel()

	repo := &consultantRepoMock{
		SetOnlineFunc: func(ctx context.Context, id int64, online bool) (*domain.Consultant, error) {
			return &domain.Consultant{ID: id, Online: online}, nil
		},
	}
	svc := newTestService(repo)

	got, err := svc.SetConnection(context.Background(), 5, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Online {
		t.Error("online flag not set")
	}

	calls := repo.SetOnlineCalls()
	if len(calls) != 1 || calls[0].ID != 5 || !calls[0].Online {
		t.Errorf("unexpected calls: %+v", calls)
	}
}

func TestDelete_NotFoundPassesThrough(t *testing.T) {
	t.Parallel()

	repo := &consultantRepoMock{
		DeleteFunc: func(ctx context.Context, id int64) error {
			return domain.ErrNotFound
		},
	}
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	repo := &consultantRepoMock{
		DeleteFunc: func(ctx context.Context, id int64) error { return nil },
	}
	svc := newTestService(repo)

	if err := svc.Delete(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls := repo.DeleteCalls(); len(calls) != 1 || calls[0].ID != 3 {
		t.Errorf("unexpected calls: %+v", calls)
	}
}
