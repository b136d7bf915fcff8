package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/atendely/dispatch-backend/internal/domain"
	"github.com/atendely/dispatch-backend/internal/service/registry"
)

// registryService defines the minimal interface needed by ConsultantHandler.
type registryService interface {
	Create(ctx context.Context, input registry.CreateInput) (*domain.Consultant, error)
	Get(ctx context.Context, id int64) (*domain.Consultant, error)
	List(ctx context.Context) ([]*domain.Consultant, error)
	Update(ctx context.Context, id int64, input registry.UpdateInput) (*domain.Consultant, error)
	SetConnection(ctx context.Context, id int64, online bool) (*domain.Consultant, error)
	Delete(ctx context.Context, id int64) error
}

// dispatchService defines the minimal interface needed for /consultants/next.
type dispatchService interface {
	Dispatch(ctx context.Context, language string) (*domain.DispatchResult, error)
}

// ConsultantHandler serves consultant REST endpoints, including dispatch.
type ConsultantHandler struct {
	registry registryService
	dispatch dispatchService
	log      *slog.Logger
}

// NewConsultantHandler creates a ConsultantHandler.
func NewConsultantHandler(reg registryService, disp dispatchService, logger *slog.Logger) *ConsultantHandler {
	return &ConsultantHandler{
		registry: reg,
		dispatch: disp,
		log:      logger.With("handler", "consultant"),
	}
}

type createConsultantRequest struct {
	Name              string   `json:"name"`
	Email             *string  `json:"email"`
	Phone             *string  `json:"phone"`
	CRMID             *int64   `json:"crm_id"`
	Languages         []string `json:"languages"`
	Active            *bool    `json:"active"`
	SequentialEnabled *bool    `json:"sequential_enabled"`
}

type updateConsultantRequest struct {
	Name              *string  `json:"name"`
	Email             *string  `json:"email"`
	Phone             *string  `json:"phone"`
	CRMID             *int64   `json:"crm_id"`
	Languages         []string `json:"languages"`
	Active            *bool    `json:"active"`
	SequentialEnabled *bool    `json:"sequential_enabled"`
	Online            *bool    `json:"online"`
}

type connectionRequest struct {
	Online *bool `json:"online"`
}

type consultantResponse struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Email             *string    `json:"email,omitempty"`
	Phone             *string    `json:"phone,omitempty"`
	CRMID             *int64     `json:"crm_id,omitempty"`
	Languages         []string   `json:"languages"`
	Active            bool       `json:"active"`
	SequentialEnabled bool       `json:"sequential_enabled"`
	Online            bool       `json:"online"`
	LastServedAt      *time.Time `json:"last_served_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type dispatchResponse struct {
	ConsultantID        int64     `json:"consultant_id"`
	ConsultantName      string    `json:"consultant_name"`
	ConsultantLanguages []string  `json:"consultant_languages"`
	ConsultantOnline    bool      `json:"consultant_online"`
	ServedAt            time.Time `json:"served_at"`
	Ticket              string    `json:"ticket"`
	CRMID               *int64    `json:"crm_id,omitempty"`
}

func toConsultantResponse(c *domain.Consultant) consultantResponse {
	return consultantResponse{
		ID:                c.ID,
		Name:              c.Name,
		Email:             c.Email,
		Phone:             c.Phone,
		CRMID:             c.CRMID,
		Languages:         c.Languages,
		Active:            c.Active,
		SequentialEnabled: c.SequentialEnabled,
		Online:            c.Online,
		LastServedAt:      c.LastServedAt,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

// Next handles GET /consultants/next?language=xx.
func (h *ConsultantHandler) Next(w http.ResponseWriter, r *http.Request) {
	result, err := h.dispatch.Dispatch(r.Context(), r.URL.Query().Get("language"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dispatchResponse{
		ConsultantID:        result.Consultant.ID,
		ConsultantName:      result.Consultant.Name,
		ConsultantLanguages: result.Consultant.Languages,
		ConsultantOnline:    result.Consultant.Online,
		ServedAt:            result.ServedAt,
		Ticket:              result.Ticket,
		CRMID:               result.Consultant.CRMID,
	})
}

// Create handles POST /consultants.
func (h *ConsultantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createConsultantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	input := registry.CreateInput{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		CRMID:             req.CRMID,
		Languages:         req.Languages,
		Active:            true,
		SequentialEnabled: true,
	}
	if req.Active != nil {
		input.Active = *req.Active
	}
	if req.SequentialEnabled != nil {
		input.SequentialEnabled = *req.SequentialEnabled
	}

	c, err := h.registry.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toConsultantResponse(c))
}

// List handles GET /consultants.
func (h *ConsultantHandler) List(w http.ResponseWriter, r *http.Request) {
	cs, err := h.registry.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]consultantResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toConsultantResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /consultants/{id}.
func (h *ConsultantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	c, err := h.registry.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toConsultantResponse(c))
}

// Update handles PUT /consultants/{id}.
func (h *ConsultantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateConsultantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.registry.Update(r.Context(), id, registry.UpdateInput{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		CRMID:             req.CRMID,
		Languages:         req.Languages,
		Active:            req.Active,
		SequentialEnabled: req.SequentialEnabled,
		Online:            req.Online,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toConsultantResponse(c))
}

// Connection handles PUT /consultants/{id}/connection.
func (h *ConsultantHandler) Connection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req connectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Online == nil {
		writeError(w, domain.NewValidationError("online", "required"))
		return
	}

	c, err := h.registry.SetConnection(r.Context(), id, *req.Online)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toConsultantResponse(c))
}

// Delete handles DELETE /consultants/{id}.
func (h *ConsultantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.registry.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}
