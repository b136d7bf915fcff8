package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/atendely/dispatch-backend/internal/domain"
	"github.com/atendely/dispatch-backend/internal/service/protocol"
)

// protocolService defines the minimal interface needed by ProtocolHandler.
type protocolService interface {
	Issue(ctx context.Context, input protocol.IssueInput) (*domain.Protocol, error)
	Generate(ctx context.Context) (*domain.Protocol, error)
	Get(ctx context.Context, id int64) (*domain.Protocol, error)
	List(ctx context.Context, input protocol.ListInput) ([]*domain.Protocol, int, error)
	Update(ctx context.Context, id int64, input protocol.UpdateInput) (*domain.Protocol, error)
}

// ProtocolHandler serves protocol REST endpoints.
type ProtocolHandler struct {
	svc protocolService
	log *slog.Logger
}

// NewProtocolHandler creates a ProtocolHandler.
func NewProtocolHandler(svc protocolService, logger *slog.Logger) *ProtocolHandler {
	return &ProtocolHandler{svc: svc, log: logger.With("handler", "protocol")}
}

type issueProtocolRequest struct {
	ConsultantID int64   `json:"consultant_id"`
	Note         *string `json:"note"`
}

type updateProtocolRequest struct {
	ConsultantID *int64  `json:"consultant_id"`
	Note         *string `json:"note"`
}

type protocolResponse struct {
	ID           int64     `json:"id"`
	Number       string    `json:"number"`
	ConsultantID *int64    `json:"consultant_id,omitempty"`
	Note         *string   `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type protocolListResponse struct {
	Items []protocolResponse `json:"items"`
	Total int                `json:"total"`
}

func toProtocolResponse(p *domain.Protocol) protocolResponse {
	out := protocolResponse{
		ID:        p.ID,
		Number:    p.Number,
		Note:      p.Note,
		CreatedAt: p.CreatedAt,
	}
	if p.Assigned() {
		id := p.ConsultantID
		out.ConsultantID = &id
	}
	return out
}

// Issue handles POST /protocols.
func (h *ProtocolHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req issueProtocolRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	p, err := h.svc.Issue(r.Context(), protocol.IssueInput{
		ConsultantID: req.ConsultantID,
		Note:         req.Note,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProtocolResponse(p))
}

// Generate handles POST /protocols/generate.
func (h *ProtocolHandler) Generate(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Generate(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProtocolResponse(p))
}

// Get handles GET /protocols/{id}.
func (h *ProtocolHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProtocolResponse(p))
}

// List handles GET /protocols with optional consultant_id, limit, offset.
func (h *ProtocolHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	items, total, err := h.svc.List(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	out := protocolListResponse{Items: make([]protocolResponse, 0, len(items)), Total: total}
	for _, p := range items {
		out.Items = append(out.Items, toProtocolResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

// Update handles PUT /protocols/{id}.
func (h *ProtocolHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateProtocolRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	p, err := h.svc.Update(r.Context(), id, protocol.UpdateInput{
		ConsultantID: req.ConsultantID,
		Note:         req.Note,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProtocolResponse(p))
}

func parseListQuery(r *http.Request) (protocol.ListInput, error) {
	var input protocol.ListInput
	q := r.URL.Query()

	if raw := q.Get("consultant_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return input, domain.NewValidationError("consultant_id", "must be an integer")
		}
		input.ConsultantID = &id
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return input, domain.NewValidationError("limit", "must be an integer")
		}
		input.Limit = limit
	}
	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return input, domain.NewValidationError("offset", "must be an integer")
		}
		input.Offset = offset
	}

	return input, nil
}
