package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
	"github.com/heartmarshall/lawdesk-backend/internal/service/lawsuit"
)

type lawsuitService interface {
	Create(ctx context.Context, input lawsuit.CreateInput) (domain.Lawsuit, error)
	FindAll(ctx context.Context, filter domain.LawsuitFilter) ([]domain.LawsuitListItem, error)
	Get(ctx context.Context, id int64) (domain.LawsuitDetail, error)
	Update(ctx context.Context, id int64, input lawsuit.UpdateInput) (domain.Lawsuit, error)
	Remove(ctx context.Context, id int64) error
}

// LawsuitHandler serves /lawsuits.
type LawsuitHandler struct {
	svc lawsuitService
	log *slog.Logger
}

// NewLawsuitHandler creates a LawsuitHandler.
func NewLawsuitHandler(svc lawsuitService, logger *slog.Logger) *LawsuitHandler {
	return &LawsuitHandler{svc: svc, log: logger.With("handler", "lawsuit")}
}

type createLawsuitRequest struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Comment        string  `json:"comment"`
	Location       string  `json:"location"`
	CategoryHandle *string `json:"categoryHandle"`
}

type updateLawsuitRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	Comment        *string `json:"comment"`
	Location       *string `json:"location"`
	CategoryHandle *string `json:"categoryHandle"`
	UnsetCategory  bool    `json:"unsetCategory"`
}

type lawsuitResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Comment        string    `json:"comment"`
	Location       string    `json:"location"`
	CategoryHandle *string   `json:"categoryHandle"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type lawsuitListItemResponse struct {
	lawsuitResponse
	CategoryName *string `json:"categoryName"`
}

type lawsuitDetailResponse struct {
	lawsuitResponse
	Category *categoryResponse `json:"category"`
}

func toLawsuitResponse(l domain.Lawsuit) lawsuitResponse {
	return lawsuitResponse{
		ID:             l.ID,
		Title:          l.Title,
		Description:    l.Description,
		Comment:        l.Comment,
		Location:       l.Location,
		CategoryHandle: l.CategoryHandle,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

// Create handles POST /lawsuits.
func (h *LawsuitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLawsuitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.Create(r.Context(), lawsuit.CreateInput{
		Title:          req.Title,
		Description:    req.Description,
		Comment:        req.Comment,
		Location:       req.Location,
		CategoryHandle: req.CategoryHandle,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"lawsuit": toLawsuitResponse(l)})
}

// List handles GET /lawsuits?title=&categoryHandle=.
func (h *LawsuitHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := queryFilter(r, "title", "categoryHandle")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.FindAll(r.Context(), domain.LawsuitFilter{
		Title:          q.Get("title"),
		CategoryHandle: q.Get("categoryHandle"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]lawsuitListItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, lawsuitListItemResponse{
			lawsuitResponse: toLawsuitResponse(item.Lawsuit),
			CategoryName:    item.CategoryName,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"lawsuits": out})
}

// Get handles GET /lawsuits/{id}.
func (h *LawsuitHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	detail, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := lawsuitDetailResponse{lawsuitResponse: toLawsuitResponse(detail.Lawsuit)}
	if detail.Category != nil {
		c := toCategoryResponse(*detail.Category)
		resp.Category = &c
	}
	writeJSON(w, http.StatusOK, map[string]any{"lawsuit": resp})
}

// Update handles PATCH /lawsuits/{id}.
func (h *LawsuitHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateLawsuitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.Update(r.Context(), id, lawsuit.UpdateInput{
		Title:          req.Title,
		Description:    req.Description,
		Comment:        req.Comment,
		Location:       req.Location,
		CategoryHandle: req.CategoryHandle,
		UnsetCategory:  req.UnsetCategory,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"lawsuit": toLawsuitResponse(l)})
}

// Delete handles DELETE /lawsuits/{id}.
func (h *LawsuitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Remove(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted": id})
}
