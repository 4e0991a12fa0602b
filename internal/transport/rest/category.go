package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
	"github.com/heartmarshall/lawdesk-backend/internal/service/category"
)

type categoryService interface {
	Create(ctx context.Context, input category.CreateInput) (domain.Category, error)
	FindAll(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, error)
	Get(ctx context.Context, handle string) (domain.CategoryDetail, error)
	Update(ctx context.Context, handle string, input category.UpdateInput) (domain.Category, error)
	Remove(ctx context.Context, handle string) error
}

// CategoryHandler serves /categories and its /departments alias.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "category")}
}

type createCategoryRequest struct {
	Handle       string `json:"handle"`
	Name         string `json:"name"`
	NumEmployees int    `json:"numEmployees"`
	Description  string `json:"description"`
}

type updateCategoryRequest struct {
	Name         *string `json:"name"`
	NumEmployees *int    `json:"numEmployees"`
	Description  *string `json:"description"`
}

type categoryResponse struct {
	Handle       string `json:"handle"`
	Name         string `json:"name"`
	NumEmployees int    `json:"numEmployees"`
	Description  string `json:"description"`
}

type categoryDetailResponse struct {
	categoryResponse
	Lawsuits []lawsuitSummaryResponse `json:"lawsuits"`
}

type lawsuitSummaryResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Comment     string `json:"comment"`
	Location    string `json:"location"`
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{
		Handle:       c.Handle,
		Name:         c.Name,
		NumEmployees: c.NumEmployees,
		Description:  c.Description,
	}
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Create(r.Context(), category.CreateInput{
		Handle:       req.Handle,
		Name:         req.Name,
		NumEmployees: req.NumEmployees,
		Description:  req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"category": toCategoryResponse(c)})
}

// List handles GET /categories?name=&handle=.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := queryFilter(r, "name", "handle")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	categories, err := h.svc.FindAll(r.Context(), domain.CategoryFilter{
		Name:   q.Get("name"),
		Handle: q.Get("handle"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": out})
}

// Get handles GET /categories/{handle}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.Get(r.Context(), r.PathValue("handle"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	lawsuits := make([]lawsuitSummaryResponse, 0, len(detail.Lawsuits))
	for _, l := range detail.Lawsuits {
		lawsuits = append(lawsuits, lawsuitSummaryResponse{
			ID:          l.ID,
			Title:       l.Title,
			Description: l.Description,
			Comment:     l.Comment,
			Location:    l.Location,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"category": categoryDetailResponse{
		categoryResponse: toCategoryResponse(detail.Category),
		Lawsuits:         lawsuits,
	}})
}

// Update handles PATCH /categories/{handle}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Update(r.Context(), r.PathValue("handle"), category.UpdateInput{
		Name:         req.Name,
		NumEmployees: req.NumEmployees,
		Description:  req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"category": toCategoryResponse(c)})
}

// Delete handles DELETE /categories/{handle}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")
	if err := h.svc.Remove(r.Context(), handle); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"deleted": handle})
}
