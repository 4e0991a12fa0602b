package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
	"github.com/heartmarshall/lawdesk-backend/internal/service/account"
)

type accountService interface {
	Create(ctx context.Context, input account.CreateInput) (account.Created, error)
	FindAll(ctx context.Context) ([]domain.Account, error)
	Get(ctx context.Context, username string) (domain.AccountDetail, error)
	Update(ctx context.Context, username string, input account.UpdateInput) (domain.Account, error)
	Remove(ctx context.Context, username string) error
	AddAssignment(ctx context.Context, username string, lawsuitID int64) error
	RemoveAssignment(ctx context.Context, username string, lawsuitID int64) error
}

// UserHandler serves /users and its /employees alias.
type UserHandler struct {
	svc accountService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc accountService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type createUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
}

type updateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	IsAdmin   *bool   `json:"isAdmin"`
}

type userResponse struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
}

type userDetailResponse struct {
	userResponse
	Lawsuits []int64 `json:"lawsuits"`
}

func toUserResponse(a domain.Account) userResponse {
	return userResponse{
		Username:  a.Username,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		IsAdmin:   a.IsAdmin,
	}
}

// Create handles POST /users. Admins use it to add accounts of any role.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.svc.Create(r.Context(), account.CreateInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"user":  toUserResponse(created.Account),
		"token": created.Token,
	})
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.FindAll(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]userResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toUserResponse(a))
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": out})
}

// Get handles GET /users/{username}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.Get(r.Context(), r.PathValue("username"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ids := detail.LawsuitIDs
	if ids == nil {
		ids = []int64{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": userDetailResponse{
		userResponse: toUserResponse(detail.Account),
		Lawsuits:     ids,
	}})
}

// Update handles PATCH /users/{username}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.svc.Update(r.Context(), r.PathValue("username"), account.UpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": toUserResponse(a)})
}

// Delete handles DELETE /users/{username}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if err := h.svc.Remove(r.Context(), username); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"deleted": username})
}

// Assign handles POST /users/{username}/lawsuits/{id}.
func (h *UserHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.AddAssignment(r.Context(), r.PathValue("username"), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"assigned": id})
}

// Unassign handles DELETE /users/{username}/lawsuits/{id}.
func (h *UserHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.RemoveAssignment(r.Context(), r.PathValue("username"), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"unassigned": id})
}
