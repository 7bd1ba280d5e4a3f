package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"promohub/internal/platform/middleware"
	"promohub/internal/talent/models"
	"promohub/internal/talent/query"
	talentservice "promohub/internal/talent/service"
	"promohub/pkg/domainerrors"
	"promohub/pkg/platform/httputil"
)

// Service defines the admin talent operations the handler needs.
type Service interface {
	List(ctx context.Context, p talentservice.ListParams) (query.Page, error)
	Get(ctx context.Context, id int64) (*models.Talent, error)
	Documents(ctx context.Context, id int64) ([]models.Document, error)
	UpdateStatus(ctx context.Context, id int64, status models.TalentStatus, actor, requestID string) (*models.Talent, error)
	Delete(ctx context.Context, id int64, actor, requestID string) error
}

// Handler wires admin talent endpoints to the talent service. All routes
// sit behind the auth middleware; the router mounts them accordingly.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts talent endpoints on the (already authenticated) router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/admin/talents", h.HandleList)
	r.Get("/admin/talents/{talentID}", h.HandleGet)
	r.Get("/admin/talents/{talentID}/documents", h.HandleDocuments)
	r.Patch("/admin/talents/{talentID}/status", h.HandleUpdateStatus)
	r.Delete("/admin/talents/{talentID}", h.HandleDelete)
}

// HandleList handles GET /api/admin/talents.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters := query.Filters{}
	for _, dim := range query.Dimensions {
		if v := q.Get(dim); v != "" {
			filters[dim] = v
		}
	}

	page := 1
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httputil.WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "page must be a number"))
			return
		}
		page = n
	}

	result, err := h.service.List(r.Context(), talentservice.ListParams{
		Search:  q.Get("search"),
		Filters: filters,
		SortBy:  query.SortField(q.Get("sortBy")),
		Dir:     query.Direction(q.Get("sortDir")),
		Page:    page,
	})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "talent listing failed", "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleGet handles GET /api/admin/talents/{talentID}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := talentID(w, r)
	if !ok {
		return
	}
	t, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, t)
}

// HandleDocuments handles GET /api/admin/talents/{talentID}/documents.
func (h *Handler) HandleDocuments(w http.ResponseWriter, r *http.Request) {
	id, ok := talentID(w, r)
	if !ok {
		return
	}
	docs, err := h.service.Documents(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if docs == nil {
		docs = []models.Document{}
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateStatus handles PATCH /api/admin/talents/{talentID}/status.
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := talentID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.Decode[updateStatusRequest](w, r)
	if !ok {
		return
	}

	t, err := h.service.UpdateStatus(ctx, id, models.TalentStatus(req.Status),
		middleware.GetAdminUser(ctx), middleware.GetRequestID(ctx))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, t)
}

// HandleDelete handles DELETE /api/admin/talents/{talentID}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := talentID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(ctx, id, middleware.GetAdminUser(ctx), middleware.GetRequestID(ctx)); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func talentID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "talentID"), 10, 64)
	if err != nil {
		httputil.WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid talent id"))
		return 0, false
	}
	return id, true
}
