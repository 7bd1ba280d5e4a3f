package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	authservice "promohub/internal/auth/service"
	"promohub/internal/platform/middleware"
	"promohub/pkg/platform/httputil"
)

// Service defines the auth operations the handler needs.
type Service interface {
	Login(ctx context.Context, username, password, requestID string) (authservice.Session, error)
}

// Handler wires the admin login endpoint.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts auth endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/admin/login", h.HandleLogin)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// HandleLogin handles POST /api/admin/login.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.Decode[loginRequest](w, r)
	if !ok {
		return
	}

	session, err := h.service.Login(ctx, req.Username, req.Password, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "admin logged in",
		"username", req.Username,
		"session_id", session.SessionID,
		"request_id", requestID,
	)
	httputil.WriteJSON(w, http.StatusOK, loginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
