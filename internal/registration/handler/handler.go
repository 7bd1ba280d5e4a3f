package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	registrationservice "promohub/internal/registration/service"
	"promohub/internal/registration/wizard"
	"promohub/pkg/platform/httputil"
)

// Service defines the registration wizard operations the handler needs.
type Service interface {
	Start(ctx context.Context) registrationservice.State
	State(ctx context.Context, sessionID string) (registrationservice.State, error)
	SubmitPersonalInfo(ctx context.Context, sessionID string, p wizard.PersonalInfo) (registrationservice.State, error)
	SubmitProfessionalDetails(ctx context.Context, sessionID string, p wizard.ProfessionalDetails) (registrationservice.State, error)
	SubmitDocuments(ctx context.Context, sessionID string, uploads []wizard.DocumentUpload) (registrationservice.State, error)
	Back(ctx context.Context, sessionID string) (registrationservice.State, error)
	SaveDraft(ctx context.Context, sessionID, stepKey string, data json.RawMessage) error
	LoadDraft(ctx context.Context, sessionID, stepKey string) (json.RawMessage, error)
	Submit(ctx context.Context, sessionID string) (registrationservice.State, error)
}

// Handler wires the public registration wizard endpoints. These routes
// are unauthenticated: applicants have no account yet.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts wizard endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/register/sessions", func(r chi.Router) {
		r.Post("/", h.HandleStart)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", h.HandleState)
			r.Post("/personal-info", h.HandlePersonalInfo)
			r.Post("/professional-details", h.HandleProfessionalDetails)
			r.Post("/documents", h.HandleDocuments)
			r.Post("/back", h.HandleBack)
			r.Put("/draft/{step}", h.HandleSaveDraft)
			r.Get("/draft/{step}", h.HandleLoadDraft)
			r.Post("/submit", h.HandleSubmit)
		})
	})
}

// HandleStart handles POST /api/register/sessions.
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	st := h.service.Start(r.Context())
	httputil.WriteJSON(w, http.StatusCreated, st)
}

// HandleState handles GET /api/register/sessions/{sessionID}.
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	st, err := h.service.State(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, st)
}

// HandlePersonalInfo handles POST .../personal-info.
func (h *Handler) HandlePersonalInfo(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.Decode[wizard.PersonalInfo](w, r)
	if !ok {
		return
	}
	st, err := h.service.SubmitPersonalInfo(r.Context(), chi.URLParam(r, "sessionID"), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, st)
}

// HandleProfessionalDetails handles POST .../professional-details.
func (h *Handler) HandleProfessionalDetails(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.Decode[wizard.ProfessionalDetails](w, r)
	if !ok {
		return
	}
	st, err := h.service.SubmitProfessionalDetails(r.Context(), chi.URLParam(r, "sessionID"), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, st)
}

type documentsRequest struct {
	Documents []wizard.DocumentUpload `json:"documents"`
}

// HandleDocuments handles POST .../documents.
func (h *Handler) HandleDocuments(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.Decode[documentsRequest](w, r)
	if !ok {
		return
	}
	st, err := h.service.SubmitDocuments(r.Context(), chi.URLParam(r, "sessionID"), req.Documents)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, st)
}

// HandleBack handles POST .../back.
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	st, err := h.service.Back(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, st)
}

// HandleSaveDraft handles PUT .../draft/{step}. The body is stored as-is
// and echoed back by HandleLoadDraft; the server never interprets drafts.
func (h *Handler) HandleSaveDraft(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.Decode[json.RawMessage](w, r)
	if !ok {
		return
	}
	err := h.service.SaveDraft(r.Context(), chi.URLParam(r, "sessionID"), chi.URLParam(r, "step"), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleLoadDraft handles GET .../draft/{step}.
func (h *Handler) HandleLoadDraft(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.LoadDraft(r.Context(), chi.URLParam(r, "sessionID"), chi.URLParam(r, "step"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// HandleSubmit handles POST .../submit.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	st, err := h.service.Submit(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, st)
}
