// Package handler exposes party registration over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"provenia/internal/platform/middleware"
	"provenia/internal/registry"
	id "provenia/pkg/domain"
	dErrors "provenia/pkg/domain-errors"
	"provenia/pkg/email"
	"provenia/pkg/platform/httputil"
	"provenia/pkg/platform/sentinel"
)

// Store persists parties.
type Store interface {
	Create(ctx context.Context, party *registry.Party) error
	FindByID(ctx context.Context, partyID id.PartyID) (*registry.Party, error)
}

// Handler handles party endpoints.
type Handler struct {
	logger *slog.Logger
	store  Store
	clock  func() time.Time
}

// New creates a party Handler.
func New(store Store, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, store: store, clock: time.Now}
}

// Register registers the party routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(router chi.Router) {
		router.Use(middleware.Recovery(h.logger))
		router.Use(middleware.RequestID)
		router.Use(middleware.Logger(h.logger))
		router.Use(middleware.Timeout(10 * time.Second))
		router.Use(middleware.ContentTypeJSON)
		router.Post("/v1/parties", h.handleCreateParty)
		router.Get("/v1/parties/{partyID}", h.handleGetParty)
	})
}

type createPartyRequest struct {
	ID    *id.PartyID `json:"id,omitempty"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
}

func (h *Handler) handleCreateParty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createPartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	partyID := id.PartyID(uuid.New())
	if req.ID != nil {
		partyID = *req.ID
	}

	name := req.Name
	if name == "" && req.Email != "" {
		first, last := email.DeriveNameFromEmail(req.Email)
		name = first + " " + last
	}

	party, err := registry.NewParty(partyID, name, req.Email, h.clock().UTC())
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeValidation, "invalid party"))
		return
	}

	if err := h.store.Create(ctx, party); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeConflict, "party already registered"))
			return
		}
		h.logger.ErrorContext(ctx, "party creation failed", slog.Any("error", err))
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "party creation failed"))
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, party)
}

func (h *Handler) handleGetParty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	partyID, err := id.ParsePartyID(chi.URLParam(r, "partyID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	party, err := h.store.FindByID(ctx, partyID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "party not found"))
			return
		}
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "party lookup failed"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, party)
}
