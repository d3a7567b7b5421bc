// Package handler exposes the transfer engine over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"provenia/internal/ledger"
	"provenia/internal/platform/middleware"
	"provenia/internal/transfer/models"
	"provenia/internal/verify"
	id "provenia/pkg/domain"
	dErrors "provenia/pkg/domain-errors"
	"provenia/pkg/platform/audit"
	"provenia/pkg/platform/httputil"
	"provenia/pkg/requestcontext"
)

// Service executes transfers.
type Service interface {
	Execute(ctx context.Context, actor id.PartyID, req *models.TransferRequest) (*models.TransferResult, error)
}

// AuditReader replays a transfer's audit trail.
type AuditReader interface {
	List(ctx context.Context, transferID id.TransferID) ([]audit.Event, error)
}

// Ledger covers the asset registration and history operations the API
// exposes directly.
type Ledger interface {
	RegisterAsset(ctx context.Context, assetID id.AssetID, owner id.PartyID, network string) error
	History(ctx context.Context, assetID id.AssetID) ([]ledger.OwnershipRecord, error)
}

// Handler handles transfer endpoints.
type Handler struct {
	logger   *slog.Logger
	transfer Service
	auditLog AuditReader
	ledger   Ledger
}

// New creates a transfer Handler.
func New(transfer Service, auditLog AuditReader, ledgerSvc Ledger, logger *slog.Logger) *Handler {
	return &Handler{
		logger:   logger,
		transfer: transfer,
		auditLog: auditLog,
		ledger:   ledgerSvc,
	}
}

// Register registers the transfer routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(router chi.Router) {
		router.Use(middleware.Recovery(h.logger))
		router.Use(middleware.RequestID)
		router.Use(middleware.Logger(h.logger))
		router.Use(middleware.Timeout(30 * time.Second))
		router.Use(middleware.ContentTypeJSON)
		router.Post("/v1/transfers", h.handleExecuteTransfer)
		router.Get("/v1/transfers/{transferID}/audit", h.handleTransferAudit)
		router.Post("/v1/assets", h.handleRegisterAsset)
		router.Get("/v1/assets/{assetID}/history", h.handleAssetHistory)
	})
}

func (h *Handler) handleExecuteTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid transfer request body",
			slog.String("request_id", requestcontext.RequestID(ctx)),
			slog.Any("error", err))
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	// The initiating party acts on its own behalf unless an explicit actor
	// header names a delegate.
	actor := req.FromParty
	if raw := r.Header.Get("X-Actor-ID"); raw != "" {
		parsed, err := id.ParsePartyID(raw)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		actor = parsed
	}

	result, err := h.transfer.Execute(ctx, actor, &req)
	if err != nil {
		var verr *verify.VerificationError
		if errors.As(err, &verr) {
			httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeUnauthorized, verr.Error()))
			return
		}
		h.logger.WarnContext(ctx, "transfer rejected",
			slog.String("request_id", requestcontext.RequestID(ctx)),
			slog.Any("error", err))
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleTransferAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	transferID, err := id.ParseTransferID(chi.URLParam(r, "transferID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	events, err := h.auditLog.List(ctx, transferID)
	if err != nil {
		h.logger.ErrorContext(ctx, "audit trail lookup failed",
			slog.String("transfer_id", string(transferID)),
			slog.Any("error", err))
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "audit trail lookup failed"))
		return
	}
	if len(events) == 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "no audit trail for transfer"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"transfer_id": transferID,
		"events":      events,
	})
}

type registerAssetRequest struct {
	AssetID id.AssetID     `json:"asset_id"`
	OwnerID id.PartyID     `json:"owner_id"`
	Network models.Network `json:"network"`
}

func (h *Handler) handleRegisterAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	if req.AssetID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "asset id is required"))
		return
	}
	if req.OwnerID.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "owner id is required"))
		return
	}
	if !req.Network.Valid() {
		httputil.WriteError(w, dErrors.Newf(dErrors.CodeValidation, "unknown network %q", req.Network))
		return
	}

	if err := h.ledger.RegisterAsset(ctx, req.AssetID, req.OwnerID, string(req.Network)); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]any{
		"asset_id": req.AssetID,
		"owner_id": req.OwnerID,
	})
}

func (h *Handler) handleAssetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	assetID, err := id.ParseAssetID(chi.URLParam(r, "assetID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	records, err := h.ledger.History(ctx, assetID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"asset_id": assetID,
		"history":  records,
	})
}
