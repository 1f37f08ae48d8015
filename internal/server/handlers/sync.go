package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/shiftsync/internal/models"
	"github.com/iudanet/shiftsync/internal/server/coordinator"
	"github.com/iudanet/shiftsync/pkg/api"
)

//go:generate moq -out coordinator_mock.go . SyncCoordinator

// SyncCoordinator определяет интерфейс движка синхронизации,
// нужный HTTP-слою.
type SyncCoordinator interface {
	Initialize(ctx context.Context, nodeID, deviceType, userID string, initial *models.SyncState) (models.VectorClock, error)
	Synchronize(ctx context.Context, nodeID string, ops []*models.Operation) (*coordinator.Result, error)
	GetState(ctx context.Context, nodeID string) (*models.SyncState, error)
}

// SyncHandler обрабатывает запросы протокола синхронизации.
type SyncHandler struct {
	logger *slog.Logger
	coord  SyncCoordinator
}

// NewSyncHandler создает новый handler синхронизации.
func NewSyncHandler(logger *slog.Logger, coord SyncCoordinator) *SyncHandler {
	return &SyncHandler{
		logger: logger,
		coord:  coord,
	}
}

// HandleInitialize обрабатывает POST /api/v1/sync/initialize
// Регистрирует клиентскую сессию и возвращает ее векторные часы.
func (h *SyncHandler) HandleInitialize(w http.ResponseWriter, r *http.Request) {
	var req api.InitializeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode initialize request", "error", err)
		h.writeError(w, http.StatusBadRequest, api.ErrCodeValidation, "invalid request body")
		return
	}

	var initial *models.SyncState
	if req.InitialState != nil {
		initial = models.StateFromAPI(req.InitialState)
	}

	clock, err := h.coord.Initialize(r.Context(), req.NodeID, req.DeviceType, req.UserID, initial)
	if err != nil {
		h.writeCoordinatorError(w, err, "initialize", req.NodeID)
		return
	}

	h.writeJSON(w, http.StatusCreated, api.InitializeResponse{
		NodeID: req.NodeID,
		Clock:  models.ClockToAPI(clock),
	})

	h.logger.Info("Initialize completed", "node_id", req.NodeID, "device_type", req.DeviceType)
}

// HandleSynchronize обрабатывает POST /api/v1/sync/synchronize
// Принимает батч операций клиента и возвращает слитое состояние.
func (h *SyncHandler) HandleSynchronize(w http.ResponseWriter, r *http.Request) {
	var req api.SynchronizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode synchronize request", "error", err)
		h.writeError(w, http.StatusBadRequest, api.ErrCodeValidation, "invalid request body")
		return
	}

	ops := make([]*models.Operation, 0, len(req.Operations))
	for _, op := range req.Operations {
		ops = append(ops, models.OperationFromAPI(op))
	}

	res, err := h.coord.Synchronize(r.Context(), req.NodeID, ops)
	if err != nil {
		h.writeCoordinatorError(w, err, "synchronize", req.NodeID)
		return
	}

	conflicts := make([]api.ConflictRecord, 0, len(res.Conflicts))
	for _, c := range res.Conflicts {
		conflicts = append(conflicts, models.ConflictToAPI(c))
	}

	h.writeJSON(w, http.StatusOK, api.SynchronizeResponse{
		MergedState: models.StateToAPI(res.State),
		Conflicts:   conflicts,
		Clock:       models.ClockToAPI(res.Clock),
		Processed:   res.Processed,
	})

	h.logger.Info("Synchronize completed",
		"node_id", req.NodeID,
		"operations", len(req.Operations),
		"processed", res.Processed,
		"conflicts", len(res.Conflicts))
}

// HandleGetState обрабатывает GET /api/v1/sync/state/{nodeID}
// Возвращает снимок слитого состояния узла без изменения состояния.
func (h *SyncHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	nodeID := r.PathValue("nodeID")
	if nodeID == "" {
		h.writeError(w, http.StatusBadRequest, api.ErrCodeValidation, "node id is required")
		return
	}

	state, err := h.coord.GetState(r.Context(), nodeID)
	if err != nil {
		h.writeCoordinatorError(w, err, "get state", nodeID)
		return
	}

	h.writeJSON(w, http.StatusOK, models.StateToAPI(state))
}

// writeCoordinatorError транслирует ошибки координатора в HTTP-статусы
// и машиночитаемые коды протокола.
func (h *SyncHandler) writeCoordinatorError(w http.ResponseWriter, err error, op, nodeID string) {
	switch {
	case errors.Is(err, coordinator.ErrBatchTooLarge):
		h.logger.Warn("Batch rejected", "op", op, "node_id", nodeID, "error", err)
		h.writeError(w, http.StatusBadRequest, api.ErrCodeBatchTooLarge, err.Error())
	case errors.Is(err, coordinator.ErrValidation):
		h.logger.Warn("Validation failed", "op", op, "node_id", nodeID, "error", err)
		h.writeError(w, http.StatusBadRequest, api.ErrCodeValidation, err.Error())
	case errors.Is(err, coordinator.ErrUnknownNode):
		h.logger.Warn("Unknown node", "op", op, "node_id", nodeID)
		h.writeError(w, http.StatusNotFound, api.ErrCodeUnknownNode, err.Error())
	case errors.Is(err, coordinator.ErrResyncRequired):
		h.logger.Warn("Resync required", "op", op, "node_id", nodeID)
		h.writeError(w, http.StatusConflict, api.ErrCodeResyncRequired, err.Error())
	default:
		h.logger.Error("Sync operation failed", "op", op, "node_id", nodeID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "", "internal server error")
	}
}

func (h *SyncHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

func (h *SyncHandler) writeError(w http.ResponseWriter, status int, code, msg string) {
	h.writeJSON(w, status, api.ErrorResponse{Error: msg, Code: code})
}
