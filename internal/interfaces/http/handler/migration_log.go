package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	syncapp "github.com/nickborrello/BayStateApp-sub000/internal/application/sync"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/migration"
	"github.com/nickborrello/BayStateApp-sub000/internal/interfaces/http/dto"
)

// MigrationLogHandler exposes sync run history over HTTP
type MigrationLogHandler struct {
	BaseHandler
	logs *syncapp.MigrationLogService
}

// NewMigrationLogHandler creates a new MigrationLogHandler
func NewMigrationLogHandler(logs *syncapp.MigrationLogService) *MigrationLogHandler {
	return &MigrationLogHandler{logs: logs}
}

// MigrationLogResponse is the API shape of one sync run record
type MigrationLogResponse struct {
	ID          uuid.UUID             `json:"id"`
	SyncType    migration.SyncType    `json:"sync_type"`
	Status      migration.SyncStatus  `json:"status"`
	TriggeredBy string                `json:"triggered_by"`
	Processed   int                   `json:"processed"`
	Created     int                   `json:"created"`
	Updated     int                   `json:"updated"`
	Skipped     int                   `json:"skipped"`
	Failed      int                   `json:"failed"`
	Errors      []migration.SyncError `json:"errors"`
	StartedAt   time.Time             `json:"started_at"`
	CompletedAt *time.Time            `json:"completed_at,omitempty"`
	DurationMS  int64                 `json:"duration_ms"`
}

func toLogResponse(log *migration.MigrationLog) MigrationLogResponse {
	return MigrationLogResponse{
		ID:          log.ID,
		SyncType:    log.SyncType,
		Status:      log.Status,
		TriggeredBy: log.TriggeredBy,
		Processed:   log.Processed,
		Created:     log.Created,
		Updated:     log.Updated,
		Skipped:     log.Skipped,
		Failed:      log.Failed,
		Errors:      log.Errors,
		StartedAt:   log.StartedAt,
		CompletedAt: log.CompletedAt,
		DurationMS:  log.Duration().Milliseconds(),
	}
}

// List returns migration logs, most recent first, with optional filters
func (h *MigrationLogHandler) List(c *gin.Context) {
	var req dto.ListLogsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	var filter migration.LogFilter
	if req.SyncType != "" {
		syncType := migration.SyncType(req.SyncType)
		filter.SyncType = &syncType
	}
	if req.Status != "" {
		status := migration.SyncStatus(req.Status)
		filter.Status = &status
	}
	if req.Since != "" {
		since, err := time.Parse(time.RFC3339, req.Since)
		if err != nil {
			h.BadRequest(c, "since must be an RFC 3339 timestamp")
			return
		}
		filter.StartedFrom = &since
	}

	result, err := h.logs.List(c.Request.Context(), filter, req.Page, req.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items := make([]MigrationLogResponse, len(result.Items))
	for i := range result.Items {
		items[i] = toLogResponse(&result.Items[i])
	}
	h.SuccessWithMeta(c, items, result.TotalCount, result.Page, result.PageSize)
}

// Get returns one migration log by ID
func (h *MigrationLogHandler) Get(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid log ID")
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid log ID")
		return
	}

	log, err := h.logs.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toLogResponse(log))
}

// RegisterRoutes registers migration log routes
func (h *MigrationLogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	logs := rg.Group("/migration-logs")
	{
		logs.GET("", h.List)
		logs.GET("/:id", h.Get)
	}
}
