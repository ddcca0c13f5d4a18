package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	syncapp "github.com/nickborrello/BayStateApp-sub000/internal/application/sync"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/legacy"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/migration"
	"github.com/nickborrello/BayStateApp-sub000/internal/interfaces/http/dto"
)

// maxUploadSize bounds manually uploaded feed documents (50MB)
const maxUploadSize = 50 * 1024 * 1024

// triggeredByAPI tags runs started through the HTTP API
const triggeredByAPI = "api"

// ConnectionTester probes the legacy storefront without transferring data
type ConnectionTester interface {
	TestConnection(ctx context.Context) (bool, string)
}

// SyncHandler exposes migration runs over HTTP
type SyncHandler struct {
	BaseHandler
	dispatcher *syncapp.Dispatcher
	tester     ConnectionTester
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(dispatcher *syncapp.Dispatcher, tester ConnectionTester) *SyncHandler {
	return &SyncHandler{dispatcher: dispatcher, tester: tester}
}

// RunSyncRequest is the body of a sync trigger request. Order filters are
// ignored for product and customer runs; limit is ignored for order runs.
type RunSyncRequest struct {
	Limit      int    `json:"limit" binding:"omitempty,min=0"`
	StartOrder string `json:"start_order"`
	EndOrder   string `json:"end_order"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// Run triggers a fetch-and-sync run for the type in the path
func (h *SyncHandler) Run(c *gin.Context) {
	syncType := migration.SyncType(c.Param("type"))
	if !syncType.IsValid() {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidSyncType, "sync type must be one of: products, customers, orders")
		return
	}

	var req RunSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	summary, err := h.dispatcher.Run(c.Request.Context(), syncType, syncapp.RunRequest{
		Limit: req.Limit,
		Query: legacy.OrderQuery{
			StartOrder: req.StartOrder,
			EndOrder:   req.EndOrder,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			Limit:      req.Limit,
		},
		TriggeredBy: triggeredByAPI,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// Upload runs the sync pipeline over a feed document in the request body,
// skipping the legacy transport entirely
func (h *SyncHandler) Upload(c *gin.Context) {
	syncType := migration.SyncType(c.Param("type"))
	if !syncType.IsValid() {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidSyncType, "sync type must be one of: products, customers, orders")
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxUploadSize+1))
	if err != nil {
		h.BadRequest(c, "Failed to read request body")
		return
	}
	if len(body) == 0 {
		h.BadRequest(c, "Request body is empty")
		return
	}
	if len(body) > maxUploadSize {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeValidation, "document exceeds maximum size of 50MB")
		return
	}

	summary, err := h.dispatcher.RunDocument(c.Request.Context(), syncType, string(body), "upload")
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// TestConnectionResponse reports whether the legacy storefront answered
type TestConnectionResponse struct {
	Reachable bool   `json:"reachable"`
	Message   string `json:"message"`
}

// TestConnection probes the legacy storefront credentials and endpoint
func (h *SyncHandler) TestConnection(c *gin.Context) {
	ok, message := h.tester.TestConnection(c.Request.Context())
	h.Success(c, TestConnectionResponse{Reachable: ok, Message: message})
}

// RegisterRoutes registers sync routes
func (h *SyncHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sync := rg.Group("/sync")
	{
		sync.GET("/test-connection", h.TestConnection)
		sync.POST("/:type", h.Run)
		sync.POST("/:type/upload", h.Upload)
	}
}
