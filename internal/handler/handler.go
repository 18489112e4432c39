package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yatube/backend/internal/config"
	"yatube/backend/internal/hub"
	"yatube/backend/internal/metrics"
	"yatube/backend/internal/storage"
	"yatube/backend/internal/store"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// Handler serves the HTTP surface on top of the entity store.
type Handler struct {
	store   *store.Store
	storage storage.Storage
	hub     *hub.Hub
	metrics *metrics.Metrics
	logger  *zap.Logger
	cfg     *config.Config
}

// Deps are the collaborators a Handler needs. Hub, Metrics and Logger are optional.
type Deps struct {
	Store   *store.Store
	Storage storage.Storage
	Hub     *hub.Hub
	Metrics *metrics.Metrics
	Logger  *zap.Logger
	Config  *config.Config
}

// New creates a Handler.
func New(d Deps) *Handler {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:   d.Store,
		storage: d.Storage,
		hub:     d.Hub,
		metrics: d.Metrics,
		logger:  logger,
		cfg:     d.Config,
	}
}

func (h *Handler) pageSize() int {
	if h.cfg.PageSize <= 0 {
		return 10
	}
	return h.cfg.PageSize
}

// NotFound answers any unknown path.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
}

// fail maps a store error onto a response: ErrNotFound becomes 404, anything else 500.
func (h *Handler) fail(c *gin.Context, err error, what string) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
		return
	}
	h.logger.Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("entity", what),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// idParam parses a numeric path parameter. Malformed ids are reported as 404,
// the same as ids that do not exist.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		NotFound(c)
		return 0, false
	}
	return uint(id), true
}

func postURL(id uint) string {
	return "/posts/" + strconv.FormatUint(uint64(id), 10) + "/"
}

func profileURL(username string) string {
	return "/profile/" + url.PathEscape(username) + "/"
}
