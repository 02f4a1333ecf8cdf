package handlers

import (
	"context"
	"net/http"
	"os"
	"tasktracker/internal/adapter/http/middleware"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	StatusOk       = "ok"
	StatusDown     = "down"
	StatusDisabled = "disabled"

	healthDBTimeout = 2 * time.Second
	healthTimeFmt   = "2006-01-02 15:04:05"
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Mysql string `json:"mysql"`
	Nats  string `json:"nats"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ConnectionStatus is satisfied by *nats.Conn.
type ConnectionStatus interface {
	IsConnected() bool
}

type HealthHandler struct {
	db    Pinger
	queue ConnectionStatus
}

// NewHealthHandler accepts a nil queue when notifications are log-only.
func NewHealthHandler(db Pinger, queue ConnectionStatus) *HealthHandler {
	return &HealthHandler{db: db, queue: queue}
}

// CheckHealth only fails on the database; the queue is not on the
// request path.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	if !h.checkConnectionToDatabase(c.Request.Context()) {
		statusCode = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format(healthTimeFmt),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	databaseStatus := StatusDown
	if h.checkConnectionToDatabase(c.Request.Context()) {
		databaseStatus = StatusOk
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format(healthTimeFmt),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			Mysql: databaseStatus,
			Nats:  h.queueStatus(),
		},
	})
}

func (h *HealthHandler) checkConnectionToDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}

func (h *HealthHandler) queueStatus() string {
	switch {
	case h.queue == nil:
		return StatusDisabled
	case h.queue.IsConnected():
		return StatusOk
	default:
		return StatusDown
	}
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
