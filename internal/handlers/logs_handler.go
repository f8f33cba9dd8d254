package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/pixelforge/pixelforge-api/pkg/logger"
	"go.uber.org/zap"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogsHandler receives batched frontend logs and writes them alongside the
// backend logs. The file is rotated so a chatty frontend cannot fill the disk.
type LogsHandler struct {
	writer *lumberjack.Logger
	mu     sync.Mutex
}

type LogEntry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Context   map[string]interface{} `json:"context,omitempty"`
}

type LogBatchRequest struct {
	Logs []LogEntry `json:"logs" binding:"required,max=100,dive"`
}

func NewLogsHandler(logDir string) *LogsHandler {
	return &LogsHandler{
		writer: &lumberjack.Logger{
			Filename:   filepath.Join(logDir, "frontend.log"),
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		},
	}
}

func (h *LogsHandler) ReceiveFrontendLogs(c *gin.Context) {
	var req LogBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if len(req.Logs) == 0 {
		respondError(c, http.StatusBadRequest, "No logs provided", nil)
		return
	}

	if err := h.writeLogs(req.Logs); err != nil {
		logger.Error("Failed to write frontend logs", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to write logs", err)
		return
	}

	logger.Info("Received frontend logs", zap.Int("count", len(req.Logs)))
	c.JSON(http.StatusOK, gin.H{"success": true, "received": len(req.Logs)})
}

func (h *LogsHandler) writeLogs(logs []LogEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	encoder := json.NewEncoder(h.writer)
	for _, entry := range logs {
		// Reformat log entry to match backend format
		logLine := map[string]interface{}{
			"ts":      entry.Timestamp,
			"level":   entry.Level,
			"msg":     entry.Message,
			"service": "nextjs",
		}

		if entry.Context != nil {
			for k, v := range entry.Context {
				logLine[k] = v
			}
		}

		if err := encoder.Encode(logLine); err != nil {
			return err
		}
	}

	return nil
}
