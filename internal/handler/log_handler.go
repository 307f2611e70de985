package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logdemo/loghub/internal/service"
	"logdemo/loghub/pkg/response"
)

const msgWaitingForInput = "Waiting for user input before continuing..."

type LogHandler struct {
	ioService service.IOService
	logger    *zap.Logger
}

func NewLogHandler(ioService service.IOService, logger *zap.Logger) *LogHandler {
	return &LogHandler{ioService: ioService, logger: logger}
}

// List returns sampled logs, or a waiting status while input is pending.
func (h *LogHandler) List(c *gin.Context) {
	result, err := h.ioService.Logs(c.Request.Context())
	if err != nil {
		h.logger.Error("get logs failed", zap.Error(err))
		response.InternalError(c, err.Error())
		return
	}
	if result.Waiting {
		response.Waiting(c, msgWaitingForInput)
		return
	}
	response.Logs(c, result.Logs)
}

func Health(c *gin.Context) {
	response.Healthy(c)
}
