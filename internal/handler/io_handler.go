package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logdemo/loghub/internal/service"
	"logdemo/loghub/pkg/response"
)

const (
	msgIOStarted       = "IO process started. Please provide input."
	msgIOCompleted     = "IO completed successfully"
	msgMessageRequired = "Message is required"
	msgNoMessage       = "No message found"
)

type IOHandler struct {
	ioService service.IOService
	logger    *zap.Logger
}

func NewIOHandler(ioService service.IOService, logger *zap.Logger) *IOHandler {
	return &IOHandler{ioService: ioService, logger: logger}
}

type WriteIORequest struct {
	Message string `json:"message"`
}

// Start sets the wait flag.
func (h *IOHandler) Start(c *gin.Context) {
	if err := h.ioService.Start(c.Request.Context()); err != nil {
		h.logger.Error("start io failed", zap.Error(err))
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, msgIOStarted)
}

// Write stores the message and clears the wait flag.
func (h *IOHandler) Write(c *gin.Context) {
	var req WriteIORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgMessageRequired)
		return
	}

	if err := h.ioService.Write(c.Request.Context(), req.Message); err != nil {
		switch {
		case errors.Is(err, service.ErrMessageRequired):
			response.BadRequest(c, msgMessageRequired)
		default:
			h.logger.Error("write io failed", zap.Error(err))
			response.InternalError(c, err.Error())
		}
		return
	}
	response.Success(c, msgIOCompleted)
}

func (h *IOHandler) Read(c *gin.Context) {
	message, err := h.ioService.Read(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMessageNotFound):
			response.NotFound(c, msgNoMessage)
		default:
			h.logger.Error("read io failed", zap.Error(err))
			response.InternalError(c, err.Error())
		}
		return
	}
	response.Success(c, message)
}
