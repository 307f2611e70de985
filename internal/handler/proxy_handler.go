package handler

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logdemo/loghub/internal/proxy"
	"logdemo/loghub/pkg/response"
)

const contentTypeJSON = "application/json; charset=utf-8"

// ProxyHandler relays UI actions to the backend service.
type ProxyHandler struct {
	backend *proxy.BackendClient
	logger  *zap.Logger
}

func NewProxyHandler(backend *proxy.BackendClient, logger *zap.Logger) *ProxyHandler {
	return &ProxyHandler{backend: backend, logger: logger}
}

func (h *ProxyHandler) Logs(c *gin.Context) {
	h.relay(c, func(ctx context.Context) (*proxy.Reply, error) {
		return h.backend.Logs(ctx)
	})
}

func (h *ProxyHandler) StartIO(c *gin.Context) {
	h.relay(c, func(ctx context.Context) (*proxy.Reply, error) {
		return h.backend.StartIO(ctx)
	})
}

func (h *ProxyHandler) WriteIO(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	h.relay(c, func(ctx context.Context) (*proxy.Reply, error) {
		return h.backend.WriteIO(ctx, body)
	})
}

func (h *ProxyHandler) ReadIO(c *gin.Context) {
	h.relay(c, func(ctx context.Context) (*proxy.Reply, error) {
		return h.backend.ReadIO(ctx)
	})
}

func (h *ProxyHandler) relay(c *gin.Context, call func(ctx context.Context) (*proxy.Reply, error)) {
	reply, err := call(c.Request.Context())
	if err != nil {
		h.logger.Warn("backend call failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		response.InternalError(c, err.Error())
		return
	}
	c.Data(reply.StatusCode, contentTypeJSON, reply.Body)
}
