package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess  = "success"
	StatusWaiting  = "waiting"
	StatusNotFound = "not_found"
	StatusHealthy  = "healthy"
)

type StatusResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message,omitempty"`
	Logs    []string `json:"logs,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func Success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, StatusResponse{Status: StatusSuccess, Message: message})
}

func Logs(c *gin.Context, logs []string) {
	c.JSON(http.StatusOK, StatusResponse{Status: StatusSuccess, Logs: logs})
}

func Waiting(c *gin.Context, message string) {
	c.JSON(http.StatusOK, StatusResponse{Status: StatusWaiting, Message: message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, StatusResponse{Status: StatusNotFound, Message: message})
}

func Healthy(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{Status: StatusHealthy})
}

func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorResponse{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
