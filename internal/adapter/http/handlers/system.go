package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KaushVerse/nginx-docker/internal/adapter/http/dto"
)

// BackendInstanceHeader is set by the nginx load balancer in front of the API.
const BackendInstanceHeader = "X-Backend-Instance"

type SystemHandler struct {
	getenv   func(string) string
	hostname func() (string, error)
	pid      func() int
}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{
		getenv:   os.Getenv,
		hostname: os.Hostname,
		pid:      os.Getpid,
	}
}

func (h *SystemHandler) Test(c *gin.Context) {
	backend := h.getenv("HOSTNAME")
	zap.L().Info("handled by backend", zap.String("backend", backend))

	c.JSON(http.StatusOK, dto.InstanceInfo{
		Message:                "API response",
		BackendInstance:        backend,
		NginxForwardedInstance: c.GetHeader(BackendInstanceHeader),
	})
}

func (h *SystemHandler) WhoAmI(c *gin.Context) {
	hostname, err := h.hostname()
	if err != nil {
		zap.L().Warn("failed to resolve hostname", zap.Error(err))
	}

	c.JSON(http.StatusOK, dto.WhoAmI{
		Hostname: hostname,
		PID:      h.pid(),
	})
}
