package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"careercompass-backend/internal/chat"
	"careercompass-backend/internal/llm"
	"careercompass-backend/internal/resume"
	"careercompass-backend/internal/services/health"
	"careercompass-backend/internal/shared/config"
	"careercompass-backend/internal/shared/server/middleware"
)

// NewRouter constructs the gin engine with middleware and routes registered.
// The LLM client is injected so tests can swap in stub gateways.
func NewRouter(cfg config.Config, client llm.Client) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	healthSvc := health.NewService()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, healthSvc.Status())
	})

	chat.NewHandler(chat.NewService(client)).RegisterRoutes(r)
	resume.NewHandler(resume.NewService(client)).RegisterRoutes(r)

	return r
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
