package http

import (
	"github.com/gin-gonic/gin"

	"github.com/KaushVerse/nginx-docker/internal/adapter/http/handlers"
	"github.com/KaushVerse/nginx-docker/internal/adapter/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	systemHandler *handlers.SystemHandler,
	todoHandler *handlers.TodoHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.GET("/test", systemHandler.Test)
		api.GET("/whoami", systemHandler.WhoAmI)

		api.GET("/todos", todoHandler.ListTodos)
		api.POST("/todos", todoHandler.CreateTodo)
		api.PUT("/todos/:id", todoHandler.UpdateTodo)
		api.PATCH("/todos/:id/toggle", todoHandler.ToggleTodo)
		api.DELETE("/todos/:id", todoHandler.DeleteTodo)
	}
}
