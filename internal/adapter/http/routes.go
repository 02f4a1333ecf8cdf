package http

import (
	"tasktracker/internal/adapter/http/handlers"
	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Task       *handlers.TaskHandler
	Subtask    *handlers.SubtaskHandler
	Membership *handlers.MembershipHandler
}

// RegisterRoutes mounts the API. Health endpoints are public; everything
// else requires a bearer token.
func RegisterRoutes(r *gin.Engine, authenticator ports.Authenticator, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
	}

	secured := api.Group("")
	secured.Use(middleware.AuthMiddleware(authenticator))
	{
		secured.GET("/tasks", h.Task.ListTasks)
		secured.POST("/tasks", h.Task.CreateTask)
		secured.GET("/tasks/:id", h.Task.GetTask)
		secured.PATCH("/tasks/:id", h.Task.UpdateTask)
		secured.DELETE("/tasks/:id", h.Task.DeleteTask)

		secured.GET("/tasks/:id/subtasks", h.Subtask.ListSubtasks)
		secured.POST("/tasks/:id/subtasks", h.Subtask.CreateSubtask)
		secured.GET("/subtasks/:id", h.Subtask.GetSubtask)
		secured.PATCH("/subtasks/:id", h.Subtask.UpdateSubtask)
		secured.DELETE("/subtasks/:id", h.Subtask.DeleteSubtask)

		secured.GET("/tasks/:id/memberships", h.Membership.ListMemberships)
		secured.POST("/tasks/:id/memberships", h.Membership.AddMember)
		secured.GET("/tasks/:id/memberships/:user_id", h.Membership.GetMembership)
		secured.PATCH("/tasks/:id/memberships/:user_id", h.Membership.UpdateMemberRole)
		secured.DELETE("/tasks/:id/memberships/:user_id", h.Membership.RemoveMember)
	}
}
