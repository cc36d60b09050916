package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lessonhub/internal/domain/user"
	"lessonhub/internal/handler/api"
	"lessonhub/internal/handler/middleware"
	"lessonhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, lessonHandler *api.LessonHandler, instructorHandler *api.InstructorHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, lessonHandler, instructorHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, lessonHandler *api.LessonHandler, instructorHandler *api.InstructorHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		lessons := apiGroup.Group("/lessons")
		lessons.Use(authMiddleware.RequireAuth())
		{
			addRoutes(lessons, []route{
				{Method: http.MethodPost, Path: "", Handler: lessonHandler.Book},
				{Method: http.MethodGet, Path: "/upcoming", Handler: lessonHandler.Upcoming},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: lessonHandler.Confirm},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: lessonHandler.Cancel},
			})
		}

		instructors := apiGroup.Group("/instructors")
		instructors.Use(authMiddleware.RequireAuth())
		{
			addRoutes(instructors, []route{
				{Method: http.MethodGet, Path: "", Handler: instructorHandler.List},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: instructorHandler.Slots},
				{Method: http.MethodGet, Path: "/:id/schedule", Handler: instructorHandler.Schedule},
				{
					Method:  http.MethodPost,
					Path:    "/:id/approve",
					Handler: instructorHandler.Approve,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)},
				},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(group *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		handlers := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		handlers = append(handlers, r.Mw...)
		handlers = append(handlers, r.Handler)
		group.Handle(r.Method, r.Path, handlers...)
	}
}
