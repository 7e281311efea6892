package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jefferson5286/taskmanage/internal/api/task"
	"github.com/jefferson5286/taskmanage/internal/api/user"
	"github.com/jefferson5286/taskmanage/internal/repository"
	"github.com/jefferson5286/taskmanage/internal/service"
)

// SetupRouter configures all routes on top of the given store
func SetupRouter(r *gin.Engine, store *repository.Store) {
	// CORS middleware
	r.Use(CORSMiddleware())

	// Health check
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task Manage API is running",
			"version": "1.0.0",
		})
	})

	auth := service.NewAuth(store)
	guard := service.NewGuard(store)
	tasks := service.NewTasks(store, guard)

	userHandler := user.NewHandler(auth)
	taskHandler := task.NewHandler(tasks)

	userRoutes := r.Group("/user")
	{
		userRoutes.POST("/register", userHandler.Register)
		userRoutes.POST("/login", userHandler.Login)
	}

	taskRoutes := r.Group("/task")
	{
		taskRoutes.POST("/create", taskHandler.Create)
		taskRoutes.GET("/list/:user_reference", taskHandler.List)
		taskRoutes.PUT("/update", taskHandler.Update)
		taskRoutes.DELETE("/delete/:user/:task", taskHandler.Delete)
		taskRoutes.DELETE("/clear/:user", taskHandler.Clear)
	}
}

// CORSMiddleware provides CORS support
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
