package api

import (
	"fmt"
	"net/http"

	"dailydiet/server/internal/session"

	"github.com/gin-gonic/gin"
)

// Server wraps the REST API server
type Server struct {
	handler *Handler
	router  *gin.Engine
}

// NewServer creates a new API server around the given store
func NewServer(store Store) *Server {
	handler := NewHandler(store)

	// gin.New() instead of gin.Default() so the log format stays under our
	// control
	router := gin.New()

	router.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("[%s] %s %s %d %s %s \"%s\" %s\n",
			param.TimeStamp.Format("2006/01/02 - 15:04:05"),
			param.ClientIP,
			param.Method,
			param.StatusCode,
			param.Latency,
			param.Path,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public user endpoints
	users := router.Group("/users")
	{
		users.POST("", handler.RegisterUser)
		users.POST("/login", handler.LoginUser)
		users.POST("/logout", session.Require(), handler.LogoutUser)
	}

	// Meal endpoints all require a session cookie
	meals := router.Group("/meals")
	meals.Use(session.Require())
	{
		meals.GET("", handler.ListMeals)
		meals.GET("/metrics", handler.GetMealMetrics)
		meals.GET("/:id", handler.GetMeal)
		meals.POST("", handler.CreateMeal)
		meals.PUT("/:id", handler.UpdateMeal)
		meals.DELETE("/:id", handler.DeleteMeal)
	}

	return &Server{
		handler: handler,
		router:  router,
	}
}

// GetRouter returns the router
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
