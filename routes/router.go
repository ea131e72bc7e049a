package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sudhev0011/VoterMngmtServer/auth"
	"github.com/sudhev0011/VoterMngmtServer/config"
	"github.com/sudhev0011/VoterMngmtServer/controllers"
	"github.com/sudhev0011/VoterMngmtServer/middleware"
	"github.com/sudhev0011/VoterMngmtServer/models"
	"github.com/sudhev0011/VoterMngmtServer/store"
)

func SetupRouter(cfg *config.Config, db *gorm.DB, tokens *auth.TokenService, google auth.IdentityVerifier) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	authCtl := controllers.NewAuthController(store.NewUserStore(db), tokens, google)
	voterCtl := controllers.NewVoterController(store.NewVoterStore(db))
	todoCtl := controllers.NewTodoController(store.NewTodoStore(db))

	authed := middleware.Auth(tokens)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	authRoutes.POST("/register", authCtl.Register)
	authRoutes.POST("/login", authCtl.Login)
	authRoutes.POST("/google", authCtl.GoogleLogin)
	authRoutes.GET("/check", authed, authCtl.Check)
	authRoutes.POST("/logout", authCtl.Logout)

	voters := api.Group("/voters")
	voters.GET("", voterCtl.List)
	voters.POST("", authed, adminOnly, voterCtl.Create)
	voters.PUT("/:id", authed, adminOnly, voterCtl.Update)
	voters.DELETE("/:id", authed, adminOnly, voterCtl.Delete)

	todos := api.Group("/todos", authed)
	todos.GET("", todoCtl.List)
	todos.POST("", todoCtl.Add)
	todos.GET("/stats", todoCtl.Stats)
	todos.PATCH("/bulk-update", todoCtl.BulkUpdate)
	todos.PUT("/:id", todoCtl.Update)
	todos.DELETE("/:id", todoCtl.Remove)

	router.GET("/apis", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "API is running"})
	})

	return router
}
