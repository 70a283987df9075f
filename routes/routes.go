package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	controllers "github.com/phillip/topup-intake-go/controllers"
	middleware "github.com/phillip/topup-intake-go/middleware"
)

// NewRouter builds the engine with recovery, request logging and CORS.
func NewRouter(d *controllers.Deps) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = 8 << 20
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	SetupRoutes(r, d)
	return r
}

func SetupRoutes(r *gin.Engine, d *controllers.Deps) {
	api := r.Group("/api")

	// public
	api.GET("/health", controllers.Health())
	api.POST("/order", controllers.CreateOrder(d))
	api.POST("/inquiry", controllers.CreateInquiry(d))
	api.POST("/suggestion", controllers.CreateSuggestion(d))
	api.POST("/admin/login", controllers.Login(d))

	// protected
	auth := middleware.AuthMiddleware(d.Sessions)

	admin := api.Group("/admin")
	admin.Use(auth)
	{
		admin.POST("/logout", controllers.Logout(d))

		admin.GET("/orders", controllers.ListOrders(d))
		admin.GET("/inquiries", controllers.ListInquiries(d))
		admin.GET("/suggestions", controllers.ListSuggestions(d))

		admin.POST("/update-status", controllers.UpdateOrderStatus(d))
		admin.DELETE("/delete-order", controllers.DeleteOrder(d))
		admin.DELETE("/delete-inquiry", controllers.DeleteInquiry(d))
		admin.DELETE("/delete-suggestion", controllers.DeleteSuggestion(d))

		admin.POST("/reply-inquiry", controllers.ReplyInquiry(d))
		admin.POST("/send-message", controllers.SendMessage(d))
	}
}
