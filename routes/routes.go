package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"siddhi-hotel-backend/controllers"
	"siddhi-hotel-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	db *gorm.DB,
	jwtSecret string,
	authC *controllers.AuthController,
	userC *controllers.UserController,
	roomC *controllers.RoomController,
	bookingC *controllers.BookingController,
	walletC *controllers.WalletController,
	assistantC *controllers.AssistantController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.Auth(db, jwtSecret)
	optionalAuth := middleware.OptionalAuth(db, jwtSecret)
	adminOnly := middleware.AdminOnly()

	auth := r.Group("/auth")
	{
		auth.POST("/register", authC.Register)
		auth.POST("/login", authC.Login)
	}

	users := r.Group("/users")
	{
		users.GET("/all", requireAuth, adminOnly, userC.GetAll)
		users.GET("/get-logged-in-profile-info", requireAuth, userC.Profile)
		users.GET("/get-by-id/:userId", requireAuth, userC.GetByID)
		users.GET("/get-user-bookings/:userId", requireAuth, userC.GetUserBookings)
		users.PUT("/update-profile/:userId", requireAuth, userC.UpdateProfile)
		users.DELETE("/delete/:userId", requireAuth, adminOnly, userC.Delete)
	}

	rooms := r.Group("/rooms")
	{
		rooms.POST("/add", requireAuth, adminOnly, roomC.Add)
		rooms.GET("/all", roomC.GetAll)
		rooms.GET("/all-available-rooms", roomC.GetAll)
		rooms.GET("/available-rooms-by-date-and-type", roomC.AvailableByDateAndType)
		rooms.GET("/types", roomC.Types)
		rooms.GET("/room-by-id/:roomId", roomC.GetByID)
		rooms.PUT("/update/:roomId", requireAuth, adminOnly, roomC.Update)
		rooms.DELETE("/delete/:roomId", requireAuth, adminOnly, roomC.Delete)
	}

	bookings := r.Group("/bookings")
	{
		bookings.POST("/book-room/:roomId/:userId", requireAuth, bookingC.BookRoom)
		bookings.GET("/all", requireAuth, adminOnly, bookingC.GetAll)
		bookings.GET("/get-by-confirmation-code/:confirmationCode", bookingC.GetByConfirmationCode)
		bookings.DELETE("/cancel/:bookingId", requireAuth, bookingC.Cancel)
	}

	wallet := r.Group("/wallet", requireAuth)
	{
		wallet.GET("/balance", walletC.Balance)
		wallet.POST("/add", walletC.Add)
		wallet.POST("/spend", walletC.Spend)
		wallet.GET("/transactions", walletC.Transactions)
		wallet.POST("/refund", walletC.Refund)
	}

	chatbot := r.Group("/chatbot")
	{
		chatbot.POST("/chat", optionalAuth, assistantC.Chat)
		chatbot.GET("/config", requireAuth, adminOnly, assistantC.GetConfig)
		chatbot.PUT("/config", requireAuth, adminOnly, assistantC.UpdateConfig)
	}

	return r
}
