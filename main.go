package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"siddhi-hotel-backend/config"
	"siddhi-hotel-backend/controllers"
	"siddhi-hotel-backend/routes"
	"siddhi-hotel-backend/services"
	"siddhi-hotel-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Initialize services
	availabilityService := services.NewAvailabilityService(db)
	bookingService := services.NewBookingService(db)
	walletService := services.NewWalletService(db)
	roomService := services.NewRoomService(db)
	userService := services.NewUserService(db)
	assistantService := services.NewAssistantService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(userService, jwtSecret)
	userController := controllers.NewUserController(userService, bookingService)
	roomController := controllers.NewRoomController(roomService, availabilityService)
	bookingController := controllers.NewBookingController(bookingService, roomService, walletService)
	walletController := controllers.NewWalletController(walletService)
	assistantController := controllers.NewAssistantController(assistantService)

	router := routes.SetupRouter(
		db, jwtSecret,
		authController, userController, roomController,
		bookingController, walletController, assistantController,
	)

	addr := ":" + utils.EnvOrDefault("PORT", "4040")

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
