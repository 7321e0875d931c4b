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

	"pousada-backend/config"
	"pousada-backend/controllers"
	"pousada-backend/routes"
	"pousada-backend/services"
	"pousada-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("Database connection established and migrations applied")

	// Services
	availabilityService := services.NewAvailabilityService(db)
	occupancyService := services.NewOccupancyService(db)
	agendaService := services.NewAgendaService(db, services.DefaultAgendaConfig())
	reservationService := services.NewReservationService(db, availabilityService)
	pilgrimageService := services.NewPilgrimageService(db)

	// Controllers
	reservationController := controllers.NewReservationController(reservationService)
	agendaController := controllers.NewAgendaController(agendaService, occupancyService, availabilityService)
	pilgrimageController := controllers.NewPilgrimageController(pilgrimageService)

	router := routes.SetupRouter(reservationController, agendaController, pilgrimageController)

	addr := ":" + utils.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
