package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pousada-backend/controllers"
	"pousada-backend/middleware"
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
	rc *controllers.ReservationController,
	ac *controllers.AgendaController,
	pc *controllers.PilgrimageController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())

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

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", controllers.GetRooms)
			rooms.POST("", controllers.CreateRoom)
			rooms.PATCH("/:id", controllers.UpdateRoom)
			rooms.PUT("/:id", controllers.UpdateRoom)
			rooms.DELETE("/:id", controllers.DeactivateRoom)
		}

		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", controllers.GetRoomTypes)
			roomTypes.POST("", controllers.CreateRoomType)
			roomTypes.DELETE("/:id", controllers.DeleteRoomType)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", rc.GetReservations)
			reservations.POST("", rc.CreateReservation)
			reservations.GET("/:id", rc.GetReservation)
			reservations.PATCH("/:id/status", rc.UpdateReservationStatus)
			reservations.POST("/:id/cancel", rc.CancelReservation)
		}

		pilgrimages := api.Group("/pilgrimages")
		{
			pilgrimages.GET("", pc.GetPilgrimages)
			pilgrimages.POST("", pc.CreatePilgrimage)
			pilgrimages.GET("/:id", pc.GetPilgrimage)
			pilgrimages.GET("/:id/current-occurrence", pc.GetCurrentOccurrence)
			pilgrimages.PATCH("/:id", pc.UpdatePilgrimage)
			pilgrimages.PATCH("/:id/status", pc.SetPilgrimageStatus)
		}

		agenda := api.Group("/agenda")
		{
			agenda.GET("", ac.GetMonthAgenda)
			agenda.GET("/occupancy", ac.GetMonthlyOccupancy)
			agenda.GET("/available-rooms", ac.GetAvailableRooms)
			agenda.GET("/check", ac.CheckAvailability)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/pousada", controllers.GetPousadaSettings)
			settings.PUT("/pousada", controllers.UpdatePousadaSettings)
		}
	}

	return r
}
