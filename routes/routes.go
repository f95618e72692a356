package routes

import (
	"net/http"
	"time"

	"whattoday/handlers"
	"whattoday/middleware"
	"whattoday/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and OAuth endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/users", hb.SignupHandler)
		api.POST("/auth/login", hb.LoginHandler)
		api.POST("/auth/tokens", hb.RefreshTokensHandler)
		api.POST("/oauth/url", hb.GoogleAuthURLHandler)
		api.POST("/oauth/sign-in", hb.GoogleSignInHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.DELETE("/auth/logout", hb.LogoutHandler)
		protected.GET("/users/me", hb.GetMeHandler)
		protected.PATCH("/users/me", hb.UpdateMeHandler)
		protected.DELETE("/users/me", hb.DeleteMeHandler)
	}
}

// RegisterActivityRoutes registers catalog and host-side activity
// endpoints.
func RegisterActivityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/activities", hb.ListActivitiesHandler)
		api.GET("/activities/:id", hb.GetActivityHandler)
		api.GET("/activities/:id/available-schedule", hb.AvailableScheduleHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("/activities", hb.CreateActivityHandler)
		protected.GET("/my-activities", hb.ListMyActivitiesHandler)
		protected.PATCH("/my-activities/:id", hb.UpdateMyActivityHandler)
		protected.DELETE("/my-activities/:id", hb.DeleteMyActivityHandler)

		protected.POST("/images/banner", hb.UploadBannerImageHandler)
		protected.POST("/images/sub", hb.UploadSubImagesHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking session
// flow: open, read, adjust selection, submit, close.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		bookingGroup.POST("/session", hb.OpenBookingSession)
		bookingGroup.GET("/session/:sessionID", hb.GetBookingSession)
		bookingGroup.PATCH("/session/:sessionID/date", hb.SetBookingDate)
		bookingGroup.PATCH("/session/:sessionID/schedule", hb.SetBookingSchedule)
		bookingGroup.PATCH("/session/:sessionID/head-count", hb.ChangeBookingHeads)
		bookingGroup.POST("/session/:sessionID/confirm", hb.SubmitBookingSession)
		bookingGroup.DELETE("/session/:sessionID", hb.CloseBookingSession)
	}
}

// RegisterReservationRoutes registers booking-side and host-side
// reservation endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/activities/:id/reservations", hb.CreateReservationHandler)
		api.GET("/my-reservations", hb.ListMyReservationsHandler)
		api.PATCH("/my-reservations/:id", hb.CancelReservationHandler)

		api.GET("/my-activities/:id/reservation-dashboard", hb.ReservationDashboardHandler)
		api.GET("/my-activities/:id/reserved-schedule", hb.ReservedScheduleHandler)
		api.GET("/my-activities/:id/reservations", hb.ListOwnerReservations)
		api.PATCH("/my-activities/:id/reservations/:reservationID", hb.UpdateReservationStatus)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterActivityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterHealthRoute(r)
}
