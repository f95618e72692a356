package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"whattoday/config"
	"whattoday/database"
	activityRepoPkg "whattoday/database/repository/activity"
	reservationRepoPkg "whattoday/database/repository/reservation"
	userRepoPkg "whattoday/database/repository/user"
	"whattoday/handlers"
	"whattoday/middleware"
	"whattoday/routes"
	"whattoday/services/activity"
	"whattoday/services/booking"
	"whattoday/services/reservation"
	"whattoday/services/user"
	"whattoday/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.InitBookingCache()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	activityRepo := activityRepoPkg.NewMongoActivityRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	activityService := &activity.DefaultActivityService{
		Repo:            activityRepo,
		ReservationRepo: reservationRepo,
	}
	reservationService := &reservation.DefaultReservationService{
		Repo:         reservationRepo,
		ActivityRepo: activityRepo,
	}

	sessionStore := booking.NewRedisSessionStore(
		utils.GetBookingCacheClient(),
		time.Duration(config.AppConfig.BookingSessionTTLMin)*time.Minute,
	)
	bookingService := &booking.DefaultBookingSessionService{
		Store:        sessionStore,
		ActivityRepo: activityRepo,
		Reservations: reservationService,
		Notifier:     booking.LogNotifier{},
	}

	// handlers.
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	activityHandler := handlers.NewActivityHandler(activityService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	reservationHandler := handlers.NewReservationHandler(reservationService)
	storageHandler := handlers.NewStorageHandler(cloudinaryStorageService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth endpoints.
		SignupHandler:        authHandler.SignupHandler,
		LoginHandler:         authHandler.LoginHandler,
		RefreshTokensHandler: authHandler.RefreshTokensHandler,
		LogoutHandler:        authHandler.LogoutHandler,
		GoogleAuthURLHandler: authHandler.GoogleAuthURLHandler,
		GoogleSignInHandler:  authHandler.GoogleSignInHandler,

		// User endpoints.
		GetMeHandler:    userHandler.GetMeHandler,
		UpdateMeHandler: userHandler.UpdateMeHandler,
		DeleteMeHandler: userHandler.DeleteMeHandler,

		// Activity endpoints.
		ListActivitiesHandler:    activityHandler.ListActivitiesHandler,
		GetActivityHandler:       activityHandler.GetActivityHandler,
		AvailableScheduleHandler: activityHandler.AvailableScheduleHandler,
		CreateActivityHandler:    activityHandler.CreateActivityHandler,
		ListMyActivitiesHandler:  activityHandler.ListMyActivitiesHandler,
		UpdateMyActivityHandler:  activityHandler.UpdateMyActivityHandler,
		DeleteMyActivityHandler:  activityHandler.DeleteMyActivityHandler,

		// Image upload endpoints.
		UploadBannerImageHandler: storageHandler.UploadBannerImageHandler,
		UploadSubImagesHandler:   storageHandler.UploadSubImagesHandler,

		// Booking session endpoints.
		OpenBookingSession:   bookingHandler.OpenBookingSession,
		GetBookingSession:    bookingHandler.GetBookingSession,
		SetBookingDate:       bookingHandler.SetBookingDate,
		SetBookingSchedule:   bookingHandler.SetBookingSchedule,
		ChangeBookingHeads:   bookingHandler.ChangeBookingHeads,
		SubmitBookingSession: bookingHandler.SubmitBookingSession,
		CloseBookingSession:  bookingHandler.CloseBookingSession,

		// Reservation endpoints.
		CreateReservationHandler:    reservationHandler.CreateReservationHandler,
		ListMyReservationsHandler:   reservationHandler.ListMyReservationsHandler,
		CancelReservationHandler:    reservationHandler.CancelReservationHandler,
		ReservationDashboardHandler: reservationHandler.ReservationDashboardHandler,
		ReservedScheduleHandler:     reservationHandler.ReservedScheduleHandler,
		ListOwnerReservations:       reservationHandler.ListOwnerReservations,
		UpdateReservationStatus:     reservationHandler.UpdateReservationStatus,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background health checks for /health.
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetAuthCacheClient(),
		utils.GetBookingCacheClient(),
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("Starting server on %s...", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}
