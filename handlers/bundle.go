package handlers

import (
	userRepo "whattoday/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// UserRepo is needed by the auth middleware for revocation checks.
	UserRepo userRepo.UserRepository

	// Auth endpoints.
	SignupHandler        gin.HandlerFunc
	LoginHandler         gin.HandlerFunc
	RefreshTokensHandler gin.HandlerFunc
	LogoutHandler        gin.HandlerFunc
	GoogleAuthURLHandler gin.HandlerFunc
	GoogleSignInHandler  gin.HandlerFunc

	// User endpoints.
	GetMeHandler    gin.HandlerFunc
	UpdateMeHandler gin.HandlerFunc
	DeleteMeHandler gin.HandlerFunc

	// Activity endpoints.
	ListActivitiesHandler    gin.HandlerFunc
	GetActivityHandler       gin.HandlerFunc
	AvailableScheduleHandler gin.HandlerFunc
	CreateActivityHandler    gin.HandlerFunc
	ListMyActivitiesHandler  gin.HandlerFunc
	UpdateMyActivityHandler  gin.HandlerFunc
	DeleteMyActivityHandler  gin.HandlerFunc

	// Image upload endpoints.
	UploadBannerImageHandler gin.HandlerFunc
	UploadSubImagesHandler   gin.HandlerFunc

	// Booking session endpoints.
	OpenBookingSession    gin.HandlerFunc
	GetBookingSession     gin.HandlerFunc
	SetBookingDate        gin.HandlerFunc
	SetBookingSchedule    gin.HandlerFunc
	ChangeBookingHeads    gin.HandlerFunc
	SubmitBookingSession  gin.HandlerFunc
	CloseBookingSession   gin.HandlerFunc

	// Reservation endpoints.
	CreateReservationHandler    gin.HandlerFunc
	ListMyReservationsHandler   gin.HandlerFunc
	CancelReservationHandler    gin.HandlerFunc
	ReservationDashboardHandler gin.HandlerFunc
	ReservedScheduleHandler     gin.HandlerFunc
	ListOwnerReservations       gin.HandlerFunc
	UpdateReservationStatus     gin.HandlerFunc
}
