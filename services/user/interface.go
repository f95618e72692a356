package user

import (
	userRepo "whattoday/database/repository/user"
	"whattoday/models"
)

// AuthResponse carries the token pair issued on login, refresh and OAuth
// sign-in.
type AuthResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Nickname     string `json:"nickname"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// UserService defines account and authentication operations.
type UserService interface {
	Register(req models.UserSignupRequest) (*models.User, error)
	Authenticate(email, password string) (*AuthResponse, error)
	RefreshTokens(refreshToken string) (*AuthResponse, error)
	Logout(userID string) error

	GoogleAuthURL(state string) (string, error)
	GoogleSignIn(code string) (*AuthResponse, error)

	GetByID(userID string) (*models.User, error)
	Update(userID string, req models.UserUpdateRequest) (*models.User, error)
	Delete(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
