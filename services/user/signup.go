package user

import (
	"fmt"

	"whattoday/models"
	"whattoday/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new local account. Email addresses are unique
// across providers.
func (s *DefaultUserService) Register(req models.UserSignupRequest) (*models.User, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}

	newUser := &models.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Nickname:     req.Nickname,
		PasswordHash: string(hash),
		Provider:     models.ProviderLocal,
	}
	if err := s.Repo.Create(newUser); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	return newUser, nil
}
