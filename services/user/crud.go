package user

import (
	"fmt"
	"time"

	"whattoday/models"
	"whattoday/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetByID returns the user's profile.
func (s *DefaultUserService) GetByID(userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if userRec == nil {
		return nil, fmt.Errorf("user with id %s not found", userID)
	}
	return userRec, nil
}

// Update applies a partial profile update.
func (s *DefaultUserService) Update(userID string, req models.UserUpdateRequest) (*models.User, error) {
	set := bson.M{"updated_at": time.Now()}
	if req.Nickname != nil {
		set["nickname"] = *req.Nickname
	}
	if req.ProfileImageURL != nil {
		set["profile_image_url"] = *req.ProfileImageURL
	}
	if req.Password != nil {
		if len(*req.Password) < 8 {
			return nil, fmt.Errorf("password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("update failed, please try again")
		}
		set["password_hash"] = string(hash)
	}

	if err := s.Repo.UpdateWithDocument(userID, bson.M{"$set": set}); err != nil {
		utils.GetLogger().Error("Update user failed", zap.Error(err))
		return nil, fmt.Errorf("update failed, please try again")
	}
	return s.GetByID(userID)
}

// Delete removes the account.
func (s *DefaultUserService) Delete(userID string) error {
	return s.Repo.Delete(userID)
}
