package user

import (
	"context"
	"fmt"
	"time"

	"whattoday/models"
	"whattoday/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies the password and issues a fresh token pair. The
// access token hash is stored both in the auth cache and on the user
// document, so the auth middleware can fall back to Mongo on cache miss.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if userRec.Provider != models.ProviderLocal {
		return nil, fmt.Errorf("this account signs in with %s", userRec.Provider)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueTokens(userRec)
}

// RefreshTokens exchanges a valid refresh token for a new token pair.
func (s *DefaultUserService) RefreshTokens(refreshToken string) (*AuthResponse, error) {
	userID, err := utils.ExtractIDFromToken(refreshToken, "refresh")
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		utils.GetLogger().Error("RefreshTokens: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	return s.issueTokens(userRec)
}

// Logout revokes the current access token by clearing both the cache
// entry and the stored hash.
func (s *DefaultUserService) Logout(userID string) error {
	ctx := context.Background()
	cacheKey := utils.AuthCachePrefix + userID
	if err := utils.GetAuthCacheClient().Del(ctx, cacheKey).Err(); err != nil {
		utils.GetLogger().Error("Logout: failed to clear token cache", zap.Error(err))
	}

	update := bson.M{"$set": bson.M{"token_hash": "", "updated_at": time.Now()}}
	if err := s.Repo.UpdateWithDocument(userID, update); err != nil {
		return fmt.Errorf("logout failed, please try again")
	}
	return nil
}

// issueTokens generates an access/refresh pair and records the access
// token hash for revocation checks.
func (s *DefaultUserService) issueTokens(userRec *models.User) (*AuthResponse, error) {
	accessToken, err := utils.GenerateToken(userRec.ID, "access", utils.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	refreshToken, err := utils.GenerateToken(userRec.ID, "refresh", utils.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	tokenHash := utils.HashToken(accessToken)

	ctx := context.Background()
	cacheKey := utils.AuthCachePrefix + userRec.ID
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Error("issueTokens: failed to cache token hash", zap.Error(err))
	}

	update := bson.M{"$set": bson.M{"token_hash": tokenHash, "updated_at": time.Now()}}
	if err := s.Repo.UpdateWithDocument(userRec.ID, update); err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:           userRec.ID,
		Email:        userRec.Email,
		Nickname:     userRec.Nickname,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
