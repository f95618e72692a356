package user

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"whattoday/config"
	"whattoday/models"
	"whattoday/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// googleUserInfo holds the profile fields used from Google's userinfo
// endpoint.
type googleUserInfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func googleOAuthConfig() (*oauth2.Config, error) {
	cfg := config.AppConfig
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRedirectURL == "" {
		return nil, fmt.Errorf("google oauth is not configured")
	}
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}, nil
}

// GoogleAuthURL returns the consent-screen URL for the given state.
func (s *DefaultUserService) GoogleAuthURL(state string) (string, error) {
	oauthCfg, err := googleOAuthConfig()
	if err != nil {
		return "", err
	}
	return oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

// GoogleSignIn exchanges the authorization code, fetches the Google
// profile, signs the user up on first login, and issues a token pair.
func (s *DefaultUserService) GoogleSignIn(code string) (*AuthResponse, error) {
	oauthCfg, err := googleOAuthConfig()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	token, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		utils.GetLogger().Warn("GoogleSignIn: code exchange failed", zap.Error(err))
		return nil, fmt.Errorf("google sign-in failed, please try again")
	}

	info, err := fetchGoogleUserInfo(ctx, oauthCfg, token)
	if err != nil {
		utils.GetLogger().Warn("GoogleSignIn: userinfo fetch failed", zap.Error(err))
		return nil, fmt.Errorf("google sign-in failed, please try again")
	}
	if info.Email == "" {
		return nil, fmt.Errorf("google account has no email address")
	}

	userRec, err := s.Repo.GetByEmail(info.Email)
	if err != nil {
		utils.GetLogger().Error("GoogleSignIn: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("google sign-in failed, please try again")
	}

	if userRec == nil {
		userRec = &models.User{
			ID:              uuid.New().String(),
			Email:           info.Email,
			Nickname:        info.Name,
			ProfileImageURL: info.Picture,
			Provider:        models.ProviderGoogle,
		}
		if err := s.Repo.Create(userRec); err != nil {
			utils.GetLogger().Error("GoogleSignIn: failed to create user", zap.Error(err))
			return nil, fmt.Errorf("google sign-in failed, please try again")
		}
	} else if userRec.Provider != models.ProviderGoogle {
		return nil, fmt.Errorf("a local account already exists for this email")
	}

	return s.issueTokens(userRec)
}

func fetchGoogleUserInfo(ctx context.Context, oauthCfg *oauth2.Config, token *oauth2.Token) (*googleUserInfo, error) {
	client := oauthCfg.Client(ctx, token)
	resp, err := client.Get(googleUserinfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch google userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode google userinfo: %w", err)
	}
	return &info, nil
}
