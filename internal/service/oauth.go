package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"

	"github.com/ashpazyar/backend/config"
	"github.com/ashpazyar/backend/internal/models"
)

const googleAuthURL = "https://accounts.google.com/o/oauth2/v2/auth"

var ErrOAuthDisabled = errors.New("google sign-in is not configured")

// GoogleOAuthService exchanges authorization codes for Google profiles
// and maps them onto local accounts.
type GoogleOAuthService struct {
	db          *gorm.DB
	client      *resty.Client
	clientID    string
	secret      string
	redirectURL string

	// Overridable for tests.
	tokenURL    string
	userinfoURL string
}

type googleTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type googleUserinfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func NewGoogleOAuthService(db *gorm.DB, cfg config.GoogleConfig) *GoogleOAuthService {
	return &GoogleOAuthService{
		db:          db,
		client:      resty.New().SetTimeout(10 * time.Second),
		clientID:    cfg.ClientID,
		secret:      cfg.ClientSecret,
		redirectURL: cfg.RedirectURL,
		tokenURL:    "https://oauth2.googleapis.com/token",
		userinfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
	}
}

// Enabled reports whether Google sign-in is configured.
func (s *GoogleOAuthService) Enabled() bool {
	return s.clientID != "" && s.secret != ""
}

// AuthURL builds the consent-screen redirect for the given CSRF state.
func (s *GoogleOAuthService) AuthURL(state string) string {
	q := url.Values{}
	q.Set("client_id", s.clientID)
	q.Set("redirect_uri", s.redirectURL)
	q.Set("response_type", "code")
	q.Set("scope", "openid email profile")
	q.Set("state", state)
	return googleAuthURL + "?" + q.Encode()
}

// Authenticate exchanges the authorization code, fetches the Google
// profile, and resolves it to a local user. Resolution order: existing
// google_id, then existing email (the Google id gets linked), then a
// new password-less account.
func (s *GoogleOAuthService) Authenticate(ctx context.Context, code string) (*models.User, error) {
	if !s.Enabled() {
		return nil, ErrOAuthDisabled
	}

	info, err := s.fetchProfile(ctx, code)
	if err != nil {
		return nil, err
	}
	if info.Email == "" {
		return nil, errors.New("google profile has no email")
	}

	email := normalizeEmail(info.Email)

	var user models.User
	err = s.db.Where("google_id = ?", info.ID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = s.db.Where("email = ?", email).First(&user).Error
	if err == nil {
		user.GoogleID = &info.ID
		if err := s.db.Save(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	name := info.Name
	if name == "" {
		name = email
	}
	user = models.User{
		Name:     name,
		Email:    email,
		GoogleID: &info.ID,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GoogleOAuthService) fetchProfile(ctx context.Context, code string) (*googleUserinfo, error) {
	var tok googleTokenResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"code":          code,
			"client_id":     s.clientID,
			"client_secret": s.secret,
			"redirect_uri":  s.redirectURL,
			"grant_type":    "authorization_code",
		}).
		SetResult(&tok).
		Post(s.tokenURL)
	if err != nil {
		return nil, fmt.Errorf("google token exchange failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("google token exchange failed with status %d", resp.StatusCode())
	}
	if tok.AccessToken == "" {
		return nil, errors.New("google token exchange returned no access token")
	}

	var info googleUserinfo
	resp, err = s.client.R().
		SetContext(ctx).
		SetAuthToken(tok.AccessToken).
		SetResult(&info).
		Get(s.userinfoURL)
	if err != nil {
		return nil, fmt.Errorf("google userinfo request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("google userinfo request failed with status %d", resp.StatusCode())
	}

	return &info, nil
}
