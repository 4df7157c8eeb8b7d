package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/cache"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/utils"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/pkg/schoolapi"
)

// LoginResult is what the console receives after a successful login.
type LoginResult struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expiresAt"`
	Role      string             `json:"role"`
	Admin     models.SchoolAdmin `json:"admin"`
}

// AuthService forwards console logins to the backend and issues console
// tokens that stand in for the backend token.
type AuthService struct {
	backend Backend
	creds   *cache.CredentialStore
	jwt     *utils.JWTManager
}

// NewAuthService constructs an AuthService.
func NewAuthService(backend Backend, creds *cache.CredentialStore, jwt *utils.JWTManager) *AuthService {
	return &AuthService{backend: backend, creds: creds, jwt: jwt}
}

// Login authenticates against the backend and returns a console token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	log.Debug().Str("email", email).Msg("Login attempt")

	resp, err := s.backend.Login(ctx, email, password)
	if err != nil {
		switch schoolapi.StatusCode(err) {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			log.Warn().Str("email", email).Msg("Backend rejected credentials")
			return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, schoolapi.ErrorMessage(err))
		}
		return nil, err
	}

	tokenID := uuid.NewString()
	if err := s.creds.Put(ctx, tokenID, resp.Token, s.jwt.TTL()); err != nil {
		return nil, fmt.Errorf("store credential: %w", err)
	}

	subject := strconv.Itoa(resp.Admin.ID)
	if resp.Admin.ID == 0 {
		subject = email
	}
	token, err := s.jwt.Generate(tokenID, subject, resp.Admin.Name, email, resp.Role)
	if err != nil {
		_ = s.creds.Revoke(ctx, tokenID)
		return nil, err
	}

	log.Info().Str("email", email).Str("role", resp.Role).Msg("Login successful")
	return &LoginResult{
		Token:     token,
		ExpiresAt: time.Now().Add(s.jwt.TTL()),
		Role:      resp.Role,
		Admin:     resp.Admin,
	}, nil
}

// Resolve validates a console token and returns its claims with the backend
// token it stands for.
func (s *AuthService) Resolve(ctx context.Context, token string) (*utils.Claims, string, error) {
	claims, err := s.jwt.Validate(token)
	if err != nil {
		return nil, "", err
	}
	upstream, err := s.creds.Get(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, cache.ErrCredentialNotFound) {
			return nil, "", utils.ErrInvalidToken
		}
		return nil, "", err
	}
	return claims, upstream, nil
}

// Logout revokes the backend token behind a console token.
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	if err := s.creds.Revoke(ctx, tokenID); err != nil {
		return err
	}
	log.Info().Str("token_id", tokenID).Msg("Logout")
	return nil
}
