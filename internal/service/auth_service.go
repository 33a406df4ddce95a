package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"deneme-api/internal/config"
	"deneme-api/internal/domain"
	"deneme-api/internal/dto"
	"deneme-api/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// AuthService defines the interface for authentication operations. Admin
// login is a static credential check; social sign-in goes through a
// provider registry whose mock entries fabricate one fixed identity per
// provider. The identity in the returned claims is used verbatim as the
// statistics ledger user key, so swapping in real credential verification
// never touches the quiz or stats contracts.
type AuthService interface {
	AdminLogin(ctx context.Context, email, password string) (*dto.TokenResponse, error)
	SocialSignIn(ctx context.Context, provider string) (*dto.TokenResponse, error)
	// GoogleLoginURL is the non-mock sign-in path: the authorization URL a
	// real Google flow would redirect to.
	GoogleLoginURL(state string) string
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	RefreshToken(ctx context.Context, refreshTokenString string) (*dto.TokenResponse, error)
}

type authServiceImpl struct {
	appConfig    *config.Config
	oauth2Config *oauth2.Config
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(appConfig *config.Config) (AuthService, error) {
	if len(appConfig.Auth.JWTSecretKey) < 32 {
		return nil, errors.New("jwt secret key must be at least 32 bytes long")
	}
	return &authServiceImpl{
		appConfig: appConfig,
		oauth2Config: &oauth2.Config{
			ClientID:     appConfig.Auth.GoogleOAuth.ClientID,
			ClientSecret: appConfig.Auth.GoogleOAuth.ClientSecret,
			RedirectURL:  appConfig.Auth.GoogleOAuth.RedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
			Endpoint:     google.Endpoint,
		},
	}, nil
}

func (s *authServiceImpl) AdminLogin(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	cfg := s.appConfig.Auth
	if !strings.EqualFold(strings.TrimSpace(email), cfg.AdminEmail) || password != cfg.AdminPassword {
		logger.Get().Warn("Admin login rejected", zap.String("email", email))
		return nil, domain.NewInvalidCredentialsError()
	}
	logger.Get().Info("Admin logged in", zap.String("identity", cfg.AdminEmail))
	return s.issueTokens(RoleAdmin, cfg.AdminEmail)
}

func (s *authServiceImpl) SocialSignIn(ctx context.Context, provider string) (*dto.TokenResponse, error) {
	if !s.appConfig.Auth.MockProviders {
		return nil, domain.NewError(domain.ErrUnauthorized, "Social sign-in requires the OAuth callback flow", nil)
	}
	identity, ok := s.appConfig.Auth.Providers[strings.ToLower(provider)]
	if !ok {
		return nil, domain.NewUnknownProviderError(provider)
	}
	logger.Get().Info("User signed in via mock provider",
		zap.String("provider", provider),
		zap.String("identity", identity),
	)
	return s.issueTokens(RoleUser, identity)
}

func (s *authServiceImpl) GoogleLoginURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (s *authServiceImpl) issueTokens(role, identity string) (*dto.TokenResponse, error) {
	accessToken, err := s.createJWT(role, identity, s.appConfig.Auth.AccessTokenTTL, tokenTypeAccess)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, err := s.createJWT(role, identity, s.appConfig.Auth.RefreshTokenTTL, tokenTypeRefresh)
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh token: %w", err)
	}
	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         role,
		Identity:     identity,
	}, nil
}

func (s *authServiceImpl) createJWT(role, identity string, ttl time.Duration, tokenType string) (string, error) {
	claims := dto.AuthClaims{
		Identity:  identity,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   identity,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.appConfig.Auth.JWTSecretKey))
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.appConfig.Auth.JWTSecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Warn("JWT token expired", zap.Error(err))
		} else {
			logger.Get().Warn("JWT validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	if claims, ok := token.Claims.(*dto.AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidJWTToken
}

func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshTokenString string) (*dto.TokenResponse, error) {
	claims, err := s.ValidateJWT(ctx, refreshTokenString)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}
	if claims.TokenType != tokenTypeRefresh {
		return nil, errors.New("not a refresh token")
	}

	logger.Get().Info("JWT token refreshed", zap.String("identity", claims.Identity))
	return s.issueTokens(claims.Role, claims.Identity)
}
