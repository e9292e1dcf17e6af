package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-leave-tracker/internal/config"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/utils"
	"github.com/MKhiriev/go-leave-tracker/internal/validators"
	"github.com/MKhiriev/go-leave-tracker/models"
)

const maxDisplayNameLength = 280

// authService is the concrete implementation of AuthService. It signs
// sessions as HMAC-SHA256 JWTs whose subject is the display name; no
// accounts are stored.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued session remains valid.
	tokenDuration time.Duration

	secretMessage string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from cfg. The returned service is
// safe for concurrent use; all state is read-only after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		secretMessage: cfg.SecretMessage,
		logger:        logger,
	}
}

// SignIn validates name and issues a session token for it.
//
// Returns a *validators.ValidationError for an empty or over-long name and
// ErrTokenCreationFailed when signing fails.
func (a *authService) SignIn(ctx context.Context, name string) (models.Session, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Session{}, validators.NewFieldError(validators.FieldName, "Required")
	}
	if utf8.RuneCountInString(name) > maxDisplayNameLength {
		return models.Session{}, validators.NewFieldError(validators.FieldName,
			fmt.Sprintf("String must contain at most %d character(s)", maxDisplayNameLength))
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, name, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.SignIn").Msg("error generating token")
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("name", name).Msg("signed in")
	return sessionFromToken(token, name), nil
}

// ParseSession normalises every validation failure (expired, wrong issuer,
// malformed) to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseSession(ctx context.Context, tokenString string) (models.Session, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseSession").Msg("rejected session token")
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	name, err := token.GetName()
	if err != nil {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	return sessionFromToken(token, name), nil
}

func (a *authService) SecretMessage(ctx context.Context, session models.Session) (string, error) {
	if !session.SignedIn {
		return "", ErrUnauthorized
	}
	return a.secretMessage, nil
}

func (a *authService) Greeting(ctx context.Context, text string) string {
	return "Hello " + text
}

func sessionFromToken(token models.Token, name string) models.Session {
	session := models.Session{
		SignedIn: true,
		Name:     name,
		Token:    token.String(),
	}
	if token.ExpiresAt != nil {
		session.ExpiresAt = token.ExpiresAt.Time
	}
	return session
}
