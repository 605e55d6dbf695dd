package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-hair-salon/internal/config"
	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/internal/store"
	"github.com/MKhiriev/go-hair-salon/internal/utils"
	"github.com/MKhiriev/go-hair-salon/models"
)

// authService is the concrete implementation of AuthService.
// Tokens are HS256 JWTs carrying only the account email; roles are always
// looked up in the accounts collection, never read from the token.
type authService struct {
	// userRepository is used to check that an account exists and to read its
	// role.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// IssueToken signs a token for email if an account with that email exists.
//
// Returns:
//   - ErrAccountNotFound if email is empty or no account matches.
//   - A wrapped storage error if the lookup fails.
//   - ErrTokenCreationFailed if signing fails.
func (a *authService) IssueToken(ctx context.Context, email string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		return models.Token{}, ErrAccountNotFound
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, email); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("email", email).Msg("token requested for unknown account")
			return models.Token{}, ErrAccountNotFound
		}
		log.Err(err).Str("email", email).Msg("account lookup failed")
		return models.Token{}, fmt.Errorf("account lookup failed: %w", err)
	}

	token, err := utils.GenerateJWTToken(email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("email", email).Msg("token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, foreign signature, non-HS256 algorithm,
// malformed, empty email) is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// IsAdmin reports whether the account with the given email has the admin
// role. An unknown email is not an error: it simply is not an admin.
func (a *authService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("email", email).Msg("account lookup failed")
		return false, fmt.Errorf("account lookup failed: %w", err)
	}

	return user.IsAdmin(), nil
}
