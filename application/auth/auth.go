package auth

import (
	"context"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/rental-commerce/cmd/config"
	redisrepo "github.com/muhammadheryan/rental-commerce/repository/redis"
)

// AuthApp validates admin tokens issued by the auth service. This service
// never issues tokens itself; it checks the signature and the live session.
type AuthApp interface {
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
}

type authAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
}

func NewAuthApp(config *config.Config, redisRepo redisrepo.Repository) AuthApp {
	return &authAppImpl{
		config:    config,
		redisRepo: redisRepo,
	}
}

func (s *authAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	// Parse token
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	// Extract claims
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid claims")
	}

	// Extract userID from Subject
	userIDStr := claims.Subject
	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token")
	}

	// Extract JTI (Token ID)
	jti := claims.ID
	if jti == "" {
		return 0, fmt.Errorf("token missing jti")
	}

	// Check Redis session key
	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}

	// Compare Redis userID with claims.Subject
	if redisUserID != userID {
		return 0, fmt.Errorf("token does not match user session")
	}

	return userID, nil
}
