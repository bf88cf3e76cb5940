package mockapi

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/yigit/alumnisphere/internal/app/models"
)

// Token errors
var (
	errInvalidToken = errors.New("invalid token")
	errExpiredToken = errors.New("token expired")
)

const tokenIssuer = "alumnisphere-mockapi"

// tokenService issues and validates the bearer tokens the mock platform
// hands out at login.
type tokenService struct {
	secret []byte
	expiry time.Duration
}

func newTokenService(secret string, expiry time.Duration) *tokenService {
	return &tokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// tokenClaims defines token content
type tokenClaims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Issue creates a signed access token for a user.
func (s *tokenService) Issue(user *models.User) (token string, expiresIn int64, err error) {
	now := time.Now()
	claims := &tokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   fmt.Sprintf("%d", user.ID),
			ID:        uuid.New().String(),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("signing token: %w", err)
	}
	return token, int64(s.expiry.Seconds()), nil
}

// Validate parses a token and returns its claims.
func (s *tokenService) Validate(tokenString string) (*tokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errExpiredToken
		}
		return nil, errInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return nil, errInvalidToken
	}
	return claims, nil
}
