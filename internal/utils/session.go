package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/obakeng/academy-meals/internal/model"
)

// SessionToken is a signed HS256 JWT binding a request to an authenticated
// user. It is carried in an HttpOnly cookie rather than a bearer header
// because every page of the application is browser-driven.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs a session JWT carrying the user id as
// subject and the account role. The claims are what the session middleware
// later injects into the request context.
func NewSessionToken(secret string, userID uint64, role model.Role, ttlMin int) (SessionToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role.String(),
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}
