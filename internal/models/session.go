package models

import "github.com/golang-jwt/jwt/v5"

// SessionCookieName is the admin session cookie.
const SessionCookieName = "admin_session"

// SessionClaims is the signed payload carried by the session cookie.
type SessionClaims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}
