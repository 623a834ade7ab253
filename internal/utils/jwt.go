package utils // package utils provides helper functions for session tokens, hashing and ids

import (
    "errors" // sentinel error for malformed tokens
    "time"   // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// ErrInvalidToken is returned when a session token fails signature,
// expiry or claim checks.
var ErrInvalidToken = errors.New("invalid session token")

// SessionToken represents a signed JWT that identifies a stored session.
// The Token field contains the JWT string and Exp its expiry.  The token
// travels in the session cookie or in the Authorization header.
type SessionToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// SessionClaims are the values carried by a session token.  The session id
// is the authority; subject and role are informational copies so that
// middleware can log without a store lookup.
type SessionClaims struct {
    SessionID string
    UserID    string
    Role      string
    Exp       time.Time
}

// NewSessionToken builds and signs an HS256 JWT for a session.  The JWT
// includes the standard claims subject (sub), expiration (exp) and issued
// at (iat), plus the session id (sid) and role.
func NewSessionToken(secret, sessionID, userID, role string, ttl time.Duration) (SessionToken, error) {
    now := time.Now().UTC()
    exp := now.Add(ttl)
    claims := jwt.MapClaims{
        "sid":  sessionID,
        "sub":  userID,
        "role": role,
        "exp":  exp.Unix(),
        "iat":  now.Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return SessionToken{}, err
    }
    return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken verifies raw with secret and extracts its claims.  Only
// HMAC signing methods are accepted.
func ParseSessionToken(secret, raw string) (SessionClaims, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return SessionClaims{}, ErrInvalidToken
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return SessionClaims{}, ErrInvalidToken
    }
    sid, _ := claims["sid"].(string)
    if sid == "" {
        return SessionClaims{}, ErrInvalidToken
    }
    out := SessionClaims{SessionID: sid}
    out.UserID, _ = claims["sub"].(string)
    out.Role, _ = claims["role"].(string)
    if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
        out.Exp = exp.Time
    }
    return out, nil
}
