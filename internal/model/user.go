package model

import "time"

// Role is the authorization tier of a user account.
type Role string

const (
    RoleUser  Role = "user"
    RoleAdmin Role = "admin"
)

// User represents an account record as stored under the `users` key.
// Email is unique ignoring case. PasswordHash holds the bcrypt digest and is
// never copied into a Session.
//
// Fields:
//  ID           – generated identifier ("user_<uuid>").
//  Name         – display name.
//  Email        – login identifier, compared case-insensitively.
//  PasswordHash – bcrypt hashed password.
//  Role         – user or admin.
//  CreatedAt    – registration timestamp.
type User struct {
    ID           string    `json:"id"`
    Name         string    `json:"name"`
    Email        string    `json:"email"`
    PasswordHash string    `json:"passwordHash"`
    Role         Role      `json:"role"`
    CreatedAt    time.Time `json:"createdAt"`
}

// Session is the identity a client is logged in as. It is derived from a User
// at login and overwritten wholesale, never edited.
type Session struct {
    ID        string    `json:"id"`
    UserID    string    `json:"userId"`
    Name      string    `json:"name"`
    Email     string    `json:"email"`
    Role      Role      `json:"role"`
    CreatedAt time.Time `json:"createdAt"`
    ExpiresAt time.Time `json:"expiresAt"`
}

// IsLoggedIn reports whether s represents an authenticated client.
func (s *Session) IsLoggedIn() bool { return s != nil && s.UserID != "" }

// IsAdmin reports whether s carries the admin role.
func (s *Session) IsAdmin() bool { return s.IsLoggedIn() && s.Role == RoleAdmin }
