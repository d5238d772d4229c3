package domain

import "time"

// RegisterUserRequestDTO represents the expected request body for registering a user.
type RegisterUserRequestDTO struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequestDTO represents the expected request body for logging in.
type LoginRequestDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponseDTO carries the issued access token.
type LoginResponseDTO struct {
	Token string `json:"token"`
}

// UserResponseDTO represents the response for a single user, including the
// IDs of the snippets the user owns.
type UserResponseDTO struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Snippets  []string `json:"snippets"`
	CreatedAt string   `json:"created_at"`
}

// ListUsersResponseDTO represents the response for listing users.
type ListUsersResponseDTO struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Items []UserResponseDTO `json:"items"`
}

// User represents a registered identity. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
