// Package domain contains domain models for the application.
package domain

import "time"

// CreateSnippetRequestDTO represents the expected request body for creating a snippet.
type CreateSnippetRequestDTO struct {
	Title    string `json:"title" binding:"max=100"`
	Code     string `json:"code" binding:"required,max=65536"`
	Language string `json:"language" binding:"max=64"`
	Style    string `json:"style" binding:"max=64"`
	Linenos  bool   `json:"linenos"`
}

// UpdateSnippetRequestDTO represents the expected request body for updating a snippet.
// Owner and creation time are immutable and therefore absent.
type UpdateSnippetRequestDTO struct {
	Title    string `json:"title" binding:"max=100"`
	Code     string `json:"code" binding:"required,max=65536"`
	Language string `json:"language" binding:"max=64"`
	Style    string `json:"style" binding:"max=64"`
	Linenos  bool   `json:"linenos"`
}

// SnippetResponseDTO represents the response for a single snippet.
type SnippetResponseDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Code      string `json:"code"`
	Language  string `json:"language"`
	Style     string `json:"style"`
	Linenos   bool   `json:"linenos"`
	Owner     string `json:"owner"`
	CreatedAt string `json:"created_at"`
}

// ListSnippetsResponseDTO represents the response for listing snippets.
type ListSnippetsResponseDTO struct {
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
	Items []SnippetListItemDTO `json:"items"`
}

// SnippetListItemDTO represents a snippet in a list response.
type SnippetListItemDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Language  string `json:"language"`
	Owner     string `json:"owner"`
	CreatedAt string `json:"created_at"`
}

// Snippet represents a code snippet entity. Owner holds the ID of the user
// that created it and is never reassigned.
type Snippet struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Code      string    `json:"code"`
	Language  string    `json:"language"`
	Style     string    `json:"style"`
	Linenos   bool      `json:"linenos"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
}

// Defaults applied when the corresponding field is left blank at creation.
const (
	DefaultLanguage = "plaintext"
	DefaultStyle    = "friendly"
)
