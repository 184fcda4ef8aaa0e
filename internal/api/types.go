package api

import (
	"encoding/json"
	"io"
	"time"
)

// ProgressStatus describes where a user is in a book's lifecycle.
type ProgressStatus string

const (
	StatusReading   ProgressStatus = "reading"
	StatusCompleted ProgressStatus = "completed"
	StatusPaused    ProgressStatus = "paused"
)

// Book is a catalog entry as returned by the Bookhub API.
// JSON field names follow the backend's camelCase wire format.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Description string    `json:"description,omitempty"`
	CoverURL    string    `json:"coverUrl,omitempty"`
	TotalPages  int       `json:"totalPages,omitempty"`
	Status      string    `json:"status,omitempty"` // "processing" until chunking finishes, then "ready"
	CreatedAt   time.Time `json:"createdAt"`
}

// BookUpload carries the fields and file content for a new book.
type BookUpload struct {
	Title       string
	Author      string
	Description string
	Filename    string
	Content     io.Reader
}

// BookUpdate holds the optional fields of a partial book update.
// Nil fields are left untouched by the backend.
type BookUpdate struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	Description *string `json:"description,omitempty"`
	CoverURL    *string `json:"coverUrl,omitempty"`
}

// Character is an AI persona extracted from a book.
type Character struct {
	ID          string `json:"id"`
	BookID      string `json:"bookId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

// ChatMessage is a single turn in a character conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "character"
	Content string `json:"content"`
}

// CharacterReply is the character's answer to a chat message.
type CharacterReply struct {
	CharacterID string `json:"characterId"`
	Reply       string `json:"reply"`
}

// Chunk is a fragment of book text the backend indexed for Q&A.
type Chunk struct {
	ID      string `json:"id"`
	BookID  string `json:"bookId"`
	Index   int    `json:"chunkIndex"`
	Content string `json:"content"`
}

// Answer is the backend's response to a book question, with the IDs of the
// chunks it drew from.
type Answer struct {
	BookID   string   `json:"bookId"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Sources  []string `json:"sources,omitempty"`
}

// ReadingProgress records a user's progress in a book. It is the row shape
// returned by FetchUserReadingProgress and the payload accepted by the
// progress adapter; it is never mutated after construction.
//
// LastPosition and Bookmarks stay opaque raw JSON: the reader frontend owns
// their structure. A nil RawMessage means the field is absent, while an
// explicit JSON null is kept as the literal "null" — the backend treats the
// two differently.
type ReadingProgress struct {
	UserID          string          `json:"userId"`
	BookID          string          `json:"bookId"`
	Status          ProgressStatus  `json:"status,omitempty"`
	CurrentPage     *int            `json:"currentPage,omitempty"`
	PercentComplete *float64        `json:"percentComplete,omitempty"`
	LastPosition    json.RawMessage `json:"lastPosition,omitempty"`
	Bookmarks       json.RawMessage `json:"bookmarks,omitempty"`
	LastReadAt      string          `json:"lastReadAt,omitempty"`
	IsFavourite     *bool           `json:"isFavourite,omitempty"`
}

// User is a Bookhub account profile.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// HealthStatus is the API health endpoint's response.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
