package backend

import (
	"context"
	"encoding/json"

	"github.com/ayeshaqaisar/bookhub/internal/api"
)

// API is the full operation surface of the Bookhub API client. The facade
// consumes the client through this interface so tests can substitute a fake
// and assert exact delegation.
type API interface {
	// Books
	FetchBooks(ctx context.Context) ([]api.Book, error)
	FetchBook(ctx context.Context, id string) (*api.Book, error)
	UploadBook(ctx context.Context, upload api.BookUpload) (*api.Book, error)
	UpdateBook(ctx context.Context, id string, upd api.BookUpdate) (*api.Book, error)

	// Characters
	FetchCharactersByBook(ctx context.Context, bookID string) ([]api.Character, error)
	SendCharacterMessage(ctx context.Context, characterID, message string, history []api.ChatMessage) (*api.CharacterReply, error)

	// Chunks and Q&A
	FetchChunksByBook(ctx context.Context, bookID string) ([]api.Chunk, error)
	AskBookQuestion(ctx context.Context, bookID, question string) (*api.Answer, error)

	// Reading progress
	SaveReadingProgress(ctx context.Context, bookID string, percentComplete float64, currentPage *int, status api.ProgressStatus, lastPosition json.RawMessage, isFavourite bool) error
	FetchUserReadingProgress(ctx context.Context) ([]api.ReadingProgress, error)

	// Users
	CreateOrUpdateUser(ctx context.Context, u api.User) (*api.User, error)

	// Utilities
	CheckHealth(ctx context.Context) (*api.HealthStatus, error)
	BaseURL() string
	LegacyBaseURL() string
}

// Service maps named operations onto the API client, one method per
// operation. Every method is a direct delegation: no parameter
// transformation, no error translation, no retries. The domain grouping is
// for readability only and carries no behavioral meaning.
type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

// Books

func (s *Service) FetchBooks(ctx context.Context) ([]api.Book, error) {
	return s.api.FetchBooks(ctx)
}

func (s *Service) FetchBook(ctx context.Context, id string) (*api.Book, error) {
	return s.api.FetchBook(ctx, id)
}

func (s *Service) UploadBook(ctx context.Context, upload api.BookUpload) (*api.Book, error) {
	return s.api.UploadBook(ctx, upload)
}

func (s *Service) UpdateBook(ctx context.Context, id string, upd api.BookUpdate) (*api.Book, error) {
	return s.api.UpdateBook(ctx, id, upd)
}

// Characters

func (s *Service) FetchCharactersByBook(ctx context.Context, bookID string) ([]api.Character, error) {
	return s.api.FetchCharactersByBook(ctx, bookID)
}

func (s *Service) SendCharacterMessage(ctx context.Context, characterID, message string, history []api.ChatMessage) (*api.CharacterReply, error) {
	return s.api.SendCharacterMessage(ctx, characterID, message, history)
}

// Chunks and Q&A

func (s *Service) FetchChunksByBook(ctx context.Context, bookID string) ([]api.Chunk, error) {
	return s.api.FetchChunksByBook(ctx, bookID)
}

func (s *Service) AskBookQuestion(ctx context.Context, bookID, question string) (*api.Answer, error) {
	return s.api.AskBookQuestion(ctx, bookID, question)
}

// Reading progress

func (s *Service) SaveReadingProgress(ctx context.Context, bookID string, percentComplete float64, currentPage *int, status api.ProgressStatus, lastPosition json.RawMessage, isFavourite bool) error {
	return s.api.SaveReadingProgress(ctx, bookID, percentComplete, currentPage, status, lastPosition, isFavourite)
}

func (s *Service) FetchUserReadingProgress(ctx context.Context) ([]api.ReadingProgress, error) {
	return s.api.FetchUserReadingProgress(ctx)
}

// Users

func (s *Service) CreateOrUpdateUser(ctx context.Context, u api.User) (*api.User, error) {
	return s.api.CreateOrUpdateUser(ctx, u)
}

// Utilities

func (s *Service) CheckHealth(ctx context.Context) (*api.HealthStatus, error) {
	return s.api.CheckHealth(ctx)
}

func (s *Service) BaseURL() string {
	return s.api.BaseURL()
}

func (s *Service) LegacyBaseURL() string {
	return s.api.LegacyBaseURL()
}
