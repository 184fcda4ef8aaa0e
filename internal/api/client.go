package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid"
	"go.uber.org/zap"

	"github.com/ayeshaqaisar/bookhub/internal/config"
)

const (
	defaultTimeout = 30 * time.Second

	requestIDHeader = "X-Request-Id"
	requestIDLength = 12

	userAgent = "Bookhub-CLI/1.0 (https://github.com/ayeshaqaisar/bookhub)"
)

// Client interfaces with the Bookhub HTTP API.
//
// The client performs no retries, caching, or authentication: every method is
// a single request whose outcome surfaces directly to the caller.
type Client struct {
	baseURL       string
	legacyBaseURL string
	httpClient    *http.Client
	logger        *zap.Logger
}

// NewClient creates a new Bookhub API client from the given configuration.
// A nil logger disables request logging.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.HTTP.Timeout()
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:       strings.TrimSuffix(cfg.API.URL, "/"),
		legacyBaseURL: strings.TrimSuffix(cfg.API.LegacyURL, "/"),
		httpClient:    &http.Client{Timeout: timeout},
		logger:        logger,
	}
}

// BaseURL returns the resolved base URL of the Bookhub API.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// LegacyBaseURL returns the resolved base URL of the legacy API.
func (c *Client) LegacyBaseURL() string {
	return c.legacyBaseURL
}

// FetchBooks returns the full book catalog.
func (c *Client) FetchBooks(ctx context.Context) ([]Book, error) {
	var books []Book
	if err := c.doJSON(ctx, http.MethodGet, "/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// FetchBook returns a single book by its identifier.
func (c *Client) FetchBook(ctx context.Context, id string) (*Book, error) {
	var book Book
	if err := c.doJSON(ctx, http.MethodGet, "/books/"+url.PathEscape(id), nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// UploadBook uploads a new book as multipart form data. The backend chunks
// and indexes the text asynchronously; the returned book starts in the
// "processing" status.
func (c *Client) UploadBook(ctx context.Context, upload BookUpload) (*Book, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":       upload.Title,
		"author":      upload.Author,
		"description": upload.Description,
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := form.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("failed to write %s field: %w", name, err)
		}
	}

	part, err := form.CreateFormFile("file", upload.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, upload.Content); err != nil {
		return nil, fmt.Errorf("failed to read book content: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	var book Book
	if err := c.do(ctx, http.MethodPost, "/books", &buf, form.FormDataContentType(), &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// UpdateBook applies a partial update to a book's metadata.
func (c *Client) UpdateBook(ctx context.Context, id string, upd BookUpdate) (*Book, error) {
	var book Book
	if err := c.doJSON(ctx, http.MethodPatch, "/books/"+url.PathEscape(id), upd, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// FetchCharactersByBook returns the AI characters extracted from a book.
func (c *Client) FetchCharactersByBook(ctx context.Context, bookID string) ([]Character, error) {
	var characters []Character
	if err := c.doJSON(ctx, http.MethodGet, "/books/"+url.PathEscape(bookID)+"/characters", nil, &characters); err != nil {
		return nil, err
	}
	return characters, nil
}

type sendCharacterMessageRequest struct {
	Message string        `json:"message"`
	History []ChatMessage `json:"history,omitempty"`
}

// SendCharacterMessage sends a chat message to a character. The optional
// history gives the backend earlier turns of the conversation; the client
// keeps no conversation state of its own.
func (c *Client) SendCharacterMessage(ctx context.Context, characterID, message string, history []ChatMessage) (*CharacterReply, error) {
	body := sendCharacterMessageRequest{
		Message: message,
		History: history,
	}

	var reply CharacterReply
	if err := c.doJSON(ctx, http.MethodPost, "/characters/"+url.PathEscape(characterID)+"/message", body, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// FetchChunksByBook returns the indexed text chunks of a book.
func (c *Client) FetchChunksByBook(ctx context.Context, bookID string) ([]Chunk, error) {
	var chunks []Chunk
	if err := c.doJSON(ctx, http.MethodGet, "/books/"+url.PathEscape(bookID)+"/chunks", nil, &chunks); err != nil {
		return nil, err
	}
	return chunks, nil
}

type askBookQuestionRequest struct {
	Question string `json:"question"`
}

// AskBookQuestion asks a free-form question about a book, answered from its
// indexed chunks.
func (c *Client) AskBookQuestion(ctx context.Context, bookID, question string) (*Answer, error) {
	body := askBookQuestionRequest{Question: question}

	var answer Answer
	if err := c.doJSON(ctx, http.MethodPost, "/books/"+url.PathEscape(bookID)+"/question", body, &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

// saveReadingProgressRequest mirrors the body accepted by the progress
// endpoint. CurrentPage and LastPosition are dropped from the wire entirely
// when unset; an explicit JSON null in LastPosition is forwarded as null.
type saveReadingProgressRequest struct {
	BookID          string          `json:"bookId"`
	PercentComplete float64         `json:"percentComplete"`
	CurrentPage     *int            `json:"currentPage,omitempty"`
	Status          ProgressStatus  `json:"status,omitempty"`
	LastPosition    json.RawMessage `json:"lastPosition,omitempty"`
	IsFavourite     bool            `json:"isFavourite"`
}

// SaveReadingProgress persists the user's position in a book. The positional
// signature mirrors the endpoint's parameter order; callers normally go
// through the progress package, which maps its payload onto these parameters.
func (c *Client) SaveReadingProgress(ctx context.Context, bookID string, percentComplete float64, currentPage *int, status ProgressStatus, lastPosition json.RawMessage, isFavourite bool) error {
	body := saveReadingProgressRequest{
		BookID:          bookID,
		PercentComplete: percentComplete,
		CurrentPage:     currentPage,
		Status:          status,
		LastPosition:    lastPosition,
		IsFavourite:     isFavourite,
	}
	return c.doJSON(ctx, http.MethodPost, "/reading-progress", body, nil)
}

// FetchUserReadingProgress returns the user's progress across all books, a
// snapshot taken at call time.
func (c *Client) FetchUserReadingProgress(ctx context.Context) ([]ReadingProgress, error) {
	var records []ReadingProgress
	if err := c.doJSON(ctx, http.MethodGet, "/reading-progress", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateOrUpdateUser upserts a user profile keyed by its identifier.
func (c *Client) CreateOrUpdateUser(ctx context.Context, u User) (*User, error) {
	var saved User
	if err := c.doJSON(ctx, http.MethodPut, "/users", u, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// CheckHealth reports whether the API is reachable and serving.
func (c *Client) CheckHealth(ctx context.Context) (*HealthStatus, error) {
	var health HealthStatus
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// doJSON marshals body (when non-nil) as a JSON request and decodes the
// response into out.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, reader, contentType, out)
}

// do performs a single request against the API. No retries: a failure
// surfaces to the caller exactly once.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	requestID, err := gonanoid.Nanoid(requestIDLength)
	if err == nil {
		req.Header.Set(requestIDHeader, requestID)
	}

	c.logger.Debug("calling Bookhub API",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		c.logger.Debug("Bookhub API request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return err
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorResponse is the error body shape the API uses. Older endpoints send
// "error", newer ones "message".
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	body, _ := io.ReadAll(resp.Body)
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var wire errorResponse
	if err := json.Unmarshal(body, &wire); err == nil {
		switch {
		case wire.Message != "":
			apiErr.Message = wire.Message
		case wire.Error != "":
			apiErr.Message = wire.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
