package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ayeshaqaisar/bookhub/internal/config"
)

func newTestClient(serverURL string) *Client {
	cfg := &config.Config{
		API: config.API{
			URL:       serverURL,
			LegacyURL: serverURL + "/legacy",
		},
		HTTP: config.HTTP{TimeoutInSeconds: 5},
	}
	return NewClient(cfg, nil)
}

func TestClient_FetchBooks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/books" {
			t.Errorf("expected path /books, got %s", r.URL.Path)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("expected X-Request-Id header to be set")
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"id": "b1", "title": "Dune", "author": "Frank Herbert", "status": "ready"},
			{"id": "b2", "title": "Hyperion", "author": "Dan Simmons", "status": "processing"}
		]`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	books, err := client.FetchBooks(context.Background())
	if err != nil {
		t.Fatalf("FetchBooks failed: %v", err)
	}

	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}
	if books[0].ID != "b1" || books[0].Title != "Dune" {
		t.Errorf("unexpected first book: %+v", books[0])
	}
	if books[1].Status != "processing" {
		t.Errorf("expected processing status, got %q", books[1].Status)
	}
}

func TestClient_FetchBook_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchBook(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantMessage string
	}{
		{
			name:        "message field",
			statusCode:  http.StatusBadRequest,
			body:        `{"message": "title is required"}`,
			wantMessage: "title is required",
		},
		{
			name:        "legacy error field",
			statusCode:  http.StatusUnprocessableEntity,
			body:        `{"error": "unknown book"}`,
			wantMessage: "unknown book",
		},
		{
			name:        "non-json body",
			statusCode:  http.StatusInternalServerError,
			body:        "upstream exploded",
			wantMessage: "upstream exploded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				io.WriteString(w, tt.body)
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			_, err := client.FetchBooks(context.Background())
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %v", err)
			}
			if apiErr.StatusCode != tt.statusCode {
				t.Errorf("expected status %d, got %d", tt.statusCode, apiErr.StatusCode)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, apiErr.Message)
			}
		})
	}
}

func TestClient_SaveReadingProgress_Body(t *testing.T) {
	page := 7

	tests := []struct {
		name         string
		percent      float64
		currentPage  *int
		status       ProgressStatus
		lastPosition json.RawMessage
		isFavourite  bool
		wantBody     map[string]any
		absentKeys   []string
	}{
		{
			name:       "defaults keep optional fields off the wire",
			percent:    0,
			status:     StatusReading,
			wantBody:   map[string]any{"bookId": "b1", "percentComplete": 0.0, "status": "reading", "isFavourite": false},
			absentKeys: []string{"currentPage", "lastPosition"},
		},
		{
			name:         "explicit values are all present",
			percent:      42,
			currentPage:  &page,
			status:       StatusCompleted,
			lastPosition: json.RawMessage(`{"cfi":"p7"}`),
			isFavourite:  true,
			wantBody: map[string]any{
				"bookId":          "b1",
				"percentComplete": 42.0,
				"currentPage":     7.0,
				"status":          "completed",
				"lastPosition":    map[string]any{"cfi": "p7"},
				"isFavourite":     true,
			},
		},
		{
			name:         "explicit null position is forwarded as null",
			status:       StatusReading,
			lastPosition: json.RawMessage("null"),
			wantBody: map[string]any{
				"bookId":          "b1",
				"percentComplete": 0.0,
				"status":          "reading",
				"lastPosition":    nil,
				"isFavourite":     false,
			},
			absentKeys: []string{"currentPage"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotBody map[string]any
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/reading-progress" {
					t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
				}
				if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
					t.Fatalf("failed to decode request body: %v", err)
				}
				w.WriteHeader(http.StatusNoContent)
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			err := client.SaveReadingProgress(context.Background(), "b1", tt.percent, tt.currentPage, tt.status, tt.lastPosition, tt.isFavourite)
			if err != nil {
				t.Fatalf("SaveReadingProgress failed: %v", err)
			}

			for key, want := range tt.wantBody {
				got, ok := gotBody[key]
				if !ok {
					t.Errorf("expected key %q in body", key)
					continue
				}
				if !jsonEqual(got, want) {
					t.Errorf("key %q: expected %v, got %v", key, want, got)
				}
			}
			for _, key := range tt.absentKeys {
				if _, ok := gotBody[key]; ok {
					t.Errorf("expected key %q to be absent from body", key)
				}
			}
		})
	}
}

func jsonEqual(a, b any) bool {
	aj, _ := json.Marshal(a)
	bj, _ := json.Marshal(b)
	return string(aj) == string(bj)
}

func TestClient_FetchUserReadingProgress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reading-progress" {
			t.Errorf("expected path /reading-progress, got %s", r.URL.Path)
		}
		io.WriteString(w, `[
			{"userId": "u1", "bookId": "b1", "status": "reading", "percentComplete": 12.5, "currentPage": 40},
			{"userId": "u1", "bookId": "b2", "status": "completed", "percentComplete": 100, "isFavourite": true}
		]`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	records, err := client.FetchUserReadingProgress(context.Background())
	if err != nil {
		t.Fatalf("FetchUserReadingProgress failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Status != StatusReading || *records[0].PercentComplete != 12.5 {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].IsFavourite == nil || !*records[1].IsFavourite {
		t.Errorf("expected second record to be favourite: %+v", records[1])
	}
	if records[0].LastPosition != nil {
		t.Errorf("expected absent lastPosition to stay nil, got %s", records[0].LastPosition)
	}
}

func TestClient_UploadBook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/books" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("failed to parse multipart form: %v", err)
		}
		if got := r.FormValue("title"); got != "Dune" {
			t.Errorf("expected title Dune, got %q", got)
		}
		if got := r.FormValue("author"); got != "Frank Herbert" {
			t.Errorf("expected author Frank Herbert, got %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("expected file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "dune.txt" {
			t.Errorf("expected filename dune.txt, got %q", header.Filename)
		}
		content, _ := io.ReadAll(file)
		if string(content) != "the spice must flow" {
			t.Errorf("unexpected file content: %q", content)
		}

		io.WriteString(w, `{"id": "b1", "title": "Dune", "status": "processing"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	book, err := client.UploadBook(context.Background(), BookUpload{
		Title:    "Dune",
		Author:   "Frank Herbert",
		Filename: "dune.txt",
		Content:  strings.NewReader("the spice must flow"),
	})
	if err != nil {
		t.Fatalf("UploadBook failed: %v", err)
	}
	if book.ID != "b1" || book.Status != "processing" {
		t.Errorf("unexpected book: %+v", book)
	}
}

func TestClient_SendCharacterMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/characters/c1/message" {
			t.Errorf("expected path /characters/c1/message, got %s", r.URL.Path)
		}

		var body struct {
			Message string        `json:"message"`
			History []ChatMessage `json:"history"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if body.Message != "what drives you?" {
			t.Errorf("unexpected message: %q", body.Message)
		}
		if len(body.History) != 2 {
			t.Errorf("expected 2 history turns, got %d", len(body.History))
		}

		io.WriteString(w, `{"characterId": "c1", "reply": "Fear is the mind-killer."}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	history := []ChatMessage{
		{Role: "user", Content: "hello"},
		{Role: "character", Content: "greetings"},
	}
	reply, err := client.SendCharacterMessage(context.Background(), "c1", "what drives you?", history)
	if err != nil {
		t.Fatalf("SendCharacterMessage failed: %v", err)
	}
	if reply.Reply != "Fear is the mind-killer." {
		t.Errorf("unexpected reply: %q", reply.Reply)
	}
}

func TestClient_AskBookQuestion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/books/b1/question" {
			t.Errorf("expected path /books/b1/question, got %s", r.URL.Path)
		}
		io.WriteString(w, `{"bookId": "b1", "question": "who rules Arrakis?", "answer": "House Atreides.", "sources": ["ch1", "ch3"]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	answer, err := client.AskBookQuestion(context.Background(), "b1", "who rules Arrakis?")
	if err != nil {
		t.Fatalf("AskBookQuestion failed: %v", err)
	}
	if answer.Answer != "House Atreides." {
		t.Errorf("unexpected answer: %q", answer.Answer)
	}
	if len(answer.Sources) != 2 {
		t.Errorf("expected 2 sources, got %d", len(answer.Sources))
	}
}

func TestClient_CreateOrUpdateUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/users" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var u User
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if u.ID != "u1" || u.Email != "u1@example.com" {
			t.Errorf("unexpected user: %+v", u)
		}
		json.NewEncoder(w).Encode(u)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	saved, err := client.CreateOrUpdateUser(context.Background(), User{ID: "u1", Email: "u1@example.com"})
	if err != nil {
		t.Fatalf("CreateOrUpdateUser failed: %v", err)
	}
	if saved.ID != "u1" {
		t.Errorf("unexpected saved user: %+v", saved)
	}
}

func TestClient_CheckHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("expected path /health, got %s", r.URL.Path)
		}
		io.WriteString(w, `{"status": "ok", "version": "1.4.2"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	health, err := client.CheckHealth(context.Background())
	if err != nil {
		t.Fatalf("CheckHealth failed: %v", err)
	}
	if health.Status != "ok" || health.Version != "1.4.2" {
		t.Errorf("unexpected health: %+v", health)
	}
}

func TestClient_URLAccessorsTrimTrailingSlash(t *testing.T) {
	cfg := &config.Config{
		API: config.API{
			URL:       "https://api.example.com/",
			LegacyURL: "https://legacy.example.com/",
		},
		HTTP: config.HTTP{TimeoutInSeconds: 5},
	}
	client := NewClient(cfg, nil)

	if got := client.BaseURL(); got != "https://api.example.com" {
		t.Errorf("expected trimmed base URL, got %q", got)
	}
	if got := client.LegacyBaseURL(); got != "https://legacy.example.com" {
		t.Errorf("expected trimmed legacy URL, got %q", got)
	}
}
