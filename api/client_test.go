package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KimSchm/gh-models-cli/model"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

func catalogFixture(t *testing.T) string {
	t.Helper()
	doc := "[]"
	var err error
	for _, set := range []struct {
		path  string
		value any
	}{
		{"0.id", "openai/gpt-4o"},
		{"0.name", "OpenAI GPT-4o"},
		{"0.publisher", "OpenAI"},
		{"0.rate_limit_tier", "High"},
		{"1.id", "openai/text-embedding-3-small"},
		{"1.publisher", "OpenAI"},
		{"1.rate_limit_tier", "Embedding"},
		{"2.id", "microsoft/phi-4"},
		{"2.publisher", "Microsoft"},
	} {
		doc, err = sjson.Set(doc, set.path, set.value)
		if err != nil {
			t.Fatalf("Failed to build catalog fixture: %v", err)
		}
	}
	return doc
}

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	fixture := catalogFixture(t)
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/catalog/models" {
			t.Errorf("Expected /catalog/models, got %s", r.URL.Path)
		}
		if accept := r.Header.Get("Accept"); accept != "application/vnd.github+json" {
			t.Errorf("Expected vnd.github Accept header, got %s", accept)
		}
		if version := r.Header.Get("X-GitHub-Api-Version"); version != DefaultAPIVersion {
			t.Errorf("Expected api version header %s, got %s", DefaultAPIVersion, version)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("Expected bearer token header, got %s", auth)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, fixture)
	}))
}

func TestNewClient_RequiresToken(t *testing.T) {
	if _, err := NewClient(); err == nil {
		t.Fatal("Expected error when no API token is given")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(WithAPIToken("test-token"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if client.baseURL != DefaultBaseURL {
		t.Errorf("Expected base URL %s, got %s", DefaultBaseURL, client.baseURL)
	}
	if client.apiVersion != DefaultAPIVersion {
		t.Errorf("Expected api version %s, got %s", DefaultAPIVersion, client.apiVersion)
	}
	if client.timeout != DefaultTimeout {
		t.Errorf("Expected timeout %d, got %d", DefaultTimeout, client.timeout)
	}
}

func TestNewClient_TimeoutOption(t *testing.T) {
	client, err := NewClient(WithAPIToken("test-token"), WithTimeout(15))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if client.timeout != 15 {
		t.Errorf("Expected timeout 15, got %d", client.timeout)
	}
}

func TestListModels(t *testing.T) {
	server := newCatalogServer(t)
	defer server.Close()

	client, err := NewClient(WithAPIToken("test-token"), WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	body, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	entries := gjson.ParseBytes(body)
	if !entries.IsArray() || len(entries.Array()) != 3 {
		t.Fatalf("Expected the raw three-entry array, got %s", body)
	}
	if entries.Get("0.id").String() != "openai/gpt-4o" {
		t.Errorf("Expected first entry openai/gpt-4o, got %s", entries.Get("0.id").String())
	}
}

func TestListModels_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Bad credentials"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := NewClient(WithAPIToken("bad-token"), WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := client.ListModels(context.Background()); err == nil {
		t.Fatal("Expected error for a non-200 catalog response")
	}
}

func TestRateTier_Found(t *testing.T) {
	server := newCatalogServer(t)
	defer server.Close()

	client, err := NewClient(WithAPIToken("test-token"), WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tier, err := client.RateTier(context.Background(), "openai/text-embedding-3-small")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tier != "Embedding" {
		t.Errorf("Expected tier Embedding with case preserved, got %q", tier)
	}
}

func TestRateTier_Missing(t *testing.T) {
	server := newCatalogServer(t)
	defer server.Close()

	client, err := NewClient(WithAPIToken("test-token"), WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tier, err := client.RateTier(context.Background(), "no-such/model")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tier != "" {
		t.Errorf("Expected empty tier for an unknown model, got %q", tier)
	}

	// An entry without the field also reads as empty.
	tier, err = client.RateTier(context.Background(), "microsoft/phi-4")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tier != "" {
		t.Errorf("Expected empty tier for an entry without the field, got %q", tier)
	}
}

func TestComplete(t *testing.T) {
	response := `{"choices":[{"message":{"content":"Recursion is..."},"finish_reason":"stop"}],"usage":{"completion_tokens":12,"prompt_tokens":8,"total_tokens":20}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/inference/chat/completions" {
			t.Errorf("Expected /inference/chat/completions, got %s", r.URL.Path)
		}
		if contentType := r.Header.Get("Content-Type"); contentType != "application/json" {
			t.Errorf("Expected application/json content type, got %s", contentType)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("Expected bearer token header, got %s", auth)
		}

		payload, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("Failed to read request body: %v", err)
		}
		if content := gjson.GetBytes(payload, "messages.0.content").String(); content != "Explain recursion" {
			t.Errorf("Expected prompt in request body, got %q", content)
		}
		if maxTokens := gjson.GetBytes(payload, "max_tokens").Int(); maxTokens != 1000 {
			t.Errorf("Expected max_tokens 1000, got %d", maxTokens)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, response)
	}))
	defer server.Close()

	client, err := NewClient(WithAPIToken("test-token"), WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	chatReq := model.ChatRequest{
		Messages:    []model.Message{{Role: model.RoleUser, Content: "Explain recursion"}},
		MaxTokens:   1000,
		Temperature: 1.0,
		TopP:        1.0,
		Model:       "openai/gpt-4o",
	}
	body, err := client.Complete(context.Background(), chatReq)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(body) != response {
		t.Errorf("Expected the raw response body, got %s", body)
	}
}

func TestComplete_PassesThroughErrorBody(t *testing.T) {
	errorBody := `{"error":{"message":"Rate limit exceeded","code":"rate_limited"}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, errorBody)
	}))
	defer server.Close()

	client, err := NewClient(WithAPIToken("test-token"), WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	body, err := client.Complete(context.Background(), model.ChatRequest{Model: "openai/gpt-4o"})
	if err != nil {
		t.Fatalf("Expected the error body to pass through, got error: %v", err)
	}
	if string(body) != errorBody {
		t.Errorf("Expected the raw error body, got %s", body)
	}
}
