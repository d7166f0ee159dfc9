package ai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shoppingassistantservice/internal/domain"
	"github.com/jhoicas/shoppingassistantservice/internal/infrastructure/ai"
)

// stubServer simula un endpoint /v1/chat/completions compatible con OpenAI.
type stubServer struct {
	*httptest.Server

	mu     sync.Mutex
	bodies []map[string]any
	paths  []string
	auth   []string

	status    int
	content   string
	noChoices bool
	delay     time.Duration
}

func newStubServer(t *testing.T) *stubServer {
	t.Helper()
	s := &stubServer{status: http.StatusOK, content: "ok"}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

func (s *stubServer) handle(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	s.mu.Lock()
	s.bodies = append(s.bodies, body)
	s.paths = append(s.paths, r.URL.Path)
	s.auth = append(s.auth, r.Header.Get("Authorization"))
	status, content, noChoices, delay := s.status, s.content, s.noChoices, s.delay
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(delay):
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if status != http.StatusOK {
		w.Header().Set("Retry-After-Ms", "5")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
		return
	}

	choices := []map[string]any{{
		"index":         0,
		"finish_reason": "stop",
		"message":       map[string]any{"role": "assistant", "content": content},
	}}
	if noChoices {
		choices = []map[string]any{}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1,
		"model":   "google/gemma-3-4b-it",
		"choices": choices,
	})
}

func (s *stubServer) hits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bodies)
}

func (s *stubServer) body(i int) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bodies[i]
}

func (s *stubServer) request(i int) (path, auth string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paths[i], s.auth[i]
}

func newService(s *stubServer, retries int) *ai.OpenAIService {
	return ai.NewOpenAIService(ai.OpenAIConfig{
		BaseURL:    s.URL + "/v1",
		MaxRetries: retries,
		Timeout:    5 * time.Second,
	})
}

func TestDescribeImage_MensajeDeVision(t *testing.T) {
	srv := newStubServer(t)
	srv.content = "Mid-century modern room"

	out, err := newService(srv, 2).DescribeImage(context.Background(), "describe the style", "https://example.com/room.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Mid-century modern room", out)

	require.Equal(t, 1, srv.hits())
	path, auth := srv.request(0)
	assert.Equal(t, "/v1/chat/completions", path)
	assert.Equal(t, "Bearer "+ai.PlaceholderAPIKey, auth)

	body := srv.body(0)
	assert.Equal(t, ai.DefaultModel, body["model"])
	assert.EqualValues(t, 0, body["temperature"])
	assert.NotContains(t, body, "max_tokens")
	assert.NotContains(t, body, "max_completion_tokens")

	messages := body["messages"].([]any)
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])

	parts := msg["content"].([]any)
	require.Len(t, parts, 2)
	text := parts[0].(map[string]any)
	assert.Equal(t, "text", text["type"])
	assert.Equal(t, "describe the style", text["text"])
	image := parts[1].(map[string]any)
	assert.Equal(t, "image_url", image["type"])
	assert.Equal(t, "https://example.com/room.jpg", image["image_url"].(map[string]any)["url"])
}

func TestComplete_MensajeDeTexto(t *testing.T) {
	srv := newStubServer(t)
	srv.content = "Try the Mug. [6E92ZMYYFZ], [9SIQT8TOJO], [LS4PSXUNUM]"

	out, err := newService(srv, 2).Complete(context.Background(), "full prompt")
	require.NoError(t, err)
	assert.Equal(t, "Try the Mug. [6E92ZMYYFZ], [9SIQT8TOJO], [LS4PSXUNUM]", out)

	body := srv.body(0)
	assert.EqualValues(t, 0, body["temperature"])
	msg := body["messages"].([]any)[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "full prompt", msg["content"])
}

func TestComplete_ModeloConfigurado(t *testing.T) {
	srv := newStubServer(t)
	svc := ai.NewOpenAIService(ai.OpenAIConfig{BaseURL: srv.URL + "/v1", Model: "other/model", APIKey: "k"})

	_, err := svc.Complete(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "other/model", srv.body(0)["model"])
	_, auth := srv.request(0)
	assert.Equal(t, "Bearer k", auth)
}

func TestComplete_ReintentaErroresDelServidor(t *testing.T) {
	srv := newStubServer(t)
	srv.status = http.StatusInternalServerError

	_, err := newService(srv, 2).Complete(context.Background(), "p")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInferenceFailed)
	assert.Equal(t, 3, srv.hits(), "1 intento + 2 reintentos")
}

func TestComplete_NoReintentaErroresDelCliente(t *testing.T) {
	srv := newStubServer(t)
	srv.status = http.StatusBadRequest

	_, err := newService(srv, 2).Complete(context.Background(), "p")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInferenceFailed)
	assert.Contains(t, err.Error(), "HTTP 400")
	assert.Equal(t, 1, srv.hits())
}

func TestComplete_SinChoices(t *testing.T) {
	srv := newStubServer(t)
	srv.noChoices = true

	_, err := newService(srv, 0).Complete(context.Background(), "p")
	assert.ErrorIs(t, err, domain.ErrEmptyCompletion)
}

func TestComplete_ContenidoVacio(t *testing.T) {
	srv := newStubServer(t)
	srv.content = "   "

	_, err := newService(srv, 0).Complete(context.Background(), "p")
	assert.ErrorIs(t, err, domain.ErrEmptyCompletion)
}

func TestComplete_Timeout(t *testing.T) {
	srv := newStubServer(t)
	srv.delay = 2 * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newService(srv, 0).Complete(ctx, "p")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInferenceTimeout)
}

func TestComplete_EndpointInalcanzable(t *testing.T) {
	srv := newStubServer(t)
	base := srv.URL
	srv.Close()

	svc := ai.NewOpenAIService(ai.OpenAIConfig{BaseURL: base + "/v1", MaxRetries: 0, Timeout: time.Second})
	_, err := svc.Complete(context.Background(), "p")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInferenceFailed)
}
