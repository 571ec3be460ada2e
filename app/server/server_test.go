package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mosambot/app/client/openmeteo"
	"mosambot/app/client/speechkit"
	"mosambot/app/config"
	"mosambot/app/service/dialogue"
	"mosambot/app/service/session"
	"mosambot/app/service/transcribe"
	"mosambot/app/service/weather"

	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	di := do.New()
	t.Cleanup(func() { _ = di.Shutdown() })

	var appCtx context.Context = context.Background()
	do.ProvideValue(di, appCtx)
	do.ProvideValue(di, &config.Config{
		Server: config.Server{Addr: ":0"},
		Weather: config.Weather{
			GeocodingURL:   "http://127.0.0.1:0",
			ForecastURL:    "http://127.0.0.1:0",
			TimeoutSeconds: 1,
			ForecastDays:   7,
		},
	})
	do.Provide(di, openmeteo.NewClient)
	do.Provide(di, speechkit.NewClient)
	do.Provide(di, weather.New)
	do.Provide(di, dialogue.New)
	do.Provide(di, session.New)
	do.Provide(di, transcribe.New)
	do.Provide(di, New)

	return do.MustInvoke[*Server](di)
}

func postJSON(t *testing.T, s *Server, path string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.app.Test(req)
	require.NoError(t, err)

	return resp
}

func decodeChat(t *testing.T, resp *http.Response) chatResponse {
	t.Helper()

	var out chatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp, err := s.app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestChatCreatesSession(t *testing.T) {
	s := newTestServer(t)

	resp := postJSON(t, s, "/api/chat", chatRequest{Message: "weather"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeChat(t, resp)
	assert.NotEmpty(t, out.SessionID)
	assert.False(t, out.End)
	assert.Contains(t, out.Reply, "sheher ka naam nahi mila")
	assert.Equal(t, 1, s.sessionSvc.Len())
}

func TestChatKeepsContextAcrossTurns(t *testing.T) {
	s := newTestServer(t)

	out := decodeChat(t, postJSON(t, s, "/api/chat", chatRequest{Message: "mera naam Ali hai"}))
	require.Contains(t, out.Reply, "Shukriya Ali")

	out2 := decodeChat(t, postJSON(t, s, "/api/chat", chatRequest{
		SessionID: out.SessionID,
		Message:   "weather",
	}))

	assert.Equal(t, out.SessionID, out2.SessionID)
	assert.Contains(t, out2.Reply, "Ali, ")
}

func TestChatExitEndsSession(t *testing.T) {
	s := newTestServer(t)

	out := decodeChat(t, postJSON(t, s, "/api/chat", chatRequest{Message: "weather"}))

	out2 := decodeChat(t, postJSON(t, s, "/api/chat", chatRequest{
		SessionID: out.SessionID,
		Message:   "exit",
	}))

	assert.True(t, out2.End)
	assert.Equal(t, dialogue.Farewell, out2.Reply)
	assert.Equal(t, 0, s.sessionSvc.Len())
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	s := newTestServer(t)

	resp := postJSON(t, s, "/api/chat", chatRequest{Message: ""})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTranscribeDisabled(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", bytes.NewReader([]byte{0, 0, 0, 0}))
	resp, err := s.app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
