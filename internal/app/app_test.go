package app

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dictlookup/internal/adapter/provider/freedict"
	"github.com/heartmarshall/dictlookup/internal/config"
	"github.com/heartmarshall/dictlookup/internal/language"
	"github.com/heartmarshall/dictlookup/internal/transport/middleware"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			ShutdownTimeout: time.Second,
		},
		Dictionary: config.DictionaryConfig{PreferredLanguage: "en", RequestTimeout: time.Second},
		Log:        config.LogConfig{Level: "info", Format: "json"},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,PUT,OPTIONS",
			AllowedHeaders: "Content-Type",
			MaxAge:         60,
		},
	}
}

func TestNewDictionary(t *testing.T) {
	t.Parallel()

	dict, err := NewDictionary(config.DictionaryConfig{PreferredLanguage: "fr", RequestTimeout: time.Second}, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, language.Code("fr"), dict.PreferredLanguage())

	_, err = NewDictionary(config.DictionaryConfig{PreferredLanguage: "xx", RequestTimeout: time.Second}, discardLogger())
	require.ErrorIs(t, err, freedict.ErrUnsupportedLanguage)
}

func TestNewServer_LookupThroughMiddleware(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/en/cat", r.URL.Path)
		w.Write([]byte(`[{"word":"cat","phonetics":[{"audio":"https://a.test/cat.mp3"}],"meanings":[]}]`))
	}))
	t.Cleanup(upstream.Close)

	cfg := testConfig()
	dict := freedict.NewClientWithURL(upstream.URL, discardLogger(), upstream.Client())
	srv := NewServer(cfg, discardLogger(), dict)

	assert.Equal(t, "127.0.0.1:8080", srv.Addr)

	req := httptest.NewRequest(http.MethodGet, "/v1/entries/cat", nil)
	req.Header.Set("Origin", "https://app.test")
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"word":"cat","audio":"https://a.test/cat.mp3","sourceUrls":[],"meanings":[]}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "https://app.test", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewServer(testConfig(), discardLogger(), freedict.NewClientWithURL("http://dict.test", discardLogger(), nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, srv, ln, time.Second, discardLogger()) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/live")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestServe_ListenerError(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ln.Close()

	srv := NewServer(testConfig(), discardLogger(), freedict.NewClientWithURL("http://dict.test", discardLogger(), nil))

	err = Serve(context.Background(), srv, ln, time.Second, discardLogger())
	assert.Error(t, err)
}
