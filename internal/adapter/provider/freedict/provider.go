// Package freedict adapts the FreeDictionary API (dictionaryapi.dev) to provider.Entry.
package freedict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/heartmarshall/dictlookup/internal/language"
	"github.com/heartmarshall/dictlookup/internal/provider"
)

const defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries"

// Client fetches entries from the FreeDictionary API in the preferred language.
// The preferred language and the endpoint derived from it change together.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger

	mu       sync.RWMutex
	lang     language.Code
	endpoint string
}

// NewClient creates a Client for the public FreeDictionary API with English as
// the preferred language. Timeouts are the caller's business: pass an
// *http.Client configured with one, or bound ctx in Get. A nil httpClient
// means a plain &http.Client{}.
func NewClient(logger *slog.Logger, httpClient *http.Client) *Client {
	return NewClientWithURL(defaultBaseURL, logger, httpClient)
}

// NewClientWithURL creates a Client with a custom base URL (for tests and mirrors).
// The language segment is appended to baseURL.
func NewClientWithURL(baseURL string, logger *slog.Logger, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	baseURL = strings.TrimRight(baseURL, "/")
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        logger.With("adapter", "freedict"),
		lang:       language.Default,
		endpoint:   baseURL + "/" + language.Default.String(),
	}
}

// PreferredLanguage returns the language of subsequent lookups.
func (c *Client) PreferredLanguage() language.Code {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lang
}

// SetPreferredLanguage switches lookups to code. Unsupported codes yield an
// *UnsupportedLanguageError and leave the client untouched.
func (c *Client) SetPreferredLanguage(code string) error {
	lang, ok := language.Parse(code)
	if !ok {
		return &UnsupportedLanguageError{Code: code}
	}

	c.mu.Lock()
	c.lang = lang
	c.endpoint = c.baseURL + "/" + lang.String()
	c.mu.Unlock()
	return nil
}

func (c *Client) currentEndpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.endpoint
}

// Get looks up word and returns its first entry, normalized.
//
// Errors match ErrTransport, ErrLookupNotFound, ErrMalformedResponse or
// ErrNoAudioAvailable. An empty result array is reported as ErrLookupNotFound.
// No retries are made.
func (c *Client) Get(ctx context.Context, word string) (*provider.Entry, error) {
	reqURL := c.currentEndpoint() + "/" + url.PathEscape(word)

	c.log.DebugContext(ctx, "freedict request", slog.String("word", word), slog.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &TransportError{Op: "create request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, &TransportError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read body", StatusCode: resp.StatusCode, Err: err}
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, notFound(word, body)
	default:
		c.log.WarnContext(ctx, "freedict unexpected status", slog.String("word", word), slog.Int("status", resp.StatusCode))
		return nil, &TransportError{Op: "request", StatusCode: resp.StatusCode}
	}

	raw, err := firstEntry(word, body)
	if err != nil {
		if errors.Is(err, ErrMalformedResponse) {
			c.log.WarnContext(ctx, "freedict malformed response", slog.String("word", word), slog.String("error", err.Error()))
		}
		return nil, err
	}

	entry, err := parseEntry(raw)
	if err != nil {
		return nil, err
	}

	c.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("meanings", len(entry.Meanings)),
	)

	return entry, nil
}

// firstEntry decodes the response body and returns its first element, schema-checked.
func firstEntry(word string, body []byte) (apiEntry, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return apiEntry{}, &MalformedResponseError{Reason: "empty body"}
	}

	switch trimmed[0] {
	case '[':
	case '{':
		// The API answers misses with an error object instead of an array.
		var apiErr apiError
		if err := json.Unmarshal(trimmed, &apiErr); err != nil {
			return apiEntry{}, &MalformedResponseError{Reason: "decode error object", Err: err}
		}
		if apiErr.Title == "" && apiErr.Message == "" {
			return apiEntry{}, &MalformedResponseError{Reason: "object response without title or message"}
		}
		return apiEntry{}, &LookupNotFoundError{Word: word, Title: apiErr.Title, Message: apiErr.Message}
	default:
		return apiEntry{}, &MalformedResponseError{Reason: "body is not a JSON array"}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return apiEntry{}, &MalformedResponseError{Reason: "decode array", Err: err}
	}
	if len(entries) == 0 {
		return apiEntry{}, &LookupNotFoundError{Word: word}
	}

	if err := validateEntry(entries[0]); err != nil {
		return apiEntry{}, err
	}

	var entry apiEntry
	if err := json.Unmarshal(entries[0], &entry); err != nil {
		return apiEntry{}, &MalformedResponseError{Reason: "decode entry", Err: err}
	}
	return entry, nil
}

// notFound builds a LookupNotFoundError, keeping the upstream title when the
// 404 body is the usual error object.
func notFound(word string, body []byte) error {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return &LookupNotFoundError{Word: word}
	}
	return &LookupNotFoundError{Word: word, Title: apiErr.Title, Message: apiErr.Message}
}
