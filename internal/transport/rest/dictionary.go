package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dictlookup/internal/language"
	"github.com/heartmarshall/dictlookup/internal/provider"
	"github.com/heartmarshall/dictlookup/pkg/ctxutil"
)

const maxLanguageBody = 1 << 10

type dictionaryClient interface {
	Get(ctx context.Context, word string) (*provider.Entry, error)
	PreferredLanguage() language.Code
	SetPreferredLanguage(code string) error
}

// DictionaryHandler exposes dictionary lookups and the preferred language over HTTP.
type DictionaryHandler struct {
	dict dictionaryClient
	log  *slog.Logger
}

// NewDictionaryHandler creates a DictionaryHandler.
func NewDictionaryHandler(dict dictionaryClient, logger *slog.Logger) *DictionaryHandler {
	return &DictionaryHandler{
		dict: dict,
		log:  logger.With("handler", "dictionary"),
	}
}

// LanguageBody is the request and response body of the language endpoints.
type LanguageBody struct {
	Language string `json:"language"`
}

// LanguageInfo describes one supported language.
type LanguageInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// GetEntry handles GET /v1/entries/{word}.
func (h *DictionaryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")

	entry, err := h.dict.Get(r.Context(), word)
	if err != nil {
		status, code := classify(err)
		msg := err.Error()
		if status >= http.StatusInternalServerError {
			h.log.ErrorContext(r.Context(), "lookup failed",
				slog.String("word", word),
				slog.String("code", code),
				slog.String("error", msg),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			)
			if code == CodeInternal {
				msg = "internal error"
			}
		}
		writeError(w, status, code, msg)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// GetLanguage handles GET /v1/language.
func (h *DictionaryHandler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LanguageBody{Language: h.dict.PreferredLanguage().String()})
}

// SetLanguage handles PUT /v1/language. An unsupported code is rejected with
// 400 and the current language stays in effect.
func (h *DictionaryHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var body LanguageBody
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLanguageBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidBody, "invalid request body: "+err.Error())
		return
	}

	if err := h.dict.SetPreferredLanguage(body.Language); err != nil {
		status, code := classify(err)
		writeError(w, status, code, err.Error())
		return
	}

	h.log.InfoContext(r.Context(), "preferred language changed", slog.String("language", body.Language))
	writeJSON(w, http.StatusOK, LanguageBody{Language: h.dict.PreferredLanguage().String()})
}

// ListLanguages handles GET /v1/languages.
func (h *DictionaryHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	codes := language.All()
	out := make([]LanguageInfo, len(codes))
	for i, c := range codes {
		out[i] = LanguageInfo{Code: c.String(), Name: c.Name()}
	}
	writeJSON(w, http.StatusOK, out)
}
