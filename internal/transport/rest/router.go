package rest

import "net/http"

// NewRouter registers every REST route on a fresh ServeMux.
func NewRouter(health *HealthHandler, dict *DictionaryHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /v1/entries/{word}", dict.GetEntry)
	mux.HandleFunc("GET /v1/language", dict.GetLanguage)
	mux.HandleFunc("PUT /v1/language", dict.SetLanguage)
	mux.HandleFunc("GET /v1/languages", dict.ListLanguages)

	return mux
}
