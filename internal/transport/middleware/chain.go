// Package middleware holds the net/http middleware wrapped around the lookup API.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware so that Chain(a, b)(h) == a(b(h)):
// the first argument is the outermost and sees the request first.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		h := final
		for i := range mws {
			h = mws[len(mws)-1-i](h)
		}
		return h
	}
}
