// Package middleware holds the HTTP middleware shared by the qit modules:
// request ids, panic recovery, CORS, and request logging.
package middleware

import "net/http"

// System manages an ordered stack of HTTP middleware. The first middleware
// added is the outermost at request time.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type stack []func(http.Handler) http.Handler

// New creates an empty middleware System.
func New() System {
	return &stack{}
}

// Use appends mw. A nil middleware is ignored.
func (s *stack) Use(mw func(http.Handler) http.Handler) {
	if mw != nil {
		*s = append(*s, mw)
	}
}

func (s *stack) Apply(handler http.Handler) http.Handler {
	for i := len(*s) - 1; i >= 0; i-- {
		handler = (*s)[i](handler)
	}
	return handler
}
