package api

import "github.com/JaimeStill/qit/internal/queries"

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Queries queries.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Queries: queries.New(
			runtime.Tables,
			runtime.Provider,
			runtime.Locale,
			runtime.Logger,
			runtime.Pagination,
		),
	}
}
