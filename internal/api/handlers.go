package api

// Handlers bundles all HTTP handlers with their dependencies
type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates the handler set
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{deps: deps}
}
