package core

import "context"

// TokenSigner produces the Authorization header value for a request URL.
type TokenSigner interface {
	ForURL(rawURL string) (string, error)
}

// Protocol turns operations into HTTP requests and HTTP responses into typed
// results.
type Protocol interface {
	// Name returns the exchange identifier.
	Name() string

	// Version returns the API version being used.
	Version() string

	// BaseURL returns the default API base URL.
	BaseURL() string

	// BuildRequest validates params and constructs the request for op.
	// Local precondition failures are returned here, before anything is sent.
	BuildRequest(ctx context.Context, op Operation, params Params) (*Request, error)

	// SignRequest sets the Authorization header for a request that will be
	// sent to rawURL.
	SignRequest(req *Request, rawURL string, signer TokenSigner) error

	// ParseResponse classifies the body as an error envelope or decodes the
	// success shape of op.
	ParseResponse(op Operation, statusCode int, status string, body []byte) (any, error)

	// SupportedOperations returns the list of operations this protocol supports.
	SupportedOperations() []Operation
}
