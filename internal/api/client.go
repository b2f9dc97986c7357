// Package api provides the query client that turns a user query into a response.
package api

import (
	"strings"

	"go.uber.org/zap"

	apierrors "github.com/diogo/ollamachat/internal/errors"
)

// DefaultModel is used when no model is configured
const DefaultModel = "llama3"

// DefaultResponsePrefix is prepended to the query by the mock backend
const DefaultResponsePrefix = "Response to: "

// QueryClient defines the interface for turning a query into a response
type QueryClient interface {
	SendQuery(query string) (string, error)
	ModelName() string
}

// MockClient synthesizes responses locally without contacting a backend.
// It holds no state besides its configuration and is safe to share.
type MockClient struct {
	model  string
	prefix string
	logger *zap.Logger
}

// Ensure MockClient implements QueryClient
var _ QueryClient = (*MockClient)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*MockClient)

// WithModel sets the model name reported by the client
func WithModel(model string) ClientOption {
	return func(c *MockClient) {
		if model != "" {
			c.model = model
		}
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *MockClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithResponsePrefix overrides the text placed before the echoed query
func WithResponsePrefix(prefix string) ClientOption {
	return func(c *MockClient) {
		c.prefix = prefix
	}
}

// NewClient creates a new MockClient
func NewClient(opts ...ClientOption) *MockClient {
	client := &MockClient{
		model:  DefaultModel,
		prefix: DefaultResponsePrefix,
		logger: zap.NewNop(),
	}

	// Apply options
	for _, opt := range opts {
		opt(client)
	}

	return client
}

// ModelName returns the configured model name
func (c *MockClient) ModelName() string {
	return c.model
}

// SendQuery returns the response for query.
// Empty or whitespace-only queries are rejected with an InvalidInputError.
func (c *MockClient) SendQuery(query string) (string, error) {
	if err := ValidateQuery(query); err != nil {
		c.logger.Debug("rejected query", zap.String("model", c.model), zap.Error(err))
		return "", err
	}

	response := c.mockResponse(query)
	c.logger.Debug("query answered",
		zap.String("model", c.model),
		zap.Int("query_len", len(query)),
		zap.Int("response_len", len(response)),
	)
	return response, nil
}

func (c *MockClient) mockResponse(query string) string {
	return c.prefix + query
}

// ValidateQuery checks that a query has non-whitespace content
func ValidateQuery(query string) error {
	if query == "" {
		return apierrors.NewInvalidInputError("query cannot be empty")
	}
	if strings.TrimSpace(query) == "" {
		return apierrors.NewInvalidInputError("query cannot be whitespace-only")
	}
	return nil
}
