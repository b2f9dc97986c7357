package api

// MockQueryClient is a mock implementation of QueryClient for testing
type MockQueryClient struct {
	// Mock return values
	Response string
	Err      error
	Model    string

	// Call counters/recorders
	Calls     int
	LastQuery string
}

// Ensure MockQueryClient implements QueryClient
var _ QueryClient = (*MockQueryClient)(nil)

func (m *MockQueryClient) SendQuery(query string) (string, error) {
	m.Calls++
	m.LastQuery = query
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func (m *MockQueryClient) ModelName() string {
	return m.Model
}
