package problem

// MockLookup is a mock implementation of Lookup for testing.
type MockLookup struct {
	ID    string
	Err   error
	Calls []string
}

// NewMockLookup creates a mock that resolves every path to id.
func NewMockLookup(id string) *MockLookup {
	return &MockLookup{ID: id}
}

func (m *MockLookup) LookupIdentifier(path string) (string, error) {
	m.Calls = append(m.Calls, path)
	if m.Err != nil {
		return "", m.Err
	}
	return m.ID, nil
}
