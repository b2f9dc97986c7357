// Package history provides in-memory conversation history for a chat session.
package history

import "strings"

// Render labels
const (
	UserLabel = "User: "
	LLMLabel  = "LLM: "
)

// Exchange represents one user query paired with its response
type Exchange struct {
	Query    string `json:"query"`
	Response string `json:"response"`
}

// String renders the exchange as two lines
func (e Exchange) String() string {
	return UserLabel + e.Query + "\n" + LLMLabel + e.Response
}

// Store is an ordered, append-only list of exchanges.
// Insertion order is chronological order. The only way to shrink it is Clear.
//
// A Store has a single owner and is not safe for concurrent use.
type Store struct {
	exchanges []Exchange
}

// NewStore creates an empty history store
func NewStore() *Store {
	return &Store{}
}

// Append adds an exchange at the end of the history
func (s *Store) Append(query, response string) {
	s.exchanges = append(s.exchanges, Exchange{Query: query, Response: response})
}

// Clear empties the history. Calling it on an empty store is a no-op.
func (s *Store) Clear() {
	s.exchanges = nil
}

// Len returns the number of exchanges
func (s *Store) Len() int {
	return len(s.exchanges)
}

// Exchanges returns a copy of the exchanges in chronological order
func (s *Store) Exchanges() []Exchange {
	out := make([]Exchange, len(s.exchanges))
	copy(out, s.exchanges)
	return out
}

// Last returns the most recent exchange
func (s *Store) Last() (Exchange, bool) {
	if len(s.exchanges) == 0 {
		return Exchange{}, false
	}
	return s.exchanges[len(s.exchanges)-1], true
}

// Render produces "User: ..." / "LLM: ..." lines for every exchange,
// oldest first. An empty store renders as "".
func (s *Store) Render() string {
	if len(s.exchanges) == 0 {
		return ""
	}

	lines := make([]string, 0, len(s.exchanges))
	for _, e := range s.exchanges {
		lines = append(lines, e.String())
	}
	return strings.Join(lines, "\n")
}
