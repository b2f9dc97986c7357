package history

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	store := NewStore()
	require.NotNil(t, store)

	assert.Equal(t, 0, store.Len())
	assert.Equal(t, "", store.Render())
}

func TestStore_AppendRender(t *testing.T) {
	store := NewStore()
	store.Append("hello", "Response to: hello")

	assert.Equal(t, "User: hello\nLLM: Response to: hello", store.Render())
}

func TestStore_AppendGrowsByOne(t *testing.T) {
	store := NewStore()
	store.Append("a", "ra")
	store.Append("b", "rb")

	before := store.Render()
	store.Append("c", "rc")
	after := store.Render()

	require.Equal(t, 3, store.Len())
	assert.True(t, strings.HasPrefix(after, before+"\n"),
		"render after append should extend previous render.\nbefore: %q\nafter: %q", before, after)
	assert.True(t, strings.HasSuffix(after, "User: c\nLLM: rc"), "new exchange not rendered last: %q", after)
}

func TestStore_RenderOrderPreserving(t *testing.T) {
	store := NewStore()
	store.Append("A", "first")
	store.Append("B", "second")

	assert.Equal(t, "User: A\nLLM: first\nUser: B\nLLM: second", store.Render())
}

func TestStore_Clear(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Store)
	}{
		{
			name:  "empty store",
			setup: func(*Store) {},
		},
		{
			name: "populated store",
			setup: func(s *Store) {
				s.Append("one", "1")
				s.Append("two", "2")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			tt.setup(store)

			store.Clear()
			assert.Equal(t, "", store.Render())
			assert.Equal(t, 0, store.Len())

			// Idempotent
			store.Clear()
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestStore_AppendAfterClear(t *testing.T) {
	store := NewStore()
	store.Append("old", "r-old")
	store.Clear()
	store.Append("new", "r-new")

	assert.Equal(t, "User: new\nLLM: r-new", store.Render())
}

func TestStore_ExchangesReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Append("q", "r")

	exchanges := store.Exchanges()
	exchanges[0].Query = "mutated"

	assert.Equal(t, "q", store.Exchanges()[0].Query, "store was mutated through Exchanges()")
}

func TestStore_Last(t *testing.T) {
	store := NewStore()

	_, ok := store.Last()
	assert.False(t, ok, "Last() on empty store should report false")

	store.Append("first", "1")
	store.Append("second", "2")

	last, ok := store.Last()
	require.True(t, ok)
	assert.Equal(t, Exchange{Query: "second", Response: "2"}, last)
}

func TestExchange_String(t *testing.T) {
	e := Exchange{Query: "multi\nline", Response: "ok"}
	assert.Equal(t, "User: multi\nline\nLLM: ok", e.String())
}
