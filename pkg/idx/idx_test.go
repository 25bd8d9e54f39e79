package idx

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	id := New()
	require.False(t, id.IsZero())
	require.Len(t, id.String(), 26, "canonical ULID is 26 chars")

	parsed, err := Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestNewMonotonicWithinMillisecond(t *testing.T) {
	at := time.Now().UTC()
	a := NewAt(at)
	b := NewAt(at)
	require.NotEqual(t, a, b)
	require.Less(t, a.String(), b.String(),
		"same-millisecond ids must still sort in generation order")
}

func TestNewConcurrent(t *testing.T) {
	const n = 200

	var wg sync.WaitGroup
	ids := make([]ID, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i] = New()
		}()
	}
	wg.Wait()

	seen := make(map[ID]bool, n)
	for _, id := range ids {
		require.False(t, seen[id], "duplicate id generated: %s", id)
		seen[id] = true
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", New().String(), false},
		{"valid with whitespace", "  " + New().String() + "  ", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too short", "01ARZ3NDEKTSV4RRFFQ69G5FA", true},
		{"invalid chars", "01ARZ3NDEKTSV4RRFFQ69G5FAU", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalid)
				require.True(t, id.IsZero())
				return
			}
			require.NoError(t, err)
			require.False(t, id.IsZero())
		})
	}
}

func TestIDTime(t *testing.T) {
	at := time.Now().UTC().Truncate(time.Millisecond)
	id := NewAt(at)
	require.WithinDuration(t, at, id.Time(), time.Millisecond)

	require.True(t, Zero.Time().IsZero())
}
