package history

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_AppendAndRecent(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Recent(5))

	for i := 1; i <= 4; i++ {
		s.Append(Entry{InvocationID: fmt.Sprintf("id-%d", i), Tool: "take_a_break", Stress: 50 - i})
	}
	assert.Equal(t, 4, s.Len())

	// Window smaller than the log: most recent two, oldest first.
	recent := s.Recent(2)
	assert.Len(t, recent, 2)
	assert.Equal(t, "id-3", recent[0].InvocationID)
	assert.Equal(t, "id-4", recent[1].InvocationID)

	// Window larger than the log returns everything.
	all := s.Recent(10)
	assert.Len(t, all, 4)
	assert.Equal(t, "id-1", all[0].InvocationID)

	// Non-positive n means "all".
	assert.Len(t, s.Recent(0), 4)
	assert.Len(t, s.Recent(-1), 4)
}

func TestStore_RecentReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Append(Entry{InvocationID: "id-1", Stress: 40})

	got := s.Recent(1)
	got[0].Stress = 99

	assert.Equal(t, 40, s.Recent(1)[0].Stress)
}

func TestStore_ConcurrentAppends(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Append(Entry{Tool: "show_meme"})
		}()
		go func() {
			defer wg.Done()
			_ = s.Recent(3)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
