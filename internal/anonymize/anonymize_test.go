package anonymize

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnonymizer_SequentialAssignment(t *testing.T) {
	a := New("Option")

	assert.Equal(t, "Option 1", a.Label("Blue Button"))
	assert.Equal(t, "Option 2", a.Label("Green Button"))
	assert.Equal(t, "Option 3", a.Label("Red Button"))
	assert.Equal(t, 3, a.Count())
}

func TestAnonymizer_MemoizedStableOutput(t *testing.T) {
	a := New("Test")

	first := a.Label("homepage_hero")
	a.Label("checkout_flow")
	again := a.Label("homepage_hero")

	assert.Equal(t, first, again, "same input must always map to the same label")
	assert.Equal(t, 2, a.Count())
}

func TestAnonymizer_LabelAllPreservesOrder(t *testing.T) {
	a := New("Respondent")

	labels := a.LabelAll([]string{"alice", "bob", "alice", "carol"})

	assert.Equal(t, []string{"Respondent 1", "Respondent 2", "Respondent 1", "Respondent 3"}, labels)
}

func TestAnonymizer_ConcurrentUse(t *testing.T) {
	a := New("X")

	var wg sync.WaitGroup
	results := make([]string, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = a.Label("shared-label")
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "X 1", r)
	}
	assert.Equal(t, 1, a.Count())
}
