package bloom_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/wordtracker"
	"github.com/fwojciec/wordtracker/bloom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	// Word not yet added should return false
	assert.False(t, f.Test("cat"))

	f.Add("cat")

	assert.True(t, f.Test("cat"))
	assert.False(t, f.Test("dog"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Add("cat")
	f.Add("dog")
	f.Add("bird")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_Reset(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	f.Add("cat")

	f.Reset()

	assert.False(t, f.Test("cat"))
	assert.Equal(t, uint(0), f.EstimatedCount())
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)
	for i := range numItems {
		f.Add(fmt.Sprintf("added%d", i))
	}

	falsePositives := 0
	for i := range testProbes {
		if f.Test(fmt.Sprintf("absent%d", i)) {
			falsePositives++
		}
	}

	// Allow up to 2% to account for statistical variance
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}

func TestFilter_BacksIndexer(t *testing.T) {
	t.Parallel()

	text := "Cat dog\ncat bird\n"
	tokens, lines, err := wordtracker.ScanLines(strings.NewReader(text))
	require.NoError(t, err)
	src := &wordtracker.Source{Path: "F", Lines: lines, Tokens: tokens}

	ix := wordtracker.NewIndexer(wordtracker.NewIndex(), bloom.NewFilter(100, 0.01))
	_, err = ix.IndexSource(src)
	require.NoError(t, err)

	node, err := ix.Tree.Search(&wordtracker.Word{Text: "cat"})
	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Equal(t, map[string][]int{"F": {1, 2}}, node.Element().Occurrences)
	assert.Equal(t, 3, ix.Tree.Len())
}
