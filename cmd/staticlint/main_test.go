package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis"
)

func TestAnalyzers(t *testing.T) {
	got := analyzers()

	require.NoError(t, analysis.Validate(got))

	names := make(map[string]bool, len(got))
	for _, a := range got {
		names[a.Name] = true
	}
	assert.True(t, names["exitmain"])
	assert.True(t, names["bodyclose"])
	assert.True(t, names["SA1000"])
	assert.True(t, names["S1000"])
	assert.True(t, names["ST1005"])
	assert.False(t, names["ST1000"])
}
