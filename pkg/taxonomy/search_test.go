package taxonomy_test

import (
	"context"
	"testing"

	"github.com/gnames/taxodb/pkg/errcode"
	"github.com/gnames/taxodb/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	ctx := context.Background()
	st := hominids()

	tests := []struct {
		msg     string
		pattern string
		ids     []int
	}{
		{"exact name", "Homo sapiens", []int{9606}},
		{"case-insensitive", "homo SAPIENS", []int{9606}},
		{"canonical form of a name with authors", "Homo sapiens Linnaeus, 1758", []int{9606}},
		{"prefix wildcard", "Homo%", []int{9605, 9606, 63221}},
		{"inner wildcard", "Pan %s", []int{9597, 9598}},
		{"one character wildcard", "Pa_", []int{9596}},
		{"no matches", "Gorilla%", []int{}},
		{"regexp characters are literal", "Homo.%", []int{}},
	}

	for _, v := range tests {
		res, err := taxonomy.Search(ctx, st, v.pattern)
		require.NoError(t, err, v.msg)
		ids := make([]int, len(res))
		for i := range res {
			ids[i] = res[i].ID
		}
		assert.Equal(t, v.ids, ids, v.msg)
	}
}

func TestSearchEmptyPattern(t *testing.T) {
	st := hominids()
	_, err := taxonomy.Search(context.Background(), st, "  ")
	assert.Equal(t, errcode.SearchPatternError, errCode(t, err))
	assert.False(t, st.Loaded())
}
