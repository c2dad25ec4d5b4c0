package taxonomy_test

import (
	"context"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/taxodb/pkg/errcode"
	"github.com/gnames/taxodb/pkg/taxon"
	"github.com/gnames/taxodb/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errCode(t *testing.T, err error) gn.ErrorCode {
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	return gnErr.Code
}

func TestLineageChain(t *testing.T) {
	ctx := context.Background()
	st := newMemStore(
		rec(1, 0, "root", "no rank"),
		rec(2, 1, "child", "genus"),
		rec(3, 2, "grandchild", "species"),
	)

	tests := []struct {
		msg string
		id  int
		res []string
	}{
		{"grandchild", 3, []string{"child", "grandchild"}},
		{"child", 2, []string{"child"}},
		{"root has empty lineage", 1, []string{}},
	}

	for _, v := range tests {
		res, err := taxonomy.Lineage(ctx, st, v.id)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
	assert.Equal(t, 1, st.loads, "store is loaded only once")
}

func TestLineageLoadsStore(t *testing.T) {
	st := hominids()
	assert.False(t, st.Loaded())

	_, err := taxonomy.Lineage(context.Background(), st, 9606)
	require.NoError(t, err)
	assert.True(t, st.Loaded())
	assert.Equal(t, 1, st.loads)
}

func TestLineageIsolation(t *testing.T) {
	ctx := context.Background()
	st := hominids()

	first, err := taxonomy.Lineage(ctx, st, 63221)
	require.NoError(t, err)
	pan, err := taxonomy.Lineage(ctx, st, 9598)
	require.NoError(t, err)
	second, err := taxonomy.Lineage(ctx, st, 63221)
	require.NoError(t, err)

	exp := []string{
		"Hominidae", "Homo", "Homo sapiens",
		"Homo sapiens neanderthalensis",
	}
	assert.Equal(t, exp, first)
	assert.Equal(t, exp, second)
	assert.Equal(t, []string{"Hominidae", "Pan", "Pan troglodytes"}, pan)
}

func TestLineageAndRank(t *testing.T) {
	l, err := taxonomy.LineageAndRank(context.Background(), hominids(), 9606)
	require.NoError(t, err)
	assert.Equal(t, taxon.Lineage{
		{Name: "Hominidae", Rank: "family"},
		{Name: "Homo", Rank: "genus"},
		{Name: "Homo sapiens", Rank: "species"},
	}, l)
}

func TestLineageOptionalFields(t *testing.T) {
	st := newMemStore(
		rec(1, 0, "root", ""),
		rec(2, 1, "", ""),
		rec(3, 2, "Aus bus", ""),
	)
	l, err := taxonomy.LineageAndRank(context.Background(), st, 3)
	require.NoError(t, err)
	assert.Equal(t, taxon.Lineage{{Name: ""}, {Name: "Aus bus"}}, l)
}

func TestLineageErrors(t *testing.T) {
	ctx := context.Background()
	noParent := taxon.Record{ID: 5}

	tests := []struct {
		msg  string
		st   *memStore
		id   int
		code gn.ErrorCode
	}{
		{
			msg:  "unknown taxon",
			st:   hominids(),
			id:   42,
			code: errcode.TaxonNotFoundError,
		},
		{
			msg: "broken parent reference",
			st: newMemStore(
				rec(1, 0, "root", ""),
				rec(3, 2, "orphan", ""),
			),
			id:   3,
			code: errcode.TaxonNotFoundError,
		},
		{
			msg:  "record without parent",
			st:   newMemStore(noParent, rec(6, 5, "six", "")),
			id:   6,
			code: errcode.TaxonMissingParentError,
		},
		{
			msg: "circular references",
			st: newMemStore(
				rec(1, 3, "A", ""),
				rec(2, 1, "B", ""),
				rec(3, 2, "C", ""),
			),
			id:   1,
			code: errcode.TaxonCircularLineageError,
		},
		{
			msg:  "self reference",
			st:   newMemStore(rec(7, 7, "self", "")),
			id:   7,
			code: errcode.TaxonCircularLineageError,
		},
	}

	for _, v := range tests {
		res, err := taxonomy.Lineage(ctx, v.st, v.id)
		assert.Nil(t, res, v.msg)
		assert.Equal(t, v.code, errCode(t, err), v.msg)
	}
}
