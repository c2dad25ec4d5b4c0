package taxon_test

import (
	"testing"

	"github.com/gnames/taxodb/pkg/taxon"
	"github.com/stretchr/testify/assert"
)

func TestLineage(t *testing.T) {
	l := taxon.Lineage{
		{Name: "Hominidae", Rank: "family"},
		{Name: "Homo", Rank: "genus"},
		{Name: "Homo sapiens", Rank: "species"},
		{Name: "unranked"},
	}

	assert.Equal(t,
		[]string{"Hominidae", "Homo", "Homo sapiens", "unranked"},
		l.Names())

	exp := "Hominidae (family)\n" +
		" Homo (genus)\n" +
		"  Homo sapiens (species)\n" +
		"   unranked\n"
	assert.Equal(t, exp, l.String())

	var empty taxon.Lineage
	assert.Empty(t, empty.Names())
	assert.Equal(t, "", empty.String())
}
