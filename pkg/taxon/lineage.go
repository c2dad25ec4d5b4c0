package taxon

import (
	"strings"
)

// LineageItem is one taxon of a lineage.
type LineageItem struct {
	Name string `json:"name" yaml:"name"`
	Rank string `json:"rank" yaml:"rank"`
}

// Lineage is a chain of taxa ordered from the oldest ancestor to the
// queried taxon.
type Lineage []LineageItem

// Names returns scientific names of the lineage.
func (l Lineage) Names() []string {
	res := make([]string, len(l))
	for i := range l {
		res[i] = l[i].Name
	}
	return res
}

// String shows every taxon on its own line, each next line is indented one
// more space than the previous one.
func (l Lineage) String() string {
	var sb strings.Builder
	for i, v := range l {
		sb.WriteString(strings.Repeat(" ", i))
		sb.WriteString(v.Name)
		if v.Rank != "" {
			sb.WriteString(" (" + v.Rank + ")")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
