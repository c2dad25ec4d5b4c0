package iolookup

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gnames/taxodb/pkg/taxon"
)

// ensemblTaxon is a taxon node as it is returned by Ensembl. IDs come as
// strings, parent is either a node or an ID.
type ensemblTaxon struct {
	ID             json.RawMessage `json:"id"`
	ScientificName string          `json:"scientific_name"`
	Name           string          `json:"name"`
	Rank           string          `json:"rank"`
	Leaf           json.RawMessage `json:"leaf"`
	Parent         json.RawMessage `json:"parent"`
	Tags           struct {
		CommonName []string `json:"common name"`
	} `json:"tags"`
}

func (et ensemblTaxon) toTaxon() taxon.Taxon {
	res := taxon.Taxon{
		ScientificName: et.ScientificName,
		Rank:           et.Rank,
		Name:           et.Name,
		Leaf:           toBool(et.Leaf),
		CommonNames:    et.Tags.CommonName,
	}
	res.ID, _ = toInt(et.ID)
	if id, ok := parentID(et.Parent); ok {
		res.ParentID = &id
	}
	return res
}

// parentID extracts ID of the parent either from an embedded node
// or from a bare value.
func parentID(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}
	if raw[0] == '{' {
		var node struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(raw, &node); err != nil {
			return 0, false
		}
		return toInt(node.ID)
	}
	return toInt(raw)
}

// toInt converts a JSON number or a JSON string to int.
func toInt(raw json.RawMessage) (int, bool) {
	s := strings.Trim(string(raw), `"`)
	res, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return res, true
}

func toBool(raw json.RawMessage) bool {
	switch strings.Trim(string(raw), `"`) {
	case "1", "true":
		return true
	}
	return false
}
