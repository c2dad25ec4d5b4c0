// Package taxon contains entities of the taxonomy flat file and the parser
// that creates them from raw text blocks.
//
// This is a pure package: it does not read files or access network.
package taxon

import (
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
)

// RootSentinel is the parent ID of top-level taxa.
const RootSentinel = 0

// Record is one parsed entry of the taxonomy flat file.
//
// ID is always present in records that made it into a store. Other fields
// are optional, nil pointers mean the block did not have the field.
type Record struct {
	// ID is a positive unique identifier of the taxon.
	ID int `json:"id" yaml:"id"`

	// ParentID is the ID of the parent taxon, RootSentinel for top-level
	// taxa.
	ParentID *int `json:"parentId,omitempty" yaml:"parentId,omitempty"`

	// ScientificName is the name of the taxon.
	ScientificName *string `json:"scientificName,omitempty" yaml:"scientificName,omitempty"`

	// Rank is the classification level of the taxon (species, genus etc.).
	Rank *string `json:"rank,omitempty" yaml:"rank,omitempty"`

	// Raw is the original text block, kept for diagnostics.
	Raw string `json:"-" yaml:"-"`
}

// Parent returns the parent ID and true, or zero and false if the record
// has no PARENT ID field.
func (r Record) Parent() (int, bool) {
	if r.ParentID == nil {
		return 0, false
	}
	return *r.ParentID, true
}

// IsRoot is true when the parent ID is present and equals RootSentinel.
func (r Record) IsRoot() bool {
	p, ok := r.Parent()
	return ok && p == RootSentinel
}

// Name returns the scientific name or an empty string.
func (r Record) Name() string {
	if r.ScientificName == nil {
		return ""
	}
	return *r.ScientificName
}

// RankName returns the rank or an empty string.
func (r Record) RankName() string {
	if r.Rank == nil {
		return ""
	}
	return *r.Rank
}

// Summary is a view of a record used for output. NameID is UUID v5 of the
// scientific name, the same identifier gnames services use for
// name-strings.
type Summary struct {
	ID             int        `json:"id" yaml:"id"`
	ParentID       *int       `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	ScientificName string     `json:"scientificName,omitempty" yaml:"scientificName,omitempty"`
	Rank           string     `json:"rank,omitempty" yaml:"rank,omitempty"`
	NameID         *uuid.UUID `json:"nameId,omitempty" yaml:"nameId,omitempty"`
}

// Summary creates a Summary of the record.
func (r Record) Summary() Summary {
	res := Summary{
		ID:             r.ID,
		ParentID:       r.ParentID,
		ScientificName: r.Name(),
		Rank:           r.RankName(),
	}
	if res.ScientificName != "" {
		id := gnuuid.New(res.ScientificName)
		res.NameID = &id
	}
	return res
}

// Edge is a parent to child link discovered by a family tree expansion.
type Edge struct {
	ParentID int `json:"parentId" yaml:"parentId"`
	ChildID  int `json:"childId" yaml:"childId"`
}

// Taxon is a record received from a remote taxonomy service. It shares
// id, parent and scientific name with the flat file Record.
type Taxon struct {
	ID             int      `json:"id" yaml:"id"`
	ParentID       *int     `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	ScientificName string   `json:"scientificName" yaml:"scientificName"`
	Rank           string   `json:"rank,omitempty" yaml:"rank,omitempty"`
	Name           string   `json:"name,omitempty" yaml:"name,omitempty"`
	Leaf           bool     `json:"leaf" yaml:"leaf"`
	CommonNames    []string `json:"commonNames,omitempty" yaml:"commonNames,omitempty"`
}
