// Package ioformat writes results of taxodb commands as plain text,
// JSON or YAML.
package ioformat

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/taxodb/pkg/taxon"
	"github.com/gnames/taxodb/pkg/taxonomy"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format int

const (
	Text Format = iota
	JSON
	YAML
)

var formats = []string{"text", "json", "yaml"}

// String returns the name of the format.
func (f Format) String() string {
	if int(f) < len(formats) {
		return formats[f]
	}
	return "unknown"
}

// NewFormat converts a format name to Format.
func NewFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, v := range formats {
		if s == v {
			return Format(i), nil
		}
	}
	return Text, UnknownFormatError(s)
}

// Write renders v to w in the given format.
func Write(w io.Writer, f Format, v any) error {
	var bs []byte
	var err error

	switch f {
	case JSON:
		enc := gnfmt.GNjson{Pretty: true}
		bs, err = enc.Encode(v)
		bs = append(bs, '\n')
	case YAML:
		bs, err = yaml.Marshal(v)
	default:
		bs = []byte(text(v))
	}
	if err != nil {
		return EncodeError(f, err)
	}

	_, err = w.Write(bs)
	if err != nil {
		return EncodeError(f, err)
	}
	return nil
}

func text(v any) string {
	var sb strings.Builder
	switch d := v.(type) {
	case []string:
		for _, s := range d {
			sb.WriteString(s + "\n")
		}
	case []int:
		for _, i := range d {
			sb.WriteString(strconv.Itoa(i) + "\n")
		}
	case taxon.Lineage:
		sb.WriteString(d.String())
	case taxonomy.Tree:
		for _, e := range d.Edges {
			fmt.Fprintf(&sb, "%d\t%d\n", e.ParentID, e.ChildID)
		}
	case taxon.Summary:
		sb.WriteString(summaryLine(d))
	case []taxon.Summary:
		for _, s := range d {
			sb.WriteString(summaryLine(s))
		}
	case taxon.Taxon:
		sb.WriteString(taxonLine(d))
	case []taxon.Taxon:
		for _, t := range d {
			sb.WriteString(taxonLine(t))
		}
	case taxonomy.Stats:
		fmt.Fprintf(&sb, "blocks: %d\nrecords: %d\nmalformed: %d\n",
			d.Blocks, d.Records, d.Malformed)
		fmt.Fprintf(&sb, "duplicates: %d\nroots: %d\nduration: %s\n",
			d.Duplicates, d.Roots, gnfmt.TimeString(d.Seconds))
	default:
		fmt.Fprintf(&sb, "%v\n", v)
	}
	return sb.String()
}

func summaryLine(s taxon.Summary) string {
	fields := []string{strconv.Itoa(s.ID), parentText(s.ParentID),
		s.ScientificName, s.Rank}
	return strings.Join(fields, "\t") + "\n"
}

func taxonLine(t taxon.Taxon) string {
	fields := []string{strconv.Itoa(t.ID), parentText(t.ParentID),
		t.ScientificName, t.Rank, strings.Join(t.CommonNames, ", ")}
	return strings.Join(fields, "\t") + "\n"
}

func parentText(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}
