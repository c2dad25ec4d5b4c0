package taxon

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gnames/gnlib"
)

// Field patterns are anchored at the start of a line, so "PARENT ID" or
// "GC ID" lines never match the ID pattern.
var (
	idRe     = regexp.MustCompile(`(?m)^[ \t]*ID[ \t]*:[ \t]*([^\r\n]*)`)
	parentRe = regexp.MustCompile(`(?m)^[ \t]*PARENT ID[ \t]*:[ \t]*([^\r\n]*)`)
	nameRe   = regexp.MustCompile(`(?m)^[ \t]*SCIENTIFIC NAME[ \t]*:[ \t]*([^\r\n]*)`)
	rankRe   = regexp.MustCompile(`(?m)^[ \t]*RANK[ \t]*:[ \t]*([^\r\n]*)`)
)

// Fields are raw values found in a text block. An empty string means the
// field was not found.
type Fields struct {
	Raw            string
	ID             string
	ParentID       string
	ScientificName string
	Rank           string
}

// Parse extracts known fields from a text block. It never fails, the
// returned Fields contain whatever was matched.
func Parse(block string) Fields {
	return Fields{
		Raw:            block,
		ID:             match(idRe, block),
		ParentID:       match(parentRe, block),
		ScientificName: match(nameRe, block),
		Rank:           match(rankRe, block),
	}
}

func match(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// NewRecord converts Fields to a Record. It returns an error if ID is
// missing, is not a positive integer, or if PARENT ID is present but is
// not a non-negative integer.
func NewRecord(f Fields) (Record, error) {
	var res Record
	if f.ID == "" {
		return res, MissingIDError(f.Raw)
	}
	id, err := strconv.Atoi(f.ID)
	if err != nil || id <= 0 {
		return res, BadFieldError("ID", f.ID, f.Raw)
	}
	res.ID = id
	res.Raw = f.Raw

	if f.ParentID != "" {
		parent, err := strconv.Atoi(f.ParentID)
		if err != nil || parent < 0 {
			return Record{}, BadFieldError("PARENT ID", f.ParentID, f.Raw)
		}
		res.ParentID = &parent
	}

	if f.ScientificName != "" {
		name := gnlib.FixUtf8(f.ScientificName)
		res.ScientificName = &name
	}

	if f.Rank != "" {
		rank := f.Rank
		res.Rank = &rank
	}

	return res, nil
}

// ParseRecord parses a block and converts it into a Record.
func ParseRecord(block string) (Record, error) {
	return NewRecord(Parse(block))
}
