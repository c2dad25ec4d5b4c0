package taxonomy

import (
	"context"
	"regexp"
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/taxodb/pkg/taxon"
)

// Search finds records by scientific name. The pattern uses the same
// wildcards as remote name lookups: '%' matches any number of characters,
// '_' matches one character. Matching is case-insensitive.
//
// A pattern without wildcards matches names equal to the pattern itself,
// or to its canonical form, so "Homo sapiens Linnaeus, 1758" finds
// "Homo sapiens".
func Search(
	ctx context.Context,
	st Store,
	pattern string,
) ([]taxon.Record, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil, EmptyPatternError()
	}

	if err := st.EnsureLoaded(ctx); err != nil {
		return nil, err
	}

	isMatch := exactMatcher(pattern)
	if strings.ContainsAny(pattern, "%_") {
		isMatch = wildcardMatcher(pattern)
	}

	res := []taxon.Record{}
	for rec := range st.All() {
		if rec.ScientificName == nil {
			continue
		}
		if isMatch(rec.Name()) {
			res = append(res, rec)
		}
	}
	return res, nil
}

func exactMatcher(pattern string) func(string) bool {
	names := []string{strings.ToLower(pattern)}

	// botanical code keeps "Aus (Bus)" from being parsed as a subgenus
	cfg := gnparser.NewConfig(gnparser.OptCode(nomcode.Botanical))
	parser := gnparser.New(cfg)
	parsed := parser.ParseName(pattern)
	if parsed.Parsed {
		names = append(names, strings.ToLower(parsed.Canonical.Simple))
	}

	return func(name string) bool {
		name = strings.ToLower(name)
		for _, v := range names {
			if name == v {
				return true
			}
		}
		return false
	}
}

func wildcardMatcher(pattern string) func(string) bool {
	var sb strings.Builder
	sb.WriteString("(?i)^")
	for _, r := range pattern {
		switch r {
		case '%':
			sb.WriteString(".*")
		case '_':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	re := regexp.MustCompile(sb.String())
	return re.MatchString
}
