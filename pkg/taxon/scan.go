package taxon

import (
	"bytes"
)

// Separator is the line that ends a record in the flat file.
const Separator = "//"

// ScanBlocks is a bufio.SplitFunc that returns text blocks separated by
// lines that consist of "//" only. Separator lines are not included into
// tokens. A trailing remainder that contains only white space is dropped.
func ScanBlocks(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	var start int
	for {
		i := bytes.IndexByte(data[start:], '\n')
		if i < 0 {
			break
		}
		if isSeparator(data[start : start+i]) {
			return start + i + 1, data[:start], nil
		}
		start += i + 1
	}

	if !atEOF {
		return 0, nil, nil
	}

	// the last line has no new line character
	if isSeparator(data[start:]) {
		return len(data), data[:start], nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return len(data), nil, nil
	}
	return len(data), data, nil
}

func isSeparator(line []byte) bool {
	line = bytes.TrimSuffix(line, []byte{'\r'})
	return string(line) == Separator
}
