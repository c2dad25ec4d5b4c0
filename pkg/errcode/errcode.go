package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Corpus errors
	CorpusFetchError
	CorpusReadError
	CorpusEmptyError
	CorpusLoadCancelledError

	// Record errors
	RecordMissingIDError
	RecordBadFieldError

	// Taxonomy errors
	TaxonNotFoundError
	TaxonMissingParentError
	TaxonCircularLineageError
	TreeMethodError
	TreeLimitError
	TreeCancelledError
	SearchPatternError

	// Lookup errors
	LookupError
	LookupNotFoundError

	// Web page errors
	WebPageError
	WebBrowserError

	// Server errors
	ServerError

	// Output errors
	OutputFormatError

	// Command line errors
	ArgumentError
)
