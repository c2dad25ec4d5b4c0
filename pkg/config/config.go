// Package config provides configuration management for taxodb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Corpus: url, file_name
//   - Tree: limit, method
//   - Lookup: url, timeout
//   - Web: url
//   - Server: port
//   - Log: level, format, destination
//   - General: jobs_number, with_progress
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use TAXODB_ prefix with underscores for nesting:
//
//	TAXODB_CORPUS_URL=https://ftp.ebi.ac.uk/pub/databases/taxonomy/taxonomy.dat
//	TAXODB_TREE_LIMIT=100
//	TAXODB_LOG_LEVEL=info
//	TAXODB_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete taxodb configuration.
type Config struct {
	// Corpus describes where the taxonomy flat file comes from.
	Corpus CorpusConfig `mapstructure:"corpus" yaml:"corpus"`

	// Tree contains family tree expansion settings.
	Tree TreeConfig `mapstructure:"tree" yaml:"tree"`

	// Lookup contains settings of the remote taxonomy service.
	Lookup LookupConfig `mapstructure:"lookup" yaml:"lookup"`

	// Web contains settings of the taxon web page.
	Web WebConfig `mapstructure:"web" yaml:"web"`

	// Server contains settings of the HTTP API.
	Server ServerConfig `mapstructure:"server" yaml:"server"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers that parse corpus
	// records. Default value is set according to the number of available
	// threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// WithProgress shows progress bars for corpus download and parsing.
	WithProgress bool `mapstructure:"with_progress" yaml:"with_progress"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// CorpusConfig describes the taxonomy flat file.
type CorpusConfig struct {
	// URL of the flat file. If it is not an http(s) URL, it is treated
	// as a path to a local file that is used in place.
	URL string `mapstructure:"url" yaml:"url"`

	// FileName is the name of the downloaded file inside of the cache
	// directory.
	FileName string `mapstructure:"file_name" yaml:"file_name"`
}

// TreeConfig contains family tree settings.
type TreeConfig struct {
	// Limit is the number of edges after which the breadth-first expansion
	// stops. The last expansion round is kept, so the result can exceed
	// the limit by one round of edges.
	Limit int `mapstructure:"limit" yaml:"limit"`

	// Method is the traversal strategy. Only "bfs" is supported, the value
	// is validated when a tree is built.
	Method string `mapstructure:"method" yaml:"method"`
}

// LookupConfig contains settings of the remote taxonomy REST service.
type LookupConfig struct {
	// URL is the base URL of the Ensembl REST service.
	URL string `mapstructure:"url" yaml:"url"`

	// Timeout of a single request in seconds.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`
}

// WebConfig contains settings for opening taxon pages.
type WebConfig struct {
	// URL is a prefix to which a taxon ID is appended.
	URL string `mapstructure:"url" yaml:"url"`
}

// ServerConfig contains settings of the HTTP API.
type ServerConfig struct {
	// Port of the HTTP API.
	Port int `mapstructure:"port" yaml:"port"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Corpus: CorpusConfig{
			URL:      "https://ftp.ebi.ac.uk/pub/databases/taxonomy/taxonomy.dat",
			FileName: "taxonomy.dat",
		},
		Tree: TreeConfig{
			Limit:  100,
			Method: "bfs",
		},
		Lookup: LookupConfig{
			URL:     "https://rest.ensembl.org",
			Timeout: 30,
		},
		Web: WebConfig{
			URL: "https://www.uniprot.org/taxonomy",
		},
		Server: ServerConfig{
			Port: 8787,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber:   runtime.NumCPU(),
		WithProgress: true,
	}

	return res
}
