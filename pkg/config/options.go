package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptCorpusURL sets the URL or the local path of the taxonomy flat file.
func OptCorpusURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Corpus URL", s) {
			c.Corpus.URL = s
		}
	}
}

// OptCorpusFileName sets the file name of the cached flat file.
func OptCorpusFileName(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Corpus File Name", s) &&
			isValidFileName("Corpus File Name", s) {
			c.Corpus.FileName = s
		}
	}
}

// OptTreeLimit sets the number of edges that stops family tree expansion.
func OptTreeLimit(i int) Option {
	return func(c *Config) {
		if isValidInt("Tree Limit", i) {
			c.Tree.Limit = i
		}
	}
}

// OptTreeMethod sets the traversal method of family trees.
// The value is kept as is, unsupported methods fail when a tree is built.
func OptTreeMethod(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidString("Tree Method", s) {
			c.Tree.Method = s
		}
	}
}

// OptLookupURL sets the base URL of the remote taxonomy service.
func OptLookupURL(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "/")
	return func(c *Config) {
		if isValidString("Lookup URL", s) {
			c.Lookup.URL = s
		}
	}
}

// OptLookupTimeout sets the timeout of remote requests in seconds.
func OptLookupTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("Lookup Timeout", i) {
			c.Lookup.Timeout = i
		}
	}
}

// OptWebURL sets the prefix of taxon web pages.
func OptWebURL(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "/")
	return func(c *Config) {
		if isValidString("Web URL", s) {
			c.Web.URL = s
		}
	}
}

// OptServerPort sets the port of the HTTP API.
func OptServerPort(i int) Option {
	return func(c *Config) {
		if isValidInt("Server Port", i) {
			c.Server.Port = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for parsing.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptWithProgress toggles progress bars.
func OptWithProgress(b bool) Option {
	return func(c *Config) {
		c.WithProgress = b
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
