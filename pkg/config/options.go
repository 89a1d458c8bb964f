package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptFetchBaseURL sets the root URL of the taxonomy REST service.
func OptFetchBaseURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Fetch BaseURL", s) {
			c.Fetch.BaseURL = strings.TrimSuffix(s, "/")
		}
	}
}

// OptFetchTimeoutSec sets the per-request timeout in seconds.
func OptFetchTimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("Fetch Timeout", i) {
			c.Fetch.TimeoutSec = i
		}
	}
}

// OptBuildCheckpointInterval sets the number of newly fetched organisms
// between cache flushes to disk.
func OptBuildCheckpointInterval(i int) Option {
	return func(c *Config) {
		if isValidInt("Checkpoint Interval", i) {
			c.Build.CheckpointInterval = i
		}
	}
}

// OptBuildRecreate discards any existing cache snapshot and starts the
// build from an empty cache.
// Runtime-only field - not in ToOptions().
func OptBuildRecreate(b bool) Option {
	return func(c *Config) {
		c.Build.Recreate = b
	}
}

// OptBalanceFraction sets the per-label sample fraction of the total
// labeled population.
func OptBalanceFraction(f float64) Option {
	return func(c *Config) {
		if isValidFraction("Balance Fraction", f) {
			c.Balance.Fraction = f
		}
	}
}

// OptBalanceSeed sets the random seed for balanced sampling.
// Zero keeps the default entropy-based seeding.
// Runtime-only field - not in ToOptions().
func OptBalanceSeed(i int64) Option {
	return func(c *Config) {
		c.Balance.Seed = i
	}
}

// OptFastaFile sets the UniProt FASTA input path.
func OptFastaFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("FASTA File", s) {
			c.Paths.FastaFile = s
		}
	}
}

// OptSeqFile sets the sequence table (CSV) path.
func OptSeqFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Sequence File", s) {
			c.Paths.SeqFile = s
		}
	}
}

// OptDBFile sets the taxonomy cache snapshot path.
func OptDBFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Taxonomy DB File", s) {
			c.Paths.DBFile = s
		}
	}
}

// OptOutFile sets the labeled balanced output (CSV) path.
func OptOutFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output File", s) {
			c.Paths.OutFile = s
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
// Valid values: "json", "text".
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
