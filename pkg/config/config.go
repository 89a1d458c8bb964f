// Package config provides configuration management for protax.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
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
//   - Fetch: base_url, timeout_sec
//   - Build: checkpoint_interval
//   - Balance: fraction
//   - Paths: fasta_file, seq_file, db_file, out_file
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Build.Recreate, Balance.Seed (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use PROTAX_ prefix with underscores for nesting:
//
//	PROTAX_FETCH_BASE_URL=https://rest.uniprot.org/taxonomy
//	PROTAX_BUILD_CHECKPOINT_INTERVAL=100
//	PROTAX_LOG_LEVEL=info
package config

// Config represents the complete protax configuration.
type Config struct {
	// Fetch contains settings for the remote taxonomy service client.
	Fetch FetchConfig `mapstructure:"fetch" yaml:"fetch"`

	// Build contains settings specific to the build command.
	Build BuildConfig `mapstructure:"build" yaml:"build"`

	// Balance contains settings for the class-balanced sampling pass.
	Balance BalanceConfig `mapstructure:"balance" yaml:"balance"`

	// Paths points to the data files the pipeline reads and writes.
	Paths PathsConfig `mapstructure:"paths" yaml:"paths"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// FetchConfig contains remote taxonomy service parameters.
type FetchConfig struct {
	// BaseURL is the root of the taxonomy REST service. An organism is
	// retrieved from "{BaseURL}/{organism_id}.json".
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// TimeoutSec is the per-request timeout in seconds. A slow remote
	// call blocks the whole build, so the timeout bounds lost time.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`
}

// BuildConfig contains settings specific to the build command.
type BuildConfig struct {
	// CheckpointInterval is the number of newly fetched organisms after
	// which the cache is flushed to disk. Smaller values lose less work
	// on interruption at the cost of more writes.
	CheckpointInterval int `mapstructure:"checkpoint_interval" yaml:"checkpoint_interval"`

	// Recreate discards any existing cache snapshot and starts the
	// build from an empty cache.
	// Runtime-only field - not in ToOptions().
	Recreate bool
}

// BalanceConfig contains settings for balanced sampling.
type BalanceConfig struct {
	// Fraction of the total labeled population each label contributes
	// to the balanced output. Sample size per label is
	// round(Fraction * total).
	Fraction float64 `mapstructure:"fraction" yaml:"fraction"`

	// Seed for the sampling random source. Zero seeds from entropy,
	// any other value makes the sample reproducible.
	// Runtime-only field - not in ToOptions().
	Seed int64
}

// PathsConfig points to the pipeline's data files.
type PathsConfig struct {
	// FastaFile is the UniProt FASTA input for the parse command.
	FastaFile string `mapstructure:"fasta_file" yaml:"fasta_file"`

	// SeqFile is the parsed sequence table (CSV).
	SeqFile string `mapstructure:"seq_file" yaml:"seq_file"`

	// DBFile is the taxonomy cache snapshot.
	DBFile string `mapstructure:"db_file" yaml:"db_file"`

	// OutFile is the labeled, balanced output table (CSV).
	OutFile string `mapstructure:"out_file" yaml:"out_file"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
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
		Fetch: FetchConfig{
			BaseURL:    "https://rest.uniprot.org/taxonomy",
			TimeoutSec: 30,
		},
		Build: BuildConfig{
			CheckpointInterval: 100,
		},
		Balance: BalanceConfig{
			// Chosen so the smallest label group of the Swiss-Prot
			// snapshot the pipeline was tuned on is just large enough.
			Fraction: 0.01639,
		},
		Paths: PathsConfig{
			FastaFile: "data/uniprot_sprot.fasta",
			SeqFile:   "data/seq.csv",
			DBFile:    "data/taxonomy_db.gob",
			OutFile:   "data/labeled_sequences.csv",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
