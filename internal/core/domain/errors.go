package domain

import "go.trai.ch/zerr"

var (
	// ErrSelectionFailed is returned when the candidate file list cannot be resolved.
	ErrSelectionFailed = zerr.New("failed to select candidate files")

	// ErrRootNotFound is returned when a configured root directory does not exist.
	ErrRootNotFound = zerr.New("root directory not found")

	// ErrRootNotDirectory is returned when a configured root is not a directory.
	ErrRootNotDirectory = zerr.New("root is not a directory")

	// ErrInvalidPattern is returned when an include or exclude glob is malformed.
	ErrInvalidPattern = zerr.New("invalid glob pattern")

	// ErrWalkFailed is returned when traversing a root directory fails.
	ErrWalkFailed = zerr.New("failed to walk root directory")

	// ErrFileReadFailed is returned when a candidate file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrDecodeFailed is returned when file content is not valid in the configured encoding.
	ErrDecodeFailed = zerr.New("failed to decode file content")

	// ErrEncodeFailed is returned when transformed content cannot be represented in the configured encoding.
	ErrEncodeFailed = zerr.New("failed to encode transformed content")

	// ErrTransformFailed is returned when the transform engine cannot process a file.
	ErrTransformFailed = zerr.New("transform failed")

	// ErrTransformTimeout is returned when the transform engine exceeds the per-file timeout.
	ErrTransformTimeout = zerr.New("transform timed out")

	// ErrFileWriteFailed is returned when transformed content cannot be written back.
	ErrFileWriteFailed = zerr.New("failed to write file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrCacheReadFailed is returned when the cache file exists but cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read fingerprint cache")

	// ErrCacheCreateFailed is returned when the cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create fingerprint cache directory")

	// ErrCacheWriteFailed is returned when the cache cannot be persisted.
	ErrCacheWriteFailed = zerr.New("failed to write fingerprint cache")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrUnsupportedEncoding is returned when the configured text encoding is unknown.
	ErrUnsupportedEncoding = zerr.New("unsupported text encoding")

	// ErrUnknownEngine is returned when the configured transform engine kind is not registered.
	ErrUnknownEngine = zerr.New("unknown transform engine")

	// ErrMissingCommand is returned when the command engine has no command configured.
	ErrMissingCommand = zerr.New("command engine requires a command")

	// ErrFilesNeedFormatting is returned by check runs that found files which would be rewritten.
	ErrFilesNeedFormatting = zerr.New("files need formatting")

	// ErrRunHadFailures is returned when a run completed with per-file failures and
	// the caller asked for them to be fatal.
	ErrRunHadFailures = zerr.New("run completed with failures")
)
