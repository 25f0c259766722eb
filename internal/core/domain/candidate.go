package domain

// Fingerprint is a fixed-length hex digest of file content used for change detection.
type Fingerprint string

// String returns the hex form of the fingerprint.
func (f Fingerprint) String() string {
	return string(f)
}

// Candidate is a file selected for possible reprocessing in the current run.
type Candidate struct {
	// Path is the absolute, symlink-resolved location of the file.
	Path string `json:"path"`
	// Key is the cache key: the slash-separated path relative to the project base directory.
	Key string `json:"key"`
}

// Selection describes which files a run should consider.
type Selection struct {
	BaseDir          string
	Roots            []string
	Includes         []string
	Excludes         []string
	RespectGitignore bool
}
