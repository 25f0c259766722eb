package ports

// SourceFiles reads and writes candidate file content.
//
//go:generate go run go.uber.org/mock/mockgen -source=files.go -destination=mocks/mock_files.go -package=mocks
type SourceFiles interface {
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Write replaces the content of the file at path, preserving its permissions.
	Write(path string, data []byte) error
}

// TextCodec converts between raw file bytes and text in one configured encoding.
type TextCodec interface {
	// Name returns the canonical encoding name.
	Name() string
	// Decode converts raw bytes into text.
	Decode(data []byte) (string, error)
	// Encode converts text into raw bytes.
	Encode(text string) ([]byte, error)
}
