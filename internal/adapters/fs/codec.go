package fs

import (
	"strings"
	"unicode/utf8"

	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/reform/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

var _ ports.TextCodec = (*Codec)(nil)

// Codec converts file bytes to and from text in a single IANA encoding.
type Codec struct {
	name string
	enc  encoding.Encoding
}

// NewCodec resolves name through the IANA registry. An empty name selects UTF-8.
func NewCodec(name string) (*Codec, error) {
	if name == "" {
		name = domain.DefaultEncoding
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, zerr.With(domain.ErrUnsupportedEncoding, "encoding", name)
	}

	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canonical = strings.ToUpper(name)
	}

	return &Codec{name: canonical, enc: enc}, nil
}

// Name returns the canonical IANA name of the encoding.
func (c *Codec) Name() string {
	return c.name
}

// Decode converts data to text. UTF-8 input must be valid; other encodings
// go through the x/text decoder.
func (c *Codec) Decode(data []byte) (string, error) {
	if c.isUTF8() {
		if !utf8.Valid(data) {
			return "", zerr.With(domain.ErrDecodeFailed, "encoding", c.name)
		}
		return string(data), nil
	}

	out, err := c.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDecodeFailed.Error()), "encoding", c.name)
	}
	return string(out), nil
}

// Encode converts text back to bytes in the configured encoding.
func (c *Codec) Encode(text string) ([]byte, error) {
	if c.isUTF8() {
		return []byte(text), nil
	}

	out, err := c.enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEncodeFailed.Error()), "encoding", c.name)
	}
	return out, nil
}

func (c *Codec) isUTF8() bool {
	return c.name == "UTF-8"
}
