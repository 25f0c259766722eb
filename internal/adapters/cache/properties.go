package cache

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/zerr"
)

const header = "# reform fingerprint cache"

const hexDigits = "0123456789ABCDEF"

var errMalformedEscape = zerr.New("malformed \\uXXXX or \\xHH escape")

// Encode renders entries as a properties document with keys in sorted order.
func Encode(entries map[string]domain.Fingerprint) []byte {
	keys := slices.Sorted(maps.Keys(entries))

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	for _, k := range keys {
		escape(&b, k, true)
		b.WriteByte('=')
		escape(&b, entries[k].String(), false)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Decode parses a properties document. Lines that cannot be parsed, or that
// carry an empty key or value, are dropped and counted in skipped.
func Decode(data []byte) (entries map[string]domain.Fingerprint, skipped int) {
	entries = make(map[string]domain.Fingerprint)

	for _, line := range logicalLines(string(data)) {
		rawKey, rawValue := splitKeyValue(line)

		key, err := unescape(rawKey)
		if err != nil {
			skipped++
			continue
		}
		value, err := unescape(rawValue)
		if err != nil || key == "" || value == "" {
			skipped++
			continue
		}
		entries[key] = domain.Fingerprint(value)
	}

	return entries, skipped
}

// escape writes s in properties form. Spaces are escaped everywhere in keys
// and only in leading position in values. Bytes that are not valid UTF-8 are
// written as \xHH so that arbitrary file names survive a round trip.
func escape(b *strings.Builder, s string, isKey bool) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteString(`\x`)
			b.WriteByte(hexDigits[s[i]>>4])
			b.WriteByte(hexDigits[s[i]&0xf])
			i++
			continue
		}
		leading := i == 0
		i += size

		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		case '=', ':', '#', '!':
			b.WriteByte('\\')
			b.WriteRune(r)
		case ' ':
			if isKey || leading {
				b.WriteByte('\\')
			}
			b.WriteByte(' ')
		default:
			if r < 0x20 || r > 0x7e {
				for _, unit := range utf16.Encode([]rune{r}) {
					writeUnicodeEscape(b, unit)
				}
				continue
			}
			b.WriteRune(r)
		}
	}
}

func writeUnicodeEscape(b *strings.Builder, unit uint16) {
	b.WriteString(`\u`)
	b.WriteByte(hexDigits[unit>>12&0xf])
	b.WriteByte(hexDigits[unit>>8&0xf])
	b.WriteByte(hexDigits[unit>>4&0xf])
	b.WriteByte(hexDigits[unit&0xf])
}

// logicalLines splits data into non-comment lines with continuations joined.
// An empty physical line ends a continuation.
func logicalLines(data string) []string {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	data = strings.ReplaceAll(data, "\r", "\n")
	physical := strings.Split(data, "\n")

	var out []string
	var current strings.Builder
	continuing := false

	for _, line := range physical {
		line = strings.TrimLeft(line, " \t\f")
		if !continuing {
			if line == "" || line[0] == '#' || line[0] == '!' {
				continue
			}
		}

		if trailingBackslashes(line)%2 == 1 {
			current.WriteString(line[:len(line)-1])
			continuing = true
			continue
		}

		current.WriteString(line)
		out = append(out, current.String())
		current.Reset()
		continuing = false
	}
	if continuing && current.Len() > 0 {
		out = append(out, current.String())
	}

	return out
}

func trailingBackslashes(s string) int {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n
}

// splitKeyValue separates a logical line at the first unescaped '=', ':' or whitespace.
func splitKeyValue(line string) (key, value string) {
	end := len(line)
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' {
			i++
			continue
		}
		if c == '=' || c == ':' || c == ' ' || c == '\t' || c == '\f' {
			end = i
			break
		}
	}

	key = line[:end]
	rest := strings.TrimLeft(line[end:], " \t\f")
	if rest != "" && (rest[0] == '=' || rest[0] == ':') {
		rest = strings.TrimLeft(rest[1:], " \t\f")
	}
	return key, rest
}

// unescape resolves backslash escapes, joining UTF-16 surrogate pairs.
func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}

	var units []uint16
	var b strings.Builder
	flush := func() {
		if len(units) > 0 {
			b.WriteString(string(utf16.Decode(units)))
			units = units[:0]
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			flush()
			b.WriteByte(c)
			continue
		}

		i++
		if i == len(s) {
			break
		}

		switch s[i] {
		case 'u':
			if i+5 > len(s) {
				return "", errMalformedEscape
			}
			unit, ok := parseHex(s[i+1 : i+5])
			if !ok {
				return "", errMalformedEscape
			}
			units = append(units, unit)
			i += 4
			continue
		case 'x':
			if i+3 > len(s) {
				return "", errMalformedEscape
			}
			unit, ok := parseHex(s[i+1 : i+3])
			if !ok {
				return "", errMalformedEscape
			}
			flush()
			b.WriteByte(byte(unit))
			i += 2
		case 't':
			flush()
			b.WriteByte('\t')
		case 'n':
			flush()
			b.WriteByte('\n')
		case 'r':
			flush()
			b.WriteByte('\r')
		case 'f':
			flush()
			b.WriteByte('\f')
		default:
			flush()
			b.WriteByte(s[i])
		}
	}
	flush()

	return b.String(), nil
}

func parseHex(s string) (uint16, bool) {
	var v uint16
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d byte
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, false
		}
		v = v<<4 | uint16(d)
	}
	return v, true
}
