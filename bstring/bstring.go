// Package bstring implements Osyris' byte-string value: a finite sequence of
// bytes with string-like display but no UTF-8 validation. Every source-visible
// string, identifier, and file name in the language is a BString.
package bstring

import (
	"hash/fnv"
	"path/filepath"
	"strings"
)

// BString is an immutable, 8-bit-clean byte sequence. The zero value is the
// empty string.
type BString struct {
	bytes []byte
}

// New copies the given bytes into a new BString.
func New(b []byte) BString {
	cp := make([]byte, len(b))
	copy(cp, b)
	return BString{bytes: cp}
}

// FromString wraps a Go string's bytes.
func FromString(s string) BString {
	return BString{bytes: []byte(s)}
}

// FromOSPath converts a filesystem path into a BString, losslessly.
func FromOSPath(path string) BString {
	return FromString(path)
}

// Len returns the number of bytes.
func (b BString) Len() int {
	return len(b.bytes)
}

// Bytes returns a read-only view of the underlying bytes. Callers must not
// mutate the returned slice.
func (b BString) Bytes() []byte {
	return b.bytes
}

// ToOSPath converts the BString back into an OS path string, losslessly.
func (b BString) ToOSPath() string {
	return filepath.FromSlash(string(b.bytes))
}

// Equal reports whether two BStrings hold identical bytes.
func (b BString) Equal(other BString) bool {
	return string(b.bytes) == string(other.bytes)
}

// Compare returns -1, 0, or 1 per lexicographic byte ordering, matching
// strings.Compare semantics.
func (b BString) Compare(other BString) int {
	return strings.Compare(string(b.bytes), string(other.bytes))
}

// Hash returns a 64-bit FNV-1a hash of the byte content, suitable for use as
// a Dict key.
func (b BString) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write(b.bytes)
	return h.Sum64()
}

// String renders the raw bytes, exactly as they would be written to an
// output port. Non-UTF-8 bytes pass through unchanged.
func (b BString) String() string {
	return string(b.bytes)
}

// DebugString renders the BString surrounded by double quotes with
// non-printable bytes escaped, for use in error messages and AST dumps.
func (b BString) DebugString() string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range b.bytes {
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case 0:
			sb.WriteString(`\0`)
		default:
			if c < 0x20 || c >= 0x7f {
				sb.WriteString("\\x")
				const hexDigits = "0123456789abcdef"
				sb.WriteByte(hexDigits[c>>4])
				sb.WriteByte(hexDigits[c&0xf])
			} else {
				sb.WriteByte(c)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
