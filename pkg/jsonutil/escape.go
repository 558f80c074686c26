package jsonutil

import "bytes"

const hexDigits = "0123456789abcdef"

// WriteEscaped appends s to buf as the body of a JSON string.
//
// Only backslash, double quote and control characters below 0x20 are
// escaped. Slashes, HTML characters and non-ASCII text are copied as-is,
// so the output differs from encoding/json on purpose.
func WriteEscaped(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '\\' && c != '"' {
			continue
		}
		buf.WriteString(s[start:i])
		switch c {
		case '\\':
			buf.WriteString(`\\`)
		case '"':
			buf.WriteString(`\"`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexDigits[c>>4])
			buf.WriteByte(hexDigits[c&0x0f])
		}
		start = i + 1
	}
	buf.WriteString(s[start:])
}

// WriteString appends s to buf as a quoted JSON string.
func WriteString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	WriteEscaped(buf, s)
	buf.WriteByte('"')
}
