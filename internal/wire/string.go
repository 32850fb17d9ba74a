package wire

import (
	"io"
	"strconv"
	"strings"
)

// Quoted consumes a quoted string: a double-quoted run of QUOTED-CHAR,
// with '\\' escaping a following '"' or '\\'. Grounded on the root
// package's v1 Reader.ReadQuotedString, rewritten byte-by-byte so a
// backslash escape can be honored instead of only trimming the closing
// quote.
func (dec *Decoder) Quoted(ptr *string) bool {
	if !dec.acceptByte('"') {
		return false
	}
	var sb strings.Builder
	for {
		b, ok := dec.readByte()
		if !ok {
			return false
		}
		if b == '"' {
			break
		}
		if b == '\\' {
			b, ok = dec.readByte()
			if !ok {
				return false
			}
			if b != '"' && b != '\\' {
				dec.returnErr(io.ErrUnexpectedEOF)
				return false
			}
		} else if !IsQuotedChar(b) {
			dec.returnErr(io.ErrUnexpectedEOF)
			return false
		}
		sb.WriteByte(b)
	}
	*ptr = sb.String()
	return true
}

// Literal consumes a synchronizing or non-synchronizing literal:
// "{" number ["+"] "}" CRLF, followed by exactly number octets.
// Grounded on the root package's v1 Reader.ReadLiteral, generalized to
// accept the "+" non-synchronizing marker RFC 9051 adds and to report
// the literal's size to LiteralFunc before consuming its bytes, so a
// caller that needs to send a continuation request gets the chance.
func (dec *Decoder) Literal(ptr *string) bool {
	if !dec.acceptByte('{') {
		return false
	}
	size, ok := dec.Number64()
	if !ok {
		return false
	}
	nonSync := dec.acceptByte('+')
	if !dec.acceptByte('}') {
		return false
	}
	if !dec.CRLF() {
		return false
	}
	if dec.LiteralFunc != nil {
		if err := dec.LiteralFunc(size, nonSync); err != nil {
			dec.returnErr(err)
			return false
		}
	}
	buf := make([]byte, size)
	for i := int64(0); i < size; i++ {
		b, ok := dec.readByte()
		if !ok {
			return false
		}
		buf[i] = b
	}
	*ptr = string(buf)
	return true
}

// String consumes a quoted string or a literal.
func (dec *Decoder) String(ptr *string) bool {
	b, ok := dec.peekByte()
	if !ok {
		return false
	}
	switch b {
	case '"':
		return dec.Quoted(ptr)
	case '{':
		return dec.Literal(ptr)
	default:
		return false
	}
}

// ExpectString consumes a string or fails.
func (dec *Decoder) ExpectString(ptr *string) bool {
	return dec.Expect(dec.String(ptr), "string")
}

// NString consumes a string or the literal atom "NIL", reporting which
// via isNil; ptr is left unset for NIL. ok is false when the next token
// is neither a string nor NIL, or on a read error.
func (dec *Decoder) NString(ptr *string) (isNil bool, ok bool) {
	b, peekOK := dec.peekByte()
	if !peekOK {
		return false, false
	}
	if b == 'N' || b == 'n' {
		var atom string
		if !dec.Atom(&atom) {
			return false, false
		}
		if !strings.EqualFold(atom, "NIL") {
			dec.pushback(atom)
			return false, false
		}
		return true, true
	}
	if !dec.String(ptr) {
		return false, false
	}
	return false, true
}

// NStringPtr is a convenience wrapper over NString returning a *string
// that is nil for NIL, matching the pointer-based optional-value
// convention the root package's message-attribute types use.
func (dec *Decoder) NStringPtr() (*string, bool) {
	var s string
	isNil, ok := dec.NString(&s)
	if !ok {
		return nil, false
	}
	if isNil {
		return nil, true
	}
	return &s, true
}

// AString consumes an ASTRING: either a quoted/literal string or an
// unquoted run of ASTRING-CHAR.
func (dec *Decoder) AString(ptr *string) bool {
	b, ok := dec.peekByte()
	if !ok {
		return false
	}
	if b == '"' || b == '{' {
		return dec.String(ptr)
	}
	var sb strings.Builder
	for {
		b, ok := dec.readByte()
		if !ok {
			return false
		}
		if !IsAStringChar(b) {
			dec.unreadByte(b)
			break
		}
		sb.WriteByte(b)
	}
	if sb.Len() == 0 {
		return false
	}
	*ptr = sb.String()
	return true
}

// ExpectAString consumes an ASTRING or fails.
func (dec *Decoder) ExpectAString(ptr *string) bool {
	return dec.Expect(dec.AString(ptr), "astring")
}

// Text consumes a run of TEXT-CHAR (the free-form tail of a resp-text
// or continuation line), up to but not including CRLF.
func (dec *Decoder) Text(ptr *string) bool {
	var sb strings.Builder
	for {
		b, ok := dec.readByte()
		if !ok {
			return false
		}
		if !IsTextChar(b) {
			dec.unreadByte(b)
			break
		}
		sb.WriteByte(b)
	}
	*ptr = sb.String()
	return true
}

// UntilByte consumes every byte up to (not including) the first
// occurrence of stop, or fails on a hard read error. Used for the
// free-form tail of a resp-text-code, which runs until ']' but may
// contain bytes Text would otherwise reject.
func (dec *Decoder) UntilByte(stop byte) (string, bool) {
	var sb strings.Builder
	for {
		b, ok := dec.peekByte()
		if !ok {
			return "", false
		}
		if b == stop {
			break
		}
		dec.readByte()
		sb.WriteByte(b)
	}
	return sb.String(), true
}

// RemainingLine consumes every byte up to (not including) the
// terminating CRLF, even if empty, and reports it as raw text.
func (dec *Decoder) RemainingLine() (string, bool) {
	var sb strings.Builder
	for {
		b, ok := dec.peekByte()
		if !ok {
			return "", false
		}
		if b == '\r' {
			break
		}
		dec.readByte()
		sb.WriteByte(b)
	}
	return sb.String(), true
}

// QuoteString renders s as an IMAP quoted string, escaping '\\' and
// '"'. Used when formatting parsed values back to wire text, e.g. for
// diagnostics or round-trip tests.
func QuoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '"' || b == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(b)
	}
	sb.WriteByte('"')
	return sb.String()
}

// FormatLiteral renders s as an IMAP literal: "{" len "}" CRLF s.
func FormatLiteral(s string) string {
	return "{" + strconv.Itoa(len(s)) + "}\r\n" + s
}
