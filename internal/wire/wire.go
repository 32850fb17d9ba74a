// Package wire implements the low-level lexical layer shared by every
// response grammar in this module: a byte-oriented decoder over a
// bufio.Reader, plus the RFC 9051 character-class predicates it relies
// on.
//
// The combinator shape (bool-returning accept methods, a sticky first
// error, an explicit Expect for turning "didn't match" into a hard
// parse failure) is grounded on internal/imapwire.Decoder. Literal and
// quoted-string handling additionally follow the byte-scanning idiom
// of the root package's v1 Reader (read.go's ReadLiteral/
// ReadQuotedString), adapted from rune-based to byte-based scanning
// since response text may contain raw UTF8-2/3/4 sequences that a
// combinator needs to pass through rather than decode.
package wire

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

var foldCaser = cases.Fold()

// Decoder reads IMAP wire syntax from a buffered byte stream, tracking
// the first error encountered so callers can chain several accept
// calls and check the result once at the end.
type Decoder struct {
	r   *bufio.Reader
	err error

	// pending holds bytes pushed back by a failed multi-byte lookahead
	// (e.g. PeekAtom). bufio.Reader only guarantees one byte of native
	// pushback, so readByte drains this buffer first.
	pending string

	// pos counts bytes consumed so far (pushing bytes back moves it back
	// by as many), for error/warning offsets.
	pos int

	// LiteralFunc, if set, is called once a literal's length prefix has
	// been read and validated, before the literal's bytes are consumed.
	// A client implementation can use this hook to emit a continuation
	// request ("+ go ahead") to the server; this package never does so
	// itself, since sending on a connection is not a parsing concern.
	LiteralFunc func(size int64, nonSync bool) error
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r *bufio.Reader) *Decoder {
	return &Decoder{r: r}
}

// Err returns the first error encountered by the decoder, if any.
func (dec *Decoder) Err() error {
	return dec.err
}

func (dec *Decoder) returnErr(err error) bool {
	if err == nil {
		return true
	}
	if dec.err == nil {
		dec.err = err
	}
	return false
}

func (dec *Decoder) mustUnreadByte() {
	if err := dec.r.UnreadByte(); err != nil {
		panic(fmt.Errorf("wire: failed to unread byte: %v", err))
	}
}

func (dec *Decoder) readByte() (byte, bool) {
	if dec.pending != "" {
		b := dec.pending[0]
		dec.pending = dec.pending[1:]
		dec.pos++
		return b, true
	}
	b, err := dec.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return b, dec.returnErr(err)
	}
	dec.pos++
	return b, true
}

// Pos returns the number of bytes consumed from the underlying reader
// so far, for use in error and warning offsets.
func (dec *Decoder) Pos() int {
	return dec.pos
}

func (dec *Decoder) peekByte() (byte, bool) {
	if dec.pending != "" {
		return dec.pending[0], true
	}
	b, err := dec.r.Peek(1)
	if err != nil {
		return 0, false
	}
	return b[0], true
}

func (dec *Decoder) acceptByte(want byte) bool {
	got, ok := dec.readByte()
	if !ok {
		return false
	}
	if got != want {
		dec.unreadByte(got)
		return false
	}
	return true
}

// unreadByte pushes b back so the next readByte returns it again,
// whether or not b came from the underlying reader or an earlier
// pushback.
func (dec *Decoder) unreadByte(b byte) {
	dec.pending = string(b) + dec.pending
	dec.pos--
}

// pushback re-queues s so the next len(s) reads return its bytes
// again, in order.
func (dec *Decoder) pushback(s string) {
	dec.pending = s + dec.pending
	dec.pos -= len(s)
}

// EOF reports whether the stream is exhausted.
func (dec *Decoder) EOF() bool {
	b, ok := dec.readByte()
	if ok {
		dec.unreadByte(b)
		return false
	}
	return dec.err == io.ErrUnexpectedEOF
}

// Expect turns a failed accept into a hard parse error naming what was
// expected, including a snippet of what was actually found.
func (dec *Decoder) Expect(ok bool, name string) bool {
	if ok {
		return true
	}
	err := fmt.Errorf("expected %v", name)
	if b, ok := dec.peekByte(); ok {
		err = fmt.Errorf("%v, got %q", err, string(b))
	}
	return dec.returnErr(err)
}

// SP consumes a single space.
func (dec *Decoder) SP() bool { return dec.acceptByte(' ') }

// ExpectSP consumes a single space or fails.
func (dec *Decoder) ExpectSP() bool { return dec.Expect(dec.SP(), "SP") }

// CRLF consumes a carriage return followed by a line feed.
func (dec *Decoder) CRLF() bool {
	return dec.acceptByte('\r') && dec.acceptByte('\n')
}

// ExpectCRLF consumes CRLF or fails.
func (dec *Decoder) ExpectCRLF() bool { return dec.Expect(dec.CRLF(), "CRLF") }

// Special consumes a single specific byte, e.g. '(' or ']'.
func (dec *Decoder) Special(b byte) bool { return dec.acceptByte(b) }

// ExpectSpecial consumes a single specific byte or fails.
func (dec *Decoder) ExpectSpecial(b byte) bool {
	return dec.Expect(dec.Special(b), fmt.Sprintf("%q", string(b)))
}

// Number consumes a sequence of ASCII digits and parses it as a
// 32-bit unsigned number.
func (dec *Decoder) Number() (v uint32, ok bool) {
	n, ok := dec.Number64()
	if !ok {
		return 0, false
	}
	if n > 1<<32-1 {
		dec.returnErr(fmt.Errorf("wire: number %v overflows uint32", n))
		return 0, false
	}
	return uint32(n), true
}

// ExpectNumber consumes a number or fails.
func (dec *Decoder) ExpectNumber() (v uint32, ok bool) {
	v, ok = dec.Number()
	dec.Expect(ok, "number")
	return v, ok
}

// Number64 consumes a sequence of ASCII digits and parses it as a
// 63-bit unsigned number (mod-sequence values need the full range).
func (dec *Decoder) Number64() (v int64, ok bool) {
	var sb strings.Builder
	for {
		b, ok := dec.readByte()
		if !ok {
			return 0, false
		}
		if b < '0' || b > '9' {
			dec.unreadByte(b)
			break
		}
		sb.WriteByte(b)
	}
	if sb.Len() == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(sb.String(), 10, 64)
	if err != nil {
		dec.returnErr(fmt.Errorf("wire: invalid number: %v", err))
		return 0, false
	}
	return n, true
}

// ExpectNumber64 consumes a 63-bit number or fails.
func (dec *Decoder) ExpectNumber64() (v int64, ok bool) {
	v, ok = dec.Number64()
	dec.Expect(ok, "number64")
	return v, ok
}

// Atom consumes an ATOM-CHAR run (RFC 9051 section 9).
func (dec *Decoder) Atom(ptr *string) bool {
	var sb strings.Builder
	for {
		b, ok := dec.readByte()
		if !ok {
			return false
		}
		if !IsAtomChar(b) {
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

// ExpectAtom consumes an atom or fails.
func (dec *Decoder) ExpectAtom(ptr *string) bool {
	return dec.Expect(dec.Atom(ptr), "atom")
}

// Tag consumes a command tag: any atom character except '+', which is
// reserved so a tag can never collide with the "+" continuation
// marker.
func (dec *Decoder) Tag(ptr *string) bool {
	var sb strings.Builder
	for {
		b, ok := dec.readByte()
		if !ok {
			return false
		}
		if !IsAtomChar(b) || b == '+' {
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

// Label consumes an atom and reports whether it equals want under
// Unicode case folding, as RFC 9051 requires for keywords and response
// codes. If the atom does not match, it is pushed back so the next
// call sees it unconsumed.
func (dec *Decoder) Label(want string) bool {
	var got string
	if !dec.Atom(&got) {
		return false
	}
	if foldCaser.String(got) != foldCaser.String(want) {
		dec.pushback(got)
		return false
	}
	return true
}

// PeekAtom reports whether the next token is an atom, without
// consuming it, storing its text in ptr.
func (dec *Decoder) PeekAtom(ptr *string) bool {
	if !dec.Atom(ptr) {
		return false
	}
	dec.pushback(*ptr)
	return true
}
