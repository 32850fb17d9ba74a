package imap

import "mime"

// ParseOptions controls how Parse interprets a response beyond pure
// grammar: which RFC 2047 word decoder to use for ENVELOPE/BODYSTRUCTURE
// text, and how strict to be about grammar the server got wrong.
//
// Grounded on the source's Options.WordDecoder/decodeText (the same
// knob lives on the connection-level Options this module's teacher
// exposes); recreated here as a value Parse itself takes, since this
// package never owns a connection.
type ParseOptions struct {
	// WordDecoder decodes RFC 2047 encoded words found in envelope and
	// body-structure text fields. If nil, a decoder with no
	// charset.Reader is used, which only understands US-ASCII, UTF-8
	// and ISO-8859-1 encoded words.
	//
	// Pass &mime.WordDecoder{CharsetReader: charset.Reader} from
	// github.com/emersion/go-message/charset to decode the full range
	// of charsets servers use in practice.
	WordDecoder *mime.WordDecoder

	// StrictMode disables every tolerance this package otherwise
	// applies: an unrecognized untagged response, resp-text-code,
	// status-att-val, search-return-data item, or mailbox-list extension
	// item becomes a hard ParseError instead of a Warning. An
	// unrecognized msg-att name is a ParseError in either mode.
	StrictMode bool
}

func (opts *ParseOptions) wordDecoder() *mime.WordDecoder {
	if opts != nil && opts.WordDecoder != nil {
		return opts.WordDecoder
	}
	return &mime.WordDecoder{}
}

func (opts *ParseOptions) strict() bool {
	return opts != nil && opts.StrictMode
}

// decodeText decodes s as RFC 2047 text, falling back to the raw
// string if decoding fails: a server sending garbled MIME words is
// common enough in the wild that failing the whole response over it
// would be worse than showing undecoded text.
func decodeText(opts *ParseOptions, s string) string {
	out, err := opts.wordDecoder().DecodeHeader(s)
	if err != nil {
		return s
	}
	return out
}
