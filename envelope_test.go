package imap_test

import (
	"mime"
	"testing"

	"github.com/emersion/go-message/charset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	imap "github.com/mailwire/imapcore"
)

func TestParse_Fetch_Envelope(t *testing.T) {
	data := []byte("* 1 FETCH (ENVELOPE (\"Tue, 1 Jul 2025 10:00:00 +0000\" " +
		"\"=?ISO-8859-1?Q?Caf=E9?=\" ((\"A\" NIL \"a\" \"example.org\")) " +
		"((\"A\" NIL \"a\" \"example.org\")) ((\"A\" NIL \"a\" \"example.org\")) " +
		"((\"B\" NIL \"b\" \"example.org\")) NIL NIL NIL \"<msg@example.org>\"))\r\n")

	opts := &imap.ParseOptions{
		WordDecoder: &mime.WordDecoder{CharsetReader: charset.Reader},
	}
	resp, warnings, err := imap.Parse(data, opts)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.Equal(t, imap.ResponseKindUntagged, resp.Kind)
	require.NotNil(t, resp.Untagged.Fetch)
	require.NotNil(t, resp.Untagged.Fetch.Envelope)

	assert.Equal(t, "Café", resp.Untagged.Fetch.Envelope.Subject)
	require.Len(t, resp.Untagged.Fetch.Envelope.From, 1)
	assert.Equal(t, "a@example.org", resp.Untagged.Fetch.Envelope.From[0].Addr())
}

func TestParse_Fetch_Envelope_NoWordDecoder(t *testing.T) {
	data := []byte("* 1 FETCH (ENVELOPE (\"Tue, 1 Jul 2025 10:00:00 +0000\" " +
		"\"=?ISO-8859-1?Q?Caf=E9?=\" NIL NIL NIL NIL NIL NIL NIL NIL))\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	// Without a CharsetReader, the ISO-8859-1 word can't be decoded, so
	// the raw encoded-word text is returned unchanged.
	assert.Equal(t, "=?ISO-8859-1?Q?Caf=E9?=", resp.Untagged.Fetch.Envelope.Subject)
}
