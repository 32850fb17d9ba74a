package imap_test

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	imap "github.com/mailwire/imapcore"
)

func TestReadResponse_SimpleLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("* OK greeting\r\nnext line"))

	buf, err := imap.ReadResponse(r)
	require.NoError(t, err)
	assert.Equal(t, "* OK greeting\r\n", string(buf))
}

func TestReadResponse_Literal(t *testing.T) {
	raw := "* 1 FETCH (BODY[] {5}\r\nhe\r\nlo)\r\n"
	r := bufio.NewReader(strings.NewReader(raw))

	buf, err := imap.ReadResponse(r)
	require.NoError(t, err)
	assert.Equal(t, raw, string(buf))
}

func TestReadResponse_NonSyncLiteral(t *testing.T) {
	raw := "A1 LOGIN {5+}\r\nadmin {3+}\r\npwd\r\n"
	r := bufio.NewReader(strings.NewReader(raw))

	buf, err := imap.ReadResponse(r)
	require.NoError(t, err)
	assert.Equal(t, raw, string(buf))
}

func TestParse_ListRights(t *testing.T) {
	data := []byte("* LISTRIGHTS INBOX ken la r swicdpa\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	lr := resp.Untagged.ListRights
	require.NotNil(t, lr)
	assert.Equal(t, "INBOX", lr.Mailbox)
	assert.Equal(t, imap.RightsIdentifier("ken"), lr.Identifier)
	assert.Equal(t, imap.RightSet("la"), lr.Required)
	assert.Equal(t, []imap.RightSet{"r", "swicdpa"}, lr.Optional)
}

func TestParse_MyRights(t *testing.T) {
	data := []byte("* MYRIGHTS INBOX rwiptsldaex\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	mr := resp.Untagged.MyRights
	require.NotNil(t, mr)
	assert.Equal(t, "INBOX", mr.Mailbox)
	assert.Equal(t, imap.RightSet("rwiptsldaex"), mr.Rights)
}

func TestError_Error(t *testing.T) {
	data := []byte("A001 NO [NOPERM] Permission denied\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	imapErr := (*imap.Error)(&resp.Status)
	msg := imapErr.Error()
	assert.Contains(t, msg, "NO")
	assert.Contains(t, msg, "NOPERM")
	assert.Contains(t, msg, "Permission denied")
}

func TestParseError_Unwrap(t *testing.T) {
	data := []byte("* FUTURE-RESPONSE foo\r\n")

	_, _, err := imap.Parse(data, &imap.ParseOptions{StrictMode: true})
	require.Error(t, err)

	var parseErr *imap.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Greater(t, parseErr.Offset, 0)
	assert.Contains(t, parseErr.Error(), "parse error")
}

func TestDataFormatError_Wrapped(t *testing.T) {
	data := []byte("A001 OK [FUTURECODE foo] done\r\n")

	_, _, err := imap.Parse(data, &imap.ParseOptions{StrictMode: true})
	require.Error(t, err)

	var dfErr *imap.DataFormatError
	require.ErrorAs(t, err, &dfErr)
	assert.Contains(t, dfErr.Error(), "resp-text-code")
}
