package imap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	imap "github.com/mailwire/imapcore"
)

func TestParse_Capability(t *testing.T) {
	data := []byte("* CAPABILITY IMAP4rev2 STARTTLS AUTH=PLAIN\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)
	assert.Equal(t, imap.ResponseKindUntagged, resp.Kind)
	assert.Equal(t, imap.UntaggedCapability, resp.Untagged.Kind)
	assert.Equal(t, []imap.Cap{"IMAP4rev2", "STARTTLS", "AUTH=PLAIN"}, resp.Untagged.Capability)
}

func TestParse_TaggedOK(t *testing.T) {
	data := []byte("A001 OK [READ-WRITE] SELECT completed\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)
	assert.Equal(t, imap.ResponseKindTagged, resp.Kind)
	assert.Equal(t, "A001", resp.Tag)
	assert.Equal(t, imap.StatusResponseTypeOK, resp.Status.Type)
	assert.Equal(t, "SELECT completed", resp.Status.Text)
}

func TestParse_Continuation(t *testing.T) {
	data := []byte("+ Ready for literal data\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)
	assert.Equal(t, imap.ResponseKindContinuation, resp.Kind)
	require.NotNil(t, resp.Continuation)
	assert.Equal(t, "Ready for literal data", resp.Continuation.Text)
}

func TestParse_UnknownUntagged_NonStrict(t *testing.T) {
	data := []byte("* FUTURE-RESPONSE some data here\r\n")

	resp, warnings, err := imap.Parse(data, nil)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, imap.UntaggedUnknown, resp.Untagged.Kind)
}

func TestParse_UnknownUntagged_Strict(t *testing.T) {
	data := []byte("* FUTURE-RESPONSE some data here\r\n")

	_, _, err := imap.Parse(data, &imap.ParseOptions{StrictMode: true})
	assert.Error(t, err)
}
