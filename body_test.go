package imap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	imap "github.com/mailwire/imapcore"
)

func TestParse_Fetch_Body_TextPlain(t *testing.T) {
	data := []byte("* 1 FETCH (BODY (\"TEXT\" \"PLAIN\" (\"CHARSET\" \"UTF-8\") NIL NIL \"7BIT\" 1152 23))\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	bs, ok := resp.Untagged.Fetch.BodyStructure.(*imap.BodyStructureSinglePart)
	require.True(t, ok)
	assert.Equal(t, "text/plain", bs.MediaType())
	assert.Equal(t, map[string]string{"CHARSET": "UTF-8"}, bs.Params)
	assert.EqualValues(t, 1152, bs.Size)
	require.NotNil(t, bs.Text)
	assert.EqualValues(t, 23, bs.Text.NumLines)
	assert.False(t, resp.Untagged.Fetch.IsExtended)
}

func TestParse_Fetch_BodyStructure_Extended(t *testing.T) {
	data := []byte("* 1 FETCH (BODYSTRUCTURE (\"TEXT\" \"PLAIN\" NIL NIL NIL \"7BIT\" 100 3 \"abc123\" NIL NIL NIL))\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	bs, ok := resp.Untagged.Fetch.BodyStructure.(*imap.BodyStructureSinglePart)
	require.True(t, ok)
	require.NotNil(t, bs.Extended)
	assert.Equal(t, "abc123", bs.Extended.MD5)
	assert.True(t, resp.Untagged.Fetch.IsExtended)
}

func TestParse_Fetch_BodyStructure_Multipart(t *testing.T) {
	data := []byte("* 1 FETCH (BODYSTRUCTURE ((\"TEXT\" \"PLAIN\" NIL NIL NIL \"7BIT\" 10 1)" +
		"(\"TEXT\" \"HTML\" NIL NIL NIL \"7BIT\" 20 2) \"MIXED\"))\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	mp, ok := resp.Untagged.Fetch.BodyStructure.(*imap.BodyStructureMultiPart)
	require.True(t, ok)
	assert.Equal(t, "multipart/mixed", mp.MediaType())
	require.Len(t, mp.Children, 2)
	assert.Equal(t, "text/plain", mp.Children[0].MediaType())
	assert.Equal(t, "text/html", mp.Children[1].MediaType())
}
