package imap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	imap "github.com/mailwire/imapcore"
)

func TestParse_TaggedOK_CapabilityCode(t *testing.T) {
	data := []byte("A001 OK [CAPABILITY IMAP4rev2 AUTH=PLAIN] done\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)
	assert.Equal(t, []imap.Cap{"IMAP4rev2", "AUTH=PLAIN"}, resp.Status.Capability)
}

func TestParse_TaggedOK_PermanentFlags(t *testing.T) {
	data := []byte("A001 OK [PERMANENTFLAGS (\\Deleted \\Seen \\*)] done\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)
	require.Len(t, resp.Status.PermanentFlags, 3)
}

func TestParse_TaggedOK_UIDNextAndValidity(t *testing.T) {
	data := []byte("A001 OK [UIDNEXT 123] done\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 123, resp.Status.UIDNext)

	data = []byte("A001 OK [UIDVALIDITY 456] done\r\n")
	resp, _, err = imap.Parse(data, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 456, resp.Status.UIDValidity)
}

func TestParse_TaggedOK_AppendUID(t *testing.T) {
	data := []byte("A001 OK [APPENDUID 38505 3955] done\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)
	require.NotNil(t, resp.Status.AppendUID)
	assert.EqualValues(t, 38505, resp.Status.AppendUID.UIDValidity)
	assert.EqualValues(t, 3955, resp.Status.AppendUID.UID)
}

func TestParse_TaggedOK_CopyUID(t *testing.T) {
	data := []byte("A001 OK [COPYUID 38505 304,319:320 3956:3958] done\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)
	require.NotNil(t, resp.Status.CopyUID)
	assert.EqualValues(t, 38505, resp.Status.CopyUID.UIDValidity)

	src, _ := resp.Status.CopyUID.SourceUIDs.Numbers()
	assert.Equal(t, []uint32{304, 319, 320}, src)

	dst, _ := resp.Status.CopyUID.DestUIDs.Numbers()
	assert.Equal(t, []uint32{3956, 3957, 3958}, dst)
}

func TestParse_TaggedOK_HighestModSeq(t *testing.T) {
	data := []byte("A001 OK [HIGHESTMODSEQ 715194045007]\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 715194045007, resp.Status.HighestModSeq)
}

func TestParse_TaggedOK_Modified(t *testing.T) {
	data := []byte("A001 OK [MODIFIED 7,9] Conditional STORE failed\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)
	require.NotNil(t, resp.Status.Modified)
	nums, _ := resp.Status.Modified.Numbers()
	assert.Equal(t, []uint32{7, 9}, nums)
}

func TestParse_TaggedNO_BadCharset(t *testing.T) {
	data := []byte("A001 NO [BADCHARSET (US-ASCII UTF-8)] unsupported charset\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)
	assert.Equal(t, imap.StatusResponseTypeNo, resp.Status.Type)
	assert.Equal(t, []string{"US-ASCII", "UTF-8"}, resp.Status.BadCharset)
}

func TestParse_TaggedOK_UnrecognizedCode_NonStrict(t *testing.T) {
	data := []byte("A001 OK [FUTURECODE foo] done\r\n")

	resp, warnings, err := imap.Parse(data, nil)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, "done", resp.Status.Text)
}

func TestParse_TaggedOK_UnrecognizedCode_Strict(t *testing.T) {
	data := []byte("A001 OK [FUTURECODE foo] done\r\n")

	_, _, err := imap.Parse(data, &imap.ParseOptions{StrictMode: true})
	assert.Error(t, err)
}
