package imap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	imap "github.com/mailwire/imapcore"
)

func TestParse_Fetch_Flags(t *testing.T) {
	data := []byte("* 12 FETCH (FLAGS (\\Seen \\Flagged $Forwarded))\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	fetch := resp.Untagged.Fetch
	require.NotNil(t, fetch)
	assert.EqualValues(t, 12, fetch.SeqNum)
	assert.Equal(t, []imap.Flag{imap.FlagSeen, imap.FlagFlagged, "$Forwarded"}, fetch.Flags)
}

func TestParse_Fetch_BodySectionHeaderFields(t *testing.T) {
	data := []byte("* 1 FETCH (BODY[1.2.HEADER.FIELDS (SUBJECT)] \"Subject: hi\")\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	sections := resp.Untagged.Fetch.BodySection
	require.Len(t, sections, 1)
	assert.Equal(t, []int{1, 2}, sections[0].Section.Part)
	assert.Equal(t, imap.PartSpecifierHeader, sections[0].Section.Specifier)
	assert.Equal(t, []string{"SUBJECT"}, sections[0].Section.HeaderFields)
	assert.Equal(t, "Subject: hi", string(sections[0].Value))
}

func TestParse_Fetch_BodySectionPartial(t *testing.T) {
	data := []byte("* 1 FETCH (BODY[TEXT]<10> \"hello\")\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	sections := resp.Untagged.Fetch.BodySection
	require.Len(t, sections, 1)
	assert.Equal(t, imap.PartSpecifierText, sections[0].Section.Specifier)
	require.NotNil(t, sections[0].Section.Partial)
	assert.EqualValues(t, 10, sections[0].Section.Partial.Offset)
}

func TestParse_Fetch_BinarySectionSize(t *testing.T) {
	data := []byte("* 1 FETCH (BINARY.SIZE[1] 42)\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	sizes := resp.Untagged.Fetch.BinarySectionSize
	require.Len(t, sizes, 1)
	assert.Equal(t, []int{1}, sizes[0].Part)
	assert.EqualValues(t, 42, sizes[0].Size)
}

func TestParse_Fetch_BinarySectionLiteral(t *testing.T) {
	data := []byte("* 1 FETCH (BINARY[1] {5}\r\nhello)\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	sections := resp.Untagged.Fetch.BinarySection
	require.Len(t, sections, 1)
	assert.Equal(t, []int{1}, sections[0].Section.Part)
	assert.Equal(t, "hello", string(sections[0].Value))
}

func TestParse_Fetch_UIDAndInternalDate(t *testing.T) {
	data := []byte("* 1 FETCH (UID 99 INTERNALDATE \"17-Jul-2025 02:44:25 +0000\" RFC822.SIZE 1024)\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	fetch := resp.Untagged.Fetch
	assert.EqualValues(t, 99, fetch.UID)
	assert.EqualValues(t, 1024, fetch.RFC822Size)
	assert.Equal(t, 2025, fetch.InternalDate.Year())
}
