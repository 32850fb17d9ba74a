package imap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	imap "github.com/mailwire/imapcore"
)

func TestParse_List_Extended(t *testing.T) {
	data := []byte("* LIST (\\HasChildren) \"/\" \"Foo\" (CHILDINFO (\"SUBSCRIBED\"))\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	list := resp.Untagged.List
	require.NotNil(t, list)
	assert.Equal(t, []imap.MailboxAttr{imap.MailboxAttrHasChildren}, list.Attrs)
	assert.Equal(t, '/', list.Delim)
	assert.Equal(t, "Foo", list.Mailbox)
	require.NotNil(t, list.ChildInfo)
	assert.True(t, list.ChildInfo.Subscribed)
}

func TestParse_List_OldName(t *testing.T) {
	data := []byte("* LIST () \"/\" \"NewName\" (OLDNAME (\"OldName\"))\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	list := resp.Untagged.List
	assert.Equal(t, "NewName", list.Mailbox)
	assert.Equal(t, "OldName", list.OldName)
}

func TestParse_List_UnrecognizedExtensionWarns(t *testing.T) {
	data := []byte("* LIST () \"/\" \"Foo\" (FUTURE-ITEM (1 2))\r\n")

	resp, warnings, err := imap.Parse(data, nil)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, "Foo", resp.Untagged.List.Mailbox)
}

func TestParse_Status(t *testing.T) {
	data := []byte("* STATUS INBOX (MESSAGES 231 UIDNEXT 44292 UNSEEN 5)\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	status := resp.Untagged.StatusData
	require.NotNil(t, status)
	assert.Equal(t, "INBOX", status.Mailbox)
	require.NotNil(t, status.NumMessages)
	assert.EqualValues(t, 231, *status.NumMessages)
}

func TestParse_Search(t *testing.T) {
	data := []byte("* SEARCH 2 3 5\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	nums := resp.Untagged.Search.AllNums()
	assert.Equal(t, []uint32{2, 3, 5}, nums)
}

func TestParse_ESearch(t *testing.T) {
	data := []byte("* ESEARCH (TAG \"A282\") UID MIN 7 MAX 3800 COUNT 2\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	es := resp.Untagged.ESearch
	require.NotNil(t, es)
	assert.Equal(t, "A282", es.Tag)
	assert.True(t, es.UID)
	assert.EqualValues(t, 7, es.Min)
	assert.EqualValues(t, 3800, es.Max)
	require.NotNil(t, es.Count)
	assert.EqualValues(t, 2, *es.Count)
}

func TestParse_ESearch_MultipleItemsWithAll(t *testing.T) {
	data := []byte("* ESEARCH (TAG \"A283\") ALL 1,3:5 COUNT 4\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	es := resp.Untagged.ESearch
	require.NotNil(t, es.All)
	nums, _ := es.All.Numbers()
	assert.Equal(t, []uint32{1, 3, 4, 5}, nums)
	require.NotNil(t, es.Count)
	assert.EqualValues(t, 4, *es.Count)
}

func TestParse_Namespace(t *testing.T) {
	data := []byte("* NAMESPACE ((\"\" \"/\")) NIL ((\"Shared/\" \"/\"))\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	ns := resp.Untagged.Namespace
	require.Len(t, ns.Personal, 1)
	assert.Equal(t, "", ns.Personal[0].Prefix)
	assert.Equal(t, '/', ns.Personal[0].Delim)
	assert.Empty(t, ns.Other)
	require.Len(t, ns.Shared, 1)
	assert.Equal(t, "Shared/", ns.Shared[0].Prefix)
}

func TestParse_Quota(t *testing.T) {
	data := []byte("* QUOTA \"\" (STORAGE 10 512)\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	quota := resp.Untagged.Quota
	require.NotNil(t, quota)
	assert.Equal(t, "", quota.Root)
	require.Len(t, quota.Resources, 1)
	assert.Equal(t, imap.QuotaResourceStorage, quota.Resources[0].Type)
	assert.EqualValues(t, 10, quota.Resources[0].Usage)
	assert.EqualValues(t, 512, quota.Resources[0].Limit)
}

func TestParse_QuotaRoot(t *testing.T) {
	data := []byte("* QUOTAROOT INBOX \"\"\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	assert.Equal(t, "INBOX", resp.Untagged.QuotaRoot.Mailbox)
	assert.Equal(t, []string{""}, resp.Untagged.QuotaRoot.Roots)
}

func TestParse_ACL(t *testing.T) {
	data := []byte("* ACL INBOX ken rwipcda \"anyone\" lrs\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	acl := resp.Untagged.ACL
	require.NotNil(t, acl)
	assert.Equal(t, "INBOX", acl.Mailbox)
	assert.Equal(t, imap.RightSet("rwipcda"), acl.Rights["ken"])
	assert.Equal(t, imap.RightSet("lrs"), acl.Rights[imap.RightsIdentifierAnyone])
}

func TestParse_ID(t *testing.T) {
	data := []byte("* ID (\"name\" \"clientname\" \"version\" \"1.0\")\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"name": "clientname", "version": "1.0"}, resp.Untagged.ID)
}

func TestParse_ID_Nil(t *testing.T) {
	data := []byte("* ID NIL\r\n")

	resp, _, err := imap.Parse(data, nil)
	require.NoError(t, err)
	assert.Nil(t, resp.Untagged.ID)
}
