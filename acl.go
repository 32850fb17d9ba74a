package imap

import (
	"fmt"
	"strings"
)

type RightSet string

type Right byte

const (
	RightLookup     = Right('l') // mailbox is visible to LIST/LSUB commands
	RightRead       = Right('r') // SELECT the mailbox, perform CHECK, FETCH, PARTIAL, SEARCH, COPY from mailbox
	RightSeen       = Right('s') // keep seen/unseen information across sessions (STORE SEEN flag)
	RightWrite      = Right('w') // STORE flags other than SEEN and DELETED
	RightInsert     = Right('i') // perform APPEND, COPY into mailbox
	RightPost       = Right('p') // send mail to submission address for mailbox, not enforced by IMAP4 itself
	RightCreate     = Right('c') // CREATE new sub-mailboxes in any implementation-defined hierarchy
	RightDelete     = Right('d') // STORE DELETED flag, perform EXPUNGE
	RightAdminister = Right('a') // perform SETACL

	AllRights = RightSet("lrswipcda")
)

type RightsIdentifier string

const RightsIdentifierAnyone = RightsIdentifier("anyone")

type RightModification byte

const (
	RightModificationReplace = RightModification(0)
	RightModificationAdd     = RightModification('+')
	RightModificationRemove  = RightModification('-')
)

// NewRights converts rights string into RightModification and RightSet with validation
func NewRights(rights string) (RightModification, RightSet, error) {
	rm := RightModificationReplace

	if len(rights) == 0 {
		return rm, RightSet(rights), nil
	}

	if rights[0] == byte(RightModificationAdd) || rights[0] == byte(RightModificationRemove) {
		rm = RightModification(rights[0])
		rights = rights[1:]
	}

	for _, r := range rights {
		if !strings.ContainsRune(string(AllRights), r) {
			return rm, "", fmt.Errorf("unsupported right: '%v'", string(r))
		}
	}

	return rm, RightSet(rights), nil
}

func (r RightSet) Add(rights RightSet) RightSet {
	for _, right := range rights {
		if !strings.ContainsRune(string(r), right) {
			r += RightSet(right)
		}
	}

	return r
}

func (r RightSet) Remove(rights RightSet) RightSet {
	var newRights RightSet

	for _, right := range r {
		if !strings.ContainsRune(string(rights), right) {
			newRights += RightSet(right)
		}
	}

	return newRights
}

// MyRightsData is the data returned by the MYRIGHTS command.
type MyRightsData struct {
	Mailbox string
	Rights  RightSet
}

// ACLData is the data returned by the GETACL command.
type ACLData struct {
	Mailbox string
	Rights  map[RightsIdentifier]RightSet
}

// ListRightsData is the data returned by the LISTRIGHTS command.
type ListRightsData struct {
	Mailbox    string
	Identifier RightsIdentifier

	// Required holds the rights always granted to Identifier.
	Required RightSet
	// Optional holds the sets of rights that may be granted in
	// addition to Required, one RightSet per list-rights argument.
	Optional []RightSet
}

// readACLData reads a mailbox-data ACL value: a mailbox name followed
// by zero or more identifier/rights pairs.
//
// Grounded on RFC 4314 section 3.6; absent from imapclient/decode.go,
// which has no ACL extension support.
func (p *parser) readACLData() (*ACLData, error) {
	dec := p.dec
	data := ACLData{Rights: make(map[RightsIdentifier]RightSet)}

	if !dec.ExpectMailbox(&data.Mailbox) {
		return nil, dec.Err()
	}
	for dec.SP() {
		var identifier, rights string
		if !dec.ExpectAString(&identifier) || !dec.ExpectSP() || !dec.ExpectAString(&rights) {
			return nil, dec.Err()
		}
		data.Rights[RightsIdentifier(identifier)] = RightSet(rights)
	}
	return &data, nil
}

// readListRightsData reads a mailbox-data LISTRIGHTS value: a mailbox
// name, an identifier, the rights always granted, and the sets of
// rights that may additionally be granted.
//
// Grounded on RFC 4314 section 3.7.
func (p *parser) readListRightsData() (*ListRightsData, error) {
	dec := p.dec
	var data ListRightsData

	if !dec.ExpectMailbox(&data.Mailbox) {
		return nil, dec.Err()
	}
	if !dec.ExpectSP() {
		return nil, dec.Err()
	}
	var identifier string
	if !dec.ExpectAString(&identifier) {
		return nil, dec.Err()
	}
	data.Identifier = RightsIdentifier(identifier)

	if !dec.ExpectSP() {
		return nil, dec.Err()
	}
	var required string
	if !dec.ExpectAString(&required) {
		return nil, dec.Err()
	}
	data.Required = RightSet(required)

	for dec.SP() {
		var rights string
		if !dec.ExpectAString(&rights) {
			return nil, dec.Err()
		}
		data.Optional = append(data.Optional, RightSet(rights))
	}
	return &data, nil
}

// readMyRightsData reads a mailbox-data MYRIGHTS value: a mailbox
// name followed by the requesting user's rights.
//
// Grounded on RFC 4314 section 3.8.
func (p *parser) readMyRightsData() (*MyRightsData, error) {
	dec := p.dec
	var data MyRightsData

	if !dec.ExpectMailbox(&data.Mailbox) {
		return nil, dec.Err()
	}
	if !dec.ExpectSP() {
		return nil, dec.Err()
	}
	var rights string
	if !dec.ExpectAString(&rights) {
		return nil, dec.Err()
	}
	data.Rights = RightSet(rights)
	return &data, nil
}
