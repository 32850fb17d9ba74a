package imap

import (
	"strings"
	"time"
)

// FetchItem is a message data item which can be requested by a FETCH command.
type FetchItem interface {
	fetchItem()
}

var (
	_ FetchItem = FetchItemKeyword("")
	_ FetchItem = (*FetchItemBodySection)(nil)
	_ FetchItem = (*FetchItemBinarySection)(nil)
	_ FetchItem = (*FetchItemBinarySectionSize)(nil)
)

// FetchItemKeyword is a FETCH item described by a single keyword.
type FetchItemKeyword string

func (FetchItemKeyword) fetchItem() {}

var (
	// Macros
	FetchItemAll  FetchItem = FetchItemKeyword("ALL")
	FetchItemFast FetchItem = FetchItemKeyword("FAST")
	FetchItemFull FetchItem = FetchItemKeyword("FULL")

	FetchItemBody          FetchItem = FetchItemKeyword("BODY")
	FetchItemBodyStructure FetchItem = FetchItemKeyword("BODYSTRUCTURE")
	FetchItemEnvelope      FetchItem = FetchItemKeyword("ENVELOPE")
	FetchItemFlags         FetchItem = FetchItemKeyword("FLAGS")
	FetchItemInternalDate  FetchItem = FetchItemKeyword("INTERNALDATE")
	FetchItemRFC822Size    FetchItem = FetchItemKeyword("RFC822.SIZE")
	FetchItemUID           FetchItem = FetchItemKeyword("UID")
)

type PartSpecifier string

const (
	PartSpecifierNone   PartSpecifier = ""
	PartSpecifierHeader PartSpecifier = "HEADER"
	PartSpecifierMIME   PartSpecifier = "MIME"
	PartSpecifierText   PartSpecifier = "TEXT"
)

type SectionPartial struct {
	Offset, Size int64
}

// FetchItemBodySection is a FETCH BODY[] data item.
type FetchItemBodySection struct {
	Specifier       PartSpecifier
	Part            []int
	HeaderFields    []string
	HeaderFieldsNot []string
	Partial         *SectionPartial
	Peek            bool
}

func (*FetchItemBodySection) fetchItem() {}

// FetchItemBinarySection is a FETCH BINARY[] data item.
type FetchItemBinarySection struct {
	Part    []int
	Partial *SectionPartial
	Peek    bool
}

func (*FetchItemBinarySection) fetchItem() {}

// FetchItemBinarySectionSize is a FETCH BINARY.SIZE[] data item.
type FetchItemBinarySectionSize struct {
	Part []int
}

func (*FetchItemBinarySectionSize) fetchItem() {}

// Envelope is the envelope structure of a message.
type Envelope struct {
	Date      string // see net/mail.ParseDate
	Subject   string
	From      []Address
	Sender    []Address
	ReplyTo   []Address
	To        []Address
	Cc        []Address
	Bcc       []Address
	InReplyTo string
	MessageID string
}

// Address represents a sender or recipient of a message.
type Address struct {
	Name    string
	Mailbox string
	Host    string
}

// Addr returns the e-mail address in the form "foo@example.org".
//
// If the address is a start or end of group, the empty string is returned.
func (addr *Address) Addr() string {
	if addr.Mailbox == "" || addr.Host == "" {
		return ""
	}
	return addr.Mailbox + "@" + addr.Host
}

// IsGroupStart returns true if this address is a start of group marker.
//
// In that case, Mailbox contains the group name phrase.
func (addr *Address) IsGroupStart() bool {
	return addr.Host == "" && addr.Mailbox != ""
}

// IsGroupEnd returns true if this address is a end of group marker.
func (addr *Address) IsGroupEnd() bool {
	return addr.Host == "" && addr.Mailbox == ""
}

// FetchMessageData holds every message attribute carried by one
// untagged FETCH response.
//
// Grounded on imapclient/fetch.go's FetchMessageBuffer, trading its
// channel-fed streaming design for a plain struct: that type exists
// to let a live connection hand literal bodies to the caller as they
// arrive off the wire, but Parse always receives one fully-buffered
// response, so there is nothing left to stream.
type FetchMessageData struct {
	SeqNum        uint32
	Flags         []Flag
	Envelope      *Envelope
	InternalDate  time.Time
	RFC822Size    int64
	UID           uint32
	BodyStructure BodyStructure
	IsExtended    bool // true if BodyStructure came from BODYSTRUCTURE rather than BODY

	BodySection       []FetchBodySectionData
	BinarySection     []FetchBinarySectionData
	BinarySectionSize []FetchBinarySectionSizeData
}

// FetchBodySectionData is one BODY[section]<partial> response value.
type FetchBodySectionData struct {
	Section FetchItemBodySection
	Value   []byte
}

// FetchBinarySectionData is one BINARY[section]<partial> response value.
type FetchBinarySectionData struct {
	Section FetchItemBinarySection
	Value   []byte
}

// FetchBinarySectionSizeData is one BINARY.SIZE[section] response value.
type FetchBinarySectionSizeData struct {
	Part []int
	Size uint32
}

// readMsgAtt reads a msg-att list: the parenthesized set of message
// attributes following "* <seqnum> FETCH ".
//
// Grounded on imapclient/decode.go's readMsgAtt, with the
// streaming/channel dispatch dropped in favor of appending directly
// to a FetchMessageData, and with the BODY[]/BINARY[] section
// grammars completed (the source leaves them as a "TODO: section"
// marker writing a nil Section).
func (p *parser) readMsgAtt(seqNum uint32) (*FetchMessageData, error) {
	dec := p.dec
	msg := &FetchMessageData{SeqNum: seqNum}

	err := dec.ExpectList(func() error {
		var attName string
		if !dec.ExpectAtom(&attName) {
			return dec.Err()
		}

		switch FetchItemKeyword(attName) {
		case FetchItemFlags:
			if !dec.ExpectSP() {
				return dec.Err()
			}
			flags, err := p.readFlagList()
			if err != nil {
				return err
			}
			msg.Flags = flags
		case FetchItemEnvelope:
			if !dec.ExpectSP() {
				return dec.Err()
			}
			envelope, err := p.readEnvelope()
			if err != nil {
				return err
			}
			msg.Envelope = envelope
		case FetchItemInternalDate:
			if !dec.ExpectSP() {
				return dec.Err()
			}
			t, err := p.readDateTime()
			if err != nil {
				return err
			}
			msg.InternalDate = t
		case FetchItemRFC822Size:
			if !dec.ExpectSP() {
				return dec.Err()
			}
			size, ok := dec.ExpectNumber64()
			if !ok {
				return dec.Err()
			}
			msg.RFC822Size = size
		case FetchItemUID:
			if !dec.ExpectSP() {
				return dec.Err()
			}
			uid, ok := dec.ExpectNumber()
			if !ok {
				return dec.Err()
			}
			msg.UID = uid
		case FetchItemBodyStructure, FetchItemBody:
			if !dec.ExpectSP() {
				return dec.Err()
			}
			bodyStruct, err := p.readBody()
			if err != nil {
				return err
			}
			msg.BodyStructure = bodyStruct
			msg.IsExtended = FetchItemKeyword(attName) == FetchItemBodyStructure
		default:
			switch {
			case strings.HasPrefix(attName, "BODY["):
				pre := attName[len("BODY["):]
				sec, err := p.readBodySectionAtt(pre)
				if err != nil {
					return err
				}
				msg.BodySection = append(msg.BodySection, *sec)
			case strings.HasPrefix(attName, "BINARY.SIZE["):
				pre := attName[len("BINARY.SIZE["):]
				part, rest, err := parseSectionPrefix(pre)
				if err != nil {
					return err
				}
				if rest != "" {
					return dataFormatError("msg-att", "unexpected keyword in BINARY.SIZE[] section")
				}
				if !dec.ExpectSpecial(']') || !dec.ExpectSP() {
					return dec.Err()
				}
				size, ok := dec.ExpectNumber()
				if !ok {
					return dec.Err()
				}
				msg.BinarySectionSize = append(msg.BinarySectionSize, FetchBinarySectionSizeData{Part: part, Size: size})
			case strings.HasPrefix(attName, "BINARY["):
				pre := attName[len("BINARY["):]
				sec, err := p.readBinarySectionAtt(pre)
				if err != nil {
					return err
				}
				msg.BinarySection = append(msg.BinarySection, *sec)
			default:
				return dataFormatError("msg-att", "unsupported msg-att name "+attName)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// readBodySectionAtt reads the remainder of a "BODY[...]..." msg-att
// once the att-name atom (up to and including "BODY[") has already
// been consumed; pre is everything the atom scan picked up between
// "[" and the stop character that ended it ("]" or " " before a
// header-field-name list).
func (p *parser) readBodySectionAtt(pre string) (*FetchBodySectionData, error) {
	dec := p.dec

	part, rest, err := parseSectionPrefix(pre)
	if err != nil {
		return nil, err
	}
	specifier, needsFieldList, not, err := parseBodySectionText(rest)
	if err != nil {
		return nil, err
	}

	sec := FetchItemBodySection{Part: part, Specifier: specifier}
	if needsFieldList {
		if !dec.ExpectSP() {
			return nil, dec.Err()
		}
		var fields []string
		err := dec.ExpectList(func() error {
			var field string
			if !dec.ExpectAString(&field) {
				return dec.Err()
			}
			fields = append(fields, field)
			return nil
		})
		if err != nil {
			return nil, err
		}
		if not {
			sec.HeaderFieldsNot = fields
		} else {
			sec.HeaderFields = fields
		}
	}

	if !dec.ExpectSpecial(']') {
		return nil, dec.Err()
	}
	partial, err := p.readSectionPartial()
	if err != nil {
		return nil, err
	}
	sec.Partial = partial

	if !dec.ExpectSP() {
		return nil, dec.Err()
	}
	s, ok := dec.NStringPtr()
	if !ok {
		return nil, dec.Err()
	}
	var value []byte
	if s != nil {
		value = []byte(*s)
	}
	return &FetchBodySectionData{Section: sec, Value: value}, nil
}

// readBinarySectionAtt reads the remainder of a "BINARY[...]..."
// msg-att once the att-name atom (up to and including "BINARY[") has
// already been consumed; pre is everything picked up between "[" and
// the closing "]".
func (p *parser) readBinarySectionAtt(pre string) (*FetchBinarySectionData, error) {
	dec := p.dec
	part, rest, err := parseSectionPrefix(pre)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, dataFormatError("msg-att", "unexpected keyword in BINARY[] section")
	}

	if !dec.ExpectSpecial(']') {
		return nil, dec.Err()
	}
	partial, err := p.readSectionPartial()
	if err != nil {
		return nil, err
	}
	if !dec.ExpectSP() {
		return nil, dec.Err()
	}
	s, ok := dec.NStringPtr()
	if !ok {
		return nil, dec.Err()
	}
	var value []byte
	if s != nil {
		value = []byte(*s)
	}
	return &FetchBinarySectionData{Section: FetchItemBinarySection{Part: part, Partial: partial}, Value: value}, nil
}
