package imap

import (
	"strings"
	"unicode/utf8"
)

// ListOptions contains options for the LIST command.
type ListOptions struct {
	SelectSubscribed     bool
	SelectRemote         bool
	SelectRecursiveMatch bool // requires SelectSubscribed to be set
	SelectSpecialUse     bool // requires SPECIAL-USE

	ReturnSubscribed bool
	ReturnChildren   bool
	ReturnStatus     *StatusOptions // requires IMAP4rev2 or LIST-STATUS
	ReturnSpecialUse bool           // requires SPECIAL-USE
}

// ListData is the mailbox data returned by a LIST command.
type ListData struct {
	Attrs   []MailboxAttr
	Delim   rune
	Mailbox string

	// Extended data
	ChildInfo *ListDataChildInfo
	OldName   string
	Status    *StatusData
}

type ListDataChildInfo struct {
	Subscribed bool
}

// readListData reads a mailbox-data LIST/LSUB value: the flag list,
// delimiter, mailbox name, and any extended data items.
//
// Grounded on imapclient/decode.go's readList, with the mbox-list-
// extended production (marked TODO there) completed for the
// CHILDINFO and OLDNAME items RFC 9051 section 7.3.1 defines.
func (p *parser) readListData() (*ListData, error) {
	dec := p.dec
	var data ListData

	err := dec.ExpectList(func() error {
		attr, err := p.readFlag()
		if err != nil {
			return err
		}
		data.Attrs = append(data.Attrs, MailboxAttr(attr))
		return nil
	})
	if err != nil {
		return nil, dataFormatError("mbx-list-flags", err.Error())
	}

	if !dec.ExpectSP() {
		return nil, dec.Err()
	}

	var delimStr string
	if dec.Quoted(&delimStr) {
		delim, size := utf8.DecodeRuneInString(delimStr)
		if delim == utf8.RuneError || size != len(delimStr) {
			return nil, dataFormatError("mbx-list-flags", "mailbox delimiter must be a single rune")
		}
		data.Delim = delim
	} else if !dec.ExpectNIL() {
		return nil, dec.Err()
	}

	if !dec.ExpectSP() {
		return nil, dec.Err()
	}

	if !dec.ExpectMailbox(&data.Mailbox) {
		return nil, dec.Err()
	}

	if dec.SP() {
		if err := p.readListDataExtended(&data); err != nil {
			return nil, err
		}
	}

	return &data, nil
}

func (p *parser) readListDataExtended(data *ListData) error {
	dec := p.dec
	return dec.ExpectList(func() error {
		var label string
		if !dec.ExpectAtom(&label) {
			return dec.Err()
		}
		if !dec.ExpectSP() {
			return dec.Err()
		}

		switch strings.ToUpper(label) {
		case "CHILDINFO":
			var info ListDataChildInfo
			err := dec.ExpectList(func() error {
				var word string
				if !dec.ExpectString(&word) {
					return dec.Err()
				}
				if strings.EqualFold(word, "SUBSCRIBED") {
					info.Subscribed = true
				}
				return nil
			})
			if err != nil {
				return err
			}
			data.ChildInfo = &info
		case "OLDNAME":
			err := dec.ExpectList(func() error {
				if !dec.ExpectMailbox(&data.OldName) {
					return dec.Err()
				}
				return nil
			})
			if err != nil {
				return err
			}
		default:
			if p.opts.strict() {
				return dataFormatError("mbox-list-extended-item", "unsupported item "+label)
			}
			if !p.skipTaggedExtVal() {
				return dec.Err()
			}
			p.warn(0, "unrecognized mbox-list-extended-item "+label)
		}
		return nil
	})
}

// skipTaggedExtVal consumes one tagged-ext-val: a sequence-set atom, a
// parenthesized list, or a single string/number, without interpreting
// it. Used to ignore mbox-list-extended-item values this package does
// not recognize, so an unsupported item doesn't abort parsing the rest
// of the response.
func (p *parser) skipTaggedExtVal() bool {
	dec := p.dec
	if isList, err := dec.List(func() error {
		return p.skipTaggedExtValInner()
	}); err != nil {
		return false
	} else if isList {
		return true
	}
	var s string
	return dec.AString(&s)
}

func (p *parser) skipTaggedExtValInner() error {
	dec := p.dec
	if isList, err := dec.List(func() error { return p.skipTaggedExtValInner() }); err != nil {
		return err
	} else if isList {
		return nil
	}
	var s string
	if !dec.AString(&s) {
		return dec.Err()
	}
	return nil
}
