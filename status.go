package imap

// StatusItem is a data item which can be requested by a STATUS command.
type StatusItem string

const (
	StatusItemNumMessages StatusItem = "MESSAGES"
	StatusItemUIDNext     StatusItem = "UIDNEXT"
	StatusItemUIDValidity StatusItem = "UIDVALIDITY"
	StatusItemNumUnseen   StatusItem = "UNSEEN"
	StatusItemNumDeleted  StatusItem = "DELETED" // requires IMAP4rev2 or QUOTA
	StatusItemSize        StatusItem = "SIZE"    // requires IMAP4rev2 or STATUS=SIZE

	StatusItemAppendLimit    StatusItem = "APPENDLIMIT"     // requires APPENDLIMIT
	StatusItemDeletedStorage StatusItem = "DELETED-STORAGE" // requires QUOTA=RES-STORAGE
)

// StatusOptions contains the items requested by a STATUS command.
type StatusOptions struct {
	NumMessages    bool
	UIDNext        bool
	UIDValidity    bool
	NumUnseen      bool
	NumDeleted     bool
	Size           bool
	AppendLimit    bool
	DeletedStorage bool
}

// StatusData is the data returned by a STATUS command.
//
// The mailbox name is always populated. The remaining fields are optional.
type StatusData struct {
	Mailbox string

	NumMessages *uint32
	UIDNext     uint32
	UIDValidity uint32
	NumUnseen   *uint32
	NumDeleted  *uint32
	Size        *int64

	AppendLimit    *uint32
	DeletedStorage *int64
}

// readStatusData reads a mailbox-data STATUS value: the mailbox name
// followed by a parenthesized list of status-att-val pairs.
//
// Grounded on imapclient/decode.go's readStatus/readStatusAttVal, with
// APPENDLIMIT and DELETED-STORAGE added and with an unrecognized
// status-att-val skipped (via skipTaggedExtVal) rather than aborting
// the whole response, matching the non-strict fallback the rest of
// this package's parsing uses.
func (p *parser) readStatusData() (*StatusData, error) {
	dec := p.dec
	var data StatusData

	if !dec.ExpectMailbox(&data.Mailbox) {
		return nil, dec.Err()
	}
	if !dec.ExpectSP() {
		return nil, dec.Err()
	}

	err := dec.ExpectList(func() error {
		return p.readStatusAttVal(&data)
	})
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (p *parser) readStatusAttVal(data *StatusData) error {
	dec := p.dec
	var name string
	if !dec.ExpectAtom(&name) || !dec.ExpectSP() {
		return dec.Err()
	}

	var ok bool
	switch StatusItem(name) {
	case StatusItemNumMessages:
		var num uint32
		num, ok = dec.ExpectNumber()
		data.NumMessages = &num
	case StatusItemUIDNext:
		data.UIDNext, ok = dec.ExpectNumber()
	case StatusItemUIDValidity:
		data.UIDValidity, ok = dec.ExpectNumber()
	case StatusItemNumUnseen:
		var num uint32
		num, ok = dec.ExpectNumber()
		data.NumUnseen = &num
	case StatusItemNumDeleted:
		var num uint32
		num, ok = dec.ExpectNumber()
		data.NumDeleted = &num
	case StatusItemSize:
		var size int64
		size, ok = dec.ExpectNumber64()
		data.Size = &size
	case StatusItemAppendLimit:
		var limit uint32
		limit, ok = dec.ExpectNumber()
		data.AppendLimit = &limit
	case StatusItemDeletedStorage:
		var size int64
		size, ok = dec.ExpectNumber64()
		data.DeletedStorage = &size
	default:
		if p.opts.strict() {
			return dataFormatError("status-att-val", "unsupported item "+name)
		}
		if !p.skipTaggedExtVal() {
			return dec.Err()
		}
		p.warn(0, "unrecognized status-att-val "+name)
		return nil
	}
	if !ok {
		return dec.Err()
	}
	return nil
}
