package imap

// QuotaResourceType is a QUOTA resource type.
//
// See RFC 9208 section 5.
type QuotaResourceType string

const (
	QuotaResourceStorage           QuotaResourceType = "STORAGE"
	QuotaResourceMessage           QuotaResourceType = "MESSAGE"
	QuotaResourceMailbox           QuotaResourceType = "MAILBOX"
	QuotaResourceAnnotationStorage QuotaResourceType = "ANNOTATION-STORAGE"
)

// QuotaResource is one resource entry in a QUOTA response.
type QuotaResource struct {
	Type  QuotaResourceType
	Usage int64
	Limit int64
}

// QuotaData is the data returned by the GETQUOTA command.
type QuotaData struct {
	Root      string
	Resources []QuotaResource
}

// QuotaRootData is the data returned by the GETQUOTAROOT command,
// naming the quota roots that apply to a mailbox.
type QuotaRootData struct {
	Mailbox string
	Roots   []string
}

// readQuotaData reads a mailbox-data QUOTA value: a quota root name
// followed by a parenthesized list of resource usage/limit triples.
//
// Grounded on RFC 9208 section 5; absent from imapclient/decode.go,
// which has no QUOTA extension support.
func (p *parser) readQuotaData() (*QuotaData, error) {
	dec := p.dec
	var data QuotaData

	if !dec.ExpectAString(&data.Root) {
		return nil, dec.Err()
	}
	if !dec.ExpectSP() {
		return nil, dec.Err()
	}

	err := dec.ExpectList(func() error {
		var res QuotaResource
		var name string
		if !dec.ExpectAtom(&name) || !dec.ExpectSP() {
			return dec.Err()
		}
		res.Type = QuotaResourceType(name)

		usage, ok := dec.ExpectNumber64()
		if !ok || !dec.ExpectSP() {
			return dec.Err()
		}
		res.Usage = usage

		limit, ok := dec.ExpectNumber64()
		if !ok {
			return dec.Err()
		}
		res.Limit = limit

		data.Resources = append(data.Resources, res)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// readQuotaRootData reads a mailbox-data QUOTAROOT value: a mailbox
// name followed by the quota roots that apply to it.
func (p *parser) readQuotaRootData() (*QuotaRootData, error) {
	dec := p.dec
	var data QuotaRootData

	if !dec.ExpectMailbox(&data.Mailbox) {
		return nil, dec.Err()
	}
	for dec.SP() {
		var root string
		if !dec.ExpectAString(&root) {
			return nil, dec.Err()
		}
		data.Roots = append(data.Roots, root)
	}
	return &data, nil
}
