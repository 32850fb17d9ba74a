package imap

// NamespaceData is the data returned by the NAMESPACE command.
type NamespaceData struct {
	Personal []NamespaceDescriptor
	Other    []NamespaceDescriptor
	Shared   []NamespaceDescriptor
}

// NamespaceDescriptor describes a namespace.
type NamespaceDescriptor struct {
	Prefix string
	Delim  rune
}

// readNamespaceData reads a mailbox-data NAMESPACE value: three
// namespace-descriptor groups (personal, other users', shared), each
// either NIL or a parenthesized list of descriptors.
//
// Grounded on RFC 2342 section 5; absent from imapclient/decode.go,
// which has no NAMESPACE support. Per-descriptor extension data
// (Namespace-Response-Extension) is read and discarded via
// skipTaggedExtVal, since this package has no typed representation
// for arbitrary server-defined extensions.
func (p *parser) readNamespaceData() (*NamespaceData, error) {
	dec := p.dec
	var data NamespaceData

	groups := []*[]NamespaceDescriptor{&data.Personal, &data.Other, &data.Shared}
	for i, out := range groups {
		if i > 0 && !dec.ExpectSP() {
			return nil, dec.Err()
		}
		descs, err := p.readNamespaceGroup()
		if err != nil {
			return nil, err
		}
		*out = descs
	}
	return &data, nil
}

func (p *parser) readNamespaceGroup() ([]NamespaceDescriptor, error) {
	dec := p.dec
	var descs []NamespaceDescriptor
	isList, err := dec.NList(func() error {
		desc, err := p.readNamespaceDescriptor()
		if err != nil {
			return err
		}
		descs = append(descs, *desc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	_ = isList
	return descs, nil
}

func (p *parser) readNamespaceDescriptor() (*NamespaceDescriptor, error) {
	dec := p.dec
	var desc NamespaceDescriptor

	if !dec.ExpectSpecial('(') {
		return nil, dec.Err()
	}
	if !dec.ExpectString(&desc.Prefix) || !dec.ExpectSP() {
		return nil, dec.Err()
	}

	var delimStr string
	isNil, ok := dec.NString(&delimStr)
	if !ok {
		return nil, dec.Err()
	}
	if !isNil && delimStr != "" {
		desc.Delim = []rune(delimStr)[0]
	}

	for dec.SP() {
		var key string
		if !dec.ExpectString(&key) || !dec.ExpectSP() {
			return nil, dec.Err()
		}
		if !p.skipTaggedExtVal() {
			return nil, dec.Err()
		}
	}

	if !dec.ExpectSpecial(')') {
		return nil, dec.Err()
	}
	return &desc, nil
}
