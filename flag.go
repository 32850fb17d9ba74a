package imap

// readFlagList reads a parenthesized list of flags, as used by FLAGS,
// PERMANENTFLAGS, and the FLAGS message attribute.
//
// Grounded on imapclient/decode.go's readFlagList/readFlag.
func (p *parser) readFlagList() ([]Flag, error) {
	dec := p.dec
	var flags []Flag
	err := dec.ExpectList(func() error {
		flag, err := p.readFlag()
		if err != nil {
			return err
		}
		flags = append(flags, flag)
		return nil
	})
	return flags, err
}

func (p *parser) readFlag() (Flag, error) {
	dec := p.dec
	isSystem := dec.Special('\\')
	if isSystem && dec.Special('*') {
		return FlagWildcard, nil
	}
	var name string
	if !dec.ExpectAtom(&name) {
		return "", dec.Err()
	}
	if isSystem {
		name = "\\" + name
	}
	return Flag(name), nil
}
