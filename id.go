package imap

// readIDData reads an ID response: a parenthesized list of field-name/
// field-value pairs, or NIL for no identifying information.
//
// Grounded on RFC 2971 section 3.1; absent from imapclient/decode.go,
// which has no ID extension support. A NIL field value is represented
// as an empty string, since Go maps have no tri-state "present but
// null" value short of using *string, which nothing else in this
// package's ID handling needs.
func (p *parser) readIDData() (map[string]string, error) {
	dec := p.dec
	if dec.NIL() {
		return nil, nil
	}

	fields := make(map[string]string)
	err := dec.ExpectList(func() error {
		var key string
		if !dec.ExpectString(&key) || !dec.ExpectSP() {
			return dec.Err()
		}
		var value string
		if !dec.ExpectNString(&value) {
			return dec.Err()
		}
		fields[key] = value
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fields, nil
}
