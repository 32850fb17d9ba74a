package wire

// List consumes a parenthesized list, calling f once per element until
// ')' is reached. isList reports whether the input actually started
// with '(' (List does nothing and returns false, nil if not).
func (dec *Decoder) List(f func() error) (isList bool, err error) {
	if !dec.Special('(') {
		return false, nil
	}
	if dec.Special(')') {
		return true, nil
	}
	for {
		if err := f(); err != nil {
			return true, err
		}
		if dec.Special(')') {
			return true, nil
		}
		if !dec.ExpectSP() {
			return true, dec.Err()
		}
	}
}

// ExpectList consumes a parenthesized list or fails.
func (dec *Decoder) ExpectList(f func() error) error {
	isList, err := dec.List(f)
	if err != nil {
		return err
	}
	if !dec.Expect(isList, "list") {
		return dec.Err()
	}
	return nil
}

// NList consumes a parenthesized list or the atom "NIL". isList
// reports which was found.
func (dec *Decoder) NList(f func() error) (isList bool, err error) {
	if dec.Label("NIL") {
		return false, nil
	}
	return dec.List(f)
}

// ExpectNList consumes a list or NIL, but fails on anything else.
func (dec *Decoder) ExpectNList(f func() error) error {
	if dec.NIL() {
		return nil
	}
	return dec.ExpectList(f)
}

// NIL consumes the literal atom "NIL".
func (dec *Decoder) NIL() bool {
	return dec.Label("NIL")
}

// ExpectNIL consumes NIL or fails.
func (dec *Decoder) ExpectNIL() bool {
	return dec.Expect(dec.NIL(), "NIL")
}

// ExpectNString consumes a string or NIL, leaving *ptr as "" for NIL.
func (dec *Decoder) ExpectNString(ptr *string) bool {
	isNil, ok := dec.NString(ptr)
	if !ok {
		return false
	}
	if isNil {
		*ptr = ""
	}
	return true
}

// Mailbox consumes an ASTRING mailbox name. RFC 9051 mailbox names are
// UTF-8; the legacy modified UTF-7 encoding from RFC 3501 is not
// decoded here since IMAP4rev1 mailbox-name compatibility is out of
// scope for this package (see the module's design notes).
func (dec *Decoder) Mailbox(ptr *string) bool {
	return dec.AString(ptr)
}

// ExpectMailbox consumes a mailbox name or fails.
func (dec *Decoder) ExpectMailbox(ptr *string) bool {
	return dec.Expect(dec.Mailbox(ptr), "mailbox")
}
