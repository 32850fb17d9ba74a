package imap

import "time"

const dateTimeLayout = "_2-Jan-2006 15:04:05 -0700"

// readEnvelope reads an ENVELOPE message attribute value.
//
// Grounded on imapclient/decode.go's readEnvelope, with Subject
// decoded through decodeText(p.opts, ...) rather than a
// connection-held Options.decodeText.
func (p *parser) readEnvelope() (*Envelope, error) {
	dec := p.dec
	var envelope Envelope

	if !dec.ExpectSpecial('(') {
		return nil, dec.Err()
	}

	var subject string
	if !dec.ExpectNString(&envelope.Date) || !dec.ExpectSP() || !dec.ExpectNString(&subject) || !dec.ExpectSP() {
		return nil, dec.Err()
	}
	envelope.Subject = decodeText(p.opts, subject)

	addrLists := []*[]Address{
		&envelope.From,
		&envelope.Sender,
		&envelope.ReplyTo,
		&envelope.To,
		&envelope.Cc,
		&envelope.Bcc,
	}
	for _, out := range addrLists {
		l, err := p.readAddressList()
		if err != nil {
			return nil, err
		} else if !dec.ExpectSP() {
			return nil, dec.Err()
		}
		*out = l
	}

	if !dec.ExpectNString(&envelope.InReplyTo) || !dec.ExpectSP() || !dec.ExpectNString(&envelope.MessageID) {
		return nil, dec.Err()
	}

	if !dec.ExpectSpecial(')') {
		return nil, dec.Err()
	}
	return &envelope, nil
}

func (p *parser) readAddressList() ([]Address, error) {
	dec := p.dec
	var l []Address
	err := dec.ExpectNList(func() error {
		addr, err := p.readAddress()
		if err != nil {
			return err
		}
		l = append(l, *addr)
		return nil
	})
	return l, err
}

func (p *parser) readAddress() (*Address, error) {
	dec := p.dec
	var (
		addr     Address
		name     string
		obsRoute string
	)
	ok := dec.ExpectSpecial('(') &&
		dec.ExpectNString(&name) && dec.ExpectSP() &&
		dec.ExpectNString(&obsRoute) && dec.ExpectSP() &&
		dec.ExpectNString(&addr.Mailbox) && dec.ExpectSP() &&
		dec.ExpectNString(&addr.Host) && dec.ExpectSpecial(')')
	if !ok {
		return nil, dec.Err()
	}
	addr.Name = decodeText(p.opts, name)
	return &addr, nil
}

// readDateTime reads a quoted date-time, used by the INTERNALDATE
// message attribute.
func (p *parser) readDateTime() (time.Time, error) {
	dec := p.dec
	var s string
	if !dec.Expect(dec.Quoted(&s), "date-time") {
		return time.Time{}, dec.Err()
	}
	t, err := time.Parse(dateTimeLayout, s)
	if err != nil {
		return time.Time{}, dataFormatError("date-time", err.Error())
	}
	return t, nil
}
