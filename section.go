package imap

import (
	"strconv"
	"strings"
)

// parseSectionPrefix parses the text that follows "BODY[" or
// "BINARY[" up to (not including) the next unread stop character –
// already captured as part of the att-name atom, since digits and
// '.' are themselves atom characters. It splits off any leading
// section-part (dot-separated numbers) and, for BODY[], the trailing
// section-text keyword.
//
// This production is absent from imapclient/decode.go, which only
// handles the unparameterized "BODY[]" case (left marked TODO
// there); it is grounded directly on RFC 9051 section 7.5.2 instead.
func parseSectionPrefix(pre string) (part []int, rest string, err error) {
	if pre == "" {
		return nil, "", nil
	}
	tokens := strings.Split(pre, ".")
	i := 0
	for i < len(tokens) {
		n, convErr := strconv.Atoi(tokens[i])
		if convErr != nil || n < 0 {
			break
		}
		part = append(part, n)
		i++
	}
	rest = strings.Join(tokens[i:], ".")
	return part, rest, nil
}

// parseBodySectionText classifies the section-text keyword (if any)
// following a section-part in a BODY[] attribute name, reporting
// whether a header-field-name list still needs to be read from the
// wire and, if so, whether it names fields to include or exclude.
func parseBodySectionText(rest string) (specifier PartSpecifier, needsFieldList, not bool, err error) {
	switch strings.ToUpper(rest) {
	case "":
		return PartSpecifierNone, false, false, nil
	case "HEADER":
		return PartSpecifierHeader, false, false, nil
	case "TEXT":
		return PartSpecifierText, false, false, nil
	case "MIME":
		return PartSpecifierMIME, false, false, nil
	case "HEADER.FIELDS":
		return PartSpecifierHeader, true, false, nil
	case "HEADER.FIELDS.NOT":
		return PartSpecifierHeader, true, true, nil
	default:
		return PartSpecifierNone, false, false, dataFormatError("section-text", "unrecognized keyword "+rest)
	}
}

// readSectionPartial reads the optional "<" number ">" trailer that
// follows "]" in a partial BODY[]<offset> or BINARY[]<offset>
// response, returning the starting offset.
func (p *parser) readSectionPartial() (*SectionPartial, error) {
	dec := p.dec
	if !dec.Special('<') {
		return nil, nil
	}
	offset, ok := dec.ExpectNumber()
	if !ok {
		return nil, dec.Err()
	}
	if !dec.ExpectSpecial('>') {
		return nil, dec.Err()
	}
	return &SectionPartial{Offset: int64(offset)}, nil
}
