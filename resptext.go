package imap

import (
	"strconv"
	"strings"

	"github.com/mailwire/imapcore/seqset"
)

// ResponseText is the free-text portion of a status response or
// continuation request, with its optional bracketed resp-text-code
// decoded into the typed fields below when recognized.
//
// Grounded on the source's StatusResponse.Code/Text pair (response.go),
// generalized into its own type since a continuation request carries
// resp-text but no StatusResponseType.
type ResponseText struct {
	Code ResponseCode
	Text string

	Capability     []Cap
	PermanentFlags []Flag
	UIDNext        uint32
	UIDValidity    uint32
	Unseen         uint32
	UIDNotSticky   bool
	NoModSeq       bool
	HighestModSeq  uint64
	Modified       *seqset.SequenceSet
	AppendUID      *AppendUIDCode
	CopyUID        *CopyUIDCode
	BadCharset     []string
}

// AppendUIDCode is the decoded argument of the APPENDUID resp-text-code
// (RFC 4315), returned after a successful APPEND when UIDPLUS is
// supported.
type AppendUIDCode struct {
	UIDValidity uint32
	UID         uint32
}

// CopyUIDCode is the decoded argument of the COPYUID resp-text-code
// (RFC 4315), returned after a successful COPY/MOVE when UIDPLUS is
// supported.
type CopyUIDCode struct {
	UIDValidity uint32
	SourceUIDs  *seqset.SequenceSet
	DestUIDs    *seqset.SequenceSet
}

func (p *parser) readResponseText() (ResponseText, error) {
	dec := p.dec
	var rt ResponseText

	if dec.Special('[') {
		var name string
		if !dec.ExpectAtom(&name) {
			return rt, dec.Err()
		}
		rt.Code = ResponseCode(strings.ToUpper(name))
		if err := p.readRespTextCode(&rt); err != nil {
			return rt, err
		}
		if !dec.ExpectSpecial(']') {
			return rt, dec.Err()
		}
		dec.SP()
	}

	dec.Text(&rt.Text)
	return rt, nil
}

func (p *parser) readRespTextCode(rt *ResponseText) error {
	dec := p.dec
	switch rt.Code {
	case ResponseCodeAlert, ResponseCodeParse, "READ-ONLY", "READ-WRITE", ResponseCodeTryCreate,
		ResponseCodeAlreadyExists, ResponseCodeAuthenticationFailed, ResponseCodeAuthorizationFailed,
		ResponseCodeCannot, ResponseCodeClientBug, ResponseCodeContactAdmin, ResponseCodeCorruption,
		ResponseCodeExpired, ResponseCodeHasChildren, ResponseCodeInUse, ResponseCodeLimit,
		ResponseCodeNonExistent, ResponseCodeNoPerm, ResponseCodeOverQuota, ResponseCodePrivacyRequired,
		ResponseCodeServerBug, ResponseCodeUnavailable, ResponseCodeUnknownCTE,
		ResponseCodeTooMany, ResponseCodeNoPrivate, ResponseCodeTooBig:
		// no arguments
	case "NOMODSEQ":
		rt.NoModSeq = true
	case "UIDNOTSTICKY":
		rt.UIDNotSticky = true
	case "CAPABILITY":
		for dec.SP() {
			var name string
			if !dec.ExpectAtom(&name) {
				return dec.Err()
			}
			rt.Capability = append(rt.Capability, Cap(name))
		}
	case "PERMANENTFLAGS":
		if !dec.ExpectSP() {
			return dec.Err()
		}
		flags, err := p.readFlagList()
		if err != nil {
			return err
		}
		rt.PermanentFlags = flags
	case "UIDNEXT":
		if !dec.ExpectSP() {
			return dec.Err()
		}
		n, ok := dec.ExpectNumber()
		if !ok {
			return dec.Err()
		}
		rt.UIDNext = n
	case "UIDVALIDITY":
		if !dec.ExpectSP() {
			return dec.Err()
		}
		n, ok := dec.ExpectNumber()
		if !ok {
			return dec.Err()
		}
		rt.UIDValidity = n
	case "UNSEEN":
		if !dec.ExpectSP() {
			return dec.Err()
		}
		n, ok := dec.ExpectNumber()
		if !ok {
			return dec.Err()
		}
		rt.Unseen = n
	case ResponseCodeBadCharset:
		if dec.SP() {
			if !dec.ExpectSpecial('(') {
				return dec.Err()
			}
			for {
				var cs string
				if !dec.ExpectAString(&cs) {
					return dec.Err()
				}
				rt.BadCharset = append(rt.BadCharset, cs)
				if !dec.SP() {
					break
				}
			}
			if !dec.ExpectSpecial(')') {
				return dec.Err()
			}
		}
	case "APPENDUID":
		if !dec.ExpectSP() {
			return dec.Err()
		}
		validity, ok := dec.ExpectNumber()
		if !ok {
			return dec.Err()
		}
		if !dec.ExpectSP() {
			return dec.Err()
		}
		var uidStr string
		if !dec.ExpectAtom(&uidStr) {
			return dec.Err()
		}
		uid, err := strconv.ParseUint(uidStr, 10, 32)
		if err != nil {
			return dataFormatError("APPENDUID", "uid is not a number")
		}
		rt.AppendUID = &AppendUIDCode{UIDValidity: validity, UID: uint32(uid)}
	case "COPYUID":
		if !dec.ExpectSP() {
			return dec.Err()
		}
		validity, ok := dec.ExpectNumber()
		if !ok {
			return dec.Err()
		}
		if !dec.ExpectSP() {
			return dec.Err()
		}
		var srcStr string
		if !dec.ExpectAtom(&srcStr) {
			return dec.Err()
		}
		src, err := seqset.FromString(srcStr)
		if err != nil {
			return err
		}
		if !dec.ExpectSP() {
			return dec.Err()
		}
		var destStr string
		if !dec.ExpectAtom(&destStr) {
			return dec.Err()
		}
		dest, err := seqset.FromString(destStr)
		if err != nil {
			return err
		}
		rt.CopyUID = &CopyUIDCode{UIDValidity: validity, SourceUIDs: src, DestUIDs: dest}
	case "HIGHESTMODSEQ":
		if !dec.ExpectSP() {
			return dec.Err()
		}
		n, ok := dec.ExpectNumber64()
		if !ok {
			return dec.Err()
		}
		rt.HighestModSeq = uint64(n)
	case "MODIFIED":
		if !dec.ExpectSP() {
			return dec.Err()
		}
		var setStr string
		if !dec.ExpectAtom(&setStr) {
			return dec.Err()
		}
		set, err := seqset.FromString(setStr)
		if err != nil {
			return err
		}
		rt.Modified = set
	default:
		if _, ok := dec.UntilByte(']'); !ok {
			return dec.Err()
		}
		if p.opts.strict() {
			return dataFormatError("resp-text-code", "unrecognized code "+string(rt.Code))
		}
		p.warn(0, "unrecognized resp-text-code "+string(rt.Code))
	}
	return nil
}
