package imap

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/mailwire/imapcore/internal/wire"
)

// parser carries the decoding state shared across one call to Parse:
// the wire-level decoder and the warnings accumulated along the way.
type parser struct {
	dec      *wire.Decoder
	opts     *ParseOptions
	warnings []Warning
}

func (p *parser) warn(offset int, message string) {
	if offset == 0 {
		offset = p.dec.Pos()
	}
	p.warnings = append(p.warnings, Warning{Offset: offset, Message: message})
}

// Parse decodes a single complete IMAP response — a tagged status
// response, an untagged status or mailbox-data response, or a "+"
// continuation request — from data, which must hold exactly one
// response as produced by ReadResponse (trailing CRLF included, any
// literals inlined).
//
// Grounded on the source's Reader.ReadLine entry point (read.go),
// generalized from "parse into a generic []interface{} field tree"
// to "parse directly into the typed Response this package defines",
// since the grammar is now encoded in Go types instead of discovered
// by a downstream Parser.Parse(fields) step.
func Parse(data []byte, opts *ParseOptions) (Response, []Warning, error) {
	dec := wire.NewDecoder(bufio.NewReader(bytes.NewReader(data)))
	p := &parser{dec: dec, opts: opts}

	resp, err := p.parseResponse()
	if err != nil {
		if dec.Err() != nil {
			err = dec.Err()
		}
		return Response{}, p.warnings, &ParseError{Offset: dec.Pos(), Err: err}
	}
	return resp, p.warnings, nil
}

func (p *parser) parseResponse() (Response, error) {
	dec := p.dec

	if dec.Special('+') {
		dec.SP()
		text, err := p.readResponseText()
		if err != nil {
			return Response{}, err
		}
		if !dec.ExpectCRLF() {
			return Response{}, dec.Err()
		}
		return Response{Kind: ResponseKindContinuation, Continuation: &text}, nil
	}

	if dec.Special('*') {
		if !dec.ExpectSP() {
			return Response{}, dec.Err()
		}
		return p.parseUntagged()
	}

	var tag string
	if !dec.Tag(&tag) {
		return Response{}, fmt.Errorf("response does not start with '+', '*', or a tag")
	}
	if !dec.ExpectSP() {
		return Response{}, dec.Err()
	}
	status, err := p.parseStatusLine()
	if err != nil {
		return Response{}, err
	}
	return Response{Kind: ResponseKindTagged, Tag: tag, Status: status}, nil
}

// parseStatusLine reads the status-type SP resp-text CRLF tail of a
// tagged response. The "* OK/NO/BAD/PREAUTH/BYE" untagged form is read
// inline by parseUntagged.
func (p *parser) parseStatusLine() (StatusResponse, error) {
	dec := p.dec
	var typ string
	if !dec.ExpectAtom(&typ) {
		return StatusResponse{}, dec.Err()
	}
	switch StatusResponseType(strings.ToUpper(typ)) {
	case StatusResponseTypeOK, StatusResponseTypeNo, StatusResponseTypeBad, StatusResponseTypePreAuth, StatusResponseTypeBye:
	default:
		return StatusResponse{}, fmt.Errorf("unknown status response type %q", typ)
	}
	if !dec.ExpectSP() {
		return StatusResponse{}, dec.Err()
	}
	text, err := p.readResponseText()
	if err != nil {
		return StatusResponse{}, err
	}
	if !dec.ExpectCRLF() {
		return StatusResponse{}, dec.Err()
	}
	return StatusResponse{
		Type:         StatusResponseType(strings.ToUpper(typ)),
		ResponseText: text,
	}, nil
}

func (p *parser) parseUntagged() (Response, error) {
	dec := p.dec

	if num, ok := dec.Number(); ok {
		if !dec.ExpectSP() {
			return Response{}, dec.Err()
		}
		var kw string
		if !dec.ExpectAtom(&kw) {
			return Response{}, dec.Err()
		}
		switch strings.ToUpper(kw) {
		case "EXISTS":
			return p.finish(&UntaggedData{Kind: UntaggedExists, Num: num})
		case "RECENT":
			return p.finish(&UntaggedData{Kind: UntaggedRecent, Num: num})
		case "EXPUNGE":
			return p.finish(&UntaggedData{Kind: UntaggedExpunge, Num: num})
		case "FETCH":
			if !dec.ExpectSP() {
				return Response{}, dec.Err()
			}
			fetch, err := p.readMsgAtt(num)
			if err != nil {
				return Response{}, err
			}
			return p.finish(&UntaggedData{Kind: UntaggedFetch, Fetch: fetch})
		default:
			return Response{}, fmt.Errorf("unsupported numeric untagged response %q", kw)
		}
	}

	var kw string
	if !dec.ExpectAtom(&kw) {
		return Response{}, dec.Err()
	}

	switch strings.ToUpper(kw) {
	case "OK", "NO", "BAD", "PREAUTH", "BYE":
		if !dec.ExpectSP() {
			return Response{}, dec.Err()
		}
		text, err := p.readResponseText()
		if err != nil {
			return Response{}, err
		}
		if !dec.ExpectCRLF() {
			return Response{}, dec.Err()
		}
		status := StatusResponse{Type: StatusResponseType(strings.ToUpper(kw)), ResponseText: text}
		return Response{Kind: ResponseKindUntagged, Untagged: &UntaggedData{Kind: UntaggedStatusResponse, Status: &status}}, nil

	case "CAPABILITY":
		caps, err := p.readCapabilities()
		if err != nil {
			return Response{}, err
		}
		return p.finish(&UntaggedData{Kind: UntaggedCapability, Capability: caps})

	case "ENABLED":
		var caps []Cap
		for dec.SP() {
			var name string
			if !dec.ExpectAtom(&name) {
				return Response{}, dec.Err()
			}
			caps = append(caps, Cap(name))
		}
		return p.finish(&UntaggedData{Kind: UntaggedEnabled, Enabled: caps})

	case "FLAGS":
		if !dec.ExpectSP() {
			return Response{}, dec.Err()
		}
		flags, err := p.readFlagList()
		if err != nil {
			return Response{}, err
		}
		return p.finish(&UntaggedData{Kind: UntaggedFlags, Flags: flags})

	case "LIST", "LSUB":
		if !dec.ExpectSP() {
			return Response{}, dec.Err()
		}
		data, err := p.readListData()
		if err != nil {
			return Response{}, err
		}
		kind := UntaggedList
		if strings.ToUpper(kw) == "LSUB" {
			kind = UntaggedLSub
		}
		return p.finish(&UntaggedData{Kind: kind, List: data})

	case "STATUS":
		if !dec.ExpectSP() {
			return Response{}, dec.Err()
		}
		data, err := p.readStatusData()
		if err != nil {
			return Response{}, err
		}
		return p.finish(&UntaggedData{Kind: UntaggedStatusData, StatusData: data})

	case "SEARCH":
		data, err := p.readSearchData()
		if err != nil {
			return Response{}, err
		}
		return p.finish(&UntaggedData{Kind: UntaggedSearch, Search: data})

	case "ESEARCH":
		data, err := p.readESearchData()
		if err != nil {
			return Response{}, err
		}
		return p.finish(&UntaggedData{Kind: UntaggedESearch, ESearch: data})

	case "NAMESPACE":
		if !dec.ExpectSP() {
			return Response{}, dec.Err()
		}
		data, err := p.readNamespaceData()
		if err != nil {
			return Response{}, err
		}
		return p.finish(&UntaggedData{Kind: UntaggedNamespace, Namespace: data})

	case "QUOTA":
		if !dec.ExpectSP() {
			return Response{}, dec.Err()
		}
		data, err := p.readQuotaData()
		if err != nil {
			return Response{}, err
		}
		return p.finish(&UntaggedData{Kind: UntaggedQuota, Quota: data})

	case "QUOTAROOT":
		if !dec.ExpectSP() {
			return Response{}, dec.Err()
		}
		data, err := p.readQuotaRootData()
		if err != nil {
			return Response{}, err
		}
		return p.finish(&UntaggedData{Kind: UntaggedQuotaRoot, QuotaRoot: data})

	case "ACL":
		if !dec.ExpectSP() {
			return Response{}, dec.Err()
		}
		data, err := p.readACLData()
		if err != nil {
			return Response{}, err
		}
		return p.finish(&UntaggedData{Kind: UntaggedACL, ACL: data})

	case "LISTRIGHTS":
		if !dec.ExpectSP() {
			return Response{}, dec.Err()
		}
		data, err := p.readListRightsData()
		if err != nil {
			return Response{}, err
		}
		return p.finish(&UntaggedData{Kind: UntaggedListRights, ListRights: data})

	case "MYRIGHTS":
		if !dec.ExpectSP() {
			return Response{}, dec.Err()
		}
		data, err := p.readMyRightsData()
		if err != nil {
			return Response{}, err
		}
		return p.finish(&UntaggedData{Kind: UntaggedMyRights, MyRights: data})

	case "ID":
		if !dec.ExpectSP() {
			return Response{}, dec.Err()
		}
		data, err := p.readIDData()
		if err != nil {
			return Response{}, err
		}
		return p.finish(&UntaggedData{Kind: UntaggedID, ID: data})

	default:
		if p.opts.strict() {
			return Response{}, fmt.Errorf("unsupported untagged response %q", kw)
		}
		rest, _ := dec.RemainingLine()
		p.warn(0, "unrecognized untagged response "+kw)
		if !dec.ExpectCRLF() {
			return Response{}, dec.Err()
		}
		return Response{Kind: ResponseKindUntagged, Untagged: &UntaggedData{Kind: UntaggedUnknown, Raw: kw + rest}}, nil
	}
}

// finish consumes the mandatory trailing CRLF and wraps data into an
// untagged Response, shared by every case in parseUntagged that has
// no more grammar left to read once its payload is decoded.
func (p *parser) finish(data *UntaggedData) (Response, error) {
	if !p.dec.ExpectCRLF() {
		return Response{}, p.dec.Err()
	}
	return Response{Kind: ResponseKindUntagged, Untagged: data}, nil
}
