package imap

import (
	"strings"
	"time"

	"github.com/mailwire/imapcore/seqset"
)

// SearchOptions contains options for the SEARCH command.
type SearchOptions struct {
	// Requires IMAP4rev2 or ESEARCH
	ReturnMin   bool
	ReturnMax   bool
	ReturnAll   bool
	ReturnCount bool
}

// SearchCriteria is a criteria for the SEARCH command.
//
// When multiple fields are populated, the result is the intersection ("and"
// function) of all messages that match the fields.
type SearchCriteria struct {
	SeqNum []SeqSet
	UID    []SeqSet

	// Only the date is used, the time and timezone are ignored
	Since      time.Time
	Before     time.Time
	SentSince  time.Time
	SentBefore time.Time

	Header []SearchCriteriaHeaderField
	Body   []string
	Text   []string

	Flag    []Flag
	NotFlag []Flag

	Larger  int64
	Smaller int64

	Not *SearchCriteria
	Or  [][2]SearchCriteria
}

// And intersects two search criteria.
func (criteria *SearchCriteria) And(other *SearchCriteria) {
	criteria.SeqNum = append(criteria.SeqNum, other.SeqNum...)
	criteria.UID = append(criteria.UID, other.UID...)

	criteria.Since = intersectSince(criteria.Since, other.Since)
	criteria.Before = intersectBefore(criteria.Before, other.Before)
	criteria.SentSince = intersectSince(criteria.SentSince, other.SentSince)
	criteria.SentBefore = intersectBefore(criteria.SentBefore, other.SentBefore)

	criteria.Header = append(criteria.Header, other.Header...)
	criteria.Body = append(criteria.Body, other.Body...)
	criteria.Text = append(criteria.Text, other.Text...)

	criteria.Flag = append(criteria.Flag, other.Flag...)
	criteria.NotFlag = append(criteria.NotFlag, other.NotFlag...)

	if criteria.Larger == 0 || other.Larger > criteria.Larger {
		criteria.Larger = other.Larger
	}
	if criteria.Smaller == 0 || other.Smaller < criteria.Smaller {
		criteria.Smaller = other.Smaller
	}

	if criteria.Not != nil && other.Not != nil {
		criteria.Not.And(other.Not)
	} else if other.Not != nil {
		criteria.Not = other.Not
	}
	criteria.Or = append(criteria.Or, other.Or...)
}

func intersectSince(t1, t2 time.Time) time.Time {
	switch {
	case t1.IsZero():
		return t2
	case t2.IsZero():
		return t1
	case t1.After(t2):
		return t1
	default:
		return t2
	}
}

func intersectBefore(t1, t2 time.Time) time.Time {
	switch {
	case t1.IsZero():
		return t2
	case t2.IsZero():
		return t1
	case t1.Before(t2):
		return t1
	default:
		return t2
	}
}

type SearchCriteriaHeaderField struct {
	Key, Value string
}

// SearchData is the data returned by a SEARCH command.
//
// All is backed by a *seqset.SequenceSet rather than the package's
// own SeqSet: it holds a parsed response value, not a request
// argument being built up for the wire, so it follows the same
// convention ResponseText.Modified/CopyUID already use for parsed
// sequence sets.
type SearchData struct {
	All *seqset.SequenceSet

	// requires IMAP4rev2 or ESEARCH
	UID   bool
	Min   uint32
	Max   uint32
	Count uint32
}

// AllNums returns All as a slice of numbers.
func (data *SearchData) AllNums() []uint32 {
	if data.All == nil {
		return nil
	}
	// Note: a dynamic sequence set ("*") would be a server bug in a
	// SEARCH response.
	nums, _ := data.All.Numbers()
	return nums
}

// ESearchData is the data returned by an ESEARCH response (RFC 4731 /
// RFC 9051 section 7.3.4), the extended form of SEARCH whose result is
// a set of named search-return-data items instead of a bare number
// list.
type ESearchData struct {
	Tag string
	UID bool

	Min, Max uint32
	All      *seqset.SequenceSet
	Count    *uint32
	ModSeq   uint64
}

// readSearchData reads a mailbox-data SEARCH value: a space-separated
// list of message numbers.
//
// Absent from imapclient/decode.go, which has no SEARCH support; the
// grammar (RFC 9051 section 7.3.3) is simple enough to read directly
// against the wire-level Decoder.
func (p *parser) readSearchData() (*SearchData, error) {
	dec := p.dec
	var data SearchData

	var nums []uint64
	for dec.SP() {
		n, ok := dec.ExpectNumber()
		if !ok {
			return nil, dec.Err()
		}
		nums = append(nums, uint64(n))
	}

	if len(nums) == 0 {
		return &data, nil
	}
	set, err := seqset.FromNumbers(nums...)
	if err != nil {
		return nil, err
	}
	data.All = set
	return &data, nil
}

// readESearchData reads an ESEARCH response: an optional search
// correlator tag, an optional UID marker, then a space-separated list
// of search-return-data name/value pairs.
//
// Grounded on RFC 4731 section 3.1 / RFC 9051 section 7.3.4.
func (p *parser) readESearchData() (*ESearchData, error) {
	dec := p.dec
	var data ESearchData

	// sp tracks whether a separator has already been consumed ahead of
	// the next token, so a SP that turns out to precede the first
	// search-return-data item (rather than a correlator or UID marker)
	// is not lost: it simply becomes that item's separator instead of
	// being re-read.
	sp := dec.SP()
	if sp && dec.Special('(') {
		if !dec.Label("TAG") || !dec.ExpectSP() {
			return nil, dec.Err()
		}
		if !dec.ExpectString(&data.Tag) {
			return nil, dec.Err()
		}
		if !dec.ExpectSpecial(')') {
			return nil, dec.Err()
		}
		sp = dec.SP()
	}

	if sp && dec.Label("UID") {
		data.UID = true
		sp = dec.SP()
	}

	for sp {
		var name string
		if !dec.ExpectAtom(&name) || !dec.ExpectSP() {
			return nil, dec.Err()
		}
		switch strings.ToUpper(name) {
		case "MIN":
			n, ok := dec.ExpectNumber()
			if !ok {
				return nil, dec.Err()
			}
			data.Min = n
		case "MAX":
			n, ok := dec.ExpectNumber()
			if !ok {
				return nil, dec.Err()
			}
			data.Max = n
		case "ALL":
			var s string
			if !dec.ExpectAtom(&s) {
				return nil, dec.Err()
			}
			set, err := seqset.FromString(s)
			if err != nil {
				return nil, err
			}
			data.All = set
		case "COUNT":
			n, ok := dec.ExpectNumber()
			if !ok {
				return nil, dec.Err()
			}
			data.Count = &n
		case "MODSEQ":
			n, ok := dec.ExpectNumber64()
			if !ok {
				return nil, dec.Err()
			}
			data.ModSeq = uint64(n)
		default:
			if p.opts.strict() {
				return nil, dataFormatError("search-return-data", "unsupported item "+name)
			}
			if !p.skipTaggedExtVal() {
				return nil, dec.Err()
			}
			p.warn(0, "unrecognized search-return-data item "+name)
		}
		sp = dec.SP()
	}

	return &data, nil
}
