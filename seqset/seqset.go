// Package seqset implements the IMAP sequence-set value (RFC 9051 §9):
// a compact, ordered, disjoint-interval representation of message
// sequence numbers or UIDs, restricted to 1..2^32-1 plus the sentinel "*".
//
// The design follows spec §4.5/§9: intervals are stored as [lo, hi] pairs
// over a 1..Star range where Star is a distinguished value one greater
// than the largest real nz-number, so interval comparisons ("is b+1 <
// lower.lo") work uniformly whether or not an endpoint is the "*"
// sentinel. This is the sentinel-integer approach spec §9 recommends,
// grounded on the teacher's internal/imapnum.Range/Set (binary-search
// insert/merge over a slice of intervals), generalized from imapnum's
// "0 means *, smallest sentinel" convention to "Star means *, largest
// sentinel" so that interval endpoint comparisons never need a special
// case for the wildcard.
package seqset

import (
	"sort"
	"strconv"
	"strings"
)

// Star is the sentinel value representing "*" in a sequence-set: the
// largest message sequence number or UID in the mailbox. It is exactly
// one greater than the largest representable nz-number (2^32-1), which
// lets every interval comparison in this package treat Star as an
// ordinary (if oversized) endpoint.
const Star uint64 = 1 << 32

// MaxNumber is the largest real (non-star) value a sequence-set may hold.
const MaxNumber uint64 = Star - 1

// interval is a closed range [lo, hi] with 1 <= lo <= hi <= Star.
type interval struct {
	lo, hi uint64
}

// SequenceSet is a mutable ordered set of disjoint, non-adjacent closed
// intervals over 1..Star. The zero value is an empty set, the same value
// New returns; FromString, FromNumbers, FromNumber and FromRange build
// non-empty ones.
type SequenceSet struct {
	intervals []interval

	// raw holds the exact bytes of the string this set was parsed from,
	// still valid as the set's Atom() representation. Cleared (rawOK
	// becomes false) by the first mutation, at which point Atom()
	// regenerates canonical text from intervals.
	raw   string
	rawOK bool

	frozen bool
}

// New returns an empty sequence-set.
func New() *SequenceSet {
	return &SequenceSet{}
}

// Range is a single closed interval [Lo, Hi], used by Ranges and
// CoverAny. Hi may be Star to denote "Lo:*".
type Range struct {
	Lo, Hi uint64
}

// Clone returns an independent copy of s. The copy is never frozen, even
// if s is.
func (s *SequenceSet) Clone() *SequenceSet {
	out := &SequenceSet{
		intervals: append([]interval(nil), s.intervals...),
		raw:       s.raw,
		rawOK:     s.rawOK,
	}
	return out
}

func (s *SequenceSet) checkMutable() {
	if s.frozen {
		panic("seqset: mutation of a frozen SequenceSet")
	}
}

func (s *SequenceSet) invalidate() {
	s.rawOK = false
}

// Freeze returns a deeply-immutable copy of s that is safe to share across
// goroutines without synchronization. Calling a mutating method on the
// result panics, mirroring the source's Ractor-shareable frozen sets.
func (s *SequenceSet) Freeze() *SequenceSet {
	out := s.Clone()
	out.frozen = true
	return out
}

// Frozen reports whether s was produced by Freeze.
func (s *SequenceSet) Frozen() bool {
	return s.frozen
}

// IsEmpty reports whether the set contains no elements.
func (s *SequenceSet) IsEmpty() bool {
	return len(s.intervals) == 0
}

// Atom returns the canonical or original-input sequence-set string. It
// fails with a DataFormatError if the set is empty, since "" is not a
// valid sequence-set on the wire (spec §6).
func (s *SequenceSet) Atom() (string, error) {
	if len(s.intervals) == 0 {
		return "", badFormat("", "sequence-set is empty")
	}
	if s.rawOK {
		return s.raw, nil
	}
	return s.render(), nil
}

// String returns the same text as Atom, but returns "" instead of an
// error for an empty set.
func (s *SequenceSet) String() string {
	str, err := s.Atom()
	if err != nil {
		return ""
	}
	return str
}

func formatElement(v uint64) string {
	if v == Star {
		return "*"
	}
	return strconv.FormatUint(v, 10)
}

func (s *SequenceSet) render() string {
	var sb strings.Builder
	for i, iv := range s.intervals {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(formatElement(iv.lo))
		if iv.hi != iv.lo {
			sb.WriteByte(':')
			sb.WriteString(formatElement(iv.hi))
		}
	}
	return sb.String()
}

// Normalize returns a new set equal to s whose string form is the sorted,
// deduplicated, coalesced canonical text. Since this package's internal
// intervals are always kept disjoint and coalesced (invariant 2), this
// only ever needs to drop a stashed raw string; it never reorders
// intervals that weren't already ordered.
func (s *SequenceSet) Normalize() *SequenceSet {
	out := s.Clone()
	out.frozen = false
	out.rawOK = false
	return out
}

// Equal reports whether s and other contain exactly the same elements,
// regardless of how each was constructed or what its Atom() text is.
func (s *SequenceSet) Equal(other *SequenceSet) bool {
	if other == nil {
		return len(s.intervals) == 0
	}
	if len(s.intervals) != len(other.intervals) {
		return false
	}
	for i := range s.intervals {
		if s.intervals[i] != other.intervals[i] {
			return false
		}
	}
	return true
}

// Contains reports whether the single value n (a real number in
// 1..MaxNumber, or Star for "*") belongs to the set.
func (s *SequenceSet) Contains(n uint64) bool {
	_, ok := s.search(n)
	return ok
}

// search returns the index of the interval containing q, and whether one
// was found. If none contains q, the index is where q would be inserted.
func (s *SequenceSet) search(q uint64) (int, bool) {
	i := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].hi >= q
	})
	if i == len(s.intervals) {
		return i, false
	}
	return i, s.intervals[i].lo <= q
}

// Min returns the smallest element of the set. ok is false for an empty
// set.
func (s *SequenceSet) Min() (v uint64, ok bool) {
	if len(s.intervals) == 0 {
		return 0, false
	}
	return s.intervals[0].lo, true
}

// Max returns the largest element of the set. ok is false for an empty
// set.
func (s *SequenceSet) Max() (v uint64, ok bool) {
	if len(s.intervals) == 0 {
		return 0, false
	}
	return s.intervals[len(s.intervals)-1].hi, true
}

// MinMax returns both Min and Max in one call.
func (s *SequenceSet) MinMax() (min, max uint64, ok bool) {
	min, ok = s.Min()
	if !ok {
		return 0, 0, false
	}
	max, _ = s.Max()
	return min, max, true
}

// MinString and MaxString render Min/Max as text, substituting
// placeholder (conventionally "*") for the Star sentinel. ok is false for
// an empty set.
func (s *SequenceSet) MinString(placeholder string) (string, bool) {
	v, ok := s.Min()
	if !ok {
		return "", false
	}
	return elementString(v, placeholder), true
}

func (s *SequenceSet) MaxString(placeholder string) (string, bool) {
	v, ok := s.Max()
	if !ok {
		return "", false
	}
	return elementString(v, placeholder), true
}

func elementString(v uint64, placeholder string) string {
	if v == Star {
		return placeholder
	}
	return strconv.FormatUint(v, 10)
}

// Count returns the total number of elements in the set. An interval
// ending at Star contributes (hi - lo + 1) elements, which already
// counts both the real numbers up to MaxNumber and the "*" sentinel
// itself without any extra bookkeeping, because Star is exactly
// MaxNumber+1 in this representation.
func (s *SequenceSet) Count() uint64 {
	var n uint64
	for _, iv := range s.intervals {
		n += iv.hi - iv.lo + 1
	}
	return n
}

// Ranges returns the set's intervals in ascending order.
func (s *SequenceSet) Ranges() []Range {
	out := make([]Range, len(s.intervals))
	for i, iv := range s.intervals {
		out[i] = Range{Lo: iv.lo, Hi: iv.hi}
	}
	return out
}

// Elements returns every individual value in the set, in ascending
// order, with Star standing for "*". Unlike Numbers it does not reject a
// set containing Star: a set such as "1:*" yields all 2^32 values.
func (s *SequenceSet) Elements() []uint64 {
	var out []uint64
	s.EachElement(func(v uint64) bool {
		out = append(out, v)
		return true
	})
	return out
}

// EachElement calls fn for every element in ascending order, stopping
// early if fn returns false.
func (s *SequenceSet) EachElement(fn func(uint64) bool) {
	for _, iv := range s.intervals {
		for v := iv.lo; ; v++ {
			if !fn(v) {
				return
			}
			if v == iv.hi {
				break
			}
		}
	}
}

// EachRange calls fn for every interval in ascending order, stopping
// early if fn returns false.
func (s *SequenceSet) EachRange(fn func(lo, hi uint64) bool) {
	for _, iv := range s.intervals {
		if !fn(iv.lo, iv.hi) {
			return
		}
	}
}

// Numbers returns every sequence number or UID in the set as a uint32
// slice. It fails if the set contains Star, since such a set has no
// finite numeric enumeration without knowing the mailbox's actual
// maximum.
func (s *SequenceSet) Numbers() ([]uint32, error) {
	if len(s.intervals) > 0 && s.intervals[len(s.intervals)-1].hi == Star {
		return nil, badFormat(s.String(), "set contains \"*\": range too large to enumerate")
	}
	nums := make([]uint32, 0, s.Count())
	s.EachElement(func(v uint64) bool {
		nums = append(nums, uint32(v))
		return true
	})
	return nums, nil
}

// ToSet returns the set's elements as a Go map, for O(1) membership
// checks. Like Numbers, this requires a Star-free set.
func (s *SequenceSet) ToSet() (map[uint32]struct{}, error) {
	nums, err := s.Numbers()
	if err != nil {
		return nil, err
	}
	out := make(map[uint32]struct{}, len(nums))
	for _, n := range nums {
		out[n] = struct{}{}
	}
	return out, nil
}
