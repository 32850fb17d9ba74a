package seqset

import "sort"

// spliceIntervals returns a new interval slice equal to ivs with the
// half-open range [from, to) replaced by replacement. Always allocates a
// fresh backing array, so callers never need to worry about aliasing
// between the old and new slices.
func spliceIntervals(ivs []interval, from, to int, replacement ...interval) []interval {
	out := make([]interval, 0, from+len(replacement)+(len(ivs)-to))
	out = append(out, ivs[:from]...)
	out = append(out, replacement...)
	out = append(out, ivs[to:]...)
	return out
}

// addInterval implements the union algorithm of spec §4.5: merge [a, b]
// into the set's interval list in place, coalescing with any existing
// interval it overlaps or touches. Grounded on
// internal/imapnum.Set.insert's binary-search-then-merge shape, adapted
// to the Star-as-largest-sentinel representation so no branch is needed
// for wildcard endpoints.
func (s *SequenceSet) addInterval(a, b uint64) {
	if a > b {
		a, b = b, a
	}
	ivs := s.intervals

	lowerIdx := sort.Search(len(ivs), func(i int) bool { return ivs[i].hi >= a-1 })
	if lowerIdx == len(ivs) {
		s.intervals = spliceIntervals(ivs, lowerIdx, lowerIdx, interval{a, b})
		return
	}
	if b+1 < ivs[lowerIdx].lo {
		s.intervals = spliceIntervals(ivs, lowerIdx, lowerIdx, interval{a, b})
		return
	}

	lo := ivs[lowerIdx].lo
	if a < lo {
		lo = a
	}
	if ivs[lowerIdx].hi >= b {
		// The existing interval already reaches past b; only lo can move.
		ivs[lowerIdx].lo = lo
		return
	}

	upperIdx := sort.Search(len(ivs), func(i int) bool { return ivs[i].hi >= b+1 })
	if upperIdx == len(ivs) {
		s.intervals = spliceIntervals(ivs, lowerIdx, len(ivs), interval{lo, b})
		return
	}
	if b+1 < ivs[upperIdx].lo {
		s.intervals = spliceIntervals(ivs, lowerIdx, upperIdx, interval{lo, b})
		return
	}
	s.intervals = spliceIntervals(ivs, lowerIdx, upperIdx+1, interval{lo, ivs[upperIdx].hi})
}

// subtractInterval implements the difference algorithm of spec §4.5:
// remove every value in [a, b] from the set's interval list in place.
func (s *SequenceSet) subtractInterval(a, b uint64) {
	if a > b {
		a, b = b, a
	}
	ivs := s.intervals

	lowerIdx := sort.Search(len(ivs), func(i int) bool { return ivs[i].hi >= a })
	if lowerIdx == len(ivs) || b < ivs[lowerIdx].lo {
		return
	}
	lower := ivs[lowerIdx]

	if b < lower.hi {
		// [a, b] falls strictly inside lower: split it into at most two
		// pieces, the untouched head and the untouched tail.
		var replacement []interval
		if lower.lo < a {
			replacement = append(replacement, interval{lower.lo, a - 1})
		}
		replacement = append(replacement, interval{b + 1, lower.hi})
		s.intervals = spliceIntervals(ivs, lowerIdx, lowerIdx+1, replacement...)
		return
	}

	var head []interval
	if lower.lo < a {
		head = append(head, interval{lower.lo, a - 1})
	}

	upperIdx := sort.Search(len(ivs), func(i int) bool { return ivs[i].hi >= b+1 })
	if upperIdx == len(ivs) {
		s.intervals = spliceIntervals(ivs, lowerIdx, len(ivs), head...)
		return
	}

	var tail []interval
	if ivs[upperIdx].lo <= b {
		tail = append(tail, interval{b + 1, ivs[upperIdx].hi})
		upperIdx++
	}
	replacement := append(head, tail...)
	s.intervals = spliceIntervals(ivs, lowerIdx, upperIdx, replacement...)
}

func orEmpty(s *SequenceSet) *SequenceSet {
	if s == nil {
		return New()
	}
	return s
}

// Add inserts nums (each 1..Star, Star meaning "*") into the set. It
// fails with a DataFormatError, leaving the set unmodified, if any value
// is out of range.
func (s *SequenceSet) Add(nums ...uint64) error {
	s.checkMutable()
	for _, n := range nums {
		if n == 0 || n > Star {
			return badFormat(formatElement(n), "value must be in 1..2^32")
		}
	}
	for _, n := range nums {
		s.addInterval(n, n)
	}
	s.invalidate()
	return nil
}

// AddRange inserts the closed range [lo, hi] (endpoints reordered if
// given in reverse) into the set.
func (s *SequenceSet) AddRange(lo, hi uint64) error {
	s.checkMutable()
	if lo == 0 || lo > Star || hi == 0 || hi > Star {
		return badFormat(formatElement(lo)+":"+formatElement(hi), "range endpoints must be in 1..2^32")
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	s.addInterval(lo, hi)
	s.invalidate()
	return nil
}

// TryAdd inserts n unless it is already covered by the set. added
// reports whether the value was actually inserted.
func (s *SequenceSet) TryAdd(n uint64) (added bool, err error) {
	if n == 0 || n > Star {
		return false, badFormat(formatElement(n), "value must be in 1..2^32")
	}
	if s.Contains(n) {
		return false, nil
	}
	if err := s.Add(n); err != nil {
		return false, err
	}
	return true, nil
}

// Merge unions every set in others into s in place and returns s.
func (s *SequenceSet) Merge(others ...*SequenceSet) *SequenceSet {
	s.checkMutable()
	for _, other := range others {
		other = orEmpty(other)
		for _, iv := range other.intervals {
			s.addInterval(iv.lo, iv.hi)
		}
	}
	s.invalidate()
	return s
}

// Union returns a new set containing every element of s or other.
func (s *SequenceSet) Union(other *SequenceSet) *SequenceSet {
	return s.Clone().Merge(other)
}

// Subtract removes every element of other from s in place and returns s.
func (s *SequenceSet) Subtract(other *SequenceSet) *SequenceSet {
	s.checkMutable()
	other = orEmpty(other)
	for _, iv := range other.intervals {
		s.subtractInterval(iv.lo, iv.hi)
	}
	s.invalidate()
	return s
}

// Difference returns a new set containing every element of s that is not
// in other.
func (s *SequenceSet) Difference(other *SequenceSet) *SequenceSet {
	return s.Clone().Subtract(other)
}

// Intersect returns a new set containing only the elements present in
// both s and other, implemented as s - ~other per spec §4.5.
func (s *SequenceSet) Intersect(other *SequenceSet) *SequenceSet {
	return s.Difference(orEmpty(other).Complement())
}

// Xor returns a new set containing the elements present in exactly one
// of s or other.
func (s *SequenceSet) Xor(other *SequenceSet) *SequenceSet {
	other = orEmpty(other)
	return s.Union(other).Subtract(s.Intersect(other))
}

// Complement returns the set-theoretic complement of s within 1..Star: a
// new set containing every value s does not.
//
// This is a direct implementation of spec §4.5's gap-complement (the
// endpoints between consecutive intervals, plus the leading gap before
// the first interval and the trailing gap after the last), rather than
// the flatten/shift/re-pair procedure spec §4.5 describes for a
// non-sentinel representation; both produce the same result, but this
// form needs no special-casing of "0" or "> Star" markers because Star
// already behaves as an ordinary upper bound in this representation.
func (s *SequenceSet) Complement() *SequenceSet {
	out := New()
	prev := uint64(0)
	for _, iv := range s.intervals {
		if iv.lo > prev+1 {
			out.intervals = append(out.intervals, interval{prev + 1, iv.lo - 1})
		}
		prev = iv.hi
	}
	if prev < Star {
		out.intervals = append(out.intervals, interval{prev + 1, Star})
	}
	return out
}

// ComplementInPlace replaces s's contents with its own complement.
func (s *SequenceSet) ComplementInPlace() *SequenceSet {
	s.checkMutable()
	c := s.Complement()
	s.intervals = c.intervals
	s.invalidate()
	return s
}

// Limit returns a frozen set with Star replaced by max, any interval
// entirely above max dropped, and any interval straddling max truncated
// to it. ok is false if the result would be empty.
func (s *SequenceSet) Limit(max uint32) (limited *SequenceSet, ok bool) {
	m := uint64(max)
	out := New()
	for _, iv := range s.intervals {
		if iv.lo > m {
			continue
		}
		hi := iv.hi
		if hi > m {
			hi = m
		}
		out.addInterval(iv.lo, hi)
	}
	if m > 0 && s.Contains(Star) {
		out.addInterval(m, m)
	}
	if len(out.intervals) == 0 {
		return nil, false
	}
	return out.Freeze(), true
}

// Cover reports whether every element of other is contained in s. A nil
// or empty other is trivially covered.
func (s *SequenceSet) Cover(other *SequenceSet) bool {
	other = orEmpty(other)
	for _, iv := range other.intervals {
		if !s.coverInterval(iv.lo, iv.hi) {
			return false
		}
	}
	return true
}

func (s *SequenceSet) coverInterval(a, b uint64) bool {
	idx, ok := s.search(a)
	if !ok {
		return false
	}
	return s.intervals[idx].hi >= b
}

// CoverRange reports whether every value in the closed range [lo, hi] is
// contained in s.
func (s *SequenceSet) CoverRange(lo, hi uint64) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	return s.coverInterval(lo, hi)
}

// CoverString parses str as a sequence-set and reports whether s covers
// every element it names.
func (s *SequenceSet) CoverString(str string) (bool, error) {
	other, err := FromString(str)
	if err != nil {
		return false, err
	}
	return s.Cover(other), nil
}

// CoverAny is the tolerant analogue of the source's "===" operator: it
// accepts a scalar (uint64, uint32, int), a Range, a *SequenceSet, or a
// sequence-set string, and reports whether s covers it. ok is false, with
// matched meaningless, for any other type or an unparsable string —
// mirroring the source's behavior of swallowing type/format errors
// instead of raising (spec §9 Open Questions).
func (s *SequenceSet) CoverAny(x any) (matched, ok bool) {
	switch v := x.(type) {
	case uint64:
		return s.Contains(v), true
	case uint32:
		return s.Contains(uint64(v)), true
	case int:
		if v < 0 {
			return false, false
		}
		return s.Contains(uint64(v)), true
	case Range:
		return s.CoverRange(v.Lo, v.Hi), true
	case *SequenceSet:
		return s.Cover(v), true
	case string:
		matched, err := s.CoverString(v)
		if err != nil {
			return false, false
		}
		return matched, true
	default:
		return false, false
	}
}
