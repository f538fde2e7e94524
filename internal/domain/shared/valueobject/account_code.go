package valueobject

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var accountCodePattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

// AccountCode is a dot-segmented chart-of-accounts code such as "5.2.1.00".
// Segments are compared numerically, so "1.2" sorts before "1.10".
type AccountCode struct {
	raw      string
	segments []string
}

// ParseAccountCode validates and parses a code
func ParseAccountCode(s string) (AccountCode, error) {
	s = strings.TrimSpace(s)
	if !accountCodePattern.MatchString(s) {
		return AccountCode{}, fmt.Errorf("invalid account code %q: expected numeric dot-separated segments", s)
	}
	return AccountCode{raw: s, segments: strings.Split(s, ".")}, nil
}

// MustParseAccountCode parses a code and panics on error
func MustParseAccountCode(s string) AccountCode {
	c, err := ParseAccountCode(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c AccountCode) String() string { return c.raw }
func (c AccountCode) Depth() int     { return len(c.segments) }
func (c AccountCode) IsZero() bool   { return c.raw == "" }

// Segments returns a copy of the code segments
func (c AccountCode) Segments() []string {
	out := make([]string, len(c.segments))
	copy(out, c.segments)
	return out
}

// Prefix returns the first n segments joined back into a code.
// If the code has fewer than n segments it is returned unchanged.
func (c AccountCode) Prefix(n int) AccountCode {
	if n >= len(c.segments) || n <= 0 {
		return c
	}
	segs := c.segments[:n]
	return AccountCode{raw: strings.Join(segs, "."), segments: append([]string(nil), segs...)}
}

// ProperPrefixes returns every proper dot-prefix, longest first.
// "5.2.1.00" yields "5.2.1", "5.2", "5".
func (c AccountCode) ProperPrefixes() []string {
	out := make([]string, 0, len(c.segments))
	for i := len(c.segments) - 1; i >= 1; i-- {
		out = append(out, strings.Join(c.segments[:i], "."))
	}
	return out
}

// SharesPrefix reports whether both codes have identical first n segments.
// When either code is shorter than n, only the shorter length is compared,
// and it must still be a full segment-wise prefix of the other.
func (c AccountCode) SharesPrefix(other AccountCode, n int) bool {
	if n > len(c.segments) {
		n = len(c.segments)
	}
	if n > len(other.segments) {
		return false
	}
	for i := 0; i < n; i++ {
		if !segmentEqual(c.segments[i], other.segments[i]) {
			return false
		}
	}
	return true
}

// HasPrefix reports whether p is a segment-wise prefix of c (or equal to it)
func (c AccountCode) HasPrefix(p AccountCode) bool {
	if len(p.segments) > len(c.segments) {
		return false
	}
	return c.SharesPrefix(p, len(p.segments))
}

// Compare orders codes segment by segment, numerically. A code sorts before
// any longer code it prefixes.
func (c AccountCode) Compare(other AccountCode) int {
	return CompareAccountCodes(c.raw, other.raw)
}

// CompareAccountCodes compares two raw codes with numeric-aware segment ordering.
// Non-numeric segments fall back to string comparison.
func CompareAccountCodes(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if r := compareSegment(as[i], bs[i]); r != 0 {
			return r
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func compareSegment(a, b string) int {
	ai, aerr := strconv.ParseUint(a, 10, 64)
	bi, berr := strconv.ParseUint(b, 10, 64)
	if aerr == nil && berr == nil {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}

func segmentEqual(a, b string) bool {
	return compareSegment(a, b) == 0
}
