package segment

import (
	"fmt"
	"sort"
	"strconv"
)

// Wildcards is the set of values treated as "matches any Index" during
// comparisons and parse validation. Members are either negative
// integers or non-numeric strings; a value like 3 or "5" would be
// indistinguishable from an ordinary index and is rejected.
//
// A Wildcards value is immutable once built. Membership of a segment is
// decided at comparison time, never stored on the segment itself.
type Wildcards struct {
	nums map[int]struct{}
	strs map[string]struct{}
}

// DefaultWildcards returns the default set {-1, "*"}.
func DefaultWildcards() Wildcards {
	w, _ := NewWildcards(-1, "*")
	return w
}

// NewWildcards builds a set from the given values. Each value must be a
// negative integer or a string that is not the canonical decimal form
// of an integer; anything else is an ErrWildcardValue.
func NewWildcards(values ...any) (Wildcards, error) {
	w := Wildcards{
		nums: make(map[int]struct{}, len(values)),
		strs: make(map[string]struct{}, len(values)),
	}
	for _, v := range values {
		switch x := v.(type) {
		case int:
			if x >= 0 {
				return Wildcards{}, fmt.Errorf("%w: %d is a valid index", ErrWildcardValue, x)
			}
			w.nums[x] = struct{}{}
		case string:
			if IsCanonicalInt(x) {
				return Wildcards{}, fmt.Errorf("%w: %q is numeric", ErrWildcardValue, x)
			}
			w.strs[x] = struct{}{}
		default:
			return Wildcards{}, fmt.Errorf("%w: %T", ErrWildcardValue, v)
		}
	}
	return w, nil
}

// NoWildcards returns the empty set.
func NoWildcards() Wildcards {
	return Wildcards{}
}

// Contains reports whether the segment's value is a member of the set.
func (w Wildcards) Contains(s Segment) bool {
	if s.IsIndex() {
		_, ok := w.nums[s.Index()]
		return ok
	}
	_, ok := w.strs[s.Property()]
	return ok
}

func (w Wildcards) ContainsString(s string) bool {
	_, ok := w.strs[s]
	return ok
}

func (w Wildcards) ContainsInt(i int) bool {
	_, ok := w.nums[i]
	return ok
}

func (w Wildcards) Len() int {
	return len(w.nums) + len(w.strs)
}

// Values lists the members, integers first, in stable order.
func (w Wildcards) Values() []any {
	nums := make([]int, 0, len(w.nums))
	for n := range w.nums {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	strs := make([]string, 0, len(w.strs))
	for s := range w.strs {
		strs = append(strs, s)
	}
	sort.Strings(strs)
	res := make([]any, 0, len(nums)+len(strs))
	for _, n := range nums {
		res = append(res, n)
	}
	for _, s := range strs {
		res = append(res, s)
	}
	return res
}

// IsCanonicalInt reports whether s is exactly the canonical decimal
// form of an integer: an optional '-', no leading zeros except "0"
// itself, no fraction or exponent.
func IsCanonicalInt(s string) bool {
	if s == "" {
		return false
	}
	digits := s
	if s[0] == '-' {
		digits = s[1:]
		if digits == "" {
			return false
		}
	}
	if len(digits) > 1 && digits[0] == '0' {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	if s[0] == '-' && digits == "0" {
		// "-0" is not canonical
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}
