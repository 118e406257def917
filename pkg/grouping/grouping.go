package grouping

import (
	"regexp"
	"strconv"
	"strings"
)

// DecimalPoint separates the integer and fractional portions of a value.
const DecimalPoint = "."

// Group inserts sep between every group of three digits, counted from the
// right, in the trailing run of digits of the integer portion. The fractional
// portion after the first decimal point is reattached untouched. Grouping an
// already grouped value returns it unchanged.
func Group(value, sep string) string {
	if value == "" || sep == "" {
		return value
	}
	intPart, frac, hasFrac := strings.Cut(value, DecimalPoint)

	runes := []rune(intPart)
	start := len(runes)
	for start > 0 && isDigit(runes[start-1]) {
		start--
	}
	run := runes[start:]

	var b strings.Builder
	b.Grow(len(value) + len(run)/3*len(sep))
	b.WriteString(string(runes[:start]))
	for i, r := range run {
		if i > 0 && (len(run)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteString(DecimalPoint)
		b.WriteString(frac)
	}
	return b.String()
}

// Ungroup removes every occurrence of sep.
func Ungroup(value, sep string) string {
	if sep == "" {
		return value
	}
	return strings.ReplaceAll(value, sep, "")
}

var numericPrefix = regexp.MustCompile(`^\s*[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`)

// Fixed parses the leading numeric portion of value and renders it with
// exactly places fractional digits. The second result is false when value
// does not start with a number.
func Fixed(value string, places int) (string, bool) {
	match := numericPrefix.FindString(value)
	if match == "" {
		return "", false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(match), 64)
	if err != nil {
		return "", false
	}
	if places < 0 {
		places = 0
	}
	return strconv.FormatFloat(f, 'f', places, 64), true
}

// CountSignificant reports how many runes of value before offset are not part
// of a separator.
func CountSignificant(value, sep string, offset int) int {
	runes := []rune(value)
	if offset > len(runes) {
		offset = len(runes)
	}
	sepRunes := []rune(sep)
	count := 0
	for i := 0; i < offset; {
		if len(sepRunes) > 0 && hasRunesAt(runes, sepRunes, i) && i+len(sepRunes) <= offset {
			i += len(sepRunes)
			continue
		}
		count++
		i++
	}
	return count
}

// OffsetOf is the inverse of CountSignificant: it returns the rune offset in
// value just after the n-th rune that is not part of a separator.
func OffsetOf(value, sep string, n int) int {
	runes := []rune(value)
	sepRunes := []rune(sep)
	if n <= 0 {
		return 0
	}
	count := 0
	for i := 0; i < len(runes); {
		if len(sepRunes) > 0 && hasRunesAt(runes, sepRunes, i) {
			i += len(sepRunes)
			continue
		}
		count++
		i++
		if count == n {
			return i
		}
	}
	return len(runes)
}

func hasRunesAt(haystack, needle []rune, at int) bool {
	if at+len(needle) > len(haystack) {
		return false
	}
	for i, r := range needle {
		if haystack[at+i] != r {
			return false
		}
	}
	return true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
