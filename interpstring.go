package motion

import (
	"regexp"
	"strconv"
	"strings"
)

// reNumber matches an embedded numeric token: signed float with optional
// exponent. Both endpoint strings are scanned with the same grammar so the
// tokens pair up positionally.
var reNumber = regexp.MustCompile(`[-+]?(?:[0-9]+\.?[0-9]*|\.?[0-9]+)(?:[eE][-+]?[0-9]+)?`)

// stringPart is one segment of a spliced string: either fixed text or a
// numeric interpolator whose output is formatted in place.
type stringPart struct {
	text string
	fn   func(t float64) float64 // nil for literal segments
}

// InterpolateString interpolates the numeric tokens embedded in two strings.
// Tokens are paired left to right; literal runs between them are taken from
// b and preserved verbatim, and a pair whose token text is byte-identical is
// folded into the surrounding literal. Any trailing text in b past its last
// token is appended unchanged. With no differing tokens the result is
// constant b; with a single differing token the splicing machinery is
// skipped entirely.
func InterpolateString(a, b string) func(t float64) string {
	am := reNumber.FindAllStringIndex(a, -1)
	bm := reNumber.FindAllStringIndex(b, -1)

	n := len(am)
	if len(bm) < n {
		n = len(bm)
	}

	var parts []stringPart
	appendLiteral := func(s string) {
		if s == "" {
			return
		}
		if len(parts) > 0 && parts[len(parts)-1].fn == nil {
			parts[len(parts)-1].text += s
			return
		}
		parts = append(parts, stringPart{text: s})
	}

	bi := 0
	for i := 0; i < n; i++ {
		at := a[am[i][0]:am[i][1]]
		bt := b[bm[i][0]:bm[i][1]]

		appendLiteral(b[bi:bm[i][0]])
		bi = bm[i][1]

		if at == bt {
			// Identical token text on both sides: constant, fold it in.
			appendLiteral(bt)
			continue
		}
		av, _ := strconv.ParseFloat(at, 64)
		bv, _ := strconv.ParseFloat(bt, 64)
		parts = append(parts, stringPart{fn: InterpolateNumber(av, bv)})
	}
	appendLiteral(b[bi:])

	var numeric int
	for _, p := range parts {
		if p.fn != nil {
			numeric++
		}
	}

	switch {
	case numeric == 0:
		return func(t float64) string { return b }
	case numeric == 1:
		// Coalescing leaves at most one literal on each side of the token.
		var prefix, suffix string
		var fn func(t float64) float64
		for _, p := range parts {
			switch {
			case p.fn != nil:
				fn = p.fn
			case fn == nil:
				prefix = p.text
			default:
				suffix = p.text
			}
		}
		return func(t float64) string { return prefix + formatNumber(fn(t)) + suffix }
	default:
		return func(t float64) string {
			var sb strings.Builder
			for _, p := range parts {
				if p.fn != nil {
					sb.WriteString(formatNumber(p.fn(t)))
				} else {
					sb.WriteString(p.text)
				}
			}
			return sb.String()
		}
	}
}

// formatNumber renders an interpolated value with the shortest round-trip
// representation ("5.5", not "5.500000").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
