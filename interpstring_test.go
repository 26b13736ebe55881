package motion

import "testing"

func TestInterpolateStringTokenSplicing(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		k      float64
		expect string
	}{
		{"single token with units", "a: 1px", "a: 10px", 0.5, "a: 5.5px"},
		{"single token endpoints 0", "a: 1px", "a: 10px", 0, "a: 1px"},
		{"single token endpoints 1", "a: 1px", "a: 10px", 1, "a: 10px"},
		{"bare numbers", "1", "10", 0.5, "5.5"},
		{"two tokens", "translate(0,0)", "translate(10,20)", 0.5, "translate(5,10)"},
		{"identical token constant", "1 then 5", "1 then 9", 0.5, "1 then 7"},
		{"no numbers constant b", "hello", "world", 0.3, "world"},
		{"trailing suffix from b", "x 1", "x 3 tail", 0.5, "x 2 tail"},
		{"negative numbers", "-10", "10", 0.5, "0"},
		{"decimals", "0.5em", "1.5em", 0.5, "1em"},
		{"exponent tokens", "1e2", "3e2", 0.5, "200"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpolateString(tt.a, tt.b)(tt.k)
			if got != tt.expect {
				t.Errorf("InterpolateString(%q, %q)(%v) = %q, want %q", tt.a, tt.b, tt.k, got, tt.expect)
			}
		})
	}
}

// When b has more numeric tokens than a, the unpaired tokens and everything
// after them arrive as literal text from b.
func TestInterpolateStringUnpairedTokens(t *testing.T) {
	f := InterpolateString("w 1", "w 3 and 9")
	if got := f(0.5); got != "w 2 and 9" {
		t.Errorf("got %q, want %q", got, "w 2 and 9")
	}
}

func TestInterpolateStringLiteralCoalescing(t *testing.T) {
	// "5" matches on both sides and folds into the surrounding literals, so
	// only one interpolator is built and output is spliced correctly.
	f := InterpolateString("a 5 b 0 c", "a 5 b 10 c")
	if got := f(0.5); got != "a 5 b 5 c" {
		t.Errorf("got %q, want %q", got, "a 5 b 5 c")
	}
}

func TestInterpolateStringExtrapolates(t *testing.T) {
	f := InterpolateString("0px", "10px")
	if got := f(2); got != "20px" {
		t.Errorf("f(2) = %q, want %q", got, "20px")
	}
}
