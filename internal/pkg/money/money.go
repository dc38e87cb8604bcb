package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Amount is a currency value in minor units (cents).
type Amount int64

// Bps is a rate in basis points, 10000 bps = 100%.
type Bps int64

const (
	minorPerMajor = 100
	bpsBase       = 10000
)

func FromMajor(units int64) Amount {
	return Amount(units * minorPerMajor)
}

// ParseAmount parses a decimal string such as "450", "450.5" or "450.00".
// More than two fractional digits is rejected rather than rounded.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if !isDigits(whole) || (hasFrac && (!isDigits(frac) || len(frac) > 2)) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	var f int64
	if hasFrac {
		if len(frac) == 1 {
			frac += "0"
		}
		f, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
	}
	if w > (math.MaxInt64-f)/minorPerMajor {
		return 0, fmt.Errorf("amount %q overflows", s)
	}
	v := w*minorPerMajor + f
	if neg {
		v = -v
	}
	return Amount(v), nil
}

// MulInt multiplies by a whole quantity. No rounding is involved.
func (a Amount) MulInt(n int) Amount {
	return a * Amount(n)
}

// ApplyBps returns a*rate rounded half-up to the nearest minor unit.
func (a Amount) ApplyBps(rate Bps) Amount {
	return Amount(divRoundHalfUp(int64(a)*int64(rate), bpsBase))
}

// Percent returns a*pct/100 rounded half-up, pct being a whole percentage.
func (a Amount) Percent(pct int) Amount {
	return Amount(divRoundHalfUp(int64(a)*int64(pct), 100))
}

func (a Amount) Min(b Amount) Amount {
	if a < b {
		return a
	}
	return b
}

func (a Amount) IsNegative() bool { return a < 0 }

func (a Amount) String() string {
	v := int64(a)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/minorPerMajor, v%minorPerMajor)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted decimal strings.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var raw json.Number
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = json.Number(s)
	} else {
		raw = json.Number(string(b))
	}
	v, err := ParseAmount(raw.String())
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// PercentToBps converts a percentage with at most two decimals (1.25 -> 125 bps).
func PercentToBps(pct float64) (Bps, error) {
	scaled := pct * 100
	rounded := math.Round(scaled)
	if math.Abs(scaled-rounded) > 1e-6 {
		return 0, fmt.Errorf("percent %v has more than two decimals", pct)
	}
	return Bps(rounded), nil
}

// Percent renders the rate as a percentage, 125 bps -> 1.25.
func (b Bps) Percent() float64 {
	return float64(b) / 100
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func divRoundHalfUp(n, d int64) int64 {
	if n >= 0 {
		return (n + d/2) / d
	}
	return -((-n + d/2) / d)
}
