package itemstr

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/osse101/PluginKit_Go/internal/utils"
)

var (
	positiveIntPattern = regexp.MustCompile(`^[1-9][0-9]*$`)
	digitsPattern      = regexp.MustCompile(`^[0-9]*$`)
)

// Quantity is a literal count or an inclusive range. Min is 0 when the token
// was malformed; Max is never below Min.
type Quantity struct {
	Min int `json:"min"`
	Max int `json:"max"`
	// Present is true when the descriptor carried a quantity token
	Present bool `json:"present"`
	// Literal is true when the token was a single positive integer
	Literal bool `json:"literal"`
}

// ParseQuantity reads "a" or "a-b". Parts that are not positive 32-bit
// integers count as 0, and a missing or smaller upper bound collapses to the
// lower one.
func ParseQuantity(token string) Quantity {
	lower, upper := token, token
	if idx := strings.Index(token, RangeSeparator); idx >= 0 {
		lower, upper = token[:idx], token[idx+1:]
	}

	q := Quantity{Present: true}
	q.Min = positiveInt(lower)
	q.Literal = lower == token && q.Min > 0
	q.Max = q.Min
	if v := positiveInt(upper); v > q.Min {
		q.Max = v
	}
	return q
}

func positiveInt(s string) int {
	if !positiveIntPattern.MatchString(s) {
		return 0
	}
	v, err := parseNumber(s)
	if err != nil {
		return 0
	}
	return v
}

// parseNumber reads a decimal token within the NumberBits range
func parseNumber(s string) (int, error) {
	v, err := strconv.ParseInt(s, 10, NumberBits)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// Fixed reports whether every draw returns the same value
func (q Quantity) Fixed() bool { return q.Min == q.Max }

// Minimum is the smallest value a draw can produce, floored at 1
func (q Quantity) Minimum() int { return utils.MaxInt(q.Min, 1) }

// Roll draws uniformly from [Min, Max]
func (q Quantity) Roll(r *rand.Rand) int {
	return utils.RandomIntFrom(r, q.Min, q.Max)
}

func (q Quantity) String() string {
	if q.Fixed() {
		return strconv.Itoa(q.Min)
	}
	return strconv.Itoa(q.Min) + RangeSeparator + strconv.Itoa(q.Max)
}
