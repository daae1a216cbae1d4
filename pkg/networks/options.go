package networks

import (
	"fmt"
	"math"
	"strings"
)

// Normalization selects how a raw overlap score is scaled.
type Normalization string

const (
	// NormalizationNone keeps raw overlap counts.
	NormalizationNone Normalization = "none"
	// NormalizationAvg divides by the mean of both actors' statement totals.
	NormalizationAvg Normalization = "avg"
	// NormalizationCosine divides by the product of both actors' L2 norms.
	NormalizationCosine Normalization = "cosine"
)

// DefaultMinConcepts is the default overlap threshold.
const DefaultMinConcepts = 2

// ParseNormalization maps a mode name to a Normalization. The empty string
// means none.
func ParseNormalization(s string) (Normalization, error) {
	switch n := Normalization(strings.ToLower(strings.TrimSpace(s))); n {
	case "", NormalizationNone:
		return NormalizationNone, nil
	case NormalizationAvg, NormalizationCosine:
		return n, nil
	default:
		return "", &UnsupportedNormalizationError{Mode: s}
	}
}

// denominator returns the normalizer for two actors given their 1-cell
// totals. Since cells are 0/1 the L2 norm of a slice is sqrt(total).
func (n Normalization) denominator(totalI, totalJ int) (float64, error) {
	switch n {
	case NormalizationNone, "":
		return 1, nil
	case NormalizationAvg:
		return float64(totalI+totalJ) / 2, nil
	case NormalizationCosine:
		return math.Sqrt(float64(totalI)) * math.Sqrt(float64(totalJ)), nil
	default:
		return 0, &UnsupportedNormalizationError{Mode: string(n)}
	}
}

func (n Normalization) label() string {
	if n == "" {
		return string(NormalizationNone)
	}
	return string(n)
}

// Options configures a congruence or conflict computation.
type Options struct {
	Normalization Normalization `yaml:"normalization" validate:"omitempty,oneof=none avg cosine"`
	// MinConcepts is the smallest raw score written into the matrix.
	MinConcepts int `yaml:"min_concepts" validate:"min=0"`
}

// DefaultOptions returns avg normalization with a threshold of two.
func DefaultOptions() Options {
	return Options{
		Normalization: NormalizationAvg,
		MinConcepts:   DefaultMinConcepts,
	}
}

// validate rejects bad options before any scoring work starts.
func (o Options) validate() error {
	if _, err := o.Normalization.denominator(0, 0); err != nil {
		return err
	}
	if o.MinConcepts < 0 {
		return fmt.Errorf("%w: min concepts %d is negative", ErrInvalidOptions, o.MinConcepts)
	}
	return nil
}
