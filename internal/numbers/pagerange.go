package numbers

import (
	"strconv"

	"github.com/funvibe/gocsl/internal/params"
)

// pageRangeDelta computes the number of trailing digits of `to` that
// must be kept so the collapsed form still uniquely reconstructs the
// full value, per §4.7: scanning from the least-significant digit,
// any position where the two numbers' digits differ (or `from` has
// run out of digits) forces at least that many trailing digits of
// `to` to be kept.
func pageRangeDelta(fromDigits, toDigits []byte) int {
	delta := 0
	for i := 0; i < len(toDigits); i++ {
		fromIdx := len(fromDigits) - 1 - i
		toIdx := len(toDigits) - 1 - i
		differs := fromIdx < 0 || fromDigits[fromIdx] != toDigits[toIdx]
		if differs {
			need := i + 1
			if need > delta {
				delta = need
			}
		}
	}
	return delta
}

func resolveChicagoPolicy(min uint32, toDigits []byte, delta int) params.PageRangeFormat {
	switch {
	case min < 100:
		return params.PageRangeExpanded
	case min >= 1000 && len(toDigits)-delta <= 1:
		return params.PageRangeExpanded
	case min%100 == 0:
		return params.PageRangeExpanded
	case min%100 < 10:
		return params.PageRangeMinimal
	default:
		return params.PageRangeMinimalTwo
	}
}

// CollapsePageRange collapses a page range min-max into "min<delimiter>kept"
// according to policy, falling back to Expanded when min > max.
func CollapsePageRange(min, max uint32, policy params.PageRangeFormat, delimiter string) string {
	if min > max {
		policy = params.PageRangeExpanded
	}

	fromDigits := []byte(strconv.FormatUint(uint64(min), 10))
	toDigits := []byte(strconv.FormatUint(uint64(max), 10))
	delta := pageRangeDelta(fromDigits, toDigits)

	effective := policy
	if policy == params.PageRangeChicago {
		effective = resolveChicagoPolicy(min, toDigits, delta)
	}

	var keep int
	switch effective {
	case params.PageRangeExpanded:
		keep = len(toDigits)
	case params.PageRangeMinimal:
		keep = delta
	case params.PageRangeMinimalTwo:
		keep = delta
		if keep < 2 {
			keep = 2
		}
	default:
		keep = len(toDigits)
	}
	if keep < 1 {
		keep = 1
	}
	if keep > len(toDigits) {
		keep = len(toDigits)
	}

	kept := string(toDigits[len(toDigits)-keep:])
	return string(fromDigits) + delimiter + kept
}
