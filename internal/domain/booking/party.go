package booking

import "strconv"

// Overflow bucket bounds: a "13+" style option is only offered for
// mid-sized maximums. It is a picker convenience; the validator still
// rejects parties above the stored maximum.
const (
	overflowMinThreshold = 8
	overflowMaxThreshold = 20
)

type PartySizeOption struct {
	Size     int
	Overflow bool
}

func (o PartySizeOption) Label() string {
	if o.Overflow {
		return strconv.Itoa(o.Size) + "+"
	}
	return strconv.Itoa(o.Size)
}

// PartySizeOptions returns the selectable party sizes [min..max] ascending,
// plus an overflow option of max+1 when the maximum falls in [8, 20).
func PartySizeOptions(rs RuleSet) ([]PartySizeOption, error) {
	if err := rs.Validate(); err != nil {
		return nil, err
	}

	options := make([]PartySizeOption, 0, rs.MaxPartySize-rs.MinPartySize+2)
	for size := rs.MinPartySize; size <= rs.MaxPartySize; size++ {
		options = append(options, PartySizeOption{Size: size})
	}
	if rs.MaxPartySize >= overflowMinThreshold && rs.MaxPartySize < overflowMaxThreshold {
		options = append(options, PartySizeOption{Size: rs.MaxPartySize + 1, Overflow: true})
	}
	return options, nil
}
