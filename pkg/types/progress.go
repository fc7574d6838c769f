package types

import "fmt"

// Tier is the three-level color classification of scan progress.
type Tier int

const (
	TierLow  Tier = iota // below 50%
	TierMid              // 50% up to but excluding 80%
	TierHigh             // 80% and above
)

func (t Tier) String() string {
	switch t {
	case TierMid:
		return "yellow"
	case TierHigh:
		return "green"
	default:
		return "red"
	}
}

// Progress reports the state of a scan after one file has been
// processed. Index is 1-based.
type Progress struct {
	Index   int
	Total   int
	Percent float64
	Tier    Tier
}

// NewProgress builds the progress report for the index-th of total
// files.
func NewProgress(index, total int) Progress {
	percent := 0.0
	if total > 0 {
		percent = float64(index) / float64(total) * 100
	}
	return Progress{
		Index:   index,
		Total:   total,
		Percent: percent,
		Tier:    TierFor(percent),
	}
}

// TierFor classifies a completion percentage. The boundaries are
// inclusive on the upper tier: exactly 50% is TierMid and exactly 80%
// is TierHigh.
func TierFor(percent float64) Tier {
	switch {
	case percent < 50:
		return TierLow
	case percent < 80:
		return TierMid
	default:
		return TierHigh
	}
}

// String renders the progress in the form shown by progress indicators.
func (p Progress) String() string {
	return fmt.Sprintf("Files processed: %d/%d (%.2f%%)", p.Index, p.Total, p.Percent)
}
