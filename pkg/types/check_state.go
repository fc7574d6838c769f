package types

// CheckState models the tri-state selection checkbox attached to each
// catalog row. Only Checked counts as selected for loading; a partially
// checked row is not loaded.
type CheckState int

const (
	Unchecked CheckState = iota
	Checked
	PartiallyChecked
)

func (s CheckState) String() string {
	switch s {
	case Checked:
		return "checked"
	case PartiallyChecked:
		return "partial"
	default:
		return "unchecked"
	}
}
