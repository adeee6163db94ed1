package valueobjects

import "fmt"

// CheckStatus is the closed enumeration for checklist item judgments.
type CheckStatus string

const (
	CheckPending CheckStatus = "pending"
	CheckPass    CheckStatus = "pass"
	CheckFail    CheckStatus = "fail"
	CheckNA      CheckStatus = "na"
)

var validCheckStatuses = map[CheckStatus]bool{
	CheckPending: true,
	CheckPass:    true,
	CheckFail:    true,
	CheckNA:      true,
}

func (cs CheckStatus) String() string {
	return string(cs)
}

func (cs CheckStatus) IsValid() bool {
	return validCheckStatuses[cs]
}

func (cs CheckStatus) IsPass() bool {
	return cs == CheckPass
}

// NewCheckStatus parses a checklist status. An empty string defaults
// permissively to pending; anything else must match the enumeration exactly.
func NewCheckStatus(s string) (CheckStatus, error) {
	if s == "" {
		return CheckPending, nil
	}
	cs := CheckStatus(s)
	if !cs.IsValid() {
		return "", fmt.Errorf("invalid check status: %s", s)
	}
	return cs, nil
}
