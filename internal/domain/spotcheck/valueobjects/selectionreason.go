package valueobjects

import "fmt"

// SelectionReason records why a debrief was pulled into the audit queue.
type SelectionReason string

const (
	// ReasonFlagged means the debrief required follow-up and was prioritized.
	ReasonFlagged SelectionReason = "flagged"
	// ReasonRandom means the debrief filled a slot by uniform random draw.
	ReasonRandom SelectionReason = "random"
	// ReasonManual means a manager queued the debrief outside the daily batch.
	ReasonManual SelectionReason = "manual"
)

var validSelectionReasons = map[SelectionReason]bool{
	ReasonFlagged: true,
	ReasonRandom:  true,
	ReasonManual:  true,
}

func (sr SelectionReason) String() string {
	return string(sr)
}

func (sr SelectionReason) IsValid() bool {
	return validSelectionReasons[sr]
}

func NewSelectionReason(s string) (SelectionReason, error) {
	sr := SelectionReason(s)
	if !sr.IsValid() {
		return "", fmt.Errorf("invalid selection reason: %s", s)
	}
	return sr, nil
}
