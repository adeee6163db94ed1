package valueobjects

import "fmt"

// FollowUpType categorizes the downstream action a flagged debrief requires.
type FollowUpType string

const (
	FollowUpTechCoaching     FollowUpType = "tech_coaching"
	FollowUpManagerReview    FollowUpType = "manager_review"
	FollowUpCustomerCallback FollowUpType = "customer_callback"
	FollowUpFieldTask        FollowUpType = "field_task"
	FollowUpBilling          FollowUpType = "billing"
	FollowUpQuality          FollowUpType = "quality"
	FollowUpOther            FollowUpType = "other"
)

var validFollowUpTypes = map[FollowUpType]bool{
	FollowUpTechCoaching:     true,
	FollowUpManagerReview:    true,
	FollowUpCustomerCallback: true,
	FollowUpFieldTask:        true,
	FollowUpBilling:          true,
	FollowUpQuality:          true,
	FollowUpOther:            true,
}

func (ft FollowUpType) String() string {
	return string(ft)
}

func (ft FollowUpType) IsValid() bool {
	return validFollowUpTypes[ft]
}

func NewFollowUpType(s string) (FollowUpType, error) {
	ft := FollowUpType(s)
	if !ft.IsValid() {
		return "", fmt.Errorf("invalid follow-up type: %s", s)
	}
	return ft, nil
}
