package usecases

import "context"

// FollowUpNotification is the structured payload handed to the notification
// collaborator when a debrief flags a follow-up.
type FollowUpNotification struct {
	JobID          int64
	JobNumber      string
	CustomerName   string
	TechName       string
	FollowUpType   string
	Description    string
	DispatcherName string
	AssignedTo     string
	DebriefURL     string
}

// NotificationResult carries collaborator metadata back, such as the chat
// thread timestamp used for threading later replies.
type NotificationResult struct {
	ThreadTS string
}

// FollowUpNotifier delivers follow-up alerts. Best-effort: errors never roll
// back the debrief that triggered them.
type FollowUpNotifier interface {
	SendFollowUpNotification(ctx context.Context, n FollowUpNotification) (*NotificationResult, error)
}

// FollowUpTask is the structured payload for the task-creation collaborator.
type FollowUpTask struct {
	JobID        int64
	FollowUpType string
	Description  string
	AssignedTo   string
}

// TaskCreator creates follow-up tasks in the external job system. Best-effort.
type TaskCreator interface {
	CreateFollowUpTask(ctx context.Context, task FollowUpTask) error
}

type SubmitDebriefExecutor interface {
	Execute(ctx context.Context, cmd SubmitDebriefCommand) (*SubmitDebriefResult, error)
}

type GetDebriefExecutor interface {
	Execute(ctx context.Context, query GetDebriefQuery) (*GetDebriefResult, error)
}
