package jobfeed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/n8dizzle/debrief-tools/internal/application/debrief/usecases"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

// Task type ids in the external task-management system, keyed by follow-up
// type. Unknown types fall back to the generic follow-up type id.
var taskTypeIDs = map[string]int64{
	"tech_coaching":     2001,
	"manager_review":    2002,
	"customer_callback": 2003,
	"field_task":        2004,
	"billing":           2005,
	"quality":           2006,
	"other":             2000,
}

const defaultTaskTypeID = 2000

// TaskCreator creates follow-up tasks through the job feed's task-management
// API. Satisfies the checklist engine's task-creation port.
type TaskCreator struct {
	client *Client
	logger logger.Interface
}

func NewTaskCreator(client *Client, logger logger.Interface) *TaskCreator {
	return &TaskCreator{
		client: client,
		logger: logger,
	}
}

type createTaskRequest struct {
	JobID      int64  `json:"jobId"`
	TaskTypeID int64  `json:"taskTypeId"`
	Name       string `json:"name"`
	Body       string `json:"body"`
	DueDate    string `json:"dueDate"`
}

type createTaskResponse struct {
	ID int64 `json:"id"`
}

func (t *TaskCreator) CreateFollowUpTask(ctx context.Context, task usecases.FollowUpTask) error {
	typeID, ok := taskTypeIDs[task.FollowUpType]
	if !ok {
		typeID = defaultTaskTypeID
	}

	body := task.Description
	if body == "" {
		body = "Follow-up required from debrief"
	}
	if len(body) > 2000 {
		body = body[:2000]
	}

	req := createTaskRequest{
		JobID:      task.JobID,
		TaskTypeID: typeID,
		Name:       fmt.Sprintf("Debrief follow-up: %s", task.FollowUpType),
		Body:       body,
		// Due tomorrow by default.
		DueDate: time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339),
	}

	var resp createTaskResponse
	endpoint := fmt.Sprintf("taskmanagement/v2/tenant/%s/tasks", t.client.tenantID)
	if err := t.client.request(ctx, http.MethodPost, endpoint, req, &resp); err != nil {
		return fmt.Errorf("failed to create follow-up task: %w", err)
	}

	t.logger.Infow("follow-up task created",
		"job_id", task.JobID,
		"task_id", resp.ID,
		"followup_type", task.FollowUpType,
	)

	return nil
}
