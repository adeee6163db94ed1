package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/n8dizzle/debrief-tools/internal/application/debrief/usecases"
	"github.com/n8dizzle/debrief-tools/internal/shared/biztime"
	"github.com/n8dizzle/debrief-tools/internal/shared/config"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

var followUpTypeLabels = map[string]string{
	"tech_coaching":     "Tech Coaching",
	"manager_review":    "Manager Review",
	"customer_callback": "Customer Callback",
	"field_task":        "Field Task",
	"billing":           "Billing Issue",
	"quality":           "Quality Issue",
	"other":             "Other",
}

// SlackNotifier posts follow-up alerts to an incoming-webhook channel.
// Webhook responses carry no thread timestamp, so ThreadTS stays empty.
type SlackNotifier struct {
	webhookURL string
	httpClient *http.Client
	logger     logger.Interface
}

func NewSlackNotifier(cfg *config.SlackConfig, logger logger.Interface) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: cfg.WebhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

func (s *SlackNotifier) SendFollowUpNotification(ctx context.Context, n usecases.FollowUpNotification) (*usecases.NotificationResult, error) {
	if s.webhookURL == "" {
		return nil, fmt.Errorf("slack webhook not configured")
	}

	typeLabel := followUpTypeLabels[n.FollowUpType]
	if typeLabel == "" {
		typeLabel = n.FollowUpType
	}

	description := n.Description
	if description == "" {
		description = "No details provided"
	}

	blocks := []map[string]any{
		{
			"type": "header",
			"text": map[string]any{
				"type":  "plain_text",
				"text":  "Debrief Follow-up Required",
				"emoji": true,
			},
		},
		{
			"type": "section",
			"fields": []map[string]any{
				{"type": "mrkdwn", "text": fmt.Sprintf("*Job:*\n#%s", n.JobNumber)},
				{"type": "mrkdwn", "text": fmt.Sprintf("*Customer:*\n%s", n.CustomerName)},
				{"type": "mrkdwn", "text": fmt.Sprintf("*Technician:*\n%s", n.TechName)},
				{"type": "mrkdwn", "text": fmt.Sprintf("*Type:*\n%s", typeLabel)},
			},
		},
		{
			"type": "section",
			"text": map[string]any{
				"type": "mrkdwn",
				"text": fmt.Sprintf("*Description:*\n%s", description),
			},
		},
		{
			"type": "context",
			"elements": []map[string]any{
				{
					"type": "mrkdwn",
					"text": fmt.Sprintf("Flagged by *%s* at %s", n.DispatcherName,
						biztime.FormatInBizTimezone(biztime.NowUTC(), "3:04 PM")),
				},
			},
		},
	}

	if n.AssignedTo != "" {
		blocks = append(blocks, map[string]any{
			"type": "section",
			"text": map[string]any{
				"type": "mrkdwn",
				"text": fmt.Sprintf("*Assigned to:* %s", n.AssignedTo),
			},
		})
	}

	if n.DebriefURL != "" {
		blocks = append(blocks, map[string]any{
			"type": "actions",
			"elements": []map[string]any{
				{
					"type": "button",
					"text": map[string]any{
						"type":  "plain_text",
						"text":  "View Debrief",
						"emoji": true,
					},
					"url":       n.DebriefURL,
					"action_id": "view_debrief",
				},
			},
		})
	}

	blocks = append(blocks, map[string]any{"type": "divider"})

	payload := map[string]any{
		"blocks": blocks,
		// Fallback text for clients that do not render blocks.
		"text": fmt.Sprintf("Follow-up required for Job #%s - %s", n.JobNumber, typeLabel),
	}

	if err := s.post(ctx, payload); err != nil {
		return nil, err
	}

	s.logger.Infow("follow-up notification sent",
		"job_id", n.JobID,
		"followup_type", n.FollowUpType,
	)

	return &usecases.NotificationResult{}, nil
}

// SendSimpleNotification posts a plain text message.
func (s *SlackNotifier) SendSimpleNotification(ctx context.Context, message string) error {
	if s.webhookURL == "" {
		return fmt.Errorf("slack webhook not configured")
	}
	return s.post(ctx, map[string]any{"text": message})
}

// SendDailySummary posts the end-of-day debrief completion summary.
func (s *SlackNotifier) SendDailySummary(ctx context.Context, totalJobs, debriefed, pending, followUpsCreated int) error {
	if s.webhookURL == "" {
		return fmt.Errorf("slack webhook not configured")
	}

	completionRate := 100.0
	if totalJobs > 0 {
		completionRate = float64(debriefed) / float64(totalJobs) * 100
	}

	payload := map[string]any{
		"blocks": []map[string]any{
			{
				"type": "header",
				"text": map[string]any{
					"type":  "plain_text",
					"text":  "Daily Debrief Summary",
					"emoji": true,
				},
			},
			{
				"type": "section",
				"fields": []map[string]any{
					{"type": "mrkdwn", "text": fmt.Sprintf("*Total Jobs:*\n%d", totalJobs)},
					{"type": "mrkdwn", "text": fmt.Sprintf("*Debriefed:*\n%d (%.0f%%)", debriefed, completionRate)},
					{"type": "mrkdwn", "text": fmt.Sprintf("*Pending:*\n%d", pending)},
					{"type": "mrkdwn", "text": fmt.Sprintf("*Follow-ups:*\n%d", followUpsCreated)},
				},
			},
		},
		"text": fmt.Sprintf("Daily debrief summary: %d/%d completed", debriefed, totalJobs),
	}

	return s.post(ctx, payload)
}

func (s *SlackNotifier) post(ctx context.Context, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post to slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack API error: %d", resp.StatusCode)
	}

	return nil
}
