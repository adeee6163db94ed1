package jobfeed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/n8dizzle/debrief-tools/internal/shared/config"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

// Client talks to the external job-data source's API. It caches the OAuth
// client-credentials token and refreshes it one minute before expiry.
type Client struct {
	baseURL      string
	authURL      string
	tenantID     string
	clientID     string
	clientSecret string
	appKey       string

	httpClient *http.Client
	logger     logger.Interface

	tokenMu        sync.Mutex
	accessToken    string
	tokenExpiresAt time.Time
}

func NewClient(cfg *config.JobFeedConfig, logger logger.Interface) *Client {
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		authURL:      cfg.AuthURL,
		tenantID:     cfg.TenantID,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		appKey:       cfg.AppKey,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		logger:       logger,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (c *Client) getAccessToken(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.accessToken != "" && time.Now().UTC().Before(c.tokenExpiresAt.Add(-time.Minute)) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to request access token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	expiresIn := token.ExpiresIn
	if expiresIn == 0 {
		expiresIn = 900
	}

	c.accessToken = token.AccessToken
	c.tokenExpiresAt = time.Now().UTC().Add(time.Duration(expiresIn) * time.Second)

	return c.accessToken, nil
}

func (c *Client) request(ctx context.Context, method, endpoint string, body, out any) error {
	token, err := c.getAccessToken(ctx)
	if err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("ST-App-Key", c.appKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("job feed returned %d: %s", resp.StatusCode, string(data))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Job is the subset of the external job record the ingestion path consumes.
type Job struct {
	ID             int64      `json:"id"`
	JobNumber      string     `json:"jobNumber"`
	JobStatus      string     `json:"jobStatus"`
	BusinessUnitID int64      `json:"businessUnitId"`
	JobTypeID      int64      `json:"jobTypeId"`
	CustomerID     int64      `json:"customerId"`
	LocationID     int64      `json:"locationId"`
	CompletedOn    *time.Time `json:"completedOn"`
}

// GetJob fetches one job record.
func (c *Client) GetJob(ctx context.Context, jobID int64) (*Job, error) {
	var job Job
	endpoint := fmt.Sprintf("jpm/v2/tenant/%s/jobs/%d", c.tenantID, jobID)
	if err := c.request(ctx, http.MethodGet, endpoint, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
