// Package provider - client.go submits scrape jobs and requests delivery of
// their results into object storage.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/karanpatel/jobscout/internal/platform"
)

// DefaultBaseURL is the provider's datasets API root.
const DefaultBaseURL = "https://api.brightdata.com/datasets/v3"

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// maxErrorBodyBytes caps how much of an error response body is kept for
// error messages.
const maxErrorBodyBytes = 2048

// Client talks to the provider's trigger and delivery endpoints. It is
// constructed once with its token and HTTP client rather than read from
// ambient globals, and is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Options configures the provider client.
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// New creates a provider client with the given API token.
func New(token string, logger *slog.Logger, opts *Options) *Client {
	baseURL := DefaultBaseURL
	timeout := DefaultTimeout
	if opts != nil {
		if opts.BaseURL != "" {
			baseURL = opts.BaseURL
		}
		if opts.Timeout > 0 {
			timeout = opts.Timeout
		}
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// triggerResponse is the provider's answer to a trigger request.
type triggerResponse struct {
	SnapshotID string `json:"snapshot_id"`
}

// Trigger submits a scrape request for the platform and returns the remote
// job identifier. The payload is sent as a single-element array, the
// provider's batch wire shape. Failures are never retried here; retries
// belong to the delivery poller once a job exists.
func (c *Client) Trigger(ctx context.Context, p platform.Platform, payload platform.Payload) (string, error) {
	url := fmt.Sprintf(
		"%s/trigger?dataset_id=%s&include_errors=true&type=discover_new&discover_by=keyword",
		c.baseURL, p.DatasetID(),
	)

	body, err := json.Marshal([]platform.Payload{payload})
	if err != nil {
		return "", fmt.Errorf("failed to marshal trigger payload: %w", err)
	}

	resp, err := c.post(ctx, "trigger", url, body)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &RemoteRejectionError{
			Op:         "trigger",
			StatusCode: resp.StatusCode,
			Body:       readErrorBody(resp.Body),
		}
	}

	var result triggerResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode trigger response: %w", err)
	}
	if result.SnapshotID == "" {
		return "", &RemoteRejectionError{Op: "trigger", StatusCode: resp.StatusCode, Body: "response missing snapshot_id"}
	}

	c.logger.Info("triggered remote scrape job",
		"platform", p.Display(), "remote_job_id", result.SnapshotID)
	return result.SnapshotID, nil
}

// DeliveryDestination describes where the provider should materialize a
// completed job's output.
type DeliveryDestination struct {
	Bucket           string
	AccessKey        string
	SecretKey        string
	Directory        string
	FilenameTemplate string
}

// deliveryRequest is the wire shape of a delivery request.
type deliveryRequest struct {
	Deliver  deliveryTarget `json:"deliver"`
	Compress bool           `json:"compress"`
}

type deliveryTarget struct {
	Type        string              `json:"type"`
	Filename    deliveryFilename    `json:"filename"`
	Bucket      string              `json:"bucket"`
	Credentials deliveryCredentials `json:"credentials"`
	Directory   string              `json:"directory"`
}

type deliveryFilename struct {
	Template  string `json:"template"`
	Extension string `json:"extension"`
}

type deliveryCredentials struct {
	AccessKey string `json:"aws-access-key"`
	SecretKey string `json:"aws-secret-key"`
}

// Deliver asks the provider to materialize a completed job's output into
// object storage. Returns nil once the provider accepts the delivery, a
// *NotReadyError while the job is still processing (HTTP 404), a
// *RemoteRejectionError for any other response, or a *TransportError when
// the request never completed.
func (c *Client) Deliver(ctx context.Context, remoteJobID string, dest DeliveryDestination) error {
	url := fmt.Sprintf("%s/deliver/%s", c.baseURL, remoteJobID)

	body, err := json.Marshal(deliveryRequest{
		Deliver: deliveryTarget{
			Type: "s3",
			Filename: deliveryFilename{
				Template:  dest.FilenameTemplate,
				Extension: "json",
			},
			Bucket: dest.Bucket,
			Credentials: deliveryCredentials{
				AccessKey: dest.AccessKey,
				SecretKey: dest.SecretKey,
			},
			Directory: dest.Directory,
		},
		Compress: false,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal delivery request: %w", err)
	}

	resp, err := c.post(ctx, "deliver", url, body)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return &NotReadyError{RemoteJobID: remoteJobID}
	default:
		return &RemoteRejectionError{
			Op:         "deliver",
			StatusCode: resp.StatusCode,
			Body:       readErrorBody(resp.Body),
		}
	}
}

func (c *Client) post(ctx context.Context, op, url string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Op: op, Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Cause: err}
	}
	return resp, nil
}

func readErrorBody(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, maxErrorBodyBytes))
	if err != nil {
		return ""
	}
	return string(bytes.TrimSpace(b))
}
