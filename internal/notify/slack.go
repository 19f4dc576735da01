package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const webhookTimeout = 10 * time.Second

// SlackWebhook posts fatal-run messages to a Slack incoming webhook.
type SlackWebhook struct {
	client     *resty.Client
	webhookURL string
}

// NewSlackWebhook builds a notifier for the given incoming-webhook URL.
func NewSlackWebhook(webhookURL string) *SlackWebhook {
	return &SlackWebhook{
		client:     resty.New().SetTimeout(webhookTimeout),
		webhookURL: webhookURL,
	}
}

type slackPayload struct {
	Text string `json:"text"`
}

// NotifyFatal posts the message as a simple text payload.
func (s *SlackWebhook) NotifyFatal(ctx context.Context, message string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(slackPayload{Text: message}).
		Post(s.webhookURL)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("slack webhook returned status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
