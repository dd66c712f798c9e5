package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"cityhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localHTTPPublisher implements EventPublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishOfferCampaign publishes a campaign event by sending HTTP POST to the local endpoint
func (p *localHTTPPublisher) PublishOfferCampaign(ctx context.Context, event *service.OfferCampaignEvent) error {
	// Serialize the event to JSON
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	// Create a Pub/Sub push message structure
	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/offer-campaign-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	pushMsg.Message.Attributes = map[string]string{
		"cif":    event.CommerceCIF,
		"ciudad": event.City,
	}

	// Serialize the push message
	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[LocalPubSub] Publishing offer campaign",
		slog.String("endpoint", p.endpoint),
		slog.String("cif", event.CommerceCIF),
		slog.Int("recipient_count", len(event.Emails)),
	)

	// Send HTTP POST request
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("consumer returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[LocalPubSub] Offer campaign published successfully",
		slog.String("cif", event.CommerceCIF),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
