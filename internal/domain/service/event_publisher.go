package service

import "context"

// OfferCampaignEvent is published when a commerce dispatches an offer to the
// opted-in users of its own city. The actual mail delivery is a downstream
// consumer's job.
type OfferCampaignEvent struct {
	CommerceCIF string   `json:"cif"`
	City        string   `json:"ciudad"`
	Subject     string   `json:"asunto"`
	Message     string   `json:"mensaje"`
	Emails      []string `json:"correos"`
}

// EventPublisher defines the interface for publishing offer campaign events.
type EventPublisher interface {
	// PublishOfferCampaign publishes a campaign event.
	PublishOfferCampaign(ctx context.Context, event *OfferCampaignEvent) error

	// Close releases the publisher's resources.
	Close() error
}
