package notify

import "errors"

var (
	// ErrMissingRecipient indicates a report without a destination address.
	ErrMissingRecipient = errors.New("missing recipient address")

	// ErrUnknownArchetype indicates a report for an archetype outside the catalog.
	ErrUnknownArchetype = errors.New("unknown archetype")

	// ErrDeliveryFailed indicates the delivery API rejected the message.
	ErrDeliveryFailed = errors.New("report delivery failed")
)
