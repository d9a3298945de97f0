package interfaces

import (
	"context"

	"preferred-observer/src/models"
)

// -----------------------------------------------------------------------------
// IEventPublisher pushes change events to external listeners.
// -----------------------------------------------------------------------------

type IEventPublisher interface {
	Publish(ctx context.Context, event models.MEvent) error
}

// -----------------------------------------------------------------------------
// IDataExchanger is the externally facing server (HTTP + push).
// -----------------------------------------------------------------------------

type IDataExchanger interface {
	IEventPublisher

	// -----------------------------------------------------------------------------
	// Start the server, blocks until it stops
	Start() error

	// -----------------------------------------------------------------------------
	// Stop the server gracefully
	Stop(ctx context.Context) error
}
