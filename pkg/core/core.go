package core

import "context"

// Fetcher retrieves one market snapshot from a pairs endpoint.
type Fetcher interface {
	Fetch(ctx context.Context) (MarketResponse, error)
}

// Notifier delivers a single analyzed record to an external channel.
type Notifier interface {
	Notify(record Record) error
}
