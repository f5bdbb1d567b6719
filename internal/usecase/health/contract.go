package health

import "context"

// DBPinger checks storage backend availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}
