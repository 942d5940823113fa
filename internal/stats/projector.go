package stats

import (
	"context"
	"log"

	"github.com/crowsnest/user-directory/internal/events"
	directoryredis "github.com/crowsnest/user-directory/internal/redis"
	goredis "github.com/redis/go-redis/v9"
)

const userCountKey = "stats:user_count"

// Projector consumes user events off the Redis stream and maintains a
// directory-wide user count gauge for the health endpoint.
type Projector struct {
	count *directoryredis.Counter
}

func NewProjector(client *goredis.Client) *Projector {
	return &Projector{count: directoryredis.NewCounter(client, userCountKey)}
}

// HandleUserEvent is the Redis stream subscriber handler.
func (p *Projector) HandleUserEvent(ctx context.Context, event events.Event) error {
	switch event.Type {
	case events.UserCreated:
		p.count.Incr(ctx)
	case events.UserDeleted:
		p.count.Decr(ctx)
	default:
		log.Printf("Ignoring user event: %s", event.Type)
	}
	return nil
}

// UserCount reports the current gauge value. Zero when unset.
func (p *Projector) UserCount(ctx context.Context) int64 {
	return p.count.Get(ctx)
}
