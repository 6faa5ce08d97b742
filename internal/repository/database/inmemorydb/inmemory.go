package inmemorydb

import (
	"context"
	"sync"
	"time"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/entity"
	"github.com/eurofurence/reg-payment-paystack-callback/internal/repository/database/dbrepo"
)

// InMemoryRepository keeps the most recent protocol entries, dropping the oldest
// once maxEntries is reached.
type InMemoryRepository struct {
	mu         sync.RWMutex
	protocol   []*entity.ProtocolEntry
	maxEntries int
	idSequence uint
	Now        func() time.Time
}

func Create(maxEntries int) dbrepo.Repository {
	return &InMemoryRepository{
		maxEntries: maxEntries,
		Now:        time.Now,
	}
}

func (r *InMemoryRepository) Open() error {
	r.Clear()
	return nil
}

func (r *InMemoryRepository) Close() {
	r.Clear()
}

func (r *InMemoryRepository) Migrate() error {
	// nothing to do
	return nil
}

func (r *InMemoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.protocol = make([]*entity.ProtocolEntry, 0)
}

func (r *InMemoryRepository) WriteProtocolEntry(ctx context.Context, e *entity.ProtocolEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.idSequence++
	copied := *e
	copied.ID = r.idSequence
	copied.CreatedAt = r.Now()
	copied.UpdatedAt = copied.CreatedAt

	if r.maxEntries > 0 && len(r.protocol) >= r.maxEntries {
		aulogging.Logger.Ctx(ctx).Debug().Printf("protocol full at %d entries, dropping oldest", r.maxEntries)
		r.protocol = r.protocol[1:]
	}
	r.protocol = append(r.protocol, &copied)
	return nil
}

// ProtocolEntries returns a snapshot, oldest first. Only used in tests.
func (r *InMemoryRepository) ProtocolEntries() []*entity.ProtocolEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.ProtocolEntry, len(r.protocol))
	copy(result, r.protocol)
	return result
}
