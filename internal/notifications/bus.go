package notifications

import (
	"fmt"
	"sync"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/role"
)

const (
	// DefaultCapacity bounds each buffer; the oldest event is dropped
	// when a buffer is full.
	DefaultCapacity = 1000

	// DefaultRetention is how long events stay queryable.
	DefaultRetention = 60 * time.Minute

	// defaultSinceWindow is the lookback applied when a query carries
	// no since-cursor.
	defaultSinceWindow = 5 * time.Minute
)

// Bus is the in-process notification hub. Broadcast events land in a
// per-role buffer, personal events in a per-user buffer; both are bounded
// and trimmed by retention. All methods are safe for concurrent use.
type Bus struct {
	mu        sync.Mutex
	perRole   map[role.Role][]*Event
	perUser   map[kernel.UUID][]*Event
	counter   uint64
	capacity  int
	retention time.Duration
	now       func() time.Time
}

// NewBus creates a Bus with the given buffer capacity and retention.
// Non-positive arguments fall back to the defaults.
func NewBus(capacity int, retention time.Duration) *Bus {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Bus{
		perRole:   make(map[role.Role][]*Event),
		perUser:   make(map[kernel.UUID][]*Event),
		capacity:  capacity,
		retention: retention,
		now:       time.Now,
	}
}

// WithClock replaces the bus clock. Intended for tests.
func (b *Bus) WithClock(now func() time.Time) *Bus {
	b.now = now
	return b
}

// Publish stores the event, assigning its id and creation time.
// The id is monotonic for the lifetime of the bus, so consumers can use
// it as an ordering hint alongside the timestamp.
func (b *Bus) Publish(event Event) Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.counter++
	event.CreatedAt = b.now().UTC()
	event.ID = fmt.Sprintf("evt_%d_%d", b.counter, event.CreatedAt.Unix())

	stored := &event
	if event.TargetUserID != nil {
		userID := *event.TargetUserID
		b.perUser[userID] = appendBounded(b.perUser[userID], stored, b.capacity)
	} else {
		b.perRole[event.TargetRole] = appendBounded(b.perRole[event.TargetRole], stored, b.capacity)
	}
	return event
}

// Query returns events visible to the given role and user, newest first.
// Visible means: broadcasts to the role, plus the user's own personal
// events for that role. Other users' personal events are never returned.
// The since cursor is inclusive; a zero since defaults to a short lookback
// window. A zero limit means no limit. Types, when non-empty, restricts
// the event kinds returned.
func (b *Bus) Query(r role.Role, userID kernel.UUID, since time.Time, types []EventType, limit int) []Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	since = b.effectiveSince(since)
	matched := b.collect(r, userID, since, types)

	// Buffers are append-ordered; walk from the tail for newest-first.
	out := make([]Event, 0, len(matched))
	for i := len(matched) - 1; i >= 0; i-- {
		out = append(out, *matched[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// CountSince returns how many events Query would see for the role and
// user past the given cursor, without materializing them.
func (b *Bus) CountSince(r role.Role, userID kernel.UUID, since time.Time) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.collect(r, userID, b.effectiveSince(since), nil))
}

// PurgeExpired drops events older than the retention window and removes
// user buffers that end up empty. Returns the number of dropped events.
func (b *Bus) PurgeExpired() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	cutoff := b.now().UTC().Add(-b.retention)
	dropped := 0
	for r, events := range b.perRole {
		kept := keepSince(events, cutoff)
		dropped += len(events) - len(kept)
		b.perRole[r] = kept
	}
	for userID, events := range b.perUser {
		kept := keepSince(events, cutoff)
		dropped += len(events) - len(kept)
		if len(kept) == 0 {
			delete(b.perUser, userID)
		} else {
			b.perUser[userID] = kept
		}
	}
	return dropped
}

// collect merges the role's broadcast buffer with the user's personal
// buffer in publish order. Callers hold the lock.
func (b *Bus) collect(r role.Role, userID kernel.UUID, since time.Time, types []EventType) []*Event {
	var matched []*Event
	appendMatching := func(events []*Event) {
		for _, e := range events {
			// The cursor is inclusive: an event created exactly at since
			// is visible, so pollers can cursor on their last-seen
			// timestamp without losing events.
			if e.TargetRole != r || e.CreatedAt.Before(since) {
				continue
			}
			if len(types) > 0 && !containsType(types, e.Type) {
				continue
			}
			matched = append(matched, e)
		}
	}

	appendMatching(b.perRole[r])
	if userID.Validate() == nil {
		appendMatching(b.perUser[userID])
	}

	// Re-establish global publish order across the two buffers.
	sortByID(matched)
	return matched
}

func (b *Bus) effectiveSince(since time.Time) time.Time {
	if since.IsZero() {
		return b.now().UTC().Add(-defaultSinceWindow)
	}
	return since
}

func appendBounded(events []*Event, e *Event, capacity int) []*Event {
	events = append(events, e)
	if len(events) > capacity {
		events = events[len(events)-capacity:]
	}
	return events
}

// keepSince retains events created at or after the cutoff.
func keepSince(events []*Event, cutoff time.Time) []*Event {
	kept := events[:0:0]
	for _, e := range events {
		if !e.CreatedAt.Before(cutoff) {
			kept = append(kept, e)
		}
	}
	return kept
}

func containsType(types []EventType, t EventType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

// sortByID orders events by their monotonic publish counter.
// Insertion sort: merged slices are tiny and nearly sorted already.
func sortByID(events []*Event) {
	for i := 1; i < len(events); i++ {
		for j := i; j > 0 && eventCounter(events[j]) < eventCounter(events[j-1]); j-- {
			events[j], events[j-1] = events[j-1], events[j]
		}
	}
}

func eventCounter(e *Event) uint64 {
	var counter uint64
	var unix int64
	// IDs are generated by Publish; a parse failure leaves zero, which
	// only affects ordering of a malformed event.
	_, _ = fmt.Sscanf(e.ID, "evt_%d_%d", &counter, &unix)
	return counter
}
