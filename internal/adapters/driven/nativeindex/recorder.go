package nativeindex

import (
	"context"
	"sync"

	"github.com/portico-apps/searchkit/internal/core/domain"
	"github.com/portico-apps/searchkit/internal/core/ports/driven"
)

// Ensure Recorder implements the NativeIndex interface.
var _ driven.NativeIndex = (*Recorder)(nil)

// Recorder captures mirror traffic in memory. It stands in for a platform
// service in tests and lets diagnostics show what the engine would have
// sent to the operating system.
type Recorder struct {
	mu        sync.Mutex
	platform  domain.Platform
	available bool
	err       error
	added     []string
	removed   []string
	domains   []string
	clears    int
}

// NewRecorder creates a recorder posing as the given platform.
func NewRecorder(platform domain.Platform) *Recorder {
	return &Recorder{
		platform:  platform,
		available: true,
	}
}

// SetAvailable toggles whether the recorder reports itself reachable.
func (r *Recorder) SetAvailable(available bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.available = available
}

// SetError makes every mutating call fail with err until reset with nil.
func (r *Recorder) SetError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Platform returns the platform the recorder poses as.
func (r *Recorder) Platform() domain.Platform {
	return r.platform
}

// Available reports the toggled availability.
func (r *Recorder) Available() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.available
}

// Add records the item's ID.
func (r *Recorder) Add(_ context.Context, item domain.SearchableItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.added = append(r.added, item.ID)
	return nil
}

// Remove records the removed ID.
func (r *Recorder) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.removed = append(r.removed, id)
	return nil
}

// RemoveDomain records the purged domain.
func (r *Recorder) RemoveDomain(_ context.Context, domainName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.domains = append(r.domains, domainName)
	return nil
}

// Clear records a full wipe.
func (r *Recorder) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.clears++
	return nil
}

// Added returns the IDs mirrored so far, oldest first.
func (r *Recorder) Added() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.added))
	copy(out, r.added)
	return out
}

// Removed returns the IDs removed so far, oldest first.
func (r *Recorder) Removed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.removed))
	copy(out, r.removed)
	return out
}

// RemovedDomains returns the domains purged so far, oldest first.
func (r *Recorder) RemovedDomains() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.domains))
	copy(out, r.domains)
	return out
}

// Clears returns how many full wipes were requested.
func (r *Recorder) Clears() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clears
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.added = nil
	r.removed = nil
	r.domains = nil
	r.clears = 0
}
