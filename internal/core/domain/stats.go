package domain

import "time"

// IndexStats summarises the current contents of the index. Counters are
// adjusted transactionally with every index mutation, so the total always
// equals the number of stored items and the sum of the per-type counters.
type IndexStats struct {
	// TotalItems is the number of items currently indexed.
	TotalItems int

	// Per-type counters for the content classes surfaced in status
	// screens. Types without a dedicated counter land in OtherCount.
	DocumentCount int
	ImageCount    int
	AudioCount    int
	VideoCount    int
	OtherCount    int

	// LastUpdated is when the index contents last changed.
	LastUpdated time.Time
}

// Add records one item of the given type entering the index.
func (s *IndexStats) Add(contentType ContentType, now time.Time) {
	s.TotalItems++
	s.bucket(contentType, 1)
	s.LastUpdated = now
}

// Subtract records one item of the given type leaving the index.
func (s *IndexStats) Subtract(contentType ContentType, now time.Time) {
	s.TotalItems--
	s.bucket(contentType, -1)
	s.LastUpdated = now
}

// Reset clears all counters, used when the whole index is cleared.
func (s *IndexStats) Reset(now time.Time) {
	*s = IndexStats{LastUpdated: now}
}

// TypeTotal sums the per-type counters. It always equals TotalItems; the
// accessor exists so health checks can assert that.
func (s IndexStats) TypeTotal() int {
	return s.DocumentCount + s.ImageCount + s.AudioCount + s.VideoCount + s.OtherCount
}

func (s *IndexStats) bucket(contentType ContentType, delta int) {
	switch contentType {
	case ContentTypeDocument:
		s.DocumentCount += delta
	case ContentTypeImage:
		s.ImageCount += delta
	case ContentTypeAudio:
		s.AudioCount += delta
	case ContentTypeVideo:
		s.VideoCount += delta
	default:
		s.OtherCount += delta
	}
}
