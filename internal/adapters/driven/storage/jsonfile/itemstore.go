package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/portico-apps/searchkit/internal/core/domain"
	"github.com/portico-apps/searchkit/internal/core/ports/driven"
)

// Ensure ItemStore implements the interface.
var _ driven.ItemStore = (*ItemStore)(nil)

// ItemStore is a file-backed implementation of driven.ItemStore. The
// whole index is loaded when the store opens and the file is rewritten
// after every mutation. Items are held in a slice so List preserves
// insertion order, with replacements keeping their original position,
// matching the in-memory store exactly.
type ItemStore struct {
	mu       sync.RWMutex
	filePath string
	items    []domain.SearchableItem
}

// NewItemStore opens a JSON-backed item store.
// If dataDir is empty, defaults to ~/.searchkit/index.json.
func NewItemStore(dataDir string) (*ItemStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dataDir = filepath.Join(home, ".searchkit")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, err
	}

	s := &ItemStore{
		filePath: filepath.Join(dataDir, "index.json"),
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Save stores or updates an item keyed by its ID.
func (s *ItemStore) Save(_ context.Context, item domain.SearchableItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := item.Clone()
	for n := range s.items {
		if s.items[n].ID == stored.ID {
			s.items[n] = stored
			return s.save()
		}
	}
	s.items = append(s.items, stored)
	return s.save()
}

// Get retrieves an item by ID.
func (s *ItemStore) Get(_ context.Context, id string) (*domain.SearchableItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for n := range s.items {
		if s.items[n].ID == id {
			item := s.items[n].Clone()
			return &item, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete removes an item by ID.
func (s *ItemStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for n := range s.items {
		if s.items[n].ID == id {
			s.items = append(s.items[:n], s.items[n+1:]...)
			return s.save()
		}
	}
	return domain.ErrNotFound
}

// DeleteByDomain removes every item in a logical grouping.
func (s *ItemStore) DeleteByDomain(_ context.Context, domainName string) ([]domain.SearchableItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := s.deleteWhere(func(item domain.SearchableItem) bool {
		return item.Domain == domainName
	})
	if len(removed) == 0 {
		return nil, nil
	}
	return removed, s.save()
}

// DeleteExpired removes every item expired at the given instant.
func (s *ItemStore) DeleteExpired(_ context.Context, now time.Time) ([]domain.SearchableItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := s.deleteWhere(func(item domain.SearchableItem) bool {
		return item.IsExpired(now)
	})
	if len(removed) == 0 {
		return nil, nil
	}
	return removed, s.save()
}

// List returns all items in insertion order.
func (s *ItemStore) List(_ context.Context) ([]domain.SearchableItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.SearchableItem, len(s.items))
	for n := range s.items {
		items[n] = s.items[n].Clone()
	}
	return items, nil
}

// Count returns the number of stored items.
func (s *ItemStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}

// Clear removes all items.
func (s *ItemStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return s.save()
}

// Path returns the index file path.
func (s *ItemStore) Path() string {
	return s.filePath
}

// deleteWhere removes every item matching the predicate and returns
// copies of the removed items. Callers must hold the write lock.
func (s *ItemStore) deleteWhere(match func(domain.SearchableItem) bool) []domain.SearchableItem {
	var removed []domain.SearchableItem
	kept := make([]domain.SearchableItem, 0, len(s.items))
	for _, item := range s.items {
		if match(item) {
			removed = append(removed, item.Clone())
		} else {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return removed
}

// load reads the index file into memory.
func (s *ItemStore) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No index file yet - that's fine, start empty
			s.items = nil
			return nil
		}
		return err
	}

	var doc indexFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", s.filePath, err)
	}

	items := make([]domain.SearchableItem, 0, len(doc.Items))
	for _, r := range doc.Items {
		items = append(items, r.toDomain())
	}
	s.items = items
	return nil
}

// save writes the index file (caller must hold lock).
func (s *ItemStore) save() error {
	doc := indexFile{Items: make([]record, len(s.items))}
	for n := range s.items {
		doc.Items[n] = toRecord(s.items[n])
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// indexFile is the on-disk document shape.
type indexFile struct {
	Items []record `json:"items"`
}

// record is the JSON representation of one stored item. It mirrors
// domain.SearchableItem field for field so nothing is re-validated or
// re-truncated on the way back in; what was stored is what comes out.
type record struct {
	ID             string            `json:"id"`
	Domain         string            `json:"domain,omitempty"`
	Title          string            `json:"title,omitempty"`
	Description    string            `json:"description,omitempty"`
	Content        string            `json:"content,omitempty"`
	Keywords       []string          `json:"keywords,omitempty"`
	ContentType    string            `json:"content_type,omitempty"`
	Attributes     []attributeRecord `json:"attributes,omitempty"`
	Thumbnail      *thumbnailRecord  `json:"thumbnail,omitempty"`
	URL            string            `json:"url,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	LastModified   time.Time         `json:"last_modified"`
	ExpirationDate *time.Time        `json:"expiration_date,omitempty"`
	Rating         float64           `json:"rating,omitempty"`
	Featured       bool              `json:"featured,omitempty"`
}

type attributeRecord struct {
	Key        string `json:"key"`
	Value      string `json:"value"`
	Searchable bool   `json:"searchable"`
	Weight     int    `json:"weight"`
}

type thumbnailRecord struct {
	URL      string `json:"url,omitempty"`
	Data     []byte `json:"data,omitempty"`
	MIMEType string `json:"mime_type,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

func toRecord(item domain.SearchableItem) record {
	r := record{
		ID:           item.ID,
		Domain:       item.Domain,
		Title:        item.Title,
		Description:  item.Description,
		Content:      item.Content,
		Keywords:     item.Keywords,
		ContentType:  item.ContentType.String(),
		URL:          item.URL,
		CreatedAt:    item.CreatedAt,
		LastModified: item.LastModified,
		Rating:       item.Rating,
		Featured:     item.Featured,
	}
	if !item.ExpirationDate.IsZero() {
		expiration := item.ExpirationDate
		r.ExpirationDate = &expiration
	}
	if len(item.Attributes) > 0 {
		r.Attributes = make([]attributeRecord, len(item.Attributes))
		for n, attribute := range item.Attributes {
			r.Attributes[n] = attributeRecord{
				Key:        attribute.Key,
				Value:      attribute.Value,
				Searchable: attribute.Searchable,
				Weight:     attribute.Weight,
			}
		}
	}
	if item.Thumbnail.HasData() {
		r.Thumbnail = &thumbnailRecord{
			URL:      item.Thumbnail.URL,
			Data:     item.Thumbnail.Data,
			MIMEType: item.Thumbnail.MIMEType,
			Width:    item.Thumbnail.Width,
			Height:   item.Thumbnail.Height,
		}
	}
	return r
}

func (r record) toDomain() domain.SearchableItem {
	item := domain.SearchableItem{
		ID:           r.ID,
		Domain:       r.Domain,
		Title:        r.Title,
		Description:  r.Description,
		Content:      r.Content,
		Keywords:     r.Keywords,
		ContentType:  domain.ContentType(r.ContentType),
		URL:          r.URL,
		CreatedAt:    r.CreatedAt,
		LastModified: r.LastModified,
		Rating:       r.Rating,
		Featured:     r.Featured,
	}
	if r.ExpirationDate != nil {
		item.ExpirationDate = *r.ExpirationDate
	}
	if len(r.Attributes) > 0 {
		item.Attributes = make([]domain.SearchAttribute, len(r.Attributes))
		for n, attribute := range r.Attributes {
			item.Attributes[n] = domain.SearchAttribute{
				Key:        attribute.Key,
				Value:      attribute.Value,
				Searchable: attribute.Searchable,
				Weight:     attribute.Weight,
			}
		}
	}
	if r.Thumbnail != nil {
		item.Thumbnail = domain.Thumbnail{
			URL:      r.Thumbnail.URL,
			Data:     r.Thumbnail.Data,
			MIMEType: r.Thumbnail.MIMEType,
			Width:    r.Thumbnail.Width,
			Height:   r.Thumbnail.Height,
		}
	}
	return item
}
