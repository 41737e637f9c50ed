package services

import (
	"context"
	"fmt"
	"time"

	"github.com/portico-apps/searchkit/internal/core/domain"
	"github.com/portico-apps/searchkit/internal/core/ports/driving"
	"github.com/portico-apps/searchkit/internal/logger"
)

// Ensure ImportService implements the interface.
var _ driving.Importer = (*ImportService)(nil)

// ImportService performs bulk index operations on behalf of hosts that
// refresh whole content sets at once, such as a bridge receiving an
// array of items from the application layer.
type ImportService struct {
	index driving.Index
}

// NewImportService creates a new import service.
func NewImportService(index driving.Index) *ImportService {
	return &ImportService{index: index}
}

// Import indexes every item in the batch and reports the aggregate
// outcome. Individual failures, including a disabled index, are counted
// rather than aborting the batch; the first failure's message is kept on
// the report.
func (s *ImportService) Import(ctx context.Context, items []domain.SearchableItem) domain.BatchResult {
	start := time.Now()
	logger.Section("Bulk Import")
	logger.Debug("Batch size: %d", len(items))

	result := domain.BatchResult{Status: domain.BatchStatusInProgress}
	for _, item := range items {
		if err := s.index.IndexItem(ctx, item); err != nil {
			result.FailureCount++
			if result.ErrorMessage == "" {
				result.ErrorMessage = fmt.Sprintf("item %s: %v", item.ID, err)
			}
			logger.Warn("Import failed for item %s: %v", item.ID, err)
			continue
		}
		result.SuccessCount++
	}

	result.Duration = time.Since(start)
	if len(items) > 0 && result.SuccessCount == 0 {
		result.Status = domain.BatchStatusFailed
	} else {
		result.Status = domain.BatchStatusCompleted
	}

	logger.Info("Import finished: %d ok, %d failed in %v",
		result.SuccessCount, result.FailureCount, result.Duration)
	return result
}
