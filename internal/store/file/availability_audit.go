package file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/koolabhinay07/Lollyzz/internal/domain"
)

// AvailabilityAuditRepository appends audit records to a JSONL file. It backs
// the audit worker when the file storage driver is selected.
type AvailabilityAuditRepository struct {
	mu   sync.Mutex
	path string
}

func NewAvailabilityAuditRepository(dir string) *AvailabilityAuditRepository {
	return &AvailabilityAuditRepository{
		path: filepath.Join(dir, "availability_audit.jsonl"),
	}
}

func (r *AvailabilityAuditRepository) Create(_ context.Context, audit *domain.AvailabilityAudit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if audit.Timestamp.IsZero() {
		audit.Timestamp = time.Now()
	}

	line, err := json.Marshal(audit)
	if err != nil {
		return fmt.Errorf("failed to marshal availability audit: %w", err)
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	return nil
}

func (r *AvailabilityAuditRepository) GetByItemID(_ context.Context, itemID string, limit int) ([]domain.AvailabilityAudit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	defer f.Close()

	var audits []domain.AvailabilityAudit
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var audit domain.AvailabilityAudit
		if err := json.Unmarshal(scanner.Bytes(), &audit); err != nil {
			// skip torn lines rather than failing the whole read
			continue
		}
		if audit.ItemID == itemID {
			audits = append(audits, audit)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	// newest first, capped at limit
	for i, j := 0, len(audits)-1; i < j; i, j = i+1, j-1 {
		audits[i], audits[j] = audits[j], audits[i]
	}
	if limit > 0 && len(audits) > limit {
		audits = audits[:limit]
	}

	return audits, nil
}
