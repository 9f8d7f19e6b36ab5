package repo

import (
	"context"

	"github.com/koolabhinay07/Lollyzz/internal/domain"
)

type AvailabilityAuditRepository interface {
	Create(ctx context.Context, audit *domain.AvailabilityAudit) error
	GetByItemID(ctx context.Context, itemID string, limit int) ([]domain.AvailabilityAudit, error)
}
