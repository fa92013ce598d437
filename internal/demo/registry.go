package demo

import (
	"context"
	"primobs/pkg/domain"
	"primobs/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MemoryRegistry records assignments in memory. It implements both Registry
// and LegacyRegistry.
type MemoryRegistry struct {
	assignments []domain.PackAssignment
}

var (
	_ Registry       = (*MemoryRegistry)(nil)
	_ LegacyRegistry = (*MemoryRegistry)(nil)
)

// NewMemoryRegistry returns an empty registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{}
}

// Assign records that packID was assigned to tenantID.
func (r *MemoryRegistry) Assign(ctx context.Context,
	tenantID domain.TenantID,
	packID domain.PackID) domain.PackAssignment {
	return r.record(ctx, domain.PackAssignment{TenantID: tenantID, PackID: packID})
}

// AssignRaw records that packID was assigned to tenantID. The registry has no
// way to tell whether the caller passed the identifiers in the right order.
func (r *MemoryRegistry) AssignRaw(ctx context.Context, tenantID, packID uuid.UUID) domain.PackAssignment {
	return r.record(ctx, domain.PackAssignment{
		TenantID: domain.TenantID(tenantID),
		PackID:   domain.PackID(packID),
	})
}

// Assignments returns a copy of every assignment recorded so far.
func (r *MemoryRegistry) Assignments() []domain.PackAssignment {
	return append([]domain.PackAssignment(nil), r.assignments...)
}

func (r *MemoryRegistry) record(ctx context.Context, a domain.PackAssignment) domain.PackAssignment {
	r.assignments = append(r.assignments, a)
	logger.Debug(ctx, "pack assigned",
		zap.Stringer("recordedTenantId", a.TenantID),
		zap.Stringer("recordedPackId", a.PackID))

	return a
}
