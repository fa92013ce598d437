package demo

import (
	"context"
	"primobs/pkg/domain"

	"github.com/google/uuid"
)

// Registry assigns packs to tenants using nominal identifier types. A call
// with the arguments swapped does not compile.
//
//go:generate mockgen -package mockdemo -source=interface.go -destination=mock/mockdemo.go *
type Registry interface {
	Assign(ctx context.Context, tenantID domain.TenantID, packID domain.PackID) domain.PackAssignment
}

// LegacyRegistry assigns packs to tenants using raw identifiers. Both
// parameters have the same type, so nothing stops a caller from swapping them.
type LegacyRegistry interface {
	AssignRaw(ctx context.Context, tenantID, packID uuid.UUID) domain.PackAssignment
}
