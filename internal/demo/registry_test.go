package demo_test

import (
	"context"
	"primobs/internal/demo"
	"primobs/pkg/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMemoryRegistry(t *testing.T) {
	ctx := context.Background()
	r := demo.NewMemoryRegistry()
	tenant, pack := domain.MustParseTenantID(tenantA), domain.MustParsePackID(packB)

	got := r.Assign(ctx, tenant, pack)
	require.Equal(t, domain.PackAssignment{TenantID: tenant, PackID: pack}, got)

	swapped := r.AssignRaw(ctx, uuid.UUID(pack), uuid.UUID(tenant))
	require.NotEqual(t, tenant, swapped.TenantID, "raw API records whatever it is given")
	require.Equal(t, packB, swapped.TenantID.String())

	all := r.Assignments()
	require.Len(t, all, 2)
	all[0] = domain.PackAssignment{}
	require.Equal(t, got, r.Assignments()[0], "Assignments returns a copy")
}
