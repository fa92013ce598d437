package domain

// PackAssignment records that a pack was assigned to a tenant.
type PackAssignment struct {
	// TenantID is the tenant receiving the pack.
	TenantID TenantID `json:"tenantId"`
	// PackID is the pack being assigned.
	PackID PackID `json:"packId"`
}
