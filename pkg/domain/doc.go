// Package domain contains the identifier value types used by the demonstrator.
// TenantID and PackID share the same underlying representation (uuid.UUID) but
// are declared as distinct named types, so the compiler refuses to accept one
// where the other is expected.
package domain
