// Package demo implements the primitive obsession demonstrator.
//
// It assigns a pack to a tenant twice: once through an API that takes two raw
// uuid.UUID values, where swapping the arguments compiles and silently records
// the wrong tenant, and once through an API that takes domain.TenantID and
// domain.PackID, where the swapped call is rejected by the type checker. The
// rejection is shown by type-checking an embedded snippet and printing the
// diagnostic the compiler reports.
package demo
