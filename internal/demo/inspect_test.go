package demo_test

import (
	"primobs/internal/demo"
	"primobs/pkg/domain"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type retries int

func TestInspect(t *testing.T) {
	tests := []struct {
		name       string
		typ        reflect.Type
		category   demo.Category
		underlying string
	}{
		{name: "uuid", typ: reflect.TypeOf((*uuid.UUID)(nil)).Elem(), category: demo.CategoryPrimitive, underlying: "array"},
		{name: "string", typ: reflect.TypeOf((*string)(nil)).Elem(), category: demo.CategoryPrimitive, underlying: "string"},
		{name: "bare bytes", typ: reflect.TypeOf((*[16]byte)(nil)).Elem(), category: demo.CategoryPrimitive, underlying: "array"},
		{name: "tenant", typ: reflect.TypeOf((*domain.TenantID)(nil)).Elem(), category: demo.CategoryWrapper, underlying: "uuid.UUID"},
		{name: "pack", typ: reflect.TypeOf((*domain.PackID)(nil)).Elem(), category: demo.CategoryWrapper, underlying: "uuid.UUID"},
		{name: "named int", typ: reflect.TypeOf((*retries)(nil)).Elem(), category: demo.CategoryWrapper, underlying: "int"},
		{name: "struct", typ: reflect.TypeOf((*domain.PackAssignment)(nil)).Elem(), category: demo.CategoryOther, underlying: "struct"},
		{name: "slice", typ: reflect.TypeOf((*[]string)(nil)).Elem(), category: demo.CategoryOther, underlying: "slice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := demo.Inspect(tt.typ)
			require.Equal(t, tt.category, info.Category)
			require.Equal(t, tt.underlying, info.Underlying)
			require.Equal(t, tt.typ.String(), info.Name)
		})
	}
}

func TestInspectAll(t *testing.T) {
	infos := demo.InspectAll(uuid.UUID{}, domain.TenantID{})
	require.Len(t, infos, 2)
	require.Equal(t, "uuid.UUID", infos[0].Name)
	require.Equal(t, "domain.TenantID", infos[1].Name)
}

func TestInspect_Nil(t *testing.T) {
	require.NotPanics(t, func() {
		infos := demo.InspectAll(nil, "")
		require.Len(t, infos, 2)
		require.Equal(t, demo.TypeInfo{Name: "<nil>", Underlying: "<nil>", Category: demo.CategoryOther}, infos[0])
		require.Equal(t, demo.CategoryPrimitive, infos[1].Category)
	})

	require.Equal(t, demo.CategoryOther, demo.Inspect(nil).Category)
}
