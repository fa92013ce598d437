package demo_test

import (
	"os"
	"primobs/internal/demo"
	"primobs/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func readSnippet(t *testing.T, name string) []byte {
	t.Helper()

	src, err := os.ReadFile("snippets/" + name + ".txt")
	require.NoError(t, err)

	return src
}

func TestCheckSnippet_LegacyCompiles(t *testing.T) {
	diags, err := demo.CheckSnippet("legacy.go", readSnippet(t, "legacy.go"))
	require.NoError(t, err)
	require.Empty(t, diags, "swapped raw identifiers must type-check")
}

func TestCheckSnippet_NominalRejectsSwap(t *testing.T) {
	diags, err := demo.CheckSnippet("nominal.go", readSnippet(t, "nominal.go"))
	require.NoError(t, err)
	require.Len(t, diags, 2, "one diagnostic per swapped argument")

	require.Contains(t, diags[0].Msg, "cannot use pack")
	require.Contains(t, diags[0].Msg, "TenantID")
	require.Contains(t, diags[0].Pos, "nominal.go:15")
	require.Contains(t, diags[1].Msg, "cannot use tenant")
	require.Contains(t, diags[1].Msg, "PackID")
}

func TestCheckSnippet_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "syntax", src: "package x\nfunc {"},
		{name: "imports", src: "package x\nimport \"fmt\"\nvar _ = fmt.Sprint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := demo.CheckSnippet(tt.name+".go", []byte(tt.src))
			require.ErrorIs(t, err, serrors.ErrInternal)
		})
	}
}

func TestCheckSnippet_ConversionCompiles(t *testing.T) {
	src := `package conv

type UUID [16]byte
type TenantID UUID
type PackID UUID

func AssignPack(tenantID TenantID, packID PackID) {}

func main() {
	tenant := TenantID{1}
	pack := PackID{2}
	AssignPack(TenantID(pack), PackID(tenant))
}
`
	diags, err := demo.CheckSnippet("conv.go", []byte(src))
	require.NoError(t, err)
	require.Empty(t, diags, "explicit conversion is an intentional escape hatch")
}
