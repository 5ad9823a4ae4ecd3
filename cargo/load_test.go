// SPDX-License-Identifier: MIT

package cargo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cargolp/cargo"
)

func TestLoadReferenceProblem(t *testing.T) {
	p := referenceProblem(t)

	require.Equal(t, []string{"weight", "volume"}, p.Dimensions)
	require.Len(t, p.Resources, 5)
	require.Len(t, p.Bins, 3)
	require.Len(t, p.Adjustments, 3)

	pipes := p.Resources[0]
	require.Equal(t, 1, pipes.ID)
	require.Equal(t, "Pipes", pipes.Name)
	require.Equal(t, []float64{2.5, 7.6}, pipes.Consumption)
	require.Equal(t, 34.5, pipes.Profit)
	require.Equal(t, 600.0, pipes.Available)

	require.Equal(t, "Compartment 3", p.Bins[2].Name)
	require.Equal(t, []float64{1300, 1500}, p.Bins[2].Limits)
	require.Equal(t, cargo.Adjustment{Resource: "Lumber", Available: 400}, p.Adjustments[0])
}

func TestLoadProblemErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{name: "empty", doc: "", want: cargo.ErrInvalidProblem},
		{name: "not yaml", doc: "dimensions: [", want: cargo.ErrInvalidProblem},
		{name: "unknown field", doc: "dimensions: [w]\nweight: 3\n", want: cargo.ErrInvalidProblem},
		{name: "no dimensions", doc: "resources: []\n", want: cargo.ErrInvalidProblem},
		{name: "duplicate dimension", doc: "dimensions: [w, w]\n", want: cargo.ErrInvalidProblem},
		{
			name: "missing dimension",
			doc: `
dimensions: [weight, volume]
resources:
  - {name: A, consumption: {weight: 1}, profit: 1, available: 1}
`,
			want: cargo.ErrDimensionMismatch,
		},
		{
			name: "unknown dimension",
			doc: `
dimensions: [weight]
bins:
  - {name: X, limits: {volume: 1}}
`,
			want: cargo.ErrDimensionMismatch,
		},
		{
			name: "negative limit",
			doc: `
dimensions: [weight]
bins:
  - {name: X, limits: {weight: -1}}
`,
			want: cargo.ErrInvalidProblem,
		},
		{
			name: "duplicate resource",
			doc: `
dimensions: [weight]
resources:
  - {name: A, consumption: {weight: 1}, profit: 1, available: 1}
  - {name: A, consumption: {weight: 2}, profit: 1, available: 1}
`,
			want: cargo.ErrInvalidProblem,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cargo.LoadProblem(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadProblemFileMissing(t *testing.T) {
	_, err := cargo.LoadProblemFile("testdata/does-not-exist.yaml")
	require.Error(t, err)
}

func TestLoadProblemDefaultsBinName(t *testing.T) {
	p, err := cargo.LoadProblem(strings.NewReader(`
dimensions: [weight]
bins:
  - {id: 7, limits: {weight: 10}}
`))
	require.NoError(t, err)
	require.Equal(t, "bin 7", p.Bins[0].Name)
}

func TestAdjusted(t *testing.T) {
	p := cargo.Problem{
		Dimensions: []string{"w"},
		Resources: []cargo.Resource{
			{Name: "A", Consumption: []float64{1}, Available: 5},
			{Name: "B", Consumption: []float64{2}, Available: 6},
		},
		Adjustments: []cargo.Adjustment{{Resource: "B", Available: 60}},
	}

	out, err := p.Adjusted()
	require.NoError(t, err)
	require.Equal(t, 60.0, out.Resources[1].Available)
	require.Empty(t, out.Adjustments)
	require.Equal(t, 6.0, p.Resources[1].Available)

	out.Resources[0].Consumption[0] = 99
	require.Equal(t, 1.0, p.Resources[0].Consumption[0], "Adjusted must deep-copy")

	p.Adjustments = []cargo.Adjustment{{Resource: "C", Available: 1}}
	_, err = p.Adjusted()
	require.ErrorIs(t, err, cargo.ErrUnknownResource)

	p.Adjustments = []cargo.Adjustment{{Resource: "A", Available: -1}}
	_, err = p.Adjusted()
	require.ErrorIs(t, err, cargo.ErrInvalidProblem)
}

func TestValidate(t *testing.T) {
	p := cargo.Problem{
		Dimensions: []string{"w", "v"},
		Resources:  []cargo.Resource{{Name: "A", Consumption: []float64{1, 2}, Available: 1}},
		Bins:       []cargo.Bin{{Name: "X", Limits: []float64{1, 2}}},
	}
	require.NoError(t, p.Validate())

	p.Bins[0].Limits = []float64{1}
	require.ErrorIs(t, p.Validate(), cargo.ErrDimensionMismatch)

	p.Bins[0].Limits = []float64{1, 2}
	p.Resources[0].Available = -3
	require.ErrorIs(t, p.Validate(), cargo.ErrInvalidProblem)
}
