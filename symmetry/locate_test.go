package symmetry_test

import (
	"testing"

	"github.com/katalvlaran/symdiag/symmetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceFixture is the n=4 truth-table → cell table of the classic
// KV-diagram labelling (row variables A,C; column variables B,D).
var referenceFixture = []struct {
	index int
	want  symmetry.Position
}{
	{0, symmetry.Position{Row: 0, Col: 0}},
	{1, symmetry.Position{Row: 0, Col: 1}},
	{2, symmetry.Position{Row: 1, Col: 0}},
	{3, symmetry.Position{Row: 1, Col: 1}},
	{4, symmetry.Position{Row: 0, Col: 3}},
	{5, symmetry.Position{Row: 0, Col: 2}},
	{6, symmetry.Position{Row: 1, Col: 3}},
	{7, symmetry.Position{Row: 1, Col: 2}},
	{8, symmetry.Position{Row: 3, Col: 0}},
	{9, symmetry.Position{Row: 3, Col: 1}},
	{10, symmetry.Position{Row: 2, Col: 0}},
	{11, symmetry.Position{Row: 2, Col: 1}},
	{12, symmetry.Position{Row: 3, Col: 3}},
	{13, symmetry.Position{Row: 3, Col: 2}},
	{14, symmetry.Position{Row: 2, Col: 3}},
	{15, symmetry.Position{Row: 2, Col: 2}},
}

// concatenatedFixture is the same table with rows A,B and columns C,D.
var concatenatedFixture = []symmetry.Position{
	{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 3}, {Row: 0, Col: 2},
	{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 3}, {Row: 1, Col: 2},
	{Row: 3, Col: 0}, {Row: 3, Col: 1}, {Row: 3, Col: 3}, {Row: 3, Col: 2},
	{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 3}, {Row: 2, Col: 2},
}

// TestLocate_ReferenceFixture checks all sixteen four-variable cells of the
// interleaved layout, including [0,0], [0,3], [3,0] and [2,2] for 0, 4, 8, 15.
func TestLocate_ReferenceFixture(t *testing.T) {
	for _, tc := range referenceFixture {
		got, ok, err := symmetry.Locate(tc.index, 4, symmetry.WithLayout(symmetry.Interleaved))
		require.NoError(t, err)
		require.True(t, ok, "index %d not found", tc.index)
		assert.Equal(t, tc.want, got, "Locate(%d, 4)", tc.index)
		assert.Equal(t, []int{tc.want.Row, tc.want.Col}, got.Slice())
	}
}

// TestLocate_Concatenated checks the default layout for n=4.
func TestLocate_Concatenated(t *testing.T) {
	for d, want := range concatenatedFixture {
		got, ok, err := symmetry.Locate(d, 4)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, got, "Locate(%d, 4)", d)
	}
}

// TestLocate_RoundTrip checks matrix[i][j] parses back to d for every d.
func TestLocate_RoundTrip(t *testing.T) {
	for _, l := range layouts {
		for n := 0; n <= 7; n++ {
			m, err := symmetry.BuildMatrix(n, symmetry.WithLayout(l))
			require.NoError(t, err)
			for d := 0; d < 1<<uint(n); d++ {
				p, ok, err := symmetry.Locate(d, n, symmetry.WithLayout(l))
				require.NoError(t, err)
				require.True(t, ok, "%v n=%d d=%d", l, n, d)
				v, err := m.At(p)
				require.NoError(t, err)
				assert.Equal(t, uint64(d), v.Uint(), "%v n=%d d=%d at %v", l, n, d, p)
			}
		}
	}
}

// TestLocate_NotFound verifies indices beyond 2^n-1 yield an absent result.
func TestLocate_NotFound(t *testing.T) {
	cases := []struct{ index, n int }{{16, 4}, {1, 0}, {2, 1}, {1000, 3}}
	for _, tc := range cases {
		p, ok, err := symmetry.Locate(tc.index, tc.n)
		require.NoError(t, err, "Locate(%d, %d)", tc.index, tc.n)
		assert.False(t, ok, "Locate(%d, %d)", tc.index, tc.n)
		assert.Equal(t, symmetry.Position{}, p)
	}
}

// TestLocate_InvalidArgument verifies negative inputs are rejected before scanning.
func TestLocate_InvalidArgument(t *testing.T) {
	_, ok, err := symmetry.Locate(-1, 4)
	assert.ErrorIs(t, err, symmetry.ErrInvalidIndex)
	assert.False(t, ok)

	_, ok, err = symmetry.Locate(0, -1)
	assert.ErrorIs(t, err, symmetry.ErrInvalidVariables)
	assert.False(t, ok)

	_, _, err = symmetry.Locate(0, symmetry.MaxVariables+1)
	assert.ErrorIs(t, err, symmetry.ErrInvalidVariables)
}

// TestMatrix_Locate covers scanning a prebuilt matrix.
func TestMatrix_Locate(t *testing.T) {
	m, err := symmetry.BuildMatrix(3)
	require.NoError(t, err)

	p, ok := m.Locate(5)
	require.True(t, ok)
	assert.Equal(t, symmetry.Position{Row: 3, Col: 1}, p)

	_, ok = m.Locate(-3)
	assert.False(t, ok)
	_, ok = m.Locate(8)
	assert.False(t, ok)
}

// TestPositionOf_AgreesWithLocate checks the closed form against the scan.
func TestPositionOf_AgreesWithLocate(t *testing.T) {
	for _, l := range layouts {
		for n := 0; n <= 8; n++ {
			m, err := symmetry.BuildMatrix(n, symmetry.WithLayout(l))
			require.NoError(t, err)
			for d := 0; d < 1<<uint(n); d++ {
				want, ok := m.Locate(d)
				require.True(t, ok)
				got, err := symmetry.PositionOf(d, n, symmetry.WithLayout(l))
				require.NoError(t, err)
				assert.Equal(t, want, got, "%v n=%d d=%d", l, n, d)
			}
		}
	}
}

// TestPositionOf_ReferenceFixture checks the closed form on the fixture.
func TestPositionOf_ReferenceFixture(t *testing.T) {
	for _, tc := range referenceFixture {
		got, err := symmetry.PositionOf(tc.index, 4, symmetry.WithLayout(symmetry.Interleaved))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "PositionOf(%d, 4)", tc.index)
	}
}

// TestPositionOf_Errors verifies every error class.
func TestPositionOf_Errors(t *testing.T) {
	_, err := symmetry.PositionOf(-1, 4)
	assert.ErrorIs(t, err, symmetry.ErrInvalidIndex)
	_, err = symmetry.PositionOf(16, 4)
	assert.ErrorIs(t, err, symmetry.ErrIndexOutOfRange)
	_, err = symmetry.PositionOf(0, -2)
	assert.ErrorIs(t, err, symmetry.ErrInvalidVariables)
}
