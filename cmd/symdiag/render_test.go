package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symdiag/gray"
)

// TestAxisCodes checks the axis labels and that width errors propagate.
func TestAxisCodes(t *testing.T) {
	rows, cols, err := axisCodes(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"00", "01", "11", "10"}, rows)
	assert.Equal(t, []string{"0", "1"}, cols)

	_, _, err = axisCodes(-1)
	assert.ErrorIs(t, err, gray.ErrInvalidWidth)

	_, _, err = axisCodes(2*gray.MaxWidth + 1)
	assert.ErrorIs(t, err, gray.ErrInvalidWidth)
}

// TestGrids_PropagateLabelErrors ensures a bad width never renders silently.
func TestGrids_PropagateLabelErrors(t *testing.T) {
	_, err := plainGrid(-2, "", nil)
	assert.ErrorIs(t, err, gray.ErrInvalidWidth)

	_, err = prettyGrid(-2, nil, nil)
	assert.ErrorIs(t, err, gray.ErrInvalidWidth)

	out, err := plainGrid(1, "A", [][]string{{"0/0"}, {"1/1"}})
	require.NoError(t, err)
	assert.Equal(t, "A     \n0  0/0\n1  1/1\n", out)
}
