package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/districtcut/partition"
)

func TestCheckPopulationWindow(t *testing.T) {
	assert.NoError(t, partition.CheckPopulationWindow(50, 50, 0.05))
	assert.NoError(t, partition.CheckPopulationWindow(47.5, 50, 0.05))
	assert.NoError(t, partition.CheckPopulationWindow(52.5, 50, 0.05))
	assert.ErrorIs(t, partition.CheckPopulationWindow(52.6, 50, 0.05), partition.ErrPopulationWindow)
	assert.ErrorIs(t, partition.CheckPopulationWindow(47.4, 50, 0.05), partition.ErrPopulationWindow)
}

func TestCheckRemoval(t *testing.T) {
	assert.NoError(t, partition.CheckRemoval(10, 7, 3))
	assert.ErrorIs(t, partition.CheckRemoval(10, 8, 3), partition.ErrGraphMutation)
}

func TestCheckCoverage(t *testing.T) {
	units := []string{"A", "B", "C"}
	ok := []partition.District{{Number: 1, Units: []string{"A", "C"}}, {Number: 2, Units: []string{"B"}}}
	assert.NoError(t, partition.CheckCoverage(ok, units))

	dup := []partition.District{{Number: 1, Units: []string{"A", "B"}}, {Number: 2, Units: []string{"B"}}}
	assert.ErrorIs(t, partition.CheckCoverage(dup, units), partition.ErrCoverageMismatch)

	short := []partition.District{{Number: 1, Units: []string{"A", "B"}}}
	assert.ErrorIs(t, partition.CheckCoverage(short, units), partition.ErrCoverageMismatch)

	// Right count, wrong members.
	stranger := []partition.District{{Number: 1, Units: []string{"A", "B", "Z"}}}
	err := partition.CheckCoverage(stranger, units)
	assert.ErrorIs(t, err, partition.ErrCoverageMismatch)
	assert.Contains(t, err.Error(), "C")
}
