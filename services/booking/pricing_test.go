package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	assert.Equal(t, 24000, ComputeTotal(8000, 3))
	assert.Equal(t, 8000, ComputeTotal(8000, 1))
	assert.Equal(t, 0, ComputeTotal(0, 5))
}
