package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceTables(t *testing.T) {
	t.Run("ProductCount", func(t *testing.T) {
		assert.Len(t, Products(), 30)
	})

	t.Run("CustomerCount", func(t *testing.T) {
		assert.Len(t, Customers(), 12)
	})

	t.Run("ProductIDsSequential", func(t *testing.T) {
		for i, p := range Products() {
			assert.Equal(t, i+1, p.ID)
			assert.NotEmpty(t, p.Name)
			assert.Greater(t, p.Price, 0)
			assert.Contains(t, p.Image, "https://")
		}
	})

	t.Run("CustomerIDsStartAtFour", func(t *testing.T) {
		for i, c := range Customers() {
			assert.Equal(t, i+4, c.ID)
			assert.NotEmpty(t, c.Name)
			assert.NotEmpty(t, c.Address)
		}
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}
