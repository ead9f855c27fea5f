package zygosity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromAlleles(t *testing.T) {
	assert.Equal(t, Homozygous, FromAlleles("A", "A"))
	assert.Equal(t, Heterozygous, FromAlleles("A", "G"))
	assert.Equal(t, Unknown, FromAlleles("", "G"))
	assert.Equal(t, Unknown, FromAlleles("A", ""))
}

func TestZygosityToString(t *testing.T) {
	assert.Equal(t, "homozygous", ZygosityToString(Homozygous))
	assert.Equal(t, "heterozygous", ZygosityToString(Heterozygous))
	assert.Equal(t, "unknown", ZygosityToString(Unknown))
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown(int(Homozygous)))
	assert.True(t, IsKnown(int(Heterozygous)))
	assert.False(t, IsKnown(int(Unknown)))
	assert.False(t, IsKnown(42))
}
