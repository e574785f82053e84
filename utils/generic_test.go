package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMin(t *testing.T) {
	assert.Equal(t, 1, Min(1, 3, 2), "Min should return the smallest number")
	assert.Equal(t, 0, Min(0, 5, 10), "Min should return the smallest number")
	assert.Equal(t, 4, Min(4), "Min should return the only number")
}

func TestContains(t *testing.T) {
	arr := []string{".git", "testdata", "vendor"}
	assert.True(t, Contains(arr, "vendor"), "Contains should return true if the item is found")
	assert.False(t, Contains(arr, "examples"), "Contains should return false if the item is not found")
	assert.False(t, Contains(nil, "vendor"), "Contains should return false on a nil slice")
}
