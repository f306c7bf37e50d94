package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotBlank(t *testing.T) {
	assert.True(t, NotBlank("Go程序设计语言"))
	assert.True(t, NotBlank("  x "))
	assert.False(t, NotBlank(""))
	assert.False(t, NotBlank(" \t\n"))
}

func TestNotNegative(t *testing.T) {
	assert.True(t, NotNegative(0))
	assert.True(t, NotNegative(12))
	assert.False(t, NotNegative(-1))
}
