package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmpty(t *testing.T) {
	var nilMap map[string]int
	var nilPtr *int

	assert.True(t, Empty(nil))
	assert.True(t, Empty(""))
	assert.True(t, Empty(0))
	assert.True(t, Empty(false))
	assert.True(t, Empty(nilMap))
	assert.True(t, Empty(nilPtr))
	assert.True(t, Empty([]string{}))

	assert.False(t, Empty("uk"))
	assert.False(t, Empty(3))
	assert.False(t, Empty(true))
	assert.False(t, Empty([]int{1}))
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr(""))
	assert.Equal(t, "abc", StringValue(StringPtr("abc")))
	assert.Equal(t, "", StringValue(nil))
}

func TestFirstElement(t *testing.T) {
	assert.Equal(t, "serve", FirstElement([]string{"serve", "--env=testing"}))
	assert.Equal(t, "", FirstElement(nil))
}
