package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBcrypt(t *testing.T) {
	hashed := BcryptHash("correct horse")

	assert.True(t, BcryptIsHashed(hashed))
	assert.False(t, BcryptIsHashed("correct horse"))
	assert.True(t, BcryptCheck("correct horse", hashed))
	assert.False(t, BcryptCheck("wrong horse", hashed))
}
