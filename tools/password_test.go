package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassword(t *testing.T) {
	hashed := PasswordEncrypt("123456")
	assert.NotEqual(t, "123456", hashed)
	assert.True(t, PasswordCompare("123456", hashed))
	assert.False(t, PasswordCompare("654321", hashed))
	assert.False(t, PasswordCompare("123456", "not-a-hash"))
}

func TestUniqueFileName(t *testing.T) {
	name := UniqueFileName("file", "论文.pdf")
	assert.Regexp(t, `^file-\d+-\d+\.pdf$`, name)
	assert.NotEqual(t, name, UniqueFileName("file", "论文.pdf"))
}
