package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rri/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("hunter2hunter2")
	assert.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.NoError(t, password.Verify("hunter2hunter2", hash))
	assert.ErrorIs(t, password.Verify("wrong-password", hash), password.ErrInvalidPassword)
}

func TestHash_EmptyPassword(t *testing.T) {
	_, err := password.Hash("")
	assert.Error(t, err)
}

func TestVerify_EmptyInputs(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "some-hash"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("some-password", ""), password.ErrInvalidPassword)
}
