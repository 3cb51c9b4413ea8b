package password

import (
	"testing"

	"classifieds-board/app/server/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashKnownVectors(t *testing.T) {
	// SHA-256 标准测试向量
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Hash(""))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", Hash("abc"))
}

func TestHashDeterministic(t *testing.T) {
	assert.Equal(t, Hash("pw123456"), Hash("pw123456"))
	assert.NotEqual(t, Hash("pw123456"), Hash("pw123457"))
}

func TestHashLength(t *testing.T) {
	for _, input := range []string{"", "a", "some longer password with spaces", "пароль"} {
		assert.Len(t, Hash(input), 64)
	}
}

func TestVerifyCredential(t *testing.T) {
	stored := Hash("oldpass1")

	require.NoError(t, VerifyCredential(stored, "oldpass1"))

	err := VerifyCredential(stored, "wrongpass")
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestCompare(t *testing.T) {
	require.NoError(t, Compare("newpass1", "newpass1"))
	require.NoError(t, Compare("", ""))

	err := Compare("newpass1", "different")
	require.ErrorIs(t, err, errs.ErrPasswordMismatch)
}
