package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHMAC(t *testing.T) {
	t.Parallel()
	expectedsha256 := []byte{
		54, 68, 6, 12, 32, 158, 80, 22, 142, 8, 131, 111, 248, 145, 17, 202, 224,
		59, 135, 206, 11, 170, 154, 197, 183, 28, 150, 79, 168, 105, 62, 102,
	}
	expectedsha512 := []byte{
		249, 212, 31, 38, 23, 3, 93, 220, 81, 209, 214, 112, 92, 75, 126, 40, 109,
		95, 247, 182, 210, 54, 217, 224, 199, 252, 129, 226, 97, 201, 245, 220, 37,
		201, 240, 15, 137, 236, 75, 6, 97, 12, 190, 31, 53, 153, 223, 17, 214, 11,
		153, 203, 49, 29, 158, 217, 204, 93, 179, 109, 140, 216, 202, 71,
	}
	expectedsha384 := []byte{
		121, 203, 109, 105, 178, 68, 179, 57, 21, 217, 76, 82, 94, 100, 210, 1, 55,
		201, 8, 232, 194, 168, 165, 58, 192, 26, 193, 167, 254, 183, 172, 4, 189,
		158, 158, 150, 173, 33, 119, 125, 94, 13, 125, 89, 241, 184, 166, 128,
	}

	for _, tc := range []struct {
		hashType int
		expected []byte
	}{
		{HashSHA256, expectedsha256},
		{HashSHA512, expectedsha512},
		{HashSHA384, expectedsha384},
	} {
		got, err := GetHMAC(tc.hashType, []byte("Hello,World"), []byte("1234"))
		require.NoError(t, err, "GetHMAC must not error")
		assert.Equalf(t, tc.expected, got, "GetHMAC should return the expected digest for hash type %d", tc.hashType)
	}

	_, err := GetHMAC(1337, []byte("Hello,World"), []byte("1234"))
	assert.ErrorIs(t, err, errUnsupportedHashType)
}

func TestHexEncodeToString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "737472696e67", HexEncodeToString([]byte("string")))
}
