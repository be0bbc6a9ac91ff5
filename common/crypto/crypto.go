package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"hash"
)

// Const declarations for hash functions supported by GetHMAC
const (
	HashSHA256 = iota
	HashSHA512
	HashSHA384
)

var errUnsupportedHashType = errors.New("unsupported hash type")

// HexEncodeToString takes in a hexadecimal byte array and returns a string
func HexEncodeToString(input []byte) string {
	return hex.EncodeToString(input)
}

// GetHMAC returns a keyed-hash message authentication code using the desired
// hashtype
func GetHMAC(hashType int, input, key []byte) ([]byte, error) {
	var hasher func() hash.Hash

	switch hashType {
	case HashSHA256:
		hasher = sha256.New
	case HashSHA512:
		hasher = sha512.New
	case HashSHA384:
		hasher = sha512.New384
	default:
		return nil, errUnsupportedHashType
	}

	h := hmac.New(hasher, key)
	if _, err := h.Write(input); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
