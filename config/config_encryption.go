package config

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

const (
	// EncryptConfirmString prefixes encrypted config files
	EncryptConfirmString = "BFXREST-ENC"
	// SaltRandomLength is the number of random bytes in a key salt
	SaltRandomLength = 16

	scryptN      = 32768
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
)

var (
	errNotEncrypted     = errors.New("data is not an encrypted config")
	errCiphertextShort  = errors.New("encrypted config is too short")
	errDecryptionFailed = errors.New("unable to decrypt config, wrong password or corrupt data")
	errEmptyPassword    = errors.New("password is empty")
)

// IsEncrypted reports whether data starts with EncryptConfirmString
func IsEncrypted(data []byte) bool {
	return bytes.HasPrefix(data, []byte(EncryptConfirmString))
}

// EncryptConfigData seals data with a key derived from password. The output
// is the confirm string, salt, GCM nonce and ciphertext.
func EncryptConfigData(data, password []byte) ([]byte, error) {
	if len(password) == 0 {
		return nil, errEmptyPassword
	}
	salt := make([]byte, SaltRandomLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	gcm, err := newGCM(password, salt)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(EncryptConfirmString)+len(salt)+len(nonce)+len(data)+gcm.Overhead())
	out = append(out, EncryptConfirmString...)
	out = append(out, salt...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, data, []byte(EncryptConfirmString)), nil
}

// DecryptConfigData reverses EncryptConfigData
func DecryptConfigData(data, password []byte) ([]byte, error) {
	if !IsEncrypted(data) {
		return nil, errNotEncrypted
	}
	data = data[len(EncryptConfirmString):]
	if len(data) < SaltRandomLength {
		return nil, errCiphertextShort
	}
	gcm, err := newGCM(password, data[:SaltRandomLength])
	if err != nil {
		return nil, err
	}
	data = data[SaltRandomLength:]
	if len(data) < gcm.NonceSize()+gcm.Overhead() {
		return nil, errCiphertextShort
	}
	plain, err := gcm.Open(nil, data[:gcm.NonceSize()], data[gcm.NonceSize():], []byte(EncryptConfirmString))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errDecryptionFailed, err)
	}
	return plain, nil
}

func newGCM(password, salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
