package store

import (
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const saltSize = 16

// ErrCorruptRecord is returned when a stored record cannot be decrypted,
// typically because it was truncated or the machine key changed.
var ErrCorruptRecord = errors.New("corrupt credential record")

// generateRandomBytes generates a slice of random bytes of the given length.
func generateRandomBytes(length int) ([]byte, error) {
	bytes := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, bytes); err != nil {
		return nil, err
	}
	return bytes, nil
}

// deriveKey stretches the machine key into an AEAD key using scrypt with the
// given per-record salt.
func deriveKey(machineKey, salt []byte) ([]byte, error) {
	return scrypt.Key(machineKey, salt, 1<<15, 8, 1, chacha20poly1305.KeySize)
}

// seal encrypts plaintext with a key derived from machineKey. The returned
// record is salt || nonce || ciphertext.
func seal(machineKey, plaintext []byte) ([]byte, error) {
	salt, err := generateRandomBytes(saltSize)
	if err != nil {
		return nil, err
	}
	key, err := deriveKey(machineKey, salt)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce, err := generateRandomBytes(aead.NonceSize())
	if err != nil {
		return nil, err
	}
	record := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+aead.Overhead())
	record = append(record, salt...)
	record = append(record, nonce...)
	return aead.Seal(record, nonce, plaintext, nil), nil
}

// open decrypts a record produced by seal.
func open(machineKey, record []byte) ([]byte, error) {
	if len(record) < saltSize {
		return nil, ErrCorruptRecord
	}
	salt, rest := record[:saltSize], record[saltSize:]
	key, err := deriveKey(machineKey, salt)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	if len(rest) < aead.NonceSize() {
		return nil, ErrCorruptRecord
	}
	nonce, ciphertext := rest[:aead.NonceSize()], rest[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrCorruptRecord
	}
	return plaintext, nil
}
