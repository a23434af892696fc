// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals small blobs with a key derived from a passphrase.
//
// A sealed blob is laid out as salt ‖ nonce ‖ ciphertext. The key is derived
// per blob with Argon2id from the passphrase and the blob's own salt and is
// then used with XChaCha20-Poly1305. Callers may bind a sealed blob to a
// context (for example the storage key) through the additional data.
package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const saltSize = 16

var (
	// ErrEmptyPassphrase is returned by [NewSealer] when no passphrase is given.
	ErrEmptyPassphrase = errors.New("passphrase is empty")

	// ErrOpen is returned when a blob is truncated, was sealed with another
	// passphrase or additional data, or has been tampered with.
	ErrOpen = errors.New("cannot open sealed blob")
)

// Sealer encrypts and authenticates blobs.
type Sealer struct {
	passphrase []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8

	rand io.Reader
}

// NewSealer constructs a [Sealer] with the Argon2id parameters recommended by
// OWASP: 1 iteration, 64 MiB of memory and 4 threads.
func NewSealer(passphrase string) (*Sealer, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	return &Sealer{
		passphrase:   []byte(passphrase),
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		rand:         rand.Reader,
	}, nil
}

func (s *Sealer) deriveKey(salt []byte) []byte {
	return argon2.IDKey(s.passphrase, salt, s.argonTime, s.argonMemory, s.argonThreads, chacha20poly1305.KeySize)
}

// Seal encrypts plaintext and binds it to ad. A fresh salt and nonce are
// drawn for every call, so sealing the same input twice yields different
// blobs.
func (s *Sealer) Seal(plaintext, ad []byte) ([]byte, error) {
	salt := make([]byte, saltSize, saltSize+chacha20poly1305.NonceSizeX)
	if _, err := io.ReadFull(s.rand, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	aead, err := chacha20poly1305.NewX(s.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(s.rand, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	blob := append(salt, nonce...)
	return aead.Seal(blob, nonce, plaintext, ad), nil
}

// Open reverses [Sealer.Seal]. Any failure, including a wrong passphrase,
// is reported as [ErrOpen].
func (s *Sealer) Open(blob, ad []byte) ([]byte, error) {
	if len(blob) < saltSize+chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return nil, fmt.Errorf("%w: blob too short", ErrOpen)
	}

	salt := blob[:saltSize]
	nonce := blob[saltSize : saltSize+chacha20poly1305.NonceSizeX]
	ciphertext := blob[saltSize+chacha20poly1305.NonceSizeX:]

	aead, err := chacha20poly1305.NewX(s.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, ad)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	return plaintext, nil
}
