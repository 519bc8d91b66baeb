// Package credential implements the opaque encrypted secret embedded in a
// worker's QR entry pass. A secret binds a claimed identity without exposing
// it: the payload is sealed with AES-256-GCM under a process-wide key and
// rendered in a URL-safe alphabet suitable for QR encoding.
package credential

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"

	"go.uber.org/zap"
)

const gcmNonceSize = 12

// Payload is the decrypted content of a credential secret. It exists only
// transiently during encode/decode and is never stored on its own.
type Payload struct {
	WorkerID uint   `json:"worker_id"`
	Name     string `json:"name"`
	Nonce    string `json:"nonce"`
}

// Codec encrypts and decrypts credential secrets with a fixed symmetric key.
type Codec struct {
	key    []byte
	logger *zap.Logger
}

// NewCodec validates the key (AES-256 only) and returns a ready codec.
func NewCodec(key []byte, logger *zap.Logger) (*Codec, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("credential key must be 32 bytes, got %d", len(key))
	}
	return &Codec{key: key, logger: logger.Named("credential_codec")}, nil
}

// Encode builds a fresh secret for the given identity. The 6-digit nonce adds
// entropy so renewed secrets for the same worker never repeat; uniqueness of
// the secret itself is enforced by the worker store, not here.
func (c *Codec) Encode(workerID uint, name string) (string, error) {
	nonce, err := randomDigits(6)
	if err != nil {
		return "", fmt.Errorf("failed to draw nonce: %w", err)
	}

	plaintext, err := json.Marshal(Payload{WorkerID: workerID, Name: name, Nonce: nonce})
	if err != nil {
		return "", fmt.Errorf("failed to serialize payload: %w", err)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	iv := make([]byte, gcmNonceSize)
	if _, err := rand.Read(iv); err != nil {
		return "", err
	}

	sealed := aesgcm.Seal(iv, iv, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decode attempts authenticated decryption of a secret. Any failure, whether
// bad encoding, a failed auth tag or malformed plaintext, yields nil: an
// unparsable secret is an expected "not a valid credential" signal, not an
// anomaly, so it is reported to the operator log only.
func (c *Codec) Decode(secret string) *Payload {
	sealed, err := base64.RawURLEncoding.DecodeString(secret)
	if err != nil {
		c.logger.Warn("secret is not valid base64", zap.Error(err))
		return nil
	}
	if len(sealed) <= gcmNonceSize {
		c.logger.Warn("secret too short", zap.Int("len", len(sealed)))
		return nil
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		c.logger.Warn("cipher init failed", zap.Error(err))
		return nil
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		c.logger.Warn("gcm init failed", zap.Error(err))
		return nil
	}

	plaintext, err := aesgcm.Open(nil, sealed[:gcmNonceSize], sealed[gcmNonceSize:], nil)
	if err != nil {
		c.logger.Warn("secret decryption failed", zap.Error(err))
		return nil
	}

	var payload Payload
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		c.logger.Warn("secret payload is malformed", zap.Error(err))
		return nil
	}
	return &payload
}

func randomDigits(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + d.Int64())
	}
	return string(digits), nil
}
