package xor

import (
	"context"
	"fmt"
	"sync"

	"github.com/awnumar/memguard"
	"github.com/go-logr/logr"
)

// Cipher holds an immutable repeating XOR key and applies it to payloads.
// XOR is self-inverse, so the same Cipher encrypts and decrypts.
//
// The key lives in a read-only memguard buffer. Cipher is safe for concurrent use.
// The zero value has no key; using it panics with ErrInvalidState.
type Cipher struct {
	mu     sync.RWMutex
	key    *memguard.LockedBuffer
	logger logr.Logger
	tel    *telemetry
}

// NewCipher creates a Cipher from raw key bytes.
// The key must not be empty. Key bytes are copied internally; the caller may
// reuse or zero the original after construction.
func NewCipher(key []byte, opts ...Option) (*Cipher, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: key must not be empty", ErrInvalidArgument)
	}
	return newCipher(key, opts)
}

// NewCipherFromString creates a Cipher from the UTF-8 bytes of key.
// The key must not be empty.
func NewCipherFromString(key string, opts ...Option) (*Cipher, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: key must not be empty", ErrInvalidArgument)
	}
	b := []byte(key)
	defer clear(b)
	return newCipher(b, opts)
}

func newCipher(key []byte, opts []Option) (*Cipher, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.err != nil {
		return nil, o.err
	}

	tel, err := newTelemetry(o.meterProvider, o.tracerProvider)
	if err != nil {
		return nil, err
	}

	buf := memguard.NewBuffer(len(key))
	buf.Copy(key)
	buf.Freeze()

	return &Cipher{
		key:    buf,
		logger: o.logger,
		tel:    tel,
	}, nil
}

// Size returns the key length in bytes, or 0 once the cipher is destroyed.
func (c *Cipher) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.alive() {
		return 0
	}
	return c.key.Size()
}

// Alive reports whether the cipher still holds key material.
func (c *Cipher) Alive() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.alive()
}

func (c *Cipher) alive() bool {
	return c.key != nil && c.key.IsAlive() && c.key.Size() > 0
}

// Destroy wipes the key material. Subsequent Transform and Process calls panic
// with ErrInvalidState. Destroy is idempotent.
func (c *Cipher) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.key != nil {
		c.key.Destroy()
	}
}

// Transform XORs payload with the repeating key and returns a new slice of the
// same length. A nil or empty payload is returned unchanged.
// Transform(Transform(p)) == p for any payload.
//
// Transform panics with an error wrapping ErrInvalidState if the cipher has no key.
func (c *Cipher) Transform(payload []byte) []byte {
	out, err := c.transform(context.Background(), payload)
	if err != nil {
		panic(err)
	}
	return out
}

// transform is the error-returning form of Transform.
func (c *Cipher) transform(ctx context.Context, payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return payload, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.alive() {
		return nil, fmt.Errorf("%w: cipher has no key material", ErrInvalidState)
	}

	key := c.key.Bytes()
	out := make([]byte, len(payload))
	for i := range payload {
		out[i] = payload[i] ^ key[i%len(key)]
	}

	c.tel.recordBytes(ctx, len(payload))
	return out, nil
}
