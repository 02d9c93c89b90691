package xor

import (
	"context"
	"fmt"

	"github.com/rbaliyan/config/codec"
)

// Codec wraps an inner codec with repeating-key XOR.
// On Encode, the inner codec serializes the value, then the result is transformed.
// On Decode, the data is transformed back, then the inner codec deserializes it.
//
// Codec is safe for concurrent use if the inner codec is.
type Codec struct {
	inner  codec.Codec
	cipher *Cipher
	name   string
}

// Compile-time interface check.
var _ codec.Codec = (*Codec)(nil)

// NewCodec creates an XOR codec that wraps the given inner codec.
// The codec name is "xor:<inner>", e.g. "xor:json".
// Returns an error if inner or c is nil.
func NewCodec(inner codec.Codec, c *Cipher) (*Codec, error) {
	if inner == nil {
		return nil, fmt.Errorf("%w: NewCodec inner codec is nil", ErrInvalidArgument)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: NewCodec cipher is nil", ErrInvalidArgument)
	}
	return &Codec{
		inner:  inner,
		cipher: c,
		name:   "xor:" + inner.Name(),
	}, nil
}

// Name returns the codec name, e.g. "xor:json".
func (c *Codec) Name() string {
	return c.name
}

// Encode serializes the value using the inner codec, then XORs the result.
func (c *Codec) Encode(v any) ([]byte, error) {
	plaintext, err := c.inner.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("xor: inner encode failed: %w", err)
	}

	out, err := c.cipher.transform(context.Background(), plaintext)
	if err != nil {
		return nil, fmt.Errorf("xor: encode failed: %w", err)
	}
	return out, nil
}

// Decode XORs the data back, then deserializes it using the inner codec.
func (c *Codec) Decode(data []byte, v any) error {
	plaintext, err := c.cipher.transform(context.Background(), data)
	if err != nil {
		return fmt.Errorf("xor: decode failed: %w", err)
	}

	if err := c.inner.Decode(plaintext, v); err != nil {
		return fmt.Errorf("xor: inner decode failed: %w", err)
	}
	return nil
}
