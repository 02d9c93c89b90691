package xor

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Direction is the path Process takes for a given input.
type Direction int

const (
	// DirectionNone is reported for empty input, which Process returns unchanged.
	DirectionNone Direction = iota
	// DirectionEncrypt is taken when the input is not valid Base64.
	DirectionEncrypt
	// DirectionDecrypt is taken when the input decodes as standard Base64.
	DirectionDecrypt
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionEncrypt:
		return "encrypt"
	case DirectionDecrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Classify reports which direction Process would take for text.
//
// Any text that is syntactically valid standard Base64 is classified as
// ciphertext, including plaintext that merely looks like Base64 (e.g. "test").
// Callers that know the direction should use Encrypt, Decrypt or Transform.
func Classify(text string) Direction {
	if text == "" {
		return DirectionNone
	}
	if _, ok := decodeCiphertext(text); ok {
		return DirectionDecrypt
	}
	return DirectionEncrypt
}

// decodeCiphertext decodes standard padded Base64, ignoring ASCII whitespace.
func decodeCiphertext(text string) ([]byte, bool) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, text)

	decoded, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return nil, false
	}
	return decoded, true
}

// Process encrypts or decrypts text, choosing the direction with Classify.
//
// Ciphertext (valid Base64) is decoded, transformed and returned as text. If the
// result is not valid UTF-8 (wrong key, not really ciphertext, corruption) Process
// returns "" rather than an error. Any other non-empty text is transformed and
// returned as standard Base64. Empty text is returned unchanged.
//
// Process panics with an error wrapping ErrInvalidState if the cipher has no key.
func (c *Cipher) Process(text string) string {
	return c.ProcessContext(context.Background(), text)
}

// ProcessContext is Process with a trace span recorded under ctx.
func (c *Cipher) ProcessContext(ctx context.Context, text string) string {
	if text == "" {
		return text
	}

	ctx, span := c.tel.start(ctx, "xor.Process")
	defer span.End()

	ciphertext, ok := decodeCiphertext(text)
	if !ok {
		span.SetAttributes(attrDirection.String(DirectionEncrypt.String()))
		out, err := c.transform(ctx, []byte(text))
		if err != nil {
			panic(err)
		}
		c.tel.recordCall(ctx, DirectionEncrypt, outcomeOK)
		return base64.StdEncoding.EncodeToString(out)
	}

	span.SetAttributes(attrDirection.String(DirectionDecrypt.String()))
	plaintext, err := c.transform(ctx, ciphertext)
	if err != nil {
		panic(err)
	}
	if len(plaintext) == 0 || !utf8.Valid(plaintext) {
		c.logger.V(1).Info("decrypted data is empty or not valid UTF-8, returning empty result", "length", len(plaintext))
		span.SetAttributes(attrOutcome.String(outcomeDegraded))
		c.tel.recordCall(ctx, DirectionDecrypt, outcomeDegraded)
		return ""
	}
	c.tel.recordCall(ctx, DirectionDecrypt, outcomeOK)
	return string(plaintext)
}

// Encrypt transforms the bytes of plaintext and returns standard Base64,
// regardless of whether plaintext itself looks like Base64.
// Empty plaintext is returned unchanged. Like Transform, Encrypt panics if the
// cipher has no key.
func (c *Cipher) Encrypt(plaintext string) string {
	if plaintext == "" {
		return plaintext
	}
	return base64.StdEncoding.EncodeToString(c.Transform([]byte(plaintext)))
}

// Decrypt decodes Base64 ciphertext and transforms it back to text.
// Unlike Process it reports failures: ErrInvalidEncoding when ciphertext is not
// Base64 and ErrInvalidUTF8 when the result is not valid UTF-8.
// Empty ciphertext yields "" and no error.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	decoded, ok := decodeCiphertext(ciphertext)
	if !ok {
		return "", ErrInvalidEncoding
	}

	plaintext, err := c.transform(context.Background(), decoded)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: %d bytes", ErrInvalidUTF8, len(plaintext))
	}
	return string(plaintext), nil
}
