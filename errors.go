package xor

import "errors"

var (
	// ErrInvalidArgument is returned when a constructor or option receives an empty or nil argument.
	ErrInvalidArgument = errors.New("xor: invalid argument")

	// ErrInvalidState is returned when the cipher has no key material (zero value or destroyed).
	ErrInvalidState = errors.New("xor: invalid state")

	// ErrInvalidEncoding is returned by Decrypt when the input is not standard Base64.
	ErrInvalidEncoding = errors.New("xor: invalid base64 encoding")

	// ErrInvalidUTF8 is returned by Decrypt when the decrypted bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("xor: decrypted data is not valid UTF-8")
)

// IsInvalidArgument returns true if the error is or wraps ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsInvalidState returns true if the error is or wraps ErrInvalidState.
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsInvalidEncoding returns true if the error is or wraps ErrInvalidEncoding.
func IsInvalidEncoding(err error) bool {
	return errors.Is(err, ErrInvalidEncoding)
}

// IsInvalidUTF8 returns true if the error is or wraps ErrInvalidUTF8.
func IsInvalidUTF8(err error) bool {
	return errors.Is(err, ErrInvalidUTF8)
}
