// Package xor provides symmetric repeating-key XOR over bytes and text.
//
// XOR is obfuscation, not encryption: it is trivially reversible with the key
// and offers no integrity protection. Use it to keep values from casual view,
// not to protect secrets from an attacker.
//
// A Cipher holds the key. Transform works on bytes and is its own inverse.
// Process works on text and picks a direction per call: input that decodes as
// standard Base64 is treated as ciphertext and decrypted to text, anything else
// is encrypted and returned as Base64. Encrypt and Decrypt fix the direction
// when the caller knows it.
//
// Usage:
//
//	c, err := xor.NewCipherFromString("secret")
//	if err != nil {
//	    return err
//	}
//	defer c.Destroy()
//
//	enc := c.Process("Hello") // "OwAPHgo="
//	dec := c.Process(enc)     // "Hello"
package xor
