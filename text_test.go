package xor

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestProcessKnownVector(t *testing.T) {
	c := testCipher(t, "secret")

	enc := c.Process("Hello")
	if enc != "OwAPHgo=" {
		t.Fatalf("Process(Hello): got %q, want %q", enc, "OwAPHgo=")
	}

	dec := c.Process(enc)
	if dec != "Hello" {
		t.Errorf("Process(%q): got %q, want %q", enc, dec, "Hello")
	}
}

func TestProcessRoundTrip(t *testing.T) {
	c := testCipher(t, "secret")

	tests := []struct {
		name string
		text string
	}{
		{name: "sentence", text: "Hello, World!"},
		{name: "multibyte", text: "héllo wörld ✓ 你好"},
		{name: "newlines", text: "line one\nline two\n"},
		{name: "long", text: strings.Repeat("The quick brown fox jumps over the lazy dog. ", 50)},
		{name: "odd length", text: "abcde"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Classify(tt.text) != DirectionEncrypt {
				t.Fatalf("precondition: %q classified as %v", tt.text, Classify(tt.text))
			}
			enc := c.Process(tt.text)
			if _, err := base64.StdEncoding.DecodeString(enc); err != nil {
				t.Fatalf("Process output is not Base64: %v", err)
			}
			if got := c.Process(enc); got != tt.text {
				t.Errorf("Process(Process(t)): got %q, want %q", got, tt.text)
			}
		})
	}
}

func TestProcessEmpty(t *testing.T) {
	c := testCipher(t, "secret")
	if got := c.Process(""); got != "" {
		t.Errorf("Process(\"\"): got %q, want empty", got)
	}
}

func TestProcessBase64LookingPlaintextIsDecrypted(t *testing.T) {
	c := testCipher(t, "secret")

	// "test" is valid Base64, so it is treated as ciphertext.
	if Classify("test") != DirectionDecrypt {
		t.Fatalf("Classify(test): got %v, want %v", Classify("test"), DirectionDecrypt)
	}
	// Decodes to b5 eb 2d, which XORs with "sec" to c6 8e 4e.
	got := c.Process("test")
	if got != "ƎN" {
		t.Errorf("Process(test): got %q, want %q", got, "ƎN")
	}
}

func TestProcessInvalidUTF8DegradesToEmpty(t *testing.T) {
	c := testCipher(t, "secret")

	// Ciphertext whose decryption is 0xFF 0xFE, which is not valid UTF-8.
	raw := c.Transform([]byte{0xFF, 0xFE})
	ciphertext := base64.StdEncoding.EncodeToString(raw)

	if got := c.Process(ciphertext); got != "" {
		t.Errorf("Process: got %q, want empty string", got)
	}
}

func TestProcessWrongKeyDegrades(t *testing.T) {
	c := testCipher(t, "secret")
	other, err := NewCipher([]byte{0x80})
	if err != nil {
		t.Fatal(err)
	}
	defer other.Destroy()

	enc := c.Process("Hello")

	// Flipping the high bit of every ASCII byte yields invalid UTF-8.
	if got := other.Process(enc); got != "" {
		t.Errorf("Process with wrong key: got %q, want empty string", got)
	}
}

func TestProcessWhitespaceOnly(t *testing.T) {
	c := testCipher(t, "secret")

	// Whitespace-only input decodes to nothing and yields an empty result.
	if got := c.Process("  \n"); got != "" {
		t.Errorf("Process: got %q, want empty string", got)
	}
}

func TestProcessCiphertextWithWhitespace(t *testing.T) {
	c := testCipher(t, "secret")

	if got := c.Process("OwAP\r\nHgo="); got != "Hello" {
		t.Errorf("Process: got %q, want %q", got, "Hello")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Direction
	}{
		{text: "", want: DirectionNone},
		{text: "Hello", want: DirectionEncrypt},
		{text: "Hello World", want: DirectionEncrypt},
		{text: "OwAPHgo=", want: DirectionDecrypt},
		{text: "OwAP Hgo=", want: DirectionDecrypt},
		{text: "OwAPHgo", want: DirectionEncrypt},
		{text: "OwAPHg-_", want: DirectionEncrypt},
		{text: "test", want: DirectionDecrypt},
		{text: "====", want: DirectionEncrypt},
	}
	for _, tt := range tests {
		if got := Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q): got %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{DirectionNone, "none"},
		{DirectionEncrypt, "encrypt"},
		{DirectionDecrypt, "decrypt"},
		{Direction(42), "Direction(42)"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String(): got %q, want %q", got, tt.want)
		}
	}
}

func TestEncryptDecrypt(t *testing.T) {
	c := testCipher(t, "secret")

	// Encrypt ignores Base64-looking input and always encrypts.
	enc := c.Encrypt("test")
	got, err := c.Decrypt(enc)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if got != "test" {
		t.Errorf("Decrypt: got %q, want %q", got, "test")
	}
}

func TestEncryptMatchesProcess(t *testing.T) {
	c := testCipher(t, "secret")
	if got := c.Encrypt("Hello"); got != "OwAPHgo=" {
		t.Errorf("Encrypt(Hello): got %q, want %q", got, "OwAPHgo=")
	}
}

func TestEncryptEmpty(t *testing.T) {
	c := testCipher(t, "secret")
	if got := c.Encrypt(""); got != "" {
		t.Errorf("Encrypt(\"\"): got %q, want empty", got)
	}
}

func TestDecryptEmpty(t *testing.T) {
	c := testCipher(t, "secret")
	got, err := c.Decrypt("")
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if got != "" {
		t.Errorf("Decrypt(\"\"): got %q, want empty", got)
	}
}

func TestDecryptInvalidEncoding(t *testing.T) {
	c := testCipher(t, "secret")
	_, err := c.Decrypt("not base64!")
	if !IsInvalidEncoding(err) {
		t.Errorf("expected ErrInvalidEncoding, got %v", err)
	}
}

func TestDecryptInvalidUTF8(t *testing.T) {
	c := testCipher(t, "secret")
	ciphertext := base64.StdEncoding.EncodeToString(c.Transform([]byte{0xC3, 0x28}))

	_, err := c.Decrypt(ciphertext)
	if !IsInvalidUTF8(err) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestDecodeCiphertext(t *testing.T) {
	got, ok := decodeCiphertext("SGVs\tbG8=")
	if !ok {
		t.Fatal("decodeCiphertext: expected success")
	}
	if string(got) != "Hello" {
		t.Errorf("decodeCiphertext: got %q, want %q", got, "Hello")
	}

	if _, ok := decodeCiphertext("Hello"); ok {
		t.Error("decodeCiphertext(Hello): expected failure")
	}
}
