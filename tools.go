//go:build tools

package xor

// Pins the OSS-Fuzz harness used to build the Fuzz* targets in fuzz_test.go.
import _ "github.com/AdamKorcz/go-118-fuzz-build/testing"
