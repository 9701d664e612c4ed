package lead

import (
	"errors"
	"strings"
	"testing"
)

const testKey = "0123456789abcdef0123456789abcdef-extra-ignored"

func TestFieldEncryptorRoundTrip(t *testing.T) {
	enc := NewFieldEncryptor(testKey)

	sealed, err := enc.Encrypt("jean.dupont@example.ch")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	iv, ct, ok := strings.Cut(sealed, ":")
	if !ok || len(iv) != 32 || len(ct)%32 != 0 {
		t.Fatalf("unexpected format %q", sealed)
	}

	plain, err := enc.Decrypt(sealed)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if plain != "jean.dupont@example.ch" {
		t.Errorf("plain = %q", plain)
	}
}

func TestFieldEncryptorFreshIV(t *testing.T) {
	enc := NewFieldEncryptor(testKey)
	a, _ := enc.Encrypt("same")
	b, _ := enc.Encrypt("same")
	if a == b {
		t.Error("two encryptions of the same text should differ")
	}
}

func TestFieldEncryptorShortKey(t *testing.T) {
	enc := NewFieldEncryptor("short")
	if _, err := enc.Encrypt("x"); !errors.Is(err, ErrKeyTooShort) {
		t.Errorf("err = %v, want ErrKeyTooShort", err)
	}
}

func TestFieldEncryptorRejectsGarbage(t *testing.T) {
	enc := NewFieldEncryptor(testKey)
	for _, in := range []string{"", "nocolon", "zz:00", "00112233445566778899aabbccddeeff:abc"} {
		if _, err := enc.Decrypt(in); err == nil {
			t.Errorf("Decrypt(%q) should fail", in)
		}
	}
}
