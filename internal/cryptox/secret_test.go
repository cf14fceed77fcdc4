package cryptox

import (
	"strings"
	"testing"
)

func TestBox_RoundTrip(t *testing.T) {
	box, err := NewBox(strings.Repeat("ab", 32))
	if err != nil {
		t.Fatalf("new box: %v", err)
	}
	sealed, err := box.Seal("sk-test-1234")
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	got, err := box.Open(sealed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got != "sk-test-1234" {
		t.Fatalf("got %q", got)
	}
}

func TestBox_BadKey(t *testing.T) {
	if _, err := NewBox("deadbeef"); err == nil {
		t.Fatal("want error for short key")
	}
	if _, err := NewBox("zz" + strings.Repeat("ab", 31)); err == nil {
		t.Fatal("want error for non-hex key")
	}
}

func TestBox_TamperDetected(t *testing.T) {
	box, _ := NewBox(strings.Repeat("cd", 32))
	sealed, _ := box.Seal("secret")
	sealed[len(sealed)-1] ^= 0xff
	if _, err := box.Open(sealed); err == nil {
		t.Fatal("want auth failure on tampered ciphertext")
	}
}
