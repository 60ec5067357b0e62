package crypto

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if err := CheckPassword(hash, "secret"); err != nil {
		t.Fatalf("expected password to match")
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatalf("expected password mismatch")
	}
}

func TestSessionToken(t *testing.T) {
	a, err := NewSessionToken()
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	b, err := NewSessionToken()
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if a == b {
		t.Fatalf("tokens must not repeat")
	}
	if len(a) < 40 {
		t.Fatalf("token too short: %q", a)
	}
}
