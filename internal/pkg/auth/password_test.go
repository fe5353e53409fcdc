package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret12")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret12" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !CheckPassword(hash, "secret12") {
		t.Error("expected correct password to verify")
	}
	if CheckPassword(hash, "wrongpass1") {
		t.Error("expected wrong password to fail verification")
	}
}
