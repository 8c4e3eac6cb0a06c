package models

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestCheckFlag(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("THC{WIN}"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	challenge := Challenge{Flag: string(hashed)}

	ok, err := challenge.CheckFlag("THC{WIN}")
	if err != nil || !ok {
		t.Fatalf("correct flag: ok=%v err=%v", ok, err)
	}

	ok, err = challenge.CheckFlag("THC{LOSE}")
	if err != nil {
		t.Fatalf("wrong flag must not error: %v", err)
	}
	if ok {
		t.Fatal("wrong flag accepted")
	}
}

func TestCheckFlagFailsClosed(t *testing.T) {
	// 哈希缺失
	empty := Challenge{Flag: ""}
	ok, err := empty.CheckFlag("anything")
	if ok {
		t.Fatal("missing hash must not verify")
	}
	if !errors.Is(err, ErrFlagHashMissing) {
		t.Fatalf("got %v, want ErrFlagHashMissing", err)
	}

	// 哈希损坏
	corrupt := Challenge{Flag: "not-a-bcrypt-hash"}
	ok, err = corrupt.CheckFlag("anything")
	if ok {
		t.Fatal("corrupt hash must not verify")
	}
	if err == nil {
		t.Fatal("corrupt hash must surface an error")
	}
}

func TestHashFlagRoundTrip(t *testing.T) {
	hashed, err := HashFlag("THC{ROUND_TRIP}")
	if err != nil {
		t.Fatalf("HashFlag: %v", err)
	}
	if hashed == "THC{ROUND_TRIP}" {
		t.Fatal("flag stored in plaintext")
	}

	challenge := Challenge{Flag: hashed}
	ok, err := challenge.CheckFlag("THC{ROUND_TRIP}")
	if err != nil || !ok {
		t.Fatalf("round trip: ok=%v err=%v", ok, err)
	}
}
