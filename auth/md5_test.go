package auth

import (
	"strings"
	"testing"
)

func TestMD5HashKnownVector(t *testing.T) {
	salt := [4]byte{0x12, 0x34, 0x56, 0x78}

	got := MD5Hash("username1", "password1", salt)
	want := "md59e0e7f347b95bde0f6e6fd056b0c54b9"

	if got != want {
		t.Errorf("MD5Hash mismatch:\n  got  %s\n  want %s", got, want)
	}
}

func TestMD5HashShape(t *testing.T) {
	salt := [4]byte{0x01, 0x02, 0x03, 0x04}
	h := MD5Hash("user", "secret", salt)

	if !strings.HasPrefix(h, "md5") {
		t.Errorf("hash missing md5 prefix: %s", h)
	}
	if len(h) != 3+32 {
		t.Errorf("expected md5 + 32 hex chars, got length %d", len(h))
	}
}

func TestMD5HashSensitivity(t *testing.T) {
	salt := [4]byte{0x12, 0x34, 0x56, 0x78}
	base := MD5Hash("username1", "password1", salt)

	if MD5Hash("username2", "password1", salt) == base {
		t.Error("changing username did not change hash")
	}
	if MD5Hash("username1", "password2", salt) == base {
		t.Error("changing password did not change hash")
	}

	altSalt := [4]byte{0x12, 0x34, 0x56, 0x79}
	if MD5Hash("username1", "password1", altSalt) == base {
		t.Error("changing salt did not change hash")
	}
}

func TestVerifyMD5(t *testing.T) {
	salt, err := GenerateMD5Salt()
	if err != nil {
		t.Fatalf("failed to generate salt: %v", err)
	}

	cred := Credential{Username: "operator", Password: "hunter2"}
	candidate := cred.MD5Response(salt)

	if !VerifyMD5(candidate, "operator", "hunter2", salt) {
		t.Error("correct response rejected")
	}
	if VerifyMD5(candidate, "operator", "wrong", salt) {
		t.Error("wrong password accepted")
	}
	if VerifyMD5("md5deadbeef", "operator", "hunter2", salt) {
		t.Error("garbage response accepted")
	}
}
