package auth

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
)

// Credential is the username/password pair the host server authenticates
// against. It is supplied at call time and never persisted here.
type Credential struct {
	Username string
	Password string
}

// MD5Response computes the challenge response this credential would send.
func (c Credential) MD5Response(salt [4]byte) string {
	return MD5Hash(c.Username, c.Password, salt)
}

// ScramKeys derives the SCRAM-SHA-256 key set for this credential.
func (c Credential) ScramKeys(salt []byte, iterations int) Keys {
	return DeriveKeys(c.Password, salt, iterations)
}

// MD5Hash computes the response to a PostgreSQL MD5 password challenge:
//
//	"md5" + hex(MD5(hex(MD5(password + username)) + salt))
//
// The inner digest enters the outer hash as its ASCII hex string, not as
// raw digest bytes. That mixed concatenation is what the protocol
// specifies; an all-binary version produces a hash no client accepts.
func MD5Hash(username, password string, salt [4]byte) string {
	inner := md5.Sum([]byte(password + username))
	innerHex := hex.EncodeToString(inner[:])

	outer := md5.Sum(append([]byte(innerHex), salt[:]...))
	return "md5" + hex.EncodeToString(outer[:])
}

// VerifyMD5 checks a client's challenge response against the expected
// hash for the credential and salt. The comparison is constant-time.
func VerifyMD5(candidate, username, password string, salt [4]byte) bool {
	expected := MD5Hash(username, password, salt)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(expected)) == 1
}
