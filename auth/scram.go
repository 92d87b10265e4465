package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 iteration count offered to clients.
	DefaultIterations = 4096

	// keyLength is the size of every SCRAM-SHA-256 derived key.
	keyLength = sha256.Size

	// gs2Header is the channel-binding header for connections without
	// channel binding; base64("n,,") = "biws" appears in client-final.
	gs2Header = "n,,"
)

// ErrAuthFailed is the generic authentication failure. It deliberately
// carries no detail about which check failed.
var ErrAuthFailed = errors.New("authentication failed")

// ErrMalformed marks a handshake message this engine could not parse.
// The connection must be aborted before any query is served.
var ErrMalformed = errors.New("malformed SCRAM message")

// Keys holds the four values SCRAM-SHA-256 derives from a password, salt
// and iteration count. A server that stores StoredKey and ServerKey can
// verify clients without keeping the password.
type Keys struct {
	SaltedPassword []byte
	ClientKey      []byte
	StoredKey      []byte
	ServerKey      []byte
}

// DeriveKeys computes the SCRAM-SHA-256 key set for a password.
func DeriveKeys(password string, salt []byte, iterations int) Keys {
	salted := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)

	clientKey := hmacSum(salted, []byte("Client Key"))
	storedKey := sha256.Sum256(clientKey)
	serverKey := hmacSum(salted, []byte("Server Key"))

	return Keys{
		SaltedPassword: salted,
		ClientKey:      clientKey,
		StoredKey:      storedKey[:],
		ServerKey:      serverKey,
	}
}

func hmacSum(key, message []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}

// ClientFirstBare builds the client-first-message-bare: "n=<user>,r=<nonce>".
func ClientFirstBare(username, clientNonce string) string {
	return "n=" + username + ",r=" + clientNonce
}

// ServerFirst builds the server-first-message:
// "r=<client+server nonce>,s=<base64 salt>,i=<iterations>".
func ServerFirst(clientNonce, serverNonce string, salt []byte, iterations int) string {
	return fmt.Sprintf("r=%s%s,s=%s,i=%d",
		clientNonce, serverNonce, base64.StdEncoding.EncodeToString(salt), iterations)
}

// ClientFinalWithoutProof builds the client-final message up to (but not
// including) the proof: "c=biws,r=<client+server nonce>".
func ClientFinalWithoutProof(clientNonce, serverNonce string) string {
	return "c=" + base64.StdEncoding.EncodeToString([]byte(gs2Header)) + ",r=" + clientNonce + serverNonce
}

// AuthMessage assembles the value both sides sign.
func AuthMessage(clientFirstBare, serverFirst, clientFinalWithoutProof string) string {
	return clientFirstBare + "," + serverFirst + "," + clientFinalWithoutProof
}

// ClientProof computes ClientKey XOR HMAC(StoredKey, authMessage). This is
// what a client sends in the p= field of client-final.
func ClientProof(keys Keys, authMessage string) []byte {
	signature := hmacSum(keys.StoredKey, []byte(authMessage))
	proof := make([]byte, len(signature))
	for i := range signature {
		proof[i] = keys.ClientKey[i] ^ signature[i]
	}
	return proof
}

// ServerSignature computes HMAC(ServerKey, authMessage), which the server
// sends back so the client can authenticate the server in turn.
func ServerSignature(serverKey []byte, authMessage string) []byte {
	return hmacSum(serverKey, []byte(authMessage))
}

// ServerFinal builds the server-final message: "v=<base64 signature>".
func ServerFinal(serverKey []byte, authMessage string) string {
	return "v=" + base64.StdEncoding.EncodeToString(ServerSignature(serverKey, authMessage))
}

// VerifyClientProof performs the server-side check: XOR the proof with the
// recomputed client signature to recover a candidate ClientKey, hash it,
// and compare against StoredKey in constant time.
func VerifyClientProof(storedKey []byte, authMessage string, proof []byte) error {
	signature := hmacSum(storedKey, []byte(authMessage))
	if len(proof) != len(signature) {
		return fmt.Errorf("%w: client proof has wrong length", ErrMalformed)
	}

	candidateKey := make([]byte, len(signature))
	for i := range signature {
		candidateKey[i] = proof[i] ^ signature[i]
	}

	candidateStored := sha256.Sum256(candidateKey)
	if subtle.ConstantTimeCompare(candidateStored[:], storedKey) != 1 {
		return ErrAuthFailed
	}
	return nil
}

// ClientFirst is the parsed client-first-message.
type ClientFirst struct {
	Username string
	Nonce    string
	Bare     string
}

// ParseClientFirst parses a SCRAM client-first-message, with or without
// the leading "n,," GS2 header. Unknown attributes are ignored; a missing
// username or nonce is a protocol error.
func ParseClientFirst(message string) (ClientFirst, error) {
	bare := strings.TrimPrefix(message, gs2Header)

	var cf ClientFirst
	cf.Bare = bare

	for _, part := range strings.Split(bare, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		switch key {
		case "n":
			cf.Username = value
		case "r":
			cf.Nonce = value
		}
	}

	if cf.Username == "" || cf.Nonce == "" {
		return ClientFirst{}, fmt.Errorf("%w: missing username or client nonce in client-first", ErrMalformed)
	}
	return cf, nil
}

// ClientFinal is the parsed client-final-message: the decoded proof and
// the message with the p= field removed, as signed by both sides.
type ClientFinal struct {
	WithoutProof string
	Proof        []byte
}

// ParseClientFinal parses a SCRAM client-final-message
// ("c=biws,r=<nonce>,p=<base64 proof>").
func ParseClientFinal(message string) (ClientFinal, error) {
	var cf ClientFinal
	var proofB64 string

	for _, part := range strings.Split(message, ",") {
		if key, value, ok := strings.Cut(part, "="); ok && key == "p" {
			proofB64 = value
			continue
		}
		if cf.WithoutProof != "" {
			cf.WithoutProof += ","
		}
		cf.WithoutProof += part
	}

	if proofB64 == "" {
		return ClientFinal{}, fmt.Errorf("%w: missing client proof in client-final", ErrMalformed)
	}

	proof, err := base64.StdEncoding.DecodeString(proofB64)
	if err != nil {
		return ClientFinal{}, fmt.Errorf("%w: invalid base64 in client proof: %v", ErrMalformed, err)
	}
	cf.Proof = proof

	return cf, nil
}
