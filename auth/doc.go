// Package auth implements the password handshakes a PostgreSQL
// wire-protocol server performs at session startup: the MD5 challenge and
// SCRAM-SHA-256.
//
// Everything here is a stateless function of explicit arguments. The
// hosting server owns per-connection state (salt, nonces, parsed
// messages) and calls in once per handshake step; concurrent connections
// share nothing. That keeps each primitive independently testable and
// keeps credentials out of long-lived objects.
//
// Key Responsibilities:
//   - MD5Hash/VerifyMD5: the two-step digest construction
//     ("md5" + hex(MD5(hex(MD5(password+username)) + salt))) — the inner
//     digest is concatenated as hex text, a protocol requirement
//   - DeriveKeys: SaltedPassword via PBKDF2-HMAC-SHA256, then ClientKey,
//     StoredKey and ServerKey
//   - Building the exact SCRAM message strings clients parse literally
//     (client-first-bare, server-first, client-final-without-proof,
//     auth message, server-final)
//   - VerifyClientProof: recover the candidate ClientKey from the proof,
//     hash, constant-time compare against StoredKey
//   - Parsing client-first and client-final messages; malformed input is
//     ErrMalformed, failed verification is the deliberately generic
//     ErrAuthFailed
//
// Message flow (server side):
//
//	cf, _ := auth.ParseClientFirst(initial)
//	serverNonce, _ := auth.GenerateNonce()
//	salt, _ := auth.GenerateSalt()
//	serverFirst := auth.ServerFirst(cf.Nonce, serverNonce, salt, auth.DefaultIterations)
//	// ... client answers ...
//	final, _ := auth.ParseClientFinal(answer)
//	keys := auth.DeriveKeys(password, salt, auth.DefaultIterations)
//	msg := auth.AuthMessage(cf.Bare, serverFirst, final.WithoutProof)
//	if err := auth.VerifyClientProof(keys.StoredKey, msg, final.Proof); err != nil {
//		// reject connection
//	}
//	reply := auth.ServerFinal(keys.ServerKey, msg)
package auth
