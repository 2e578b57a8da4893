// Package sessions models image encryption sessions: the persisted raw ciphertext
// that a later image decryption depends on.
package sessions
