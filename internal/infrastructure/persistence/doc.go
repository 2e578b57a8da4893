// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store image encryption sessions, that is
// the raw ciphertext sequence and public key an image decryption needs later.
package persistence
