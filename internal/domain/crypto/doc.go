// Package crypto defines the domain model of the textbook RSA engine: keypairs
// derived from two caller primes and a fixed auxiliary Mersenne prime, the
// ciphertext bundle produced by image encryption and the sentinel errors shared
// by every layer.
package crypto
