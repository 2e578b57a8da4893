// Package modmath implements the arbitrary-precision modular arithmetic used by
// the textbook RSA engine: greatest common divisor, modular inverse via the
// extended Euclidean algorithm and modular exponentiation by squaring.
//
// All functions are pure and never mutate their arguments.
package modmath
