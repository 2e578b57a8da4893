// Package cryptoalg defines the contracts of the textbook RSA engine: the
// element-wise RSA processor, the image codec and the image pipeline.
package cryptoalg
