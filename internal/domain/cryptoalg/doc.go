// Package cryptoalg defines the contracts for RSA operations on PEM key material:
// the raw RSA primitives and the Base64 in/out service,
// together with the error kinds every implementation reports.
package cryptoalg
