// Package app implements the RSA operations offered to host applications:
// PEM keys and Base64 payloads in, Base64 results or a verification verdict out.
package app
