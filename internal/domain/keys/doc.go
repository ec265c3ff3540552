// Package keys holds the in-memory representation of resolved RSA key material.
package keys
