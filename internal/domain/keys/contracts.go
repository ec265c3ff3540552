package keys

// KeyResolver turns PEM text into a classified key.
type KeyResolver interface {
	// Resolve parses pemText, retrying once on a repaired copy when the text is malformed.
	Resolve(pemText string) (*ResolvedKey, error)
}
