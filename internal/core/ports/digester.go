package ports

// Digester computes content digests of cached values.
//
//go:generate mockgen -source=digester.go -destination=mocks/mock_digester.go -package=mocks
type Digester interface {
	// Digest returns a stable digest of value's canonical encoding.
	Digest(value any) (string, error)
}
