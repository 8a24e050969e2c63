package ports

// Verifier defines the interface for verifying file existence.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// MissingFiles returns the paths that do not exist on disk, in input order.
	MissingFiles(paths []string) ([]string, error)
}
