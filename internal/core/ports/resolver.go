package ports

// SourceResolver defines the interface for resolving source patterns.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type SourceResolver interface {
	// ResolveSources expands files, directories and patterns relative to root into
	// absolute file paths. Order follows the patterns; duplicates are dropped.
	ResolveSources(patterns []string, root string) ([]string, error)
}
