package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// Named returns the logger registered under name, creating it on first use.
	// Asking twice for the same name yields the same logger.
	Named(name string) Logger

	// Name returns the name the logger was acquired with. The root logger has an empty name.
	Name() string
}
