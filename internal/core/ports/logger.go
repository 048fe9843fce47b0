package ports

// Logger reports progress and failures. Error receives the full error so
// implementations can render zerr metadata and causes.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
