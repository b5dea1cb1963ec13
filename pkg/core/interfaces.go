package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything. Handy in tests and benchmarks.
type NopLogger struct{}

func (NopLogger) Printf(string, ...interface{}) {}
