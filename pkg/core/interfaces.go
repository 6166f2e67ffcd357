package core

// Logger is the logging sink used by renderers, scene loaders and the web server
type Logger interface {
	Printf(format string, args ...any)
}
