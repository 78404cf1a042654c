// Package logging provides structured logging for the storefront.
//
// This package wraps Go's log/slog to provide JSON-formatted logs with
// persistent context attributes (component, page). The terminal UI owns
// stdout and stderr while it runs, so interactive sessions log to a file in
// the configured log directory.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/logs", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("catalog loaded", "products", 12)
//
// # Context Propagation
//
//	selLogger := logger.WithComponent("selector").WithPage("product")
//	selLogger.Debug("option selected", "id", "M")
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"option selected","component":"selector","page":"product","id":"M"}
//
// # Testing
//
// Use [NopLogger] to discard output, or [NewWriterLogger] to capture it.
package logging
