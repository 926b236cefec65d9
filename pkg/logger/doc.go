// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The package aims to standardise structured logging across services by
// exposing a single factory – New – that creates a *slog.Logger configured by
// a set of Option functions. These options allow you to:
//
//   • Select an output format (text or json)
//   • Set the minimum log level
//   • Supply default slog.Attr values applied to every record
//   • Register ContextExtractor callbacks that inject attributes pulled from a
//     context value (for example a request id) every time Handle is invoked.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format. When extractors are registered it wraps that handler in a
// ContextHandler, which runs them per record and appends their attributes
// unless the record already logs the same key.
//
// Helper constructors such as Group, Error, Zone, etc. live in attr.go and
// return commonly-used slog.Attr instances to keep attribute naming consistent
// across the codebase.
//
// # Usage
//
//	import "github.com/rapturekit/helper/pkg/logger"
//
//	func main() {
//	    level, _ := logger.ParseLevel(os.Getenv("LOG_LEVEL"))
//	    log := logger.New(
//	        logger.WithLevel(level),
//	        logger.WithTextFormatter(),
//	        logger.WithContextValue("request_id", ctxKeyRequestID),
//	    )
//	    logger.SetAsDefault(log)
//
//	    ctx := context.WithValue(context.Background(), ctxKeyRequestID, "abc-123")
//	    log.InfoContext(ctx, "zone resolved",
//	        logger.Zone(loc),
//	        logger.Duration(time.Since(start)),
//	    )
//	}
//
// # Configuration
//
// The behaviour of New can be tuned with a variety of Option helpers:
//
//   • WithFormat / WithTextFormatter / WithJSONFormatter – override output format.
//   • WithLevel / ParseLevel – set a custom slog.Level.
//   • ParseFormat – map a flag or env value to a Format.
//   • WithAttr – attach static attributes.
//   • WithContextExtractors / WithContextValue – inject attributes from context.
//
// # Error Handling
//
// Helper functions Error and Errors produce attributes only when the supplied
// error value is non-nil allowing calls like:
//
//	log.Info("operation succeeded", logger.Error(err))
//
// without an additional nil check.
package logger
