// Package logger provides a leveled logger with CHECK-style assertions that
// abort the process.
//
// # Line Format
//
// Every emitted line on the destination (standard error by default) reads
//
//	<C> <pid> <tid> <file>:<line>] <message>
//
// where <C> is one of V D I W E F, pid and tid are right-aligned in five
// columns and <file> is the base name of the calling source file. A message
// containing newlines is written as several prefixed lines in one Write.
//
// # Features
//
//   - Global package-level functions, plus *Logger for injection
//   - Severity threshold (default INFO) with nested scoped overrides
//   - PLog variants that append the description of a captured errno
//   - Check, CheckEq, CheckStrEq, ... that log FATAL and abort on failure
//   - Unimplemented markers naming the calling function
//   - Incremental messages via Stream(...).Add(...).Emit()
//   - Optional file tee with timestamps, optional colour, journald prefixes
//
// # Usage
//
// Initialize once at startup:
//
//	logger.Init(logger.Config{Severity: "debug", FilePath: "/var/log/app.log"})
//	defer logger.Close()
//
// Log:
//
//	logger.Infof("server started on port %d", 8080)
//	logger.PLog(logger.Error, err, "open ", path)
//
// Temporarily lower the threshold:
//
//	defer logger.ScopedSeverity(logger.Debug).Restore()
//
// Assert invariants:
//
//	logger.Check(len(buf) > 0)
//	logger.CheckEq(got, want)
//
// # Fatal
//
// A FATAL line is always written regardless of the threshold, the
// destination is synced and the process is aborted with SIGABRT (on Unix),
// so a supervisor sees a crash rather than a clean exit. Fatalf, Fatalln and
// every failed Check never return.
//
// # Severity Selection
//
// Config.Severity wins; when empty, the LOGGER_SEVERITY environment variable
// is used:
//
//	LOGGER_SEVERITY=debug ./myapp
package logger
