// Package log provides the structured logging abstraction used by the
// simulator components.
//
// Components depend only on the Logger interface. The zerolog adapter is
// used by the command line tool; the no-op logger keeps tests quiet.
//
//	logger := log.NewZerologAdapter(os.Stderr, log.FormatConsole, zerolog.InfoLevel)
//	logger.Info("frame sent", log.Int("seq", 3))
//
// Implement Logger to plug the simulator into an existing logging setup.
package log
