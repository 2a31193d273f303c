// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and two scoping helpers:
//
//   - WithRayID attaches the request id set by the rayid middleware, so every log
//     line of one HTTP request can be correlated.
//   - ForRun attaches an op name and a generated run id to a batch run (extract,
//     import, orphan scan), so per-record lines of one run can be grouped.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	runLog, runID := logger.ForRun(log, "import")
//	runLog.Info("Import started")
package logger
