// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates the global options, the command word and the command's own
// options into the application's internal configuration.
package cli
