// Package logging configures slog for indexwiz.
//
// Without --debug, warnings and errors go to stderr as text. With --debug,
// structured JSON logs are written to a size-rotated file under
// ~/.indexwiz/logs/ and can be read back with `indexwiz logs`.
package logging
