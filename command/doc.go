// Package command exposes go-command compatible handlers that define
// enumerated attributes on a host and validate models against it. Commands
// can be dispatched by any transport that speaks go-command.
package command
