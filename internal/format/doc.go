// Package format turns bibliographic records into citation strings.
//
// Each record kind has a Formatter holding a fixed $placeholder template.
// A Registry maps kinds to formatter constructors, and ListFormatter
// dispatches a mixed batch through the registry and sorts the resulting
// citations by their text. Formatting a batch is all-or-nothing: a record
// whose kind has no registered formatter fails the whole call.
package format
