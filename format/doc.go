// Package format names the input document formats and decodes them into
// Go values for printing.
package format
