package main

import (
	"os"

	"github.com/mgutz/ansi"
)

// Logger writes errors to stderr.
type Logger struct{}

// Error writes string to stderr in red
func (Logger) Error(s string) {
	os.Stderr.WriteString(ansi.Color(s, "red"))
}

var logger = Logger{}
