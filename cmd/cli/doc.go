// Package cli constructs the homegit command-line interface. It classifies the
// raw arguments, loads configuration from the environment and an optional
// config file, routes the invocation to the matching cobra command, and maps
// homegit failures to user-facing messages and exit codes.
package cli
