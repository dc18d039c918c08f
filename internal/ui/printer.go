package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const (
	lineTemplateConstant = "%s\n"
)

// ConsolePrinter writes homegit's user-facing lines. Notices and warnings go
// to the output stream; errors go to the error stream.
type ConsolePrinter struct {
	output       io.Writer
	errorOutput  io.Writer
	successColor *color.Color
	warningColor *color.Color
	errorColor   *color.Color
}

// NewConsolePrinter constructs a printer over the provided streams.
func NewConsolePrinter(output io.Writer, errorOutput io.Writer) *ConsolePrinter {
	if output == nil {
		output = io.Discard
	}
	if errorOutput == nil {
		errorOutput = io.Discard
	}
	return &ConsolePrinter{
		output:       output,
		errorOutput:  errorOutput,
		successColor: color.New(color.FgGreen),
		warningColor: color.New(color.FgYellow),
		errorColor:   color.New(color.FgRed),
	}
}

// Info prints an uncolored line.
func (printer *ConsolePrinter) Info(message string) {
	fmt.Fprintf(printer.output, lineTemplateConstant, message)
}

// Success prints a line in green.
func (printer *ConsolePrinter) Success(message string) {
	printer.successColor.Fprintf(printer.output, lineTemplateConstant, message)
}

// Warning prints a line in yellow.
func (printer *ConsolePrinter) Warning(message string) {
	printer.warningColor.Fprintf(printer.output, lineTemplateConstant, message)
}

// Error prints a line in red to the error stream.
func (printer *ConsolePrinter) Error(message string) {
	printer.errorColor.Fprintf(printer.errorOutput, lineTemplateConstant, message)
}
