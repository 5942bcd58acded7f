package clioutput

import (
	"os"

	"golang.org/x/term"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ShouldColorize decides whether output written to w should be
// colorized, given a mode.
func ShouldColorize(mode ColorMode, w any) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if f, ok := w.(*os.File); ok {
			return isTerminal(f)
		}
		return false
	}
}

// Warn renders a LineSkipped-style warning, colorized when appropriate.
func Warn(mode ColorMode, text string) string {
	if ShouldColorize(mode, os.Stderr) {
		return colorYellow + text + colorReset
	}
	return text
}

// Err renders a fatal-error message, colorized when appropriate.
func Err(mode ColorMode, text string) string {
	if ShouldColorize(mode, os.Stderr) {
		return colorRed + text + colorReset
	}
	return text
}

// Dim renders a progress/diagnostic message, colorized when appropriate.
func Dim(mode ColorMode, text string) string {
	if ShouldColorize(mode, os.Stderr) {
		return colorGray + text + colorReset
	}
	return text
}
