package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

const (
	modePrompt = "prompt"
	modeServe  = "serve"
)

// AppFlags carries the parsed command line.
type AppFlags struct {
	ConfigFile string
	InputFile  string
	Mode       string
}

// ParseFlags parses args (without the program name). Short aliases are
// used only when the long form is empty.
func ParseFlags(args []string, stderr io.Writer) (AppFlags, error) {
	fs := flag.NewFlagSet("urlanalyzer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configFile := fs.String("config", "", "Path to the YAML configuration file. Falls back to URL_ANALYZER_CONFIG.")
	configFileAlias := fs.String("c", "", "Alias for -config")

	inputFile := fs.String("input", "", "File of URLs to analyze instead of prompting (.txt, .csv, .html).")
	inputFileAlias := fs.String("i", "", "Alias for -input")

	mode := fs.String("mode", modePrompt, "Front-end to run: prompt or serve")
	modeAlias := fs.String("m", "", "Alias for -mode")

	if err := fs.Parse(args); err != nil {
		return AppFlags{}, err
	}

	flags := AppFlags{
		ConfigFile: firstNonEmpty(*configFile, *configFileAlias),
		InputFile:  firstNonEmpty(*inputFile, *inputFileAlias),
		Mode:       strings.ToLower(firstNonEmpty(*modeAlias, *mode)),
	}

	// A bare positional argument also selects the mode: `urlanalyzer serve`.
	if rest := fs.Args(); len(rest) > 0 {
		flags.Mode = strings.ToLower(rest[0])
	}

	switch flags.Mode {
	case modePrompt, modeServe:
	default:
		return AppFlags{}, fmt.Errorf("unknown mode %q (expected %s or %s)", flags.Mode, modePrompt, modeServe)
	}

	if flags.Mode == modeServe && flags.InputFile != "" {
		return AppFlags{}, fmt.Errorf("-input is only valid in %s mode", modePrompt)
	}

	return flags, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
