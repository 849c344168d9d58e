//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"
)

type KeyCommand struct {
	*pflag.FlagSet

	Check   []string
	File    string
	Verbose bool

	output io.Writer
	logger hclog.Logger
}

var ErrCheckWithNames = errors.New("--check does not take names or --file")

func NewKeyCommand() (cmd *KeyCommand) {
	flagSet := pflag.NewFlagSet("regkey", pflag.ContinueOnError)

	cmd = &KeyCommand{
		FlagSet: flagSet,
		output:  os.Stderr,
	}

	cmd.StringArrayVarP(&cmd.Check, "check", "c", nil, "Verify a registration key instead of making one")
	cmd.StringVarP(&cmd.File, "file", "f", "", "Read names from a file ('-' for stdin)")
	cmd.BoolVarP(&cmd.Verbose, "verbose", "v", false, "Trace the key fields")

	cmd.Usage = func() {
		fmt.Fprintf(cmd.output, "Usage: regkey [options] [name...]\n\n")
		fmt.Fprintf(cmd.output, "Names are %d to %d characters long; without one, %q is used.\n\n",
			MinNameLength, MaxNameLength, DefaultName)
		cmd.PrintDefaults()
	}

	return
}

// SetOutput sends usage and flag errors to writer
func (cmd *KeyCommand) SetOutput(writer io.Writer) {
	cmd.output = writer
	cmd.FlagSet.SetOutput(writer)
}

func (cmd *KeyCommand) names() (names []string, err error) {
	if len(cmd.File) > 0 {
		var reader io.Reader = os.Stdin
		if cmd.File != "-" {
			var file *os.File
			file, err = os.Open(cmd.File)
			if err != nil {
				return
			}
			defer func() { file.Close() }()
			reader = file
		}

		names, err = ReadNames(reader)
		if err != nil {
			err = fmt.Errorf("%s: %w", cmd.File, err)
			return
		}
	}

	names = append(names, cmd.Args()...)

	return
}

func (cmd *KeyCommand) check(stdout, stderr io.Writer) (failed int) {
	for _, token := range cmd.Check {
		name, err := CheckToken(token)
		if err != nil {
			fmt.Fprintln(stderr, err)
			failed++
			continue
		}

		cmd.logger.Debug("verified key", "token", token, "name", name)
		fmt.Fprintf(stdout, "OK: name %q\n", name)
	}

	return
}

func (cmd *KeyCommand) encode(names []string, stdout, stderr io.Writer) (failed int) {
	useDefault := len(names) == 0
	if useDefault {
		names = []string{DefaultName}
		fmt.Fprintf(stdout, "Using default name %q.\n", DefaultName)
	}

	for _, info := range EncodeAll(names) {
		if !useDefault {
			fmt.Fprintf(stdout, "Using name %q.\n", info.Name)
		}

		if info.Err != nil {
			fmt.Fprintf(stderr, "%q: %v\n", info.Name, info.Err)
			failed++
			continue
		}

		key := info.Key
		cmd.logger.Debug("key fields",
			"name", info.Name,
			"prefix", fmt.Sprintf("%#02x", key.Prefix),
			"license", fmt.Sprintf("%#08x", key.License),
			"checksum", fmt.Sprintf("%#08x", key.Checksum),
			"trailer", fmt.Sprintf("% x", key.Trailer),
			"length", key.Len())

		if info.Name == DefaultName {
			fmt.Fprintln(stdout, ReferenceToken)
		}
		fmt.Fprintln(stdout, info.Token)
	}

	return
}

// Run makes (or checks) keys; failures are reported on stderr
func (cmd *KeyCommand) Run(stdout, stderr io.Writer) (err error) {
	level := hclog.Warn
	if cmd.Verbose {
		level = hclog.Debug
	}

	cmd.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "regkey",
		Level:  level,
		Output: stderr,
	})

	if len(cmd.Check) > 0 && (cmd.NArg() > 0 || len(cmd.File) > 0) {
		err = ErrCheckWithNames
		return
	}

	var failed, total int
	if len(cmd.Check) > 0 {
		total = len(cmd.Check)
		failed = cmd.check(stdout, stderr)
	} else {
		var names []string
		names, err = cmd.names()
		if err != nil {
			return
		}

		total = len(names)
		if total == 0 {
			total = 1
		}
		failed = cmd.encode(names, stdout, stderr)
	}

	if failed > 0 {
		err = fmt.Errorf("%d of %d failed", failed, total)
		return
	}

	return
}

func main() {
	cmd := NewKeyCommand()
	cmd.SetOutput(os.Stderr)

	err := cmd.Parse(os.Args[1:])
	if err == pflag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	err = cmd.Run(os.Stdout, os.Stderr)
	if err == ErrCheckWithNames {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err != nil {
		cmd.logger.Debug("run failed", "error", err)
		os.Exit(1)
	}
}
