package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

var ErrWrongArgs = errors.New("wrong args")

type AppMode int

const (
	DemoMode AppMode = iota
	CalcMode
)

type Config struct {
	Mode AppMode

	Left  string
	Op    string
	Right string

	Parallel bool
	Verbose  bool
}

// NewConfig parses command-line arguments without the program name.
// Usage text for the selected command is written to w on wrong arguments.
func NewConfig(args []string, w io.Writer) (*Config, error) {
	cfg := &Config{}

	if len(args) < 1 {
		fmt.Fprint(w, mainHelp)
		return nil, ErrWrongArgs
	}

	fs := flag.FlagSet{}
	fs.SetOutput(w)

	var rest []string
	switch args[0] {
	case "demo":
		cfg.Mode = DemoMode

		fs.StringVar(&cfg.Left, "a", "-400", "minuend")
		fs.StringVar(&cfg.Right, "b", "-30", "subtrahend")
		cfg.Op = "-"

		rest = args[1:]
	case "calc":
		if len(args) < 4 {
			fmt.Fprint(w, calcHelp)
			return nil, ErrWrongArgs
		}

		cfg.Mode = CalcMode
		cfg.Left = args[1]
		cfg.Op = args[2]
		cfg.Right = args[3]

		fs.BoolVar(&cfg.Parallel, "parallel", false, "multiply in several goroutines")

		rest = args[4:]
	default:
		fmt.Fprint(w, mainHelp)
		return nil, ErrWrongArgs
	}

	fs.BoolVar(&cfg.Verbose, "verbose", false, "log every operation")
	fs.BoolVar(&cfg.Verbose, "v", false, "log every operation (shorthand)")

	err := fs.Parse(rest)
	if err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(w, "unexpected arguments: %v\n", fs.Args())
		return nil, ErrWrongArgs
	}

	return cfg, nil
}
