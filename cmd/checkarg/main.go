// Command checkarg demonstrates the checkarg parser: it prints the options
// and positional arguments it was given and exits with the parse result
// code.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/brainpower/checkarg"
	logopts "github.com/brainpower/checkarg/slog"
)

func main() {
	var logOpts logopts.Options

	p := checkarg.New("checkarg",
		checkarg.WithDescription("Print the options and arguments given on the command line."),
		checkarg.WithPositionalHelp("[args...]", "arguments to echo back"),
	)
	p.AddAutoHelp()
	p.Add('a', "alpha", "option alpha", checkarg.RequiredValue)
	p.AddLong("beta", "option beta", checkarg.NoValue)
	p.AddHandler('c', "gamma", "option gamma", checkarg.HandlerFunc(
		func(_ checkarg.View, long, _ string) error {
			fmt.Printf("handler: %s\n", long)
			return nil
		},
	), checkarg.NoValue)
	if err := p.Bind(&logOpts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(checkarg.Err.ExitCode())
	}

	err := p.Parse(os.Args)
	logOpts.Configure()
	if err != nil {
		slog.Debug("parse failed", "err", err)
		p.ShowUsage()
		os.Exit(checkarg.CodeOf(err).ExitCode())
	}

	for _, opt := range p.Options() {
		if v, ok := p.Value(opt.Long); ok {
			slog.Info("option", "name", opt.Long, "value", v)
			fmt.Printf("--%s=%q\n", opt.Long, v)
		}
	}
	for i, arg := range p.PosArgs() {
		fmt.Printf("arg %d: %s\n", i, arg)
	}
}
