/*
Package checkarg parses command line arguments against a registry of short
(-x) and long (--xxx) options and generates help text from it.

Example

	package main

	import (
		"fmt"
		"os"

		"github.com/brainpower/checkarg"
	)

	func main() {
		p := checkarg.New("copy")
		p.AddAutoHelp()
		p.Add('i', "input", "file to read from", checkarg.RequiredValue, "FILE")
		p.Add('v', "verbose", "print what is done", checkarg.NoValue)
		p.SetPositionalHelp("[files...]", "one or more output files")

		if err := p.Parse(os.Args); err != nil {
			os.Exit(checkarg.CodeOf(err).ExitCode())
		}
		in, _ := p.Value("input")
		fmt.Println(in, p.IsSet("verbose"), p.PosArgs())
	}

Usage:

	$ copy --help
	Usage: copy [options] [files...]

	Options:
	   -h, --help        show this help message and exit
	   -i, --input=FILE  file to read from
	   -v, --verbose     print what is done

	Positional Arguments:
	one or more output files

Syntax

Short options may be grouped: -abc is the same as -a -b -c. A short option
that takes a value consumes the rest of its group, so -ofile and -o file are
equivalent. Long options take their value either as --name=value or as the
following argument. Everything after a lone "--" is positional, unless the
"--" is itself the value of the preceding option.

Handlers

An option registered with AddHandler calls its Handler every time it
receives a value, before the next argument is looked at. Returning an error
stops the parse with CallbackFailed. Handlers see the parser through the
read-only View interface.

Struct binding

Bind registers options from the fields of a struct, in the style of

	type Config struct {
		Input   string        `checkarg:"short=i,label=FILE,help=file to read from"`
		Timeout time.Duration `checkarg:"help='how long to wait, e.g. 5s'"`
		Verbose bool          `checkarg:"short=v"`
	}

Field names become kebab-case long names unless a name tag is given.
*/
package checkarg
