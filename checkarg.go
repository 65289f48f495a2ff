package checkarg

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/btree"
)

// Parser holds the option registry and the state of the most recent parse.
// A Parser may be reused for any number of sequential parses but must not
// be shared between goroutines.
type Parser struct {
	appName     string
	usageLine   string
	description string
	appendix    string
	posUsage    string
	posHelp     string

	options *btree.BTreeG[*Option]
	shorts  map[rune]string

	callname string
	posArgs  []string
	pastSep  bool
	pending  *Option
	cleared  bool
	parsing  bool

	out    io.Writer
	errOut io.Writer
	log    *slog.Logger
	exit   func(int)
}

// New creates a Parser for the program appName. The default usage line is
// "<appName> [options]".
func New(appName string, opts ...ParserOption) *Parser {
	p := &Parser{
		appName:   appName,
		usageLine: appName + " [options]",
		options: btree.NewG[*Option](8, func(a, b *Option) bool {
			return a.Long < b.Long
		}),
		shorts:  map[rune]string{},
		cleared: true,
		out:     os.Stdout,
		errOut:  os.Stderr,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		exit:    os.Exit,
	}
	for _, opt := range opts {
		opt.Apply(p)
	}
	return p
}

// AppName returns the program name the Parser was created with.
func (p *Parser) AppName() string {
	return p.appName
}

// SetDescription sets the free text printed between the usage line and the
// option list.
func (p *Parser) SetDescription(description string) *Parser {
	p.description = description
	return p
}

// SetAppendix sets the free text printed at the very end of the help.
func (p *Parser) SetAppendix(appendix string) *Parser {
	p.appendix = appendix
	return p
}

// SetUsageLine replaces the whole usage line, program name included.
func (p *Parser) SetUsageLine(line string) *Parser {
	p.usageLine = line
	return p
}

// SetPositionalHelp sets the usage fragment appended to the usage line and
// the description printed under "Positional Arguments:".
func (p *Parser) SetPositionalHelp(usage, description string) *Parser {
	p.posUsage = usage
	p.posHelp = description
	return p
}

type ParserOption interface {
	Apply(p *Parser)
}

type parserOptionFunc func(p *Parser)

func (of parserOptionFunc) Apply(p *Parser) {
	of(p)
}

func WithDescription(description string) ParserOption {
	return parserOptionFunc(func(p *Parser) {
		p.SetDescription(description)
	})
}

func WithAppendix(appendix string) ParserOption {
	return parserOptionFunc(func(p *Parser) {
		p.SetAppendix(appendix)
	})
}

func WithUsageLine(line string) ParserOption {
	return parserOptionFunc(func(p *Parser) {
		p.SetUsageLine(line)
	})
}

func WithPositionalHelp(usage, description string) ParserOption {
	return parserOptionFunc(func(p *Parser) {
		p.SetPositionalHelp(usage, description)
	})
}

// WithOutput sets where ShowHelp and ShowUsage write. Defaults to os.Stdout.
func WithOutput(w io.Writer) ParserOption {
	return parserOptionFunc(func(p *Parser) {
		p.out = w
	})
}

// WithErrOutput sets where parse diagnostics are written. Defaults to
// os.Stderr; nil silences them.
func WithErrOutput(w io.Writer) ParserOption {
	return parserOptionFunc(func(p *Parser) {
		p.errOut = w
	})
}

// WithLogger sets the logger used to trace tokenization at debug level.
func WithLogger(l *slog.Logger) ParserOption {
	return parserOptionFunc(func(p *Parser) {
		p.log = l
	})
}

// WithExitFunc replaces os.Exit for the auto-help handler.
func WithExitFunc(exit func(int)) ParserOption {
	return parserOptionFunc(func(p *Parser) {
		p.exit = exit
	})
}
