package checkarg

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Parse parses argv. argv[0] is the program invocation name and is never
// treated as an option; an empty argv panics.
//
// Any state left over from an earlier parse is cleared first. Parsing stops
// at the first error, which is an *Error describing what went wrong.
// Handlers run synchronously as their option's value is finalized.
func (p *Parser) Parse(argv []string) error {
	if len(argv) == 0 {
		panic("checkarg: argv must have at least one element")
	}
	if p.parsing {
		panic("checkarg: Parse called from within a handler")
	}
	p.parsing = true
	defer func() { p.parsing = false }()

	if !p.cleared {
		p.Reset()
	}
	p.cleared = false
	p.callname = argv[0]

	for _, arg := range argv[1:] {
		if err := p.parseOne(arg); err != nil {
			p.pending = nil
			return err
		}
	}
	if p.pending != nil {
		p.pending = nil
		return report(p.errOut, MissingValue, argv[len(argv)-1])
	}
	return nil
}

// Reset forgets all values and positional arguments of the last parse.
// Registered options and their handlers are kept.
func (p *Parser) Reset() {
	p.pastSep = false
	p.posArgs = nil
	p.pending = nil
	p.options.Ascend(func(opt *Option) bool {
		opt.clear()
		return true
	})
	p.cleared = true
}

func (p *Parser) parseOne(arg string) error {
	if opt := p.pending; opt != nil {
		p.pending = nil
		p.trace("value", arg, slog.String("option", opt.Long))
		return p.finalize(opt, arg)
	}

	if !p.pastSep && strings.HasPrefix(arg, "-") {
		if strings.HasPrefix(arg, "--") {
			return p.parseLong(arg[2:])
		}
		return p.parseShort(arg[1:])
	}

	p.trace("positional", arg)
	p.posArgs = append(p.posArgs, arg)
	return nil
}

func (p *Parser) parseLong(s string) error {
	if s == "" {
		p.trace("separator", "--")
		p.pastSep = true
		return nil
	}

	name, value, hasValue := strings.Cut(s, "=")
	opt, ok := p.get(name)
	if !ok {
		return report(p.errOut, InvalidOption, "--"+s)
	}
	p.trace("long", s, slog.String("option", name))

	if opt.Kind == NoValue {
		if hasValue {
			return report(p.errOut, InvalidValue, "--"+name)
		}
		return p.finalize(opt, "")
	}
	if hasValue {
		return p.finalize(opt, value)
	}
	p.pending = opt
	return nil
}

// parseShort walks a cluster of short options. An empty cluster (a bare
// "-") resolves nothing.
func (p *Parser) parseShort(cluster string) error {
	for i := 0; i < len(cluster); {
		c, size := utf8.DecodeRuneInString(cluster[i:])
		i += size

		long, ok := p.shorts[c]
		if !ok {
			return report(p.errOut, InvalidOption, string(c))
		}
		opt := p.mustGet(long)
		p.trace("short", string(c), slog.String("option", long))

		if opt.Kind == NoValue {
			if err := p.finalize(opt, ""); err != nil {
				return err
			}
			continue
		}

		// The rest of the cluster, if any, is the value.
		rest := cluster[i:]
		if rest == "" {
			p.pending = opt
			return nil
		}
		return p.finalize(opt, rest)
	}
	return nil
}

// finalize stores value on opt and hands it to the option's handler.
func (p *Parser) finalize(opt *Option, value string) error {
	opt.set(value)
	if opt.handler == nil {
		return nil
	}
	if err := opt.handler.OnValue(p, opt.Long, value); err != nil {
		return &Error{
			Code: CallbackFailed,
			Arg:  "--" + opt.Long,
			Err:  errors.Wrapf(err, "handler for --%s", opt.Long),
		}
	}
	return nil
}

func (p *Parser) trace(kind, arg string, attrs ...slog.Attr) {
	if p.log == nil {
		return
	}
	attrs = append(attrs, slog.String("kind", kind), slog.String("arg", arg))
	p.log.LogAttrs(context.Background(), slog.LevelDebug, "checkarg: token", attrs...)
}

// Callname returns argv[0] of the last parse.
func (p *Parser) Callname() string {
	return p.callname
}

// Argv0 is an alias for Callname.
func (p *Parser) Argv0() string {
	return p.callname
}

// PosArgs returns the positional arguments of the last parse in order.
func (p *Parser) PosArgs() []string {
	return slices.Clone(p.posArgs)
}

// IsSet reports whether the option was seen during the last parse.
func (p *Parser) IsSet(long string) bool {
	opt, ok := p.get(long)
	return ok && opt.value != nil
}

// Value returns the value the option received during the last parse. A
// NoValue option that was seen has the value "".
func (p *Parser) Value(long string) (string, bool) {
	opt, ok := p.get(long)
	if !ok || opt.value == nil {
		return "", false
	}
	return *opt.value, true
}
