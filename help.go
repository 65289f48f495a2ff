package checkarg

import (
	"fmt"
	"io"
	"strings"

	"github.com/huandu/xstrings"
)

// Usage returns the one-line usage text, e.g. "Usage: app [options]".
func (p *Parser) Usage() string {
	if p.posUsage == "" {
		return "Usage: " + p.usageLine
	}
	return "Usage: " + p.usageLine + " " + p.posUsage
}

// HelpString returns the full help text: usage line, description, one
// aligned line per option sorted by long name, positional argument help and
// appendix.
func (p *Parser) HelpString() string {
	sb := strings.Builder{}
	p.WriteHelp(&sb)
	return sb.String()
}

// WriteHelp writes the full help text to w.
func (p *Parser) WriteHelp(w io.Writer) {
	width := p.helpColumn()

	sb := strings.Builder{}
	sb.WriteString(p.Usage())
	sb.WriteString("\n")
	if p.description != "" {
		fmt.Fprintf(&sb, "\n%s\n", p.description)
	}

	sb.WriteString("\nOptions:\n")
	p.options.Ascend(func(opt *Option) bool {
		if opt.Short == NoShort {
			sb.WriteString("      ")
		} else {
			fmt.Fprintf(&sb, "   -%c,", opt.Short)
		}
		name := " --" + opt.Long
		if opt.showsLabel() {
			name += "=" + opt.Label
		}
		sb.WriteString(xstrings.LeftJustify(name, width+3, " "))
		sb.WriteString(opt.Help)
		sb.WriteString("\n")
		return true
	})

	if p.posHelp != "" {
		fmt.Fprintf(&sb, "\nPositional Arguments:\n%s\n", p.posHelp)
	}
	if p.appendix != "" {
		fmt.Fprintf(&sb, "\n%s\n", p.appendix)
	}

	io.WriteString(w, sb.String())
}

// helpColumn is the width between "--" and the help text: the longest
// name plus "=LABEL", and two spaces of separation.
func (p *Parser) helpColumn() int {
	width := 0
	p.options.Ascend(func(opt *Option) bool {
		n := xstrings.Len(opt.Long)
		if opt.showsLabel() {
			n += xstrings.Len(opt.Label) + 1
		}
		width = max(width, n)
		return true
	})
	return width + 2
}

// ShowHelp prints the full help followed by a newline to the output.
func (p *Parser) ShowHelp() {
	fmt.Fprintln(p.out, p.HelpString())
}

// ShowUsage prints the usage line to the output.
func (p *Parser) ShowUsage() {
	fmt.Fprintln(p.out, p.Usage())
}
