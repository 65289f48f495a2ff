package checkarg

// Add registers an option without a handler. short may be NoShort. The
// optional label names the value in help output; when it is omitted, a
// RequiredValue option is labelled with its upper-cased long name, and an
// explicit "" suppresses the label.
//
// Registering a long name twice replaces the earlier option.
func (p *Parser) Add(short rune, long, help string, kind ValueKind, label ...string) {
	p.register(newOption(short, long, help, nil, kind, label))
}

// AddHandler is like Add, and binds h to be called with every value the
// option receives.
func (p *Parser) AddHandler(short rune, long, help string, h Handler, kind ValueKind, label ...string) {
	p.register(newOption(short, long, help, h, kind, label))
}

// AddLong registers an option that has no short alias.
func (p *Parser) AddLong(long, help string, kind ValueKind, label ...string) {
	p.register(newOption(NoShort, long, help, nil, kind, label))
}

// AddLongHandler registers an option with a handler and no short alias.
func (p *Parser) AddLongHandler(long, help string, h Handler, kind ValueKind, label ...string) {
	p.register(newOption(NoShort, long, help, h, kind, label))
}

// AddAutoHelp registers -h/--help. When seen, the full help is written to
// the output and the process exits with status 0, without returning from
// Parse. Use WithExitFunc to intercept the exit.
func (p *Parser) AddAutoHelp() {
	p.AddHandler('h', "help", "show this help message and exit", autoHelp{p}, NoValue)
}

type autoHelp struct {
	p *Parser
}

func (h autoHelp) OnValue(View, string, string) error {
	h.p.ShowHelp()
	h.p.exit(0)
	return nil
}

// Remove unregisters the option with the given long name together with its
// short alias. It reports whether such an option existed.
func (p *Parser) Remove(long string) bool {
	old, ok := p.options.Delete(&Option{Long: long})
	if !ok {
		return false
	}
	if old.Short != NoShort && p.shorts[old.Short] == long {
		delete(p.shorts, old.Short)
	}
	return true
}

// Lookup returns the registered option with the given long name.
func (p *Parser) Lookup(long string) (Option, bool) {
	opt, ok := p.get(long)
	if !ok {
		return Option{}, false
	}
	return *opt, true
}

// Options returns all registered options sorted by long name.
func (p *Parser) Options() []Option {
	opts := make([]Option, 0, p.options.Len())
	p.options.Ascend(func(opt *Option) bool {
		opts = append(opts, *opt)
		return true
	})
	return opts
}

func (p *Parser) register(opt *Option) {
	if old, replaced := p.options.ReplaceOrInsert(opt); replaced {
		if old.Short != NoShort && p.shorts[old.Short] == old.Long {
			delete(p.shorts, old.Short)
		}
	}
	if opt.Short == NoShort {
		return
	}
	if prev, ok := p.shorts[opt.Short]; ok && prev != opt.Long {
		if owner, ok := p.get(prev); ok {
			owner.Short = NoShort
		}
	}
	p.shorts[opt.Short] = opt.Long
}

func (p *Parser) get(long string) (*Option, bool) {
	return p.options.Get(&Option{Long: long})
}

// mustGet resolves a long name the tokenizer has already validated.
func (p *Parser) mustGet(long string) *Option {
	opt, ok := p.get(long)
	if !ok {
		panic("checkarg: BUG: no option registered for --" + long)
	}
	return opt
}
