package checkarg

import "strings"

// ValueKind tells whether an option takes a value.
type ValueKind int

const (
	NoValue ValueKind = iota
	RequiredValue
)

func (k ValueKind) String() string {
	switch k {
	case NoValue:
		return "NoValue"
	case RequiredValue:
		return "RequiredValue"
	default:
		return "ValueKind(?)"
	}
}

// NoShort registers an option without a short alias.
const NoShort rune = 0

// View is the read-only side of a Parser that handlers get to see.
type View interface {
	Callname() string
	PosArgs() []string
	IsSet(long string) bool
	Value(long string) (string, bool)
	Usage() string
	HelpString() string
}

// Handler is notified every time a value for its option is finalized. A
// NoValue option is reported with an empty value. Returning an error stops
// the parse with CallbackFailed.
type Handler interface {
	OnValue(v View, long, value string) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(v View, long, value string) error

func (f HandlerFunc) OnValue(v View, long, value string) error {
	return f(v, long, value)
}

// Option describes one registered option. The current value and handler
// are only reachable through the Parser.
type Option struct {
	Short rune
	Long  string
	Help  string
	Kind  ValueKind
	Label string

	value   *string
	handler Handler
}

func newOption(short rune, long, help string, h Handler, kind ValueKind, label []string) *Option {
	opt := &Option{
		Short:   short,
		Long:    long,
		Help:    help,
		Kind:    kind,
		handler: h,
	}
	switch {
	case len(label) > 0:
		opt.Label = label[0]
	case kind == RequiredValue:
		opt.Label = strings.ToUpper(long)
	}
	return opt
}

// showsLabel reports whether help output carries a "=LABEL" suffix.
func (o *Option) showsLabel() bool {
	return o.Kind == RequiredValue && o.Label != ""
}

func (o *Option) set(value string) {
	o.value = &value
}

func (o *Option) clear() {
	o.value = nil
}
