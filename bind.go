package checkarg

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// Bind registers one option per exported field of the struct config points
// to. Values are written to the fields as the options are parsed.
//
// Field tags look like `checkarg:"key1,key2=value"`:
//
//	-            skip the field
//	name=<name>  long name (default: the field name in kebab-case)
//	short=<c>    short alias, one character
//	help=<text>  help text; quote with '...' to include commas
//	label=<L>    value label in the help output
//	embed        treat a struct field as a group of options
//
// bool fields take no value and become true when seen. Other fields
// require a value, parsed by the field's Set, UnmarshalText or
// UnmarshalBinary method, or natively for strings, numbers and
// time.Duration. A nil pointer field is only allocated when its option is
// seen. Bound fields keep their values across parses.
func (p *Parser) Bind(config interface{}) error {
	cv := reflect.ValueOf(config)
	if !cv.IsValid() || cv.Kind() != reflect.Ptr || cv.IsNil() {
		return fmt.Errorf("config must be a struct pointer (got %T)", config)
	}
	if cv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config must be a struct pointer (got %s)", cv.Type())
	}

	fields, err := structFields(cv.Elem())
	if err != nil {
		return err
	}
	for _, f := range fields {
		if f.hasLabel {
			p.AddHandler(f.short, f.name, f.help, f.handler, f.kind, f.label)
		} else {
			p.AddHandler(f.short, f.name, f.help, f.handler, f.kind)
		}
	}
	return nil
}

type boundField struct {
	name     string
	short    rune
	help     string
	label    string
	hasLabel bool
	kind     ValueKind
	handler  Handler
}

// structFields collects the options of sv, which must be an addressable
// struct value.
func structFields(sv reflect.Value) ([]boundField, error) {
	var fields []boundField
	for i := 0; i < sv.NumField(); i++ {
		sf := sv.Type().Field(i)
		val := sv.Field(i)

		tags := parseTag(sf.Tag.Get("checkarg"))
		if _, skip := tags.pop("-"); skip {
			continue
		}

		// Exported fields of an unexported embedded struct are still
		// settable, so embedding is resolved before CanSet.
		_, embed := tags.pop("embed")
		if embed || (sf.Anonymous && val.Kind() == reflect.Struct) {
			if val.Kind() != reflect.Struct {
				return nil, fmt.Errorf("field %s.%s: embed needs a struct", sv.Type(), sf.Name)
			}
			inner, err := structFields(val)
			if err != nil {
				return nil, err
			}
			fields = append(fields, inner...)
			continue
		}
		if !val.CanSet() {
			continue
		}

		f, err := newBoundField(sf, val, tags)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s.%s", sv.Type(), sf.Name)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func newBoundField(sf reflect.StructField, val reflect.Value, tags tagSet) (boundField, error) {
	f := boundField{
		name: xstrings.ToKebabCase(sf.Name),
		kind: RequiredValue,
	}
	if name, ok := tags.pop("name"); ok {
		f.name = name
	}
	if short, ok := tags.pop("short"); ok {
		if utf8.RuneCountInString(short) != 1 {
			return f, fmt.Errorf("short name must be 1 character (got %q)", short)
		}
		f.short, _ = utf8.DecodeRuneInString(short)
	}
	f.help, _ = tags.pop("help")
	f.label, f.hasLabel = tags.pop("label")
	if rest := tags.rest(); len(rest) > 0 {
		return f, fmt.Errorf("unknown tags: %s", strings.Join(rest, ", "))
	}

	if val.Kind() == reflect.Bool {
		f.kind = NoValue
		f.handler = flagHandler{val}
		return f, nil
	}

	set, err := fieldSetter(val)
	if err != nil {
		return f, err
	}
	f.handler = setterHandler{set}
	return f, nil
}

// fieldSetter finds a Setter for val, trying both the value and its
// address since parsing methods may use either receiver.
func fieldSetter(val reflect.Value) (Setter, error) {
	target := val
	isNilPointer := val.Kind() == reflect.Ptr && val.IsNil()
	if isNilPointer {
		val = reflect.New(val.Type().Elem())
	}

	candidates := []interface{}{val.Interface()}
	if val.CanAddr() {
		candidates = append(candidates, val.Addr().Interface())
	}
	var set Setter
	for _, c := range candidates {
		if set = setterFor(c); set != nil {
			break
		}
	}
	if set == nil {
		return nil, fmt.Errorf("no setter for type %s", target.Type())
	}

	if isNilPointer {
		set = pointerSetter{setter: set, target: target, placeholder: val}
	}
	return set, nil
}

type flagHandler struct {
	v reflect.Value
}

func (h flagHandler) OnValue(View, string, string) error {
	h.v.SetBool(true)
	return nil
}

type setterHandler struct {
	set Setter
}

func (h setterHandler) OnValue(_ View, long, value string) error {
	if err := h.set.Set(value); err != nil {
		return errors.Wrapf(err, "invalid value %q for option --%s", value, long)
	}
	return nil
}
