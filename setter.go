package checkarg

import (
	"encoding"
	"reflect"
	"strconv"
	"time"
)

// Setter parses an option value into a bound struct field. Field types can
// implement it to take over their own parsing.
type Setter interface {
	Set(s string) error
}

// setterFor returns a Setter writing into the value v points at, or nil if
// the type is not supported.
func setterFor(v interface{}) Setter {
	switch t := v.(type) {
	case Setter:
		return t
	case encoding.TextUnmarshaler:
		return textSetter{t}
	case encoding.BinaryUnmarshaler:
		return binarySetter{t}
	case *time.Duration:
		return durationSetter{t}
	case *string:
		return stringSetter{t}
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil
	}
	switch rv.Elem().Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return kindSetter{rv.Elem()}
	}
	return nil
}

type stringSetter struct {
	v *string
}

func (ss stringSetter) Set(s string) error {
	*ss.v = s
	return nil
}

type textSetter struct {
	encoding.TextUnmarshaler
}

func (ts textSetter) Set(s string) error {
	return ts.UnmarshalText([]byte(s))
}

type binarySetter struct {
	encoding.BinaryUnmarshaler
}

func (bs binarySetter) Set(s string) error {
	return bs.UnmarshalBinary([]byte(s))
}

type durationSetter struct {
	d *time.Duration
}

func (ds durationSetter) Set(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*ds.d = d
	return nil
}

// kindSetter parses bool and numeric kinds with strconv, honouring the
// field's bit size.
type kindSetter struct {
	v reflect.Value
}

func (ks kindSetter) Set(s string) error {
	switch ks.v.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		ks.v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, ks.v.Type().Bits())
		if err != nil {
			return err
		}
		ks.v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, ks.v.Type().Bits())
		if err != nil {
			return err
		}
		ks.v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, ks.v.Type().Bits())
		if err != nil {
			return err
		}
		ks.v.SetFloat(f)
	}
	return nil
}

// pointerSetter parses into a freshly allocated value and only points the
// target field at it once parsing succeeded, so nil pointer fields stay nil
// unless their option is seen.
type pointerSetter struct {
	setter      Setter
	target      reflect.Value
	placeholder reflect.Value
}

func (ps pointerSetter) Set(s string) error {
	if err := ps.setter.Set(s); err != nil {
		return err
	}
	ps.target.Set(ps.placeholder)
	return nil
}
