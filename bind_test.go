package checkarg

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindCommon struct {
	Verbose bool `checkarg:"short=v"`
}

func TestBindBasic(t *testing.T) {
	type Cmd struct {
		Bool   bool
		String string
		Int    int
	}
	cmd := &Cmd{}
	p := newTestParser()
	require.NoError(t, p.Bind(cmd))

	require.NoError(t, p.Parse([]string{
		"/bin",
		"--bool",
		"--string", "hello",
		"--int", "42",
	}))

	expected := &Cmd{
		Bool:   true,
		String: "hello",
		Int:    42,
	}
	assert.Equal(t, expected, cmd)
}

func TestBindKitchenSink(t *testing.T) {
	type Cmd struct {
		bindCommon
		Bool              bool
		String            string
		Int               int
		StringPointer     *string
		StringZeroValue   string
		StringWithDefault string
		StringWithName    string `checkarg:"name=blah"`
		StringWithShort   string `checkarg:"short=s"`
		Int64Pointer      *int64
		Int64WithDefault  int64
		Small             uint8
		Float             float64
		Time              time.Time
		Duration          time.Duration
		Skipped           string `checkarg:"-"`
		unexportedInt     int
	}

	cmd := &Cmd{
		StringWithDefault: "hello",
		Int64WithDefault:  -123,
	}
	p := newTestParser()
	require.NoError(t, p.Bind(cmd))

	require.NoError(t, p.Parse([]string{
		"/bin",
		"-v",
		"--bool",
		"--string", "hello",
		"--int", "42",
		"--string-pointer=hello",
		"--blah", "hello",
		"-shello",
		"--int64-pointer", "0x7b",
		"--small", "255",
		"--float", "2.5",
		"--time", "2022-02-22T22:22:22Z",
		"--duration", "15m",
		"positional",
	}))

	stringPointerValue := "hello"
	int64PointerValue := int64(123)
	timeValue, err := time.Parse(time.RFC3339, "2022-02-22T22:22:22Z")
	require.NoError(t, err)

	expected := &Cmd{
		bindCommon:        bindCommon{Verbose: true},
		Bool:              true,
		String:            "hello",
		Int:               42,
		StringPointer:     &stringPointerValue,
		StringZeroValue:   "",
		StringWithDefault: "hello",
		StringWithName:    "hello",
		StringWithShort:   "hello",
		Int64Pointer:      &int64PointerValue,
		Int64WithDefault:  -123,
		Small:             255,
		Float:             2.5,
		Time:              timeValue,
		Duration:          15 * time.Minute,
	}
	assert.Equal(t, expected, cmd)
	assert.Equal(t, []string{"positional"}, p.PosArgs())

	_, ok := p.Lookup("skipped")
	assert.False(t, ok)
	_, ok = p.Lookup("unexported-int")
	assert.False(t, ok)

	// Bound options still report through the parser.
	v, ok := p.Value("blah")
	assert.True(t, ok)
	assert.Equal(t, "hello", v)
}

func TestBindNilPointerStaysNil(t *testing.T) {
	type Cmd struct {
		Count *int
	}
	cmd := &Cmd{}
	p := newTestParser()
	require.NoError(t, p.Bind(cmd))

	require.NoError(t, p.Parse([]string{"/bin"}))
	assert.Nil(t, cmd.Count)

	err := p.Parse([]string{"/bin", "--count", "many"})
	assert.Equal(t, CallbackFailed, CodeOf(err))
	assert.Nil(t, cmd.Count)

	require.NoError(t, p.Parse([]string{"/bin", "--count", "3"}))
	require.NotNil(t, cmd.Count)
	assert.Equal(t, 3, *cmd.Count)
}

func TestBindPointerWithDefault(t *testing.T) {
	type Cmd struct {
		URL *url.URL `checkarg:"name=url"`
	}
	cmd := &Cmd{
		URL: &url.URL{Scheme: "https", Host: "example.com"},
	}
	p := newTestParser()
	require.NoError(t, p.Bind(cmd))

	require.NoError(t, p.Parse([]string{"/bin"}))
	assert.Equal(t, "https://example.com", cmd.URL.String())

	require.NoError(t, p.Parse([]string{"/bin", "--url", "http://localhost:8080/x"}))
	assert.Equal(t, "http://localhost:8080/x", cmd.URL.String())
}

type upperSetter struct {
	got string
}

func (u *upperSetter) Set(s string) error {
	u.got = s + "!"
	return nil
}

func TestBindCustomSetter(t *testing.T) {
	type Cmd struct {
		Shout upperSetter
	}
	cmd := &Cmd{}
	p := newTestParser()
	require.NoError(t, p.Bind(cmd))

	require.NoError(t, p.Parse([]string{"/bin", "--shout", "hey"}))
	assert.Equal(t, "hey!", cmd.Shout.got)
}

func TestBindInvalidValue(t *testing.T) {
	type Cmd struct {
		Number int `checkarg:"short=n"`
	}
	p := newTestParser()
	require.NoError(t, p.Bind(&Cmd{}))

	err := p.Parse([]string{"/bin", "-n", "abc"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCallbackFailed)
	assert.Contains(t, err.Error(), `invalid value "abc" for option --number`)

	err = p.Parse([]string{"/bin", "--number", "300000000000000000000"})
	assert.Equal(t, CallbackFailed, CodeOf(err))
}

func TestBindHelp(t *testing.T) {
	type Cmd struct {
		Input   string        `checkarg:"short=i,label=FILE,help=file to read from"`
		Timeout time.Duration `checkarg:"help='how long to wait, e.g. 5s'"`
		Name    string        `checkarg:"label="`
		Verbose bool          `checkarg:"short=v,help=print more"`
	}
	p := newTestParser()
	require.NoError(t, p.Bind(&Cmd{}))

	assert.Equal(t, ""+
		"Usage: test [options]\n"+
		"\n"+
		"Options:\n"+
		"   -i, --input=FILE       file to read from\n"+
		"       --name             \n"+
		"       --timeout=TIMEOUT  how long to wait, e.g. 5s\n"+
		"   -v, --verbose          print more\n",
		p.HelpString(),
	)
}

func TestBindErrors(t *testing.T) {
	p := newTestParser()

	err := p.Bind(nil)
	assert.EqualError(t, err, "config must be a struct pointer (got <nil>)")

	err = p.Bind(struct{}{})
	assert.EqualError(t, err, "config must be a struct pointer (got struct {})")

	n := 1
	err = p.Bind(&n)
	assert.EqualError(t, err, "config must be a struct pointer (got *int)")

	type UnknownTag struct {
		Foo string `checkarg:"required"`
	}
	err = p.Bind(&UnknownTag{})
	assert.EqualError(t, err, "field checkarg.UnknownTag.Foo: unknown tags: required")

	type LongShort struct {
		Foo string `checkarg:"short=ab"`
	}
	err = p.Bind(&LongShort{})
	assert.EqualError(t, err, `field checkarg.LongShort.Foo: short name must be 1 character (got "ab")`)

	type Unsupported struct {
		Foo []string
	}
	err = p.Bind(&Unsupported{})
	assert.EqualError(t, err, "field checkarg.Unsupported.Foo: no setter for type []string")

	type BadEmbed struct {
		Foo string `checkarg:"embed"`
	}
	err = p.Bind(&BadEmbed{})
	assert.EqualError(t, err, "field checkarg.BadEmbed.Foo: embed needs a struct")

	assert.Empty(t, p.Options())
}
