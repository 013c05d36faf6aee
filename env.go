package strictenv

import (
	"os"
	"unicode/utf8"
)

// Env is a read-only view of an environment.
type Env interface {
	LookupEnv(name string) (string, bool)
}

// OS is the Env of the current process.
var OS Env = osEnv{}

type osEnv struct{}

func (osEnv) LookupEnv(name string) (string, bool) { return os.LookupEnv(name) }

// Map is an Env backed by a plain map. It is safe for concurrent use as long
// as nobody writes to it.
type Map map[string]string

func (m Map) LookupEnv(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Lookup returns the text of the process environment variable name.
// Unset and empty variables yield a KindMissing error, values that are not
// valid UTF-8 a KindInvalidUTF8 error.
func Lookup(name string) (string, error) {
	return LookupFrom(OS, name)
}

// LookupFrom is Lookup against env.
func LookupFrom(env Env, name string) (string, error) {
	v, err := lookup(env, name)
	if err != nil {
		return "", err
	}
	return v, nil
}

func lookup(env Env, name string) (string, *Error) {
	v, found := env.LookupEnv(name)
	switch {
	case !found:
		return "", missing(name)
	case !utf8.ValidString(v):
		return "", invalidUTF8(name, v)
	case v == "":
		return "", missing(name)
	}
	return v, nil
}
