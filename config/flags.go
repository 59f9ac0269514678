package config

import (
	"github.com/spf13/pflag"

	hashchain "github.com/mgtv-tech/hashchain-go"
)

var _ hashchain.Mapping[string, any] = (*FlagSource)(nil)

// FlagSource exposes the flags of a pflag.FlagSet, enumerated in the flag
// set's order. Values keep the flag's type for the common scalar and slice
// flag types and fall back to the flag's string form otherwise.
type FlagSource struct {
	fs          *pflag.FlagSet
	changedOnly bool
}

// Flags returns the flags explicitly set on the command line.
func Flags(fs *pflag.FlagSet) *FlagSource {
	return &FlagSource{fs: fs, changedOnly: true}
}

// FlagDefaults returns every defined flag. Placed after Flags in a chain it
// supplies the default of each flag that was not set.
func FlagDefaults(fs *pflag.FlagSet) *FlagSource {
	return &FlagSource{fs: fs}
}

func (s *FlagSource) lookup(key string) *pflag.Flag {
	f := s.fs.Lookup(key)
	if f == nil || (s.changedOnly && !f.Changed) {
		return nil
	}
	return f
}

func (s *FlagSource) Get(key string) (any, bool) {
	f := s.lookup(key)
	if f == nil {
		return nil, false
	}
	return s.value(f), true
}

func (s *FlagSource) value(f *pflag.Flag) any {
	var (
		val any
		err error
	)
	switch f.Value.Type() {
	case "bool":
		val, err = s.fs.GetBool(f.Name)
	case "int":
		val, err = s.fs.GetInt(f.Name)
	case "int64":
		val, err = s.fs.GetInt64(f.Name)
	case "uint":
		val, err = s.fs.GetUint(f.Name)
	case "float64":
		val, err = s.fs.GetFloat64(f.Name)
	case "duration":
		val, err = s.fs.GetDuration(f.Name)
	case "stringSlice":
		val, err = s.fs.GetStringSlice(f.Name)
	case "stringArray":
		val, err = s.fs.GetStringArray(f.Name)
	case "intSlice":
		val, err = s.fs.GetIntSlice(f.Name)
	default:
		return f.Value.String()
	}
	if err != nil {
		return f.Value.String()
	}
	return val
}

func (s *FlagSource) Has(key string) bool {
	return s.lookup(key) != nil
}

func (s *FlagSource) Keys() []string {
	var keys []string
	s.fs.VisitAll(func(f *pflag.Flag) {
		if !s.changedOnly || f.Changed {
			keys = append(keys, f.Name)
		}
	})
	return keys
}

func (s *FlagSource) Values() []any {
	var values []any
	s.Each(func(_ string, val any) {
		values = append(values, val)
	})
	return values
}

func (s *FlagSource) IsEmpty() bool {
	if !s.changedOnly {
		return !s.fs.HasFlags()
	}
	return s.fs.NFlag() == 0
}

func (s *FlagSource) Each(fn func(key string, val any)) {
	s.fs.VisitAll(func(f *pflag.Flag) {
		if !s.changedOnly || f.Changed {
			fn(f.Name, s.value(f))
		}
	})
}
