package hashchain

import (
	"fmt"
)

type sourceKind uint8

const (
	kindInvalid sourceKind = iota
	kindSingle
	kindNested
)

// Source is a constructor argument of a Chain: either a single Mapping or a
// nested sequence of further Sources. The zero Source is invalid.
type Source[K comparable, V any] struct {
	kind    sourceKind
	mapping Mapping[K, V]
	nested  []Source[K, V]
}

// Single wraps one mapping. A *Chain given here is consulted as one opaque
// source and is not expanded into its own sources.
func Single[K comparable, V any](m Mapping[K, V]) Source[K, V] {
	return Source[K, V]{kind: kindSingle, mapping: m}
}

// Nested groups sources into a sequence that is flattened on construction.
func Nested[K comparable, V any](srcs ...Source[K, V]) Source[K, V] {
	return Source[K, V]{kind: kindNested, nested: srcs}
}

// Flat groups plain mappings into a sequence.
func Flat[K comparable, V any](ms ...Mapping[K, V]) Source[K, V] {
	srcs := make([]Source[K, V], len(ms))
	for i, m := range ms {
		srcs[i] = Single(m)
	}
	return Nested(srcs...)
}

// flatten appends the mappings of srcs to dst depth first. path tracks the
// position of the source being visited for error reporting.
func flatten[K comparable, V any](dst []Mapping[K, V], srcs []Source[K, V], path string) ([]Mapping[K, V], error) {
	for i, src := range srcs {
		pos := fmt.Sprintf("%s[%d]", path, i)
		switch src.kind {
		case kindSingle:
			if src.mapping == nil {
				return nil, fmt.Errorf("%w: nil mapping at %s", ErrInvalidSource, pos)
			}
			dst = append(dst, src.mapping)
		case kindNested:
			var err error
			if dst, err = flatten(dst, src.nested, pos); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: zero source at %s", ErrInvalidSource, pos)
		}
	}

	return dst, nil
}
