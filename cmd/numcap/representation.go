package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Invicton-Labs/go-numeric/constraints"
	"github.com/Invicton-Labs/go-numeric/decimal"
	"github.com/Invicton-Labs/go-numeric/numbers"
	"github.com/Invicton-Labs/go-numeric/numeric"
	"github.com/Invicton-Labs/go-stackerr"
)

// representation evaluates operations on string-encoded values of one
// numeric type.
type representation struct {
	name string
	// raise parses base and returns base**exponent formatted as a string.
	raise func(base string, exponent int64) (string, stackerr.Error)
	// raiseChecked is like raise but reports overflow. Nil for types that
	// can't detect it.
	raiseChecked func(base string, exponent int64) (string, stackerr.Error)
	isPower      func(value string, base string) (bool, stackerr.Error)
	// isPowerWithin is nil for exact types.
	isPowerWithin func(value string, base string, tolerance float64) (bool, stackerr.Error)
}

type conforming[T any] interface {
	numeric.ReciprocalRaisable[T]
	numeric.PowerTestable[T]
	fmt.Stringer
}

func newRepresentation[T conforming[T]](name string, parse func(string) (T, stackerr.Error)) representation {
	return representation{
		name: name,
		raise: func(base string, exponent int64) (string, stackerr.Error) {
			b, err := parse(base)
			if err != nil {
				return "", err
			}
			return numeric.Raising(b, exponent).String(), nil
		},
		isPower: func(value string, base string) (bool, stackerr.Error) {
			v, b, err := parsePair(parse, value, base)
			if err != nil {
				return false, err
			}
			return numeric.IsPower(v, b), nil
		},
	}
}

func withChecked[T interface {
	conforming[T]
	numeric.CheckedMultipliable[T]
}](r representation, parse func(string) (T, stackerr.Error)) representation {
	r.raiseChecked = func(base string, exponent int64) (string, stackerr.Error) {
		if exponent < 0 {
			return "", stackerr.Errorf("checked exponentiation needs a non-negative exponent, got %d", exponent)
		}
		b, err := parse(base)
		if err != nil {
			return "", err
		}
		p, err := numeric.RaisingChecked(b, uint64(exponent))
		if err != nil {
			return "", err
		}
		return p.String(), nil
	}
	return r
}

func withTolerance[T interface {
	conforming[T]
	constraints.Float
}](r representation, parse func(string) (T, stackerr.Error)) representation {
	r.isPowerWithin = func(value string, base string, tolerance float64) (bool, stackerr.Error) {
		v, b, err := parsePair(parse, value, base)
		if err != nil {
			return false, err
		}
		return numeric.IsPowerWithin(v, b, tolerance), nil
	}
	return r
}

func parsePair[T any](parse func(string) (T, stackerr.Error), a string, b string) (T, T, stackerr.Error) {
	var zero T
	x, err := parse(a)
	if err != nil {
		return zero, zero, err
	}
	y, err := parse(b)
	if err != nil {
		return zero, zero, err
	}
	return x, y, nil
}

var representations = map[string]representation{
	"int64":   withChecked(newRepresentation("int64", numbers.ParseInt64), numbers.ParseInt64),
	"uint64":  withChecked(newRepresentation("uint64", numbers.ParseUint64), numbers.ParseUint64),
	"float32": withTolerance(newRepresentation("float32", numbers.ParseFloat32), numbers.ParseFloat32),
	"float64": withTolerance(newRepresentation("float64", numbers.ParseFloat64), numbers.ParseFloat64),
	"decimal": newRepresentation("decimal", decimal.Parse),
}

func lookupRepresentation(name string) (representation, stackerr.Error) {
	r, ok := representations[strings.ToLower(name)]
	if !ok {
		return representation{}, stackerr.Errorf("unknown representation %q, expected one of %s", name, strings.Join(representationNames(), ", "))
	}
	return r, nil
}

func representationNames() []string {
	names := make([]string, 0, len(representations))
	for n := range representations {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
