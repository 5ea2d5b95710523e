package binder

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Stock binders for common parameter types. Custom types supply their own
// Binder; these cover the signatures routes declare most often.

func String(raw string) (string, error) {
	return raw, nil
}

func Int(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as int", raw)
	}
	return v, nil
}

func Int64(raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as int64", raw)
	}
	return v, nil
}

func Uint(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as uint", raw)
	}
	return uint(v), nil
}

func Uint64(raw string) (uint64, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as uint64", raw)
	}
	return v, nil
}

func Float64(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as float64", raw)
	}
	return v, nil
}

func Bool(raw string) (bool, error) {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("cannot parse %q as bool", raw)
	}
	return v, nil
}

func UUID(raw string) (uuid.UUID, error) {
	v, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("cannot parse %q as UUID", raw)
	}
	return v, nil
}

// Time returns a binder parsing timestamps with the given layout.
func Time(layout string) Binder[time.Time] {
	return func(raw string) (time.Time, error) {
		v, err := time.Parse(layout, raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("cannot parse %q as time (%s)", raw, layout)
		}
		return v, nil
	}
}

// First adapts a single-value binder to the query contract by binding the
// first occurrence of the key.
func First[T any](bind Binder[T]) ValuesBinder[T] {
	return func(raw []string) (T, error) {
		return bind(raw[0])
	}
}

// Each adapts a single-value binder to bind every occurrence of the key,
// failing on the first value that does not parse.
func Each[T any](bind Binder[T]) ValuesBinder[[]T] {
	return func(raw []string) ([]T, error) {
		out := make([]T, 0, len(raw))
		for _, r := range raw {
			v, err := bind(r)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
}
