package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/handle/errors"
	"github.com/wippyai/handle/narrow"
)

type row struct {
	target   string
	result   string
	lossless bool
}

type report struct {
	input  string
	source string
	rows   []row
}

// evaluate parses input as the narrowest of int64, uint64 or float64 that
// accepts it and checks the value against every Go numeric width.
func evaluate(input string) (report, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return report{}, errors.InvalidInput(errors.PhaseParse, "empty value")
	}

	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return report{input: s, source: "int64", rows: rowsFor(i)}, nil
	}
	if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		return report{input: s, source: "uint64", rows: rowsFor(u)}, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return report{input: s, source: "float64", rows: rowsFor(f)}, nil
	}

	return report{}, errors.New(errors.PhaseParse, errors.KindInvalidInput).
		Value(s).
		Detail("%q is not a number", s).
		Build()
}

func rowsFor[From narrow.Number](v From) []row {
	return []row{
		rowOf[int8](v),
		rowOf[int16](v),
		rowOf[int32](v),
		rowOf[int64](v),
		rowOf[uint8](v),
		rowOf[uint16](v),
		rowOf[uint32](v),
		rowOf[uint64](v),
		rowOf[float32](v),
		rowOf[float64](v),
	}
}

func rowOf[To, From narrow.Number](v From) row {
	to := To(v)
	return row{
		target:   fmt.Sprintf("%T", to),
		result:   fmt.Sprint(to),
		lossless: narrow.Lossless[To](v),
	}
}

// lossless counts the rows that survive the round trip.
func (r report) lossless() int {
	n := 0
	for _, row := range r.rows {
		if row.lossless {
			n++
		}
	}
	return n
}
