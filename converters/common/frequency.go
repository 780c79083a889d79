package common

import (
	"math"
	"strconv"
	"strings"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/conversion/converters"
	"github.com/Station-Manager/errors"
)

// Frequency is a radio frequency in Hz, written as MHz in text form.
type Frequency int64

// MHzToFrequencyConverter converts a string representation of a frequency in MHz to a Frequency in Hz.
func MHzToFrequencyConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.MHzToFrequencyConverter"
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return Frequency(0), errors.New(op).Err(err)
	}
	retVal, err := strconv.ParseFloat(strings.TrimSpace(srcVal), 64)
	if err != nil {
		return Frequency(0), errors.New(op).Err(err)
	}
	return Frequency(math.Round(retVal * 1e6)), nil
}

// FrequencyToMHzConverter converts a Frequency in Hz to a string in MHz with 3 decimal places.
// Plain integers are accepted as Hz.
func FrequencyToMHzConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.FrequencyToMHzConverter"
	srcVal, err := converters.CheckInt64(op, src)
	if err != nil {
		return "", errors.New(op).Err(err)
	}
	val := float64(srcVal) / 1e6
	return strconv.FormatFloat(val, 'f', 3, 64), nil
}
