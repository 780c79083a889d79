package sqlite

import (
	"math"
	"strconv"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/conversion/converters"
	"github.com/Station-Manager/conversion/converters/common"
	"github.com/Station-Manager/errors"
)

// MHz is a frequency stored as a REAL column in MHz.
type MHz float64

// FrequencyToMHzConverter converts a frequency in Hz to the REAL column form.
func FrequencyToMHzConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.sqlite.FrequencyToMHzConverter"
	srcVal, err := converters.CheckInt64(op, src)
	if err != nil {
		return MHz(0), errors.New(op).Err(err)
	}
	return MHz(float64(srcVal) / 1e6), nil
}

// MHzToFrequencyConverter rounds a REAL column value to the nearest Hz.
func MHzToFrequencyConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.sqlite.MHzToFrequencyConverter"
	srcVal, ok := src.(MHz)
	if !ok {
		return common.Frequency(0), errors.New(op).Errorf("Given parameter not a sqlite.MHz, got %T", src)
	}
	if math.IsNaN(float64(srcVal)) || math.IsInf(float64(srcVal), 0) {
		return common.Frequency(0), errors.New(op).Msg(converters.ErrMsgNumericOverflow)
	}
	return common.Frequency(math.Round(float64(srcVal) * 1e6)), nil
}

// MHzToStringConverter formats the column value without trailing zeros.
func MHzToStringConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.sqlite.MHzToStringConverter"
	srcVal, ok := src.(MHz)
	if !ok {
		return "", errors.New(op).Errorf("Given parameter not a sqlite.MHz, got %T", src)
	}
	return strconv.FormatFloat(float64(srcVal), 'f', -1, 64), nil
}
