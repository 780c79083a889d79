package postgres

import (
	"math"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/conversion/converters"
	"github.com/Station-Manager/conversion/converters/common"
	"github.com/Station-Manager/errors"
	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/ericlagergren/decimal"
)

// FrequencyToDecimalConverter converts a frequency in Hz to a NUMERIC value in MHz.
// The value is exact: the Hz count becomes the coefficient with a scale of 6.
func FrequencyToDecimalConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.postgres.FrequencyToDecimalConverter"
	srcVal, err := converters.CheckInt64(op, src)
	if err != nil {
		return types.Decimal{}, errors.New(op).Err(err)
	}
	return types.NewDecimal(new(decimal.Big).SetMantScale(srcVal, 6)), nil
}

// DecimalToFrequencyConverter converts a NUMERIC value in MHz to a frequency rounded to the Hz.
func DecimalToFrequencyConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.postgres.DecimalToFrequencyConverter"
	srcVal, ok := src.(types.Decimal)
	if !ok || srcVal.Big == nil {
		return common.Frequency(0), errors.New(op).Errorf("Given parameter not a types.Decimal, got %T", src)
	}
	mhz, ok := srcVal.Float64()
	if !ok {
		return common.Frequency(0), errors.New(op).Msg(converters.ErrMsgNumericOverflow)
	}
	return common.Frequency(math.Round(mhz * 1e6)), nil
}
