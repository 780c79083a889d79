package common

import (
	"strings"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/conversion/converters"
	"github.com/Station-Manager/errors"
	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/ericlagergren/decimal"
)

// StringToDecimalConverter parses a decimal string without going through float64.
func StringToDecimalConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.StringToDecimalConverter"
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return types.Decimal{}, errors.New(op).Err(err)
	}
	big, ok := new(decimal.Big).SetString(strings.TrimSpace(srcVal))
	if !ok || big.IsNaN(0) {
		return types.Decimal{}, errors.New(op).Errorf("Not a decimal number: %q", srcVal)
	}
	return types.NewDecimal(big), nil
}

func Float64ToDecimalConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.Float64ToDecimalConverter"
	srcVal, err := converters.CheckFloat64(op, src)
	if err != nil {
		return types.Decimal{}, errors.New(op).Err(err)
	}
	val := types.NewDecimal(new(decimal.Big))
	val.SetFloat64(srcVal)
	return val, nil
}

// DecimalToFloat64Converter may lose precision.
func DecimalToFloat64Converter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.DecimalToFloat64Converter"
	srcVal, ok := src.(types.Decimal)
	if !ok || srcVal.Big == nil {
		return float64(0), errors.New(op).Errorf("Given parameter not a types.Decimal, got %T", src)
	}
	retVal, ok := srcVal.Float64()
	if !ok {
		return float64(0), errors.New(op).Msg(converters.ErrMsgNumericOverflow)
	}
	return retVal, nil
}

func DecimalToStringConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.DecimalToStringConverter"
	srcVal, ok := src.(types.Decimal)
	if !ok || srcVal.Big == nil {
		return "", errors.New(op).Errorf("Given parameter not a types.Decimal, got %T", src)
	}
	return srcVal.String(), nil
}
