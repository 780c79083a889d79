package common

import (
	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/conversion/converters"
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
)

func Int64ToNullInt64Converter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.Int64ToNullInt64Converter"
	srcVal, err := converters.CheckInt64(op, src)
	if err != nil {
		return null.Int64{}, errors.New(op).Err(err)
	}
	return null.Int64From(srcVal), nil
}

func NullInt64ToInt64Converter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.NullInt64ToInt64Converter"
	srcVal, ok := src.(null.Int64)
	if !ok {
		return int64(0), errors.New(op).Errorf("Given parameter not a null.Int64, got %T", src)
	}
	if !srcVal.Valid {
		return int64(0), nil
	}
	return srcVal.Int64, nil
}

func Float64ToNullFloat64Converter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.Float64ToNullFloat64Converter"
	srcVal, err := converters.CheckFloat64(op, src)
	if err != nil {
		return null.Float64{}, errors.New(op).Err(err)
	}
	return null.Float64From(srcVal), nil
}

func NullFloat64ToFloat64Converter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.NullFloat64ToFloat64Converter"
	srcVal, ok := src.(null.Float64)
	if !ok {
		return float64(0), errors.New(op).Errorf("Given parameter not a null.Float64, got %T", src)
	}
	if !srcVal.Valid {
		return float64(0), nil
	}
	return srcVal.Float64, nil
}
