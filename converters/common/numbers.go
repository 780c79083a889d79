package common

import (
	"math"
	"reflect"
	"strings"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/conversion/converters"
	"github.com/Station-Manager/errors"
	"github.com/spf13/cast"
)

// Int64ToInt8Converter narrows an int64, rejecting values outside the int8 range.
func Int64ToInt8Converter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.Int64ToInt8Converter"
	srcVal, err := converters.CheckInt64(op, src)
	if err != nil {
		return int8(0), errors.New(op).Err(err)
	}
	if srcVal > math.MaxInt8 || srcVal < math.MinInt8 {
		return int8(0), errors.New(op).Errorf("%d overflows int8", srcVal)
	}
	return int8(srcVal), nil
}

// Int64ToInt32Converter narrows an int64, rejecting values outside the int32 range.
func Int64ToInt32Converter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.Int64ToInt32Converter"
	srcVal, err := converters.CheckInt64(op, src)
	if err != nil {
		return int32(0), errors.New(op).Err(err)
	}
	if srcVal > math.MaxInt32 || srcVal < math.MinInt32 {
		return int32(0), errors.New(op).Errorf("%d overflows int32", srcVal)
	}
	return int32(srcVal), nil
}

func Int32ToInt64Converter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.Int32ToInt64Converter"
	srcVal, err := converters.CheckInt64(op, src)
	if err != nil {
		return int64(0), errors.New(op).Err(err)
	}
	return srcVal, nil
}

func IntToInt64Converter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.IntToInt64Converter"
	srcVal, err := converters.CheckInt64(op, src)
	if err != nil {
		return int64(0), errors.New(op).Err(err)
	}
	return srcVal, nil
}

func Int64ToIntConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.Int64ToIntConverter"
	srcVal, err := converters.CheckInt64(op, src)
	if err != nil {
		return 0, errors.New(op).Err(err)
	}
	if srcVal > math.MaxInt || srcVal < math.MinInt {
		return 0, errors.New(op).Errorf("%d overflows int", srcVal)
	}
	return int(srcVal), nil
}

// Float64ToInt64Converter truncates toward zero. With the strict hint a fractional part is an error.
func Float64ToInt64Converter(src any, hints conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.Float64ToInt64Converter"
	srcVal, err := converters.CheckFloat64(op, src)
	if err != nil {
		return int64(0), errors.New(op).Err(err)
	}
	if math.IsNaN(srcVal) || srcVal >= math.MaxInt64 || srcVal < math.MinInt64 {
		return int64(0), errors.New(op).Msg(converters.ErrMsgNumericOverflow)
	}
	if converters.IsStrict(hints) && srcVal != math.Trunc(srcVal) {
		return int64(0), errors.New(op).Msg(converters.ErrMsgFractionalNumber)
	}
	return int64(srcVal), nil
}

// Int64ToFloat64Converter widens an int64; values beyond 2^53 lose precision.
func Int64ToFloat64Converter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.Int64ToFloat64Converter"
	srcVal, err := converters.CheckInt64(op, src)
	if err != nil {
		return float64(0), errors.New(op).Err(err)
	}
	return float64(srcVal), nil
}

func StringToInt64Converter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.StringToInt64Converter"
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return int64(0), errors.New(op).Err(err)
	}
	retVal, err := cast.ToInt64E(strings.TrimSpace(srcVal))
	if err != nil {
		return int64(0), errors.New(op).Err(err)
	}
	return retVal, nil
}

func StringToFloat64Converter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.StringToFloat64Converter"
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return float64(0), errors.New(op).Err(err)
	}
	retVal, err := cast.ToFloat64E(strings.TrimSpace(srcVal))
	if err != nil {
		return float64(0), errors.New(op).Err(err)
	}
	return retVal, nil
}

func StringToBoolConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.StringToBoolConverter"
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return false, errors.New(op).Err(err)
	}
	retVal, err := cast.ToBoolE(strings.TrimSpace(srcVal))
	if err != nil {
		return false, errors.New(op).Err(err)
	}
	return retVal, nil
}

// ScalarToStringConverter formats int64, float64 and bool values.
func ScalarToStringConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.ScalarToStringConverter"
	switch src.(type) {
	case int64, float64, bool:
	default:
		return "", errors.New(op).Errorf("Given parameter not a scalar, got %T", src)
	}
	retVal, err := cast.ToStringE(src)
	if err != nil {
		return "", errors.New(op).Err(err)
	}
	return retVal, nil
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// NumberFactory converts between any two numeric kinds, named types included.
// Strict converters reject overflow, negative-to-unsigned and fractional truncation;
// lenient converters follow Go conversion rules.
func NumberFactory() conversion.Factory[reflect.Type] {
	return conversion.FactoryFunc[reflect.Type]{
		SupportsFunc: func(source, target reflect.Type) bool {
			return source != nil && target != nil && isNumericKind(source.Kind()) && isNumericKind(target.Kind())
		},
		CreateFunc: func(target reflect.Type, defaultValue any, strict bool) (conversion.Converter, bool) {
			if target == nil || !isNumericKind(target.Kind()) {
				return nil, false
			}
			c := conversion.ConverterFunc(func(value any, _ conversion.Hints) (any, error) {
				return convertNumber(value, target, strict)
			})
			if defaultValue == nil {
				defaultValue = reflect.Zero(target).Interface()
			}
			return conversion.WithDefault(c, defaultValue), true
		},
	}
}

func convertNumber(value any, target reflect.Type, strict bool) (any, error) {
	const op errors.Op = "converters.common.convertNumber"
	v := reflect.ValueOf(value)
	if !isNumericKind(v.Kind()) {
		return nil, errors.New(op).Errorf("Given parameter not a number, got %T", value)
	}
	if strict {
		if err := checkNumberFits(v, target); err != nil {
			return nil, errors.New(op).Err(err)
		}
	}
	return v.Convert(target).Interface(), nil
}

func checkNumberFits(v reflect.Value, target reflect.Type) error {
	const op errors.Op = "converters.common.checkNumberFits"
	zero := reflect.Zero(target)
	switch k := v.Kind(); {
	case k >= reflect.Int && k <= reflect.Int64:
		i := v.Int()
		switch {
		case target.Kind() >= reflect.Int && target.Kind() <= reflect.Int64:
			if zero.OverflowInt(i) {
				return errors.New(op).Msg(converters.ErrMsgNumericOverflow)
			}
		case target.Kind() >= reflect.Uint && target.Kind() <= reflect.Uint64:
			if i < 0 || zero.OverflowUint(uint64(i)) {
				return errors.New(op).Msg(converters.ErrMsgNumericOverflow)
			}
		}
	case k >= reflect.Uint && k <= reflect.Uint64:
		u := v.Uint()
		switch {
		case target.Kind() >= reflect.Int && target.Kind() <= reflect.Int64:
			if u > math.MaxInt64 || zero.OverflowInt(int64(u)) {
				return errors.New(op).Msg(converters.ErrMsgNumericOverflow)
			}
		case target.Kind() >= reflect.Uint && target.Kind() <= reflect.Uint64:
			if zero.OverflowUint(u) {
				return errors.New(op).Msg(converters.ErrMsgNumericOverflow)
			}
		}
	default:
		f := v.Float()
		tk := target.Kind()
		if tk == reflect.Float32 || tk == reflect.Float64 {
			if zero.OverflowFloat(f) {
				return errors.New(op).Msg(converters.ErrMsgNumericOverflow)
			}
			return nil
		}
		if f != math.Trunc(f) || math.IsNaN(f) {
			return errors.New(op).Msg(converters.ErrMsgFractionalNumber)
		}
		if tk >= reflect.Uint && tk <= reflect.Uint64 {
			if f < 0 || f >= 1<<64 {
				return errors.New(op).Msg(converters.ErrMsgNumericOverflow)
			}
			return checkNumberFits(reflect.ValueOf(uint64(f)), target)
		}
		if f >= 1<<63 || f < -(1<<63) {
			return errors.New(op).Msg(converters.ErrMsgNumericOverflow)
		}
		return checkNumberFits(reflect.ValueOf(int64(f)), target)
	}
	return nil
}
