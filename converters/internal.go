package converters

import (
	"math"
	"reflect"
	"time"

	"github.com/Station-Manager/errors"
)

// CheckString asserts src is a non-empty string.
func CheckString(op errors.Op, src any) (string, error) {
	srcVal, ok := src.(string)
	if !ok {
		return "", errors.New(op).Errorf("Given parameter not a string, got %T", src)
	}
	if srcVal == "" {
		return "", errors.New(op).Msg(ErrMsgParamEmpty)
	}
	return srcVal, nil
}

// CheckFloat64 asserts src is a float32 or float64.
func CheckFloat64(op errors.Op, src any) (float64, error) {
	switch v := src.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	}
	return 0, errors.New(op).Errorf("Given parameter not a float64, got %T", src)
}

// CheckInt64 accepts every integer kind, plus float64 values without a fractional part
// (numbers decoded from JSON arrive as float64).
func CheckInt64(op errors.Op, src any) (int64, error) {
	if src == nil {
		return -1, errors.New(op).Msg("Given parameter not an integer, got nil")
	}
	rv := reflect.ValueOf(src)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.Uint() > math.MaxInt64 {
			return -1, errors.New(op).Msg(ErrMsgNumericOverflow)
		}
		return int64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
			return -1, errors.New(op).Msg(ErrMsgFractionalNumber)
		}
		if f >= math.MaxInt64 || f < math.MinInt64 {
			return -1, errors.New(op).Msg(ErrMsgNumericOverflow)
		}
		return int64(f), nil
	}
	return -1, errors.New(op).Errorf("Given parameter not an integer, got %T", src)
}

// CheckTime asserts src is a time.Time. The zero time is accepted.
func CheckTime(op errors.Op, src any) (time.Time, error) {
	srcVal, ok := src.(time.Time)
	if !ok {
		return time.Time{}, errors.New(op).Errorf("Given parameter not a time.Time, got %T", src)
	}
	return srcVal, nil
}

var (
	mapType   = reflect.TypeOf(map[string]any(nil))
	bytesType = reflect.TypeOf([]byte(nil))
)

// CheckMap asserts src is a map[string]any, or a named type with that underlying type.
func CheckMap(op errors.Op, src any) (map[string]any, error) {
	if m, ok := src.(map[string]any); ok {
		return m, nil
	}
	rv := reflect.ValueOf(src)
	if !rv.IsValid() || rv.Kind() != reflect.Map || !rv.Type().ConvertibleTo(mapType) {
		return nil, errors.New(op).Errorf("Given parameter not a map[string]any, got %T", src)
	}
	return rv.Convert(mapType).Interface().(map[string]any), nil
}

// CheckBytes asserts src is a byte slice of any named or unnamed type.
func CheckBytes(op errors.Op, src any) ([]byte, error) {
	if b, ok := src.([]byte); ok {
		return b, nil
	}
	rv := reflect.ValueOf(src)
	if !rv.IsValid() || rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() != reflect.Uint8 {
		return nil, errors.New(op).Errorf("Given parameter not a []byte, got %T", src)
	}
	return rv.Convert(bytesType).Interface().([]byte), nil
}
