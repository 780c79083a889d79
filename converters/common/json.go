package common

import (
	"reflect"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/conversion/converters"
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"
)

func MapToNullJSONConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.MapToNullJSONConverter"
	srcVal, err := converters.CheckMap(op, src)
	if err != nil {
		return null.JSON{}, err
	}
	if srcVal == nil {
		return null.JSON{}, nil
	}
	data, err := json.Marshal(srcVal)
	if err != nil {
		return null.JSON{}, errors.New(op).Err(err)
	}
	return null.JSONFrom(data), nil
}

// NullJSONToMapConverter decodes a JSON object; null yields a nil map.
func NullJSONToMapConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.NullJSONToMapConverter"
	srcVal, ok := src.(null.JSON)
	if !ok {
		return map[string]any(nil), errors.New(op).Errorf("Given parameter not a null.JSON, got %T", src)
	}
	if !srcVal.Valid {
		return map[string]any(nil), nil
	}
	return decodeObject(op, srcVal.JSON)
}

func MapToBoilerJSONConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.MapToBoilerJSONConverter"
	srcVal, err := converters.CheckMap(op, src)
	if err != nil {
		return types.JSON(nil), err
	}
	if srcVal == nil {
		return types.JSON(nil), nil
	}
	data, err := json.Marshal(srcVal)
	if err != nil {
		return types.JSON(nil), errors.New(op).Err(err)
	}
	return types.JSON(data), nil
}

// BytesToMapConverter decodes a JSON object. types.JSON and json.RawMessage values reach it
// because they are assignable to []byte.
func BytesToMapConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.BytesToMapConverter"
	srcVal, err := converters.CheckBytes(op, src)
	if err != nil {
		return map[string]any(nil), err
	}
	if len(srcVal) == 0 {
		return map[string]any(nil), nil
	}
	return decodeObject(op, srcVal)
}

func decodeObject(op errors.Op, data []byte) (any, error) {
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]any(nil), errors.New(op).Err(err)
	}
	return out, nil
}

// isJSONObjectKind reports whether t is a struct or a string-keyed map. Maps of a
// non-empty interface (DynamoDB items) cannot be decoded and are excluded.
func isJSONObjectKind(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Struct:
		return true
	case reflect.Map:
		elem := t.Elem()
		return t.Key().Kind() == reflect.String && (elem.Kind() != reflect.Interface || elem.NumMethod() == 0)
	case reflect.Pointer:
		return t.Elem().Kind() == reflect.Struct
	}
	return false
}

func isRawJSON(t reflect.Type) bool {
	return (t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8) || t == stringType
}

// JSONFactory converts between maps and structs by a JSON round-trip, and decodes raw JSON
// (byte slices or plain strings) into any struct or map. Struct to struct is left to other factories,
// and this one is meant to be registered last.
// It is lossy if source and destination do not have compatible JSON structures.
func JSONFactory() conversion.Factory[reflect.Type] {
	return conversion.FactoryFunc[reflect.Type]{
		SupportsFunc: func(source, target reflect.Type) bool {
			if source == nil || target == nil || !isJSONObjectKind(target) {
				return false
			}
			if isRawJSON(source) {
				return true
			}
			if !isJSONObjectKind(source) {
				return false
			}
			return source.Kind() == reflect.Map || target.Kind() == reflect.Map
		},
		CreateFunc: func(target reflect.Type, defaultValue any, _ bool) (conversion.Converter, bool) {
			if target == nil || !isJSONObjectKind(target) {
				return nil, false
			}
			c := conversion.ConverterFunc(func(value any, _ conversion.Hints) (any, error) {
				return roundTrip(value, target)
			})
			if defaultValue == nil {
				defaultValue = reflect.Zero(target).Interface()
			}
			return conversion.WithDefault(c, defaultValue), true
		},
	}
}

// roundTrip serializes the input to JSON and deserializes it into a new value of target.
func roundTrip(input any, target reflect.Type) (any, error) {
	const op errors.Op = "converters.common.roundTrip"
	var data []byte
	rv := reflect.ValueOf(input)
	switch {
	case rv.Kind() == reflect.String:
		data = []byte(rv.String())
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		data = rv.Bytes()
	default:
		var err error
		if data, err = json.Marshal(input); err != nil {
			return nil, errors.New(op).Err(err).Msg("marshal failed")
		}
	}
	out := reflect.New(target)
	if err := json.Unmarshal(data, out.Interface()); err != nil {
		return nil, errors.New(op).Err(err).Msg("unmarshal failed")
	}
	return out.Elem().Interface(), nil
}
