package common

import (
	"encoding"
	"reflect"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/conversion/converters"
	"github.com/Station-Manager/errors"
)

var (
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	stringType          = reflect.TypeFor[string]()
)

// TextUnmarshalerFactory converts plain strings into any type whose pointer implements
// encoding.TextUnmarshaler, which covers enumerations with a text form. Named string types
// are left to registered edges. In strict mode an
// empty string is rejected, otherwise it yields the default value.
func TextUnmarshalerFactory() conversion.Factory[reflect.Type] {
	return conversion.FactoryFunc[reflect.Type]{
		SupportsFunc: func(source, target reflect.Type) bool {
			return source == stringType && target != nil &&
				target.Kind() != reflect.Pointer && reflect.PointerTo(target).Implements(textUnmarshalerType)
		},
		CreateFunc: func(target reflect.Type, defaultValue any, strict bool) (conversion.Converter, bool) {
			if target == nil || !reflect.PointerTo(target).Implements(textUnmarshalerType) {
				return nil, false
			}
			if defaultValue == nil {
				defaultValue = reflect.Zero(target).Interface()
			}
			return conversion.WithDefault(conversion.ConverterFunc(func(value any, _ conversion.Hints) (any, error) {
				const op errors.Op = "converters.common.TextUnmarshalerFactory"
				rv := reflect.ValueOf(value)
				if rv.Kind() != reflect.String {
					return nil, errors.New(op).Errorf("Given parameter not a string, got %T", value)
				}
				if rv.Len() == 0 {
					if strict {
						return nil, errors.New(op).Msg(converters.ErrMsgParamEmpty)
					}
					return defaultValue, nil
				}
				out := reflect.New(target)
				if err := out.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(rv.String())); err != nil {
					return nil, errors.New(op).Err(err)
				}
				return out.Elem().Interface(), nil
			}), defaultValue), true
		},
	}
}
