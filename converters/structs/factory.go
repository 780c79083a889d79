package structs

import (
	"database/sql/driver"
	"encoding"
	"reflect"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/errors"
)

type jsonMarshaler interface {
	MarshalJSON() ([]byte, error)
}

var (
	jsonMarshalerType = reflect.TypeOf((*jsonMarshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	valuerType        = reflect.TypeOf((*driver.Valuer)(nil)).Elem()
)

// IsModel reports whether t is a plain data struct the adapter maps field by field.
// Structs that marshal themselves (time.Time, null.String, strfmt.DateTime and the like)
// are values, not models, and are left to atomic edges.
func IsModel(t reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Struct {
		return false
	}
	p := reflect.PointerTo(t)
	if p.Implements(jsonMarshalerType) || p.Implements(textMarshalerType) || p.Implements(valuerType) {
		return false
	}
	return countFields(t) > 0
}

// Factory returns a factory converting between distinct model structs with a.
// The source may also be a pointer to a model.
func Factory(a *Adapter) conversion.Factory[reflect.Type] {
	return conversion.FactoryFunc[reflect.Type]{
		SupportsFunc: func(source, target reflect.Type) bool {
			return source != nil && derefType(source) != target && IsModel(derefType(source)) && IsModel(target)
		},
		CreateFunc: func(target reflect.Type, defaultValue any, strict bool) (conversion.Converter, bool) {
			return a.converterTo(target, defaultValue, strict), true
		},
	}
}

func (a *Adapter) converterTo(target reflect.Type, defaultValue any, strict bool) conversion.Converter {
	return conversion.ConverterFunc(func(src any, hints conversion.Hints) (any, error) {
		const op errors.Op = "converters.structs.Adapter.converterTo"
		srcVal := reflect.ValueOf(src)
		for srcVal.Kind() == reflect.Ptr {
			if srcVal.IsNil() {
				break
			}
			srcVal = srcVal.Elem()
		}
		if !srcVal.IsValid() || srcVal.Kind() == reflect.Ptr {
			if defaultValue != nil {
				return defaultValue, nil
			}
			return reflect.Zero(target).Interface(), nil
		}
		if srcVal.Kind() != reflect.Struct {
			return reflect.Zero(target).Interface(), errors.New(op).Errorf("Given parameter not a struct, got %T", src)
		}
		dstVal := reflect.New(target).Elem()
		if err := a.adaptStruct(dstVal, srcVal, hints, strict); err != nil {
			return reflect.Zero(target).Interface(), errors.New(op).Err(err)
		}
		return dstVal.Interface(), nil
	})
}

// Register adds the struct factory to e, backed by a new Adapter, and returns the adapter
// so field converters and validators can be added to it.
func Register(e *conversion.Engine[reflect.Type], opts ...Option) (*Adapter, error) {
	const op errors.Op = "converters.structs.Register"
	a := New(e, opts...)
	if err := e.RegisterFactory(Factory(a)); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return a, nil
}
