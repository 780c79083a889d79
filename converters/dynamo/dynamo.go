// Package dynamo converts between Go values and DynamoDB attribute values.
//
// Item is the map form DynamoDB reads and writes. Structs use the attributevalue
// `dynamodbav` tags. Register ahead of the common JSON factory when single
// attribute values of map or list type are converted to Go maps.
package dynamo

import (
	"reflect"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/errors"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is a DynamoDB item.
type Item = map[string]types.AttributeValue

var (
	attributeValueType = reflect.TypeOf((*types.AttributeValue)(nil)).Elem()
	itemType           = reflect.TypeOf(Item(nil))
)

func isObject(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Struct:
		return true
	case reflect.Map:
		return t.Key().Kind() == reflect.String
	case reflect.Pointer:
		return t.Elem().Kind() == reflect.Struct
	}
	return false
}

func isAttribute(t reflect.Type) bool {
	return t == itemType || t.Implements(attributeValueType)
}

// MarshalFactory converts any value to a types.AttributeValue, and structs or maps to an Item.
func MarshalFactory() conversion.Factory[reflect.Type] {
	return conversion.FactoryFunc[reflect.Type]{
		SupportsFunc: func(source, target reflect.Type) bool {
			if source == nil || isAttribute(source) {
				return false
			}
			switch target {
			case attributeValueType:
				return true
			case itemType:
				return isObject(source)
			}
			return false
		},
		CreateFunc: func(target reflect.Type, defaultValue any, _ bool) (conversion.Converter, bool) {
			var c conversion.Converter
			switch target {
			case attributeValueType:
				c = conversion.ConverterFunc(MarshalConverter)
			case itemType:
				c = conversion.ConverterFunc(MarshalItemConverter)
			default:
				return nil, false
			}
			if defaultValue != nil {
				c = conversion.WithDefault(c, defaultValue)
			}
			return c, true
		},
	}
}

// UnmarshalFactory converts an attribute value into any type, and an Item into a struct or map.
func UnmarshalFactory() conversion.Factory[reflect.Type] {
	return conversion.FactoryFunc[reflect.Type]{
		SupportsFunc: func(source, target reflect.Type) bool {
			if source == nil || target == nil || isAttribute(target) {
				return false
			}
			if source == itemType {
				return isObject(target)
			}
			return source.Implements(attributeValueType)
		},
		CreateFunc: func(target reflect.Type, defaultValue any, _ bool) (conversion.Converter, bool) {
			if target == nil {
				return nil, false
			}
			c := conversion.ConverterFunc(func(src any, _ conversion.Hints) (any, error) {
				return unmarshalInto(src, target)
			})
			if defaultValue == nil {
				defaultValue = reflect.Zero(target).Interface()
			}
			return conversion.WithDefault(c, defaultValue), true
		},
	}
}

// MarshalConverter marshals any value into a types.AttributeValue.
func MarshalConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.dynamo.MarshalConverter"
	av, err := attributevalue.Marshal(src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return av, nil
}

// MarshalItemConverter marshals a struct or map into an Item.
func MarshalItemConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.dynamo.MarshalItemConverter"
	item, err := attributevalue.MarshalMap(src)
	if err != nil {
		return Item(nil), errors.New(op).Err(err)
	}
	return item, nil
}

func unmarshalInto(src any, target reflect.Type) (any, error) {
	const op errors.Op = "converters.dynamo.unmarshalInto"
	out := reflect.New(target)
	switch v := src.(type) {
	case Item:
		if err := attributevalue.UnmarshalMap(v, out.Interface()); err != nil {
			return reflect.Zero(target).Interface(), errors.New(op).Err(err)
		}
	case types.AttributeValue:
		if err := attributevalue.Unmarshal(v, out.Interface()); err != nil {
			return reflect.Zero(target).Interface(), errors.New(op).Err(err)
		}
	default:
		return reflect.Zero(target).Interface(), errors.New(op).Errorf("Given parameter not an attribute value, got %T", src)
	}
	return out.Elem().Interface(), nil
}

// Register adds the marshal and unmarshal factories to e.
func Register(e *conversion.Engine[reflect.Type]) error {
	const op errors.Op = "converters.dynamo.Register"
	for _, f := range []conversion.Factory[reflect.Type]{MarshalFactory(), UnmarshalFactory()} {
		if err := e.RegisterFactory(f); err != nil {
			return errors.New(op).Err(err)
		}
	}
	return nil
}
