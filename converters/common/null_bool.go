package common

import (
	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
)

// BoolToNullBoolConverter converts a bool to a null.Bool.
func BoolToNullBoolConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.BoolToNullBoolConverter"
	srcVal, ok := src.(bool)
	if !ok {
		return null.Bool{}, errors.New(op).Errorf("Given parameter not a bool, got %T", src)
	}
	return null.BoolFrom(srcVal), nil
}

// NullBoolToBoolConverter converts a null.Bool to a bool; null is false.
func NullBoolToBoolConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.NullBoolToBoolConverter"
	if nullBool, ok := src.(null.Bool); ok {
		if !nullBool.Valid {
			return false, nil
		}
		return nullBool.Bool, nil
	}
	return false, errors.New(op).Errorf("Given parameter not a null.Bool, got %T", src)
}
