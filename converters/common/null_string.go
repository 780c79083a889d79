package common

import (
	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/conversion/converters"
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
)

// StringToNullStringConverter converts a string to a null.String. An empty string is rejected.
func StringToNullStringConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.StringToNullStringConverter"
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return null.String{}, errors.New(op).Err(err)
	}
	return null.StringFrom(srcVal), nil
}

// NullStringToStringConverter converts a null.String to a string.
func NullStringToStringConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.NullStringToStringConverter"
	// Handle null.String type
	if nullStr, ok := src.(null.String); ok {
		if !nullStr.Valid {
			return "", nil
		}
		return nullStr.String, nil
	}
	// Fallback to string check
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return "", errors.New(op).Err(err)
	}
	return srcVal, nil
}
