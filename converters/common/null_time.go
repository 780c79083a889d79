package common

import (
	"time"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
)

// TimeToNullTimeConverter converts a time.Time to a null.Time. The zero time maps to an invalid null.Time.
func TimeToNullTimeConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.TimeToNullTimeConverter"
	srcVal, ok := src.(time.Time)
	if !ok {
		return null.Time{}, errors.New(op).Errorf("Given parameter not a time.Time, got %T", src)
	}
	if srcVal.IsZero() {
		return null.Time{}, nil
	}
	return null.TimeFrom(srcVal), nil
}

// NullTimeToTimeConverter converts a null.Time to a time.Time.
func NullTimeToTimeConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.NullTimeToTimeConverter"
	if nullTime, ok := src.(null.Time); ok {
		if !nullTime.Valid {
			return time.Time{}, nil
		}
		return nullTime.Time, nil
	}
	return time.Time{}, errors.New(op).Errorf("Given parameter not a null.Time, got %T", src)
}
