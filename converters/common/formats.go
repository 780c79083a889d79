package common

import (
	"time"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/conversion/converters"
	"github.com/Station-Manager/errors"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
)

func TimeToDateTimeConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.TimeToDateTimeConverter"
	srcVal, err := converters.CheckTime(op, src)
	if err != nil {
		return strfmt.DateTime{}, errors.New(op).Err(err)
	}
	return strfmt.DateTime(srcVal), nil
}

func DateTimeToTimeConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.DateTimeToTimeConverter"
	srcVal, ok := src.(strfmt.DateTime)
	if !ok {
		return time.Time{}, errors.New(op).Errorf("Given parameter not a strfmt.DateTime, got %T", src)
	}
	return time.Time(srcVal), nil
}

// StringToDateTimeConverter parses any of the date-time layouts strfmt accepts.
func StringToDateTimeConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.StringToDateTimeConverter"
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return strfmt.DateTime{}, errors.New(op).Err(err)
	}
	retVal, err := strfmt.ParseDateTime(srcVal)
	if err != nil {
		return strfmt.DateTime{}, errors.New(op).Err(err)
	}
	return retVal, nil
}

// TimeToDateConverter drops the clock part; the date is taken in the zone hint, or the value's own zone.
func TimeToDateConverter(src any, hints conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.TimeToDateConverter"
	srcVal, err := converters.CheckTime(op, src)
	if err != nil {
		return strfmt.Date{}, errors.New(op).Err(err)
	}
	if hints.Get(conversion.HintZone) != nil {
		loc, err := converters.ResolveZone(hints)
		if err != nil {
			return strfmt.Date{}, errors.New(op).Err(err)
		}
		srcVal = srcVal.In(loc)
	}
	y, m, d := srcVal.Date()
	return strfmt.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)), nil
}

func StringToUUIDConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.StringToUUIDConverter"
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return uuid.Nil, errors.New(op).Err(err)
	}
	retVal, err := uuid.Parse(srcVal)
	if err != nil {
		return uuid.Nil, errors.New(op).Err(err)
	}
	return retVal, nil
}

func UUIDToStringConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.UUIDToStringConverter"
	srcVal, ok := src.(uuid.UUID)
	if !ok {
		return "", errors.New(op).Errorf("Given parameter not a uuid.UUID, got %T", src)
	}
	return srcVal.String(), nil
}
