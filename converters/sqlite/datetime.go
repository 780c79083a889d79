package sqlite

import (
	"time"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/conversion/converters"
	"github.com/Station-Manager/errors"
)

// Date is a calendar date stored as TEXT in YYYYMMDD form.
type Date string

// Clock is a time of day stored as TEXT in HHMM form.
type Clock string

// asString accepts plain strings as well as the column kinds of this package.
func asString(op errors.Op, src any) (string, error) {
	switch v := src.(type) {
	case Date:
		src = string(v)
	case Clock:
		src = string(v)
	}
	return converters.CheckString(op, src)
}

// StringToDateConverter accepts YYYYMMDD or YYYY-MM-DD and returns the YYYYMMDD column form.
func StringToDateConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.sqlite.StringToDateConverter"
	srcVal, err := asString(op, src)
	if err != nil {
		return Date(""), errors.New(op).Err(err)
	}
	// Accept multiple date formats and convert to YYYYMMDD
	var retVal time.Time
	switch len(srcVal) {
	case 8:
		// YYYYMMDD format
		retVal, err = time.Parse("20060102", srcVal)
	case 10:
		// Try YYYY-MM-DD format
		if srcVal[4] == '-' && srcVal[7] == '-' {
			retVal, err = time.Parse("2006-01-02", srcVal)
		} else {
			err = errors.New(op).Msg(converters.ErrMsgBadDateFormat)
		}
	default:
		return Date(""), errors.New(op).Msg(converters.ErrMsgBadDateFormat)
	}
	if err != nil {
		return Date(""), errors.New(op).Err(err).Msg(converters.ErrMsgBadDateFormat)
	}
	return Date(retVal.Format("20060102")), nil
}

// DateToStringConverter renders a YYYYMMDD column value as YYYY-MM-DD.
func DateToStringConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.sqlite.DateToStringConverter"
	srcVal, err := asString(op, src)
	if err != nil {
		return "", errors.New(op).Err(err)
	}
	if len(srcVal) != 8 {
		return "", errors.New(op).Msg(converters.ErrMsgBadDateFormat)
	}
	retVal, err := time.Parse("20060102", srcVal)
	if err != nil {
		return "", errors.New(op).Err(err).Msg(converters.ErrMsgBadDateFormat)
	}
	return retVal.Format("2006-01-02"), nil
}

// StringToClockConverter accepts HH:MM or HHMM and returns the HHMM column form.
func StringToClockConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.sqlite.StringToClockConverter"
	srcVal, err := asString(op, src)
	if err != nil {
		return Clock(""), errors.New(op).Err(err)
	}
	// Accept both HH:MM and HHMM formats
	var retVal time.Time
	if len(srcVal) == 5 && srcVal[2] == ':' {
		retVal, err = time.Parse("15:04", srcVal)
		if err != nil {
			return Clock(""), errors.New(op).Err(err).Msg(converters.ErrMsgBadTimeFormat)
		}
	} else if len(srcVal) == 4 {
		retVal, err = time.Parse("1504", srcVal)
		if err != nil {
			return Clock(""), errors.New(op).Err(err).Msg(converters.ErrMsgBadTimeFormat)
		}
	} else {
		return Clock(""), errors.New(op).Msg(converters.ErrMsgBadTimeFormat)
	}
	return Clock(retVal.Format("1504")), nil
}

// ClockToStringConverter renders an HHMM column value as HH:MM.
func ClockToStringConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.sqlite.ClockToStringConverter"
	srcVal, err := asString(op, src)
	if err != nil {
		return "", errors.New(op).Err(err)
	}
	if len(srcVal) != 4 {
		return "", errors.New(op).Msg(converters.ErrMsgBadTimeFormat)
	}
	retVal, err := time.Parse("1504", srcVal)
	if err != nil {
		return "", errors.New(op).Err(err).Msg(converters.ErrMsgBadTimeFormat)
	}
	return retVal.Format("15:04"), nil
}

// DateToTimeConverter returns midnight UTC of the date.
func DateToTimeConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.sqlite.DateToTimeConverter"
	srcVal, ok := src.(Date)
	if !ok {
		return time.Time{}, errors.New(op).Errorf("Given parameter not a sqlite.Date, got %T", src)
	}
	retVal, err := time.Parse("20060102", string(srcVal))
	if err != nil {
		return time.Time{}, errors.New(op).Err(err).Msg(converters.ErrMsgBadDateFormat)
	}
	return retVal, nil
}

// TimeToDateConverter takes the calendar date in the zone hint, or in the value's own zone.
func TimeToDateConverter(src any, hints conversion.Hints) (any, error) {
	const op errors.Op = "converters.sqlite.TimeToDateConverter"
	srcVal, err := zoned(op, src, hints)
	if err != nil {
		return Date(""), err
	}
	return Date(srcVal.Format("20060102")), nil
}

// TimeToClockConverter takes the time of day in the zone hint, or in the value's own zone.
func TimeToClockConverter(src any, hints conversion.Hints) (any, error) {
	const op errors.Op = "converters.sqlite.TimeToClockConverter"
	srcVal, err := zoned(op, src, hints)
	if err != nil {
		return Clock(""), err
	}
	return Clock(srcVal.Format("1504")), nil
}

func zoned(op errors.Op, src any, hints conversion.Hints) (time.Time, error) {
	srcVal, err := converters.CheckTime(op, src)
	if err != nil {
		return time.Time{}, errors.New(op).Err(err)
	}
	if srcVal.IsZero() {
		return time.Time{}, errors.New(op).Msg(converters.ErrMsgBadDateFormat)
	}
	if hints.Get(conversion.HintZone) != nil {
		loc, err := converters.ResolveZone(hints)
		if err != nil {
			return time.Time{}, errors.New(op).Err(err)
		}
		srcVal = srcVal.In(loc)
	}
	return srcVal, nil
}
