package postgres

import (
	"time"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/conversion/converters"
	"github.com/Station-Manager/errors"
)

// Date is a calendar date in the YYYY-MM-DD form Postgres prints.
type Date string

// Clock is a time of day in HH:MM form.
type Clock string

func asString(op errors.Op, src any) (string, error) {
	switch v := src.(type) {
	case Date:
		src = string(v)
	case Clock:
		src = string(v)
	}
	return converters.CheckString(op, src)
}

// DateToTimeConverter converts a date value to a time.Time at midnight UTC.
// The source value is a Date or a string in YYYYMMDD or YYYY-MM-DD format.
func DateToTimeConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.postgres.DateToTimeConverter"
	srcVal, err := asString(op, src)
	if err != nil {
		return time.Time{}, errors.New(op).Err(err)
	}
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
		return time.Time{}, errors.New(op).Msg(converters.ErrMsgBadDateFormat)
	}
	if err != nil {
		return time.Time{}, errors.New(op).Err(err).Msg(converters.ErrMsgBadDateFormat)
	}
	return retVal, nil
}

// TimeToDateConverter converts a time.Time to a Date (YYYY-MM-DD).
// The zero time is rejected.
func TimeToDateConverter(src any, hints conversion.Hints) (any, error) {
	const op errors.Op = "converters.postgres.TimeToDateConverter"
	srcVal, err := converters.CheckTime(op, src)
	if err != nil {
		return Date(""), errors.New(op).Err(err)
	}
	if srcVal.IsZero() {
		return Date(""), errors.New(op).Msg(converters.ErrMsgBadDateFormat)
	}
	if srcVal, err = inZone(op, srcVal, hints); err != nil {
		return Date(""), err
	}
	return Date(srcVal.Format("2006-01-02")), nil
}

// ClockToTimeConverter converts a time of day to a time.Time on day zero.
// The source value is a Clock or a string in HHMM or HH:MM format.
func ClockToTimeConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.postgres.ClockToTimeConverter"
	srcVal, err := asString(op, src)
	if err != nil {
		return time.Time{}, errors.New(op).Err(err)
	}
	// Accept both HH:MM and HHMM formats
	var retVal time.Time
	if len(srcVal) == 5 && srcVal[2] == ':' {
		retVal, err = time.Parse("15:04", srcVal)
		if err != nil {
			return time.Time{}, errors.New(op).Err(err).Msg(converters.ErrMsgBadTimeFormat)
		}
	} else if len(srcVal) == 4 {
		retVal, err = time.Parse("1504", srcVal)
		if err != nil {
			return time.Time{}, errors.New(op).Err(err).Msg(converters.ErrMsgBadTimeFormat)
		}
	} else {
		return time.Time{}, errors.New(op).Msg(converters.ErrMsgBadTimeFormat)
	}
	return retVal, nil
}

// TimeToClockConverter converts a time.Time to a Clock (HH:MM).
func TimeToClockConverter(src any, hints conversion.Hints) (any, error) {
	const op errors.Op = "converters.postgres.TimeToClockConverter"
	srcVal, err := converters.CheckTime(op, src)
	if err != nil {
		return Clock(""), errors.New(op).Err(err)
	}
	if srcVal.IsZero() {
		return Clock(""), errors.New(op).Msg(converters.ErrMsgBadTimeFormat)
	}
	if srcVal, err = inZone(op, srcVal, hints); err != nil {
		return Clock(""), err
	}
	return Clock(srcVal.Format("15:04")), nil
}

func inZone(op errors.Op, t time.Time, hints conversion.Hints) (time.Time, error) {
	if hints.Get(conversion.HintZone) == nil {
		return t, nil
	}
	loc, err := converters.ResolveZone(hints)
	if err != nil {
		return time.Time{}, errors.New(op).Err(err)
	}
	return t.In(loc), nil
}
