package common

import (
	"time"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/conversion/converters"
	"github.com/Station-Manager/errors"
)

// StringToTimeConverter parses a string into a time.Time.
// The date layout hint wins when present; otherwise RFC 3339, YYYYMMDD and YYYY-MM-DD are
// accepted in that order. Strings without an offset are read in the zone hint, or UTC.
func StringToTimeConverter(src any, hints conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.StringToTimeConverter"
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return time.Time{}, errors.New(op).Err(err)
	}
	loc := time.UTC
	if hints.Get(conversion.HintZone) != nil {
		if loc, err = converters.ResolveZone(hints); err != nil {
			return time.Time{}, errors.New(op).Err(err)
		}
	}
	if layout := converters.DateLayout(hints, ""); layout != "" {
		retVal, err := time.ParseInLocation(layout, srcVal, loc)
		if err != nil {
			return time.Time{}, errors.New(op).Err(err)
		}
		return retVal, nil
	}
	if retVal, err := time.Parse(time.RFC3339Nano, srcVal); err == nil {
		return retVal, nil
	}
	var retVal time.Time
	switch len(srcVal) {
	case 8:
		// YYYYMMDD format
		retVal, err = time.ParseInLocation("20060102", srcVal, loc)
	case 10:
		if srcVal[4] == '-' && srcVal[7] == '-' {
			retVal, err = time.ParseInLocation("2006-01-02", srcVal, loc)
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

// TimeToStringConverter formats a time.Time with the layout hint (RFC 3339 by default),
// in the zone hint when one is given.
func TimeToStringConverter(src any, hints conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.TimeToStringConverter"
	srcVal, err := converters.CheckTime(op, src)
	if err != nil {
		return "", errors.New(op).Err(err)
	}
	if hints.Get(conversion.HintZone) != nil {
		loc, err := converters.ResolveZone(hints)
		if err != nil {
			return "", errors.New(op).Err(err)
		}
		srcVal = srcVal.In(loc)
	}
	return srcVal.Format(converters.DateLayout(hints, time.RFC3339Nano)), nil
}

// EpochToTimeConverter reads an epoch count (milliseconds unless the epoch unit hint says
// seconds) in the zone hint. Without a zone the local zone is used, unless strict.
func EpochToTimeConverter(src any, hints conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.EpochToTimeConverter"
	srcVal, err := converters.CheckInt64(op, src)
	if err != nil {
		return time.Time{}, errors.New(op).Err(err)
	}
	unit, err := converters.ResolveEpochUnit(hints)
	if err != nil {
		return time.Time{}, errors.New(op).Err(err)
	}
	loc, err := converters.ResolveZone(hints)
	if err != nil {
		return time.Time{}, errors.New(op).Err(err)
	}
	return converters.FromEpoch(srcVal, unit).In(loc), nil
}

// TimeToEpochConverter counts a time.Time since the epoch, in milliseconds by default.
func TimeToEpochConverter(src any, hints conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.TimeToEpochConverter"
	srcVal, err := converters.CheckTime(op, src)
	if err != nil {
		return int64(0), errors.New(op).Err(err)
	}
	unit, err := converters.ResolveEpochUnit(hints)
	if err != nil {
		return int64(0), errors.New(op).Err(err)
	}
	return converters.ToEpoch(srcVal, unit), nil
}

// MapToTimeConverter builds a UTC time from {"epochSecond": n, "nano": m}; nano is optional.
func MapToTimeConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.MapToTimeConverter"
	srcVal, err := converters.CheckMap(op, src)
	if err != nil {
		return time.Time{}, err
	}
	rawSec, ok := srcVal["epochSecond"]
	if !ok {
		return time.Time{}, errors.New(op).Msg("Missing epochSecond value.")
	}
	sec, err := converters.CheckInt64(op, rawSec)
	if err != nil {
		return time.Time{}, errors.New(op).Err(err)
	}
	var nano int64
	if rawNano, ok := srcVal["nano"]; ok {
		if nano, err = converters.CheckInt64(op, rawNano); err != nil {
			return time.Time{}, errors.New(op).Err(err)
		}
	}
	return time.Unix(sec, nano).UTC(), nil
}
