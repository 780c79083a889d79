package converters

import (
	"strings"
	"time"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/errors"
)

// IsStrict reports whether the strict hint is set.
func IsStrict(hints conversion.Hints) bool {
	return hints.Bool(conversion.HintStrict, false)
}

// ResolveZone returns the zone named by the zone hint. The hint may be a *time.Location
// or an IANA name. When the hint is absent the local zone is returned,
// or an error in strict mode.
func ResolveZone(hints conversion.Hints) (*time.Location, error) {
	const op errors.Op = "converters.ResolveZone"
	switch z := hints.Get(conversion.HintZone).(type) {
	case nil:
		if IsStrict(hints) {
			return nil, errors.New(op).Msg(ErrMsgZoneRequired)
		}
		return time.Local, nil
	case *time.Location:
		if z == nil {
			return nil, errors.New(op).Msg(ErrMsgBadZone)
		}
		return z, nil
	case string:
		loc, err := time.LoadLocation(strings.TrimSpace(z))
		if err != nil {
			return nil, errors.New(op).Err(err).Msg(ErrMsgBadZone)
		}
		return loc, nil
	}
	return nil, errors.New(op).Msg(ErrMsgBadZone)
}

// ResolveEpochUnit returns the unit epoch numbers are counted in; milliseconds by default.
func ResolveEpochUnit(hints conversion.Hints) (time.Duration, error) {
	const op errors.Op = "converters.ResolveEpochUnit"
	switch u := hints.Get(conversion.HintEpochUnit).(type) {
	case nil:
		return time.Millisecond, nil
	case time.Duration:
		if u == time.Second || u == time.Millisecond {
			return u, nil
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(u)) {
		case "s", "sec", "seconds":
			return time.Second, nil
		case "ms", "millis", "milliseconds":
			return time.Millisecond, nil
		}
	}
	return 0, errors.New(op).Msg(ErrMsgBadEpochUnit)
}

// FromEpoch interprets n as an epoch count in unit.
func FromEpoch(n int64, unit time.Duration) time.Time {
	if unit == time.Second {
		return time.Unix(n, 0)
	}
	return time.UnixMilli(n)
}

// ToEpoch counts t in unit since the epoch.
func ToEpoch(t time.Time, unit time.Duration) int64 {
	if unit == time.Second {
		return t.Unix()
	}
	return t.UnixMilli()
}

// DateLayout returns the layout hint, or def.
func DateLayout(hints conversion.Hints, def string) string {
	if l, ok := hints.Get(conversion.HintDateLayout).(string); ok && l != "" {
		return l
	}
	return def
}
