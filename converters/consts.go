package converters

const (
	ErrMsgParamEmpty       = "Parameter cannot be empty."
	ErrMsgBadTimeFormat    = "Bad time format, expected HH:MM or HHMM"
	ErrMsgBadDateFormat    = "Bad date format, expected YYYYMMDD or YYYY-MM-DD"
	ErrMsgZoneRequired     = "A zone hint is required in strict mode."
	ErrMsgBadZone          = "Zone hint must be a *time.Location or an IANA zone name."
	ErrMsgBadEpochUnit     = "Epoch unit hint must be time.Second, time.Millisecond, \"s\" or \"ms\"."
	ErrMsgNotSingleChar    = "Value is not a single character."
	ErrMsgNumericOverflow  = "Value overflows the target type."
	ErrMsgFractionalNumber = "Value has a fractional part."
)
