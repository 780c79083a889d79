package postgres

import (
	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/conversion/converters"
	"github.com/Station-Manager/errors"
	"github.com/lib/pq"
)

// StringArrayToLiteralConverter renders a text[] value as a Postgres array literal, e.g. {a,"b c"}.
func StringArrayToLiteralConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.postgres.StringArrayToLiteralConverter"
	var srcVal pq.StringArray
	switch v := src.(type) {
	case pq.StringArray:
		srcVal = v
	case []string:
		srcVal = v
	default:
		return "", errors.New(op).Errorf("Given parameter not a pq.StringArray, got %T", src)
	}
	return arrayLiteral(op, srcVal.Value)
}

// LiteralToStringArrayConverter parses a Postgres text[] literal.
func LiteralToStringArrayConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.postgres.LiteralToStringArrayConverter"
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return pq.StringArray(nil), errors.New(op).Err(err)
	}
	var retVal pq.StringArray
	if err := retVal.Scan(srcVal); err != nil {
		return pq.StringArray(nil), errors.New(op).Err(err)
	}
	return retVal, nil
}

// Int64ArrayToLiteralConverter renders a bigint[] value as a Postgres array literal.
func Int64ArrayToLiteralConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.postgres.Int64ArrayToLiteralConverter"
	var srcVal pq.Int64Array
	switch v := src.(type) {
	case pq.Int64Array:
		srcVal = v
	case []int64:
		srcVal = v
	default:
		return "", errors.New(op).Errorf("Given parameter not a pq.Int64Array, got %T", src)
	}
	return arrayLiteral(op, srcVal.Value)
}

// LiteralToInt64ArrayConverter parses a Postgres bigint[] literal.
func LiteralToInt64ArrayConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.postgres.LiteralToInt64ArrayConverter"
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return pq.Int64Array(nil), errors.New(op).Err(err)
	}
	var retVal pq.Int64Array
	if err := retVal.Scan(srcVal); err != nil {
		return pq.Int64Array(nil), errors.New(op).Err(err)
	}
	return retVal, nil
}

func arrayLiteral[V any](op errors.Op, value func() (V, error)) (any, error) {
	v, err := value()
	if err != nil {
		return "", errors.New(op).Err(err)
	}
	switch lit := any(v).(type) {
	case string:
		return lit, nil
	case nil:
		return "", errors.New(op).Msg("NULL array has no literal form")
	}
	return "", errors.New(op).Errorf("Unexpected array value %T", v)
}
