package postgres

import (
	"reflect"
	"time"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/conversion/converters/common"
	"github.com/Station-Manager/errors"
	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/lib/pq"
)

func edge(source, target reflect.Type, fn conversion.ConverterFunc, lossy bool) conversion.Edge[reflect.Type] {
	return conversion.Edge[reflect.Type]{Source: source, Target: target, Converter: fn, Lossy: lossy}
}

// Edges returns the Postgres column converters.
func Edges() []conversion.Edge[reflect.Type] {
	var (
		str   = conversion.TypeOf[string]()
		date  = conversion.TypeOf[Date]()
		clock = conversion.TypeOf[Clock]()
		tm    = conversion.TypeOf[time.Time]()
		freq  = conversion.TypeOf[common.Frequency]()
		dec   = conversion.TypeOf[types.Decimal]()
		strs  = conversion.TypeOf[pq.StringArray]()
		ints  = conversion.TypeOf[pq.Int64Array]()
	)
	return []conversion.Edge[reflect.Type]{
		edge(date, tm, DateToTimeConverter, false),
		edge(tm, date, TimeToDateConverter, true),
		edge(clock, tm, ClockToTimeConverter, false),
		edge(tm, clock, TimeToClockConverter, true),
		edge(freq, dec, FrequencyToDecimalConverter, false),
		edge(dec, freq, DecimalToFrequencyConverter, true),
		edge(strs, str, StringArrayToLiteralConverter, false),
		edge(str, strs, LiteralToStringArrayConverter, false),
		edge(ints, str, Int64ArrayToLiteralConverter, false),
		edge(str, ints, LiteralToInt64ArrayConverter, false),
	}
}

// Register adds the Postgres column converters to e.
func Register(e *conversion.Engine[reflect.Type]) error {
	const op errors.Op = "converters.postgres.Register"
	if err := e.Register(Edges()...); err != nil {
		return errors.New(op).Err(err)
	}
	return nil
}
