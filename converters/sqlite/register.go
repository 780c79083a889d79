package sqlite

import (
	"reflect"
	"time"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/conversion/converters/common"
	"github.com/Station-Manager/errors"
)

func edge(source, target reflect.Type, fn conversion.ConverterFunc, lossy bool) conversion.Edge[reflect.Type] {
	return conversion.Edge[reflect.Type]{Source: source, Target: target, Converter: fn, Lossy: lossy}
}

// Edges returns the SQLite column converters.
func Edges() []conversion.Edge[reflect.Type] {
	var (
		str   = conversion.TypeOf[string]()
		date  = conversion.TypeOf[Date]()
		clock = conversion.TypeOf[Clock]()
		tm    = conversion.TypeOf[time.Time]()
		freq  = conversion.TypeOf[common.Frequency]()
		mhz   = conversion.TypeOf[MHz]()
	)
	return []conversion.Edge[reflect.Type]{
		edge(str, date, StringToDateConverter, false),
		edge(date, str, DateToStringConverter, false),
		edge(str, clock, StringToClockConverter, false),
		edge(clock, str, ClockToStringConverter, false),
		edge(date, tm, DateToTimeConverter, false),
		edge(tm, date, TimeToDateConverter, true),
		edge(tm, clock, TimeToClockConverter, true),
		edge(freq, mhz, FrequencyToMHzConverter, false),
		edge(mhz, freq, MHzToFrequencyConverter, true),
		edge(mhz, str, MHzToStringConverter, false),
	}
}

// Register adds the SQLite column converters to e.
func Register(e *conversion.Engine[reflect.Type]) error {
	const op errors.Op = "converters.sqlite.Register"
	if err := e.Register(Edges()...); err != nil {
		return errors.New(op).Err(err)
	}
	return nil
}
