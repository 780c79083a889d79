package common

import (
	"fmt"
	"reflect"
	"time"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
)

type edgeFunc func(src any, hints conversion.Hints) (any, error)

func edge[S, D any](fn edgeFunc, lossy bool) conversion.Edge[reflect.Type] {
	return conversion.Edge[reflect.Type]{
		Source:    conversion.TypeOf[S](),
		Target:    conversion.TypeOf[D](),
		Converter: conversion.ConverterFunc(fn),
		Lossy:     lossy,
	}
}

// Edges returns the atomic converters of this package in registration order.
//
// rune is int32, so the int32 <-> string edges treat the value as a character:
// int32(65) converts to "A", not "65". Convert through int64 for the decimal form.
func Edges() []conversion.Edge[reflect.Type] {
	return []conversion.Edge[reflect.Type]{
		// numbers
		edge[int64, int8](Int64ToInt8Converter, true),
		edge[int64, int32](Int64ToInt32Converter, true),
		edge[int32, int64](Int32ToInt64Converter, false),
		edge[int, int64](IntToInt64Converter, false),
		edge[int64, int](Int64ToIntConverter, false),
		edge[float64, int64](Float64ToInt64Converter, true),
		edge[int64, float64](Int64ToFloat64Converter, true),
		edge[string, int64](StringToInt64Converter, false),
		edge[string, float64](StringToFloat64Converter, false),
		edge[string, bool](StringToBoolConverter, false),
		edge[int64, string](ScalarToStringConverter, false),
		edge[float64, string](ScalarToStringConverter, false),
		edge[bool, string](ScalarToStringConverter, false),
		edge[string, Frequency](MHzToFrequencyConverter, true),
		edge[Frequency, string](FrequencyToMHzConverter, false),

		// text; rune is int32, so string -> int32 reads a character
		edge[string, rune](StringToRuneConverter, false),
		edge[rune, string](RuneToStringConverter, false),
		edge[[]byte, string](BytesToStringConverter, false),
		edge[string, []byte](StringToBytesConverter, false),
		edge[fmt.Stringer, string](StringerToStringConverter, true),

		// temporal
		edge[string, time.Time](StringToTimeConverter, false),
		edge[time.Time, string](TimeToStringConverter, false),
		edge[int64, time.Time](EpochToTimeConverter, true),
		edge[time.Time, int64](TimeToEpochConverter, true),
		edge[map[string]any, time.Time](MapToTimeConverter, false),

		// nullable columns
		edge[string, null.String](StringToNullStringConverter, false),
		edge[null.String, string](NullStringToStringConverter, true),
		edge[time.Time, null.Time](TimeToNullTimeConverter, false),
		edge[null.Time, time.Time](NullTimeToTimeConverter, true),
		edge[bool, null.Bool](BoolToNullBoolConverter, false),
		edge[null.Bool, bool](NullBoolToBoolConverter, true),
		edge[int64, null.Int64](Int64ToNullInt64Converter, false),
		edge[null.Int64, int64](NullInt64ToInt64Converter, true),
		edge[float64, null.Float64](Float64ToNullFloat64Converter, false),
		edge[null.Float64, float64](NullFloat64ToFloat64Converter, true),

		// formats and identifiers
		edge[time.Time, strfmt.DateTime](TimeToDateTimeConverter, false),
		edge[strfmt.DateTime, time.Time](DateTimeToTimeConverter, false),
		edge[string, strfmt.DateTime](StringToDateTimeConverter, false),
		edge[time.Time, strfmt.Date](TimeToDateConverter, true),
		edge[string, uuid.UUID](StringToUUIDConverter, false),
		edge[uuid.UUID, string](UUIDToStringConverter, false),

		// JSON documents
		edge[map[string]any, null.JSON](MapToNullJSONConverter, false),
		edge[null.JSON, map[string]any](NullJSONToMapConverter, false),
		edge[map[string]any, types.JSON](MapToBoilerJSONConverter, false),
		edge[[]byte, map[string]any](BytesToMapConverter, false),

		// decimals
		edge[string, types.Decimal](StringToDecimalConverter, false),
		edge[float64, types.Decimal](Float64ToDecimalConverter, true),
		edge[types.Decimal, float64](DecimalToFloat64Converter, true),
		edge[types.Decimal, string](DecimalToStringConverter, false),
	}
}

// Factories returns this package's factories, most specific first.
func Factories() []conversion.Factory[reflect.Type] {
	return []conversion.Factory[reflect.Type]{NumberFactory(), TextUnmarshalerFactory(), JSONFactory()}
}

// Register adds the edges and factories of this package to e.
func Register(e *conversion.Engine[reflect.Type]) error {
	const op errors.Op = "converters.common.Register"
	if err := e.Register(Edges()...); err != nil {
		return errors.New(op).Err(err)
	}
	for _, f := range Factories() {
		if err := e.RegisterFactory(f); err != nil {
			return errors.New(op).Err(err)
		}
	}
	return nil
}
