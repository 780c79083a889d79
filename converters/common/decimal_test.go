package common

import (
	"testing"

	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalConverters(t *testing.T) {
	got, err := StringToDecimalConverter("14.320", nil)
	require.NoError(t, err)
	dec, ok := got.(types.Decimal)
	require.True(t, ok, "result should be types.Decimal")

	f, err := DecimalToFloat64Converter(dec, nil)
	require.NoError(t, err)
	assert.InDelta(t, 14.32, f, 1e-9)

	s, err := DecimalToStringConverter(dec, nil)
	require.NoError(t, err)
	assert.Equal(t, "14.320", s)

	fromFloat, err := Float64ToDecimalConverter(7.5, nil)
	require.NoError(t, err)
	f, err = DecimalToFloat64Converter(fromFloat, nil)
	require.NoError(t, err)
	assert.Equal(t, 7.5, f)

	_, err = StringToDecimalConverter("abc", nil)
	assert.Error(t, err)
	_, err = DecimalToFloat64Converter(types.Decimal{}, nil)
	assert.Error(t, err)
	_, err = DecimalToStringConverter(1.5, nil)
	assert.Error(t, err)
}
