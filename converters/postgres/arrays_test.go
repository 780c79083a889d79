package postgres

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArrayConverters(t *testing.T) {
	lit, err := StringArrayToLiteralConverter(pq.StringArray{"FT8", "SSB voice"}, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"FT8","SSB voice"}`, lit)

	back, err := LiteralToStringArrayConverter(lit, nil)
	require.NoError(t, err)
	assert.Equal(t, pq.StringArray{"FT8", "SSB voice"}, back)

	_, err = StringArrayToLiteralConverter(pq.StringArray(nil), nil)
	assert.Error(t, err)
	_, err = LiteralToStringArrayConverter("not an array", nil)
	assert.Error(t, err)
	_, err = StringArrayToLiteralConverter([]int{1}, nil)
	assert.Error(t, err)
}

func TestInt64ArrayConverters(t *testing.T) {
	lit, err := Int64ArrayToLiteralConverter(pq.Int64Array{7074000, 14074000}, nil)
	require.NoError(t, err)
	assert.Equal(t, "{7074000,14074000}", lit)

	back, err := LiteralToInt64ArrayConverter("{1,2,3}", nil)
	require.NoError(t, err)
	assert.Equal(t, pq.Int64Array{1, 2, 3}, back)

	_, err = LiteralToInt64ArrayConverter("{a}", nil)
	assert.Error(t, err)
}
