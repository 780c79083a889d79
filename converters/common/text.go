package common

import (
	"fmt"
	"unicode/utf8"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/conversion/converters"
	"github.com/Station-Manager/errors"
	"golang.org/x/text/unicode/norm"
)

// StringToRuneConverter converts a one-character string to its rune. The string is
// NFC-normalised first, so a base letter followed by a combining mark counts as one
// character when a precomposed form exists. An empty string yields the zero rune.
func StringToRuneConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.StringToRuneConverter"
	srcVal, ok := src.(string)
	if !ok {
		return rune(0), errors.New(op).Errorf("Given parameter not a string, got %T", src)
	}
	if srcVal == "" {
		return rune(0), nil
	}
	normalised := norm.NFC.String(srcVal)
	if utf8.RuneCountInString(normalised) != 1 {
		return rune(0), errors.New(op).Errorf("%s got %q", converters.ErrMsgNotSingleChar, srcVal)
	}
	r, _ := utf8.DecodeRuneInString(normalised)
	return r, nil
}

func RuneToStringConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.RuneToStringConverter"
	srcVal, ok := src.(rune)
	if !ok {
		return "", errors.New(op).Errorf("Given parameter not a rune, got %T", src)
	}
	return string(srcVal), nil
}

func BytesToStringConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.BytesToStringConverter"
	srcVal, err := converters.CheckBytes(op, src)
	if err != nil {
		return "", err
	}
	return string(srcVal), nil
}

func StringToBytesConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.StringToBytesConverter"
	srcVal, ok := src.(string)
	if !ok {
		return []byte(nil), errors.New(op).Errorf("Given parameter not a string, got %T", src)
	}
	return []byte(srcVal), nil
}

// StringerToStringConverter renders any fmt.Stringer.
func StringerToStringConverter(src any, _ conversion.Hints) (any, error) {
	const op errors.Op = "converters.common.StringerToStringConverter"
	srcVal, ok := src.(fmt.Stringer)
	if !ok {
		return "", errors.New(op).Errorf("Given parameter not a fmt.Stringer, got %T", src)
	}
	return srcVal.String(), nil
}
