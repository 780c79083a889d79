package structs

import (
	"reflect"
	"sync"

	"github.com/Station-Manager/conversion"
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"
)

// Adapter copies fields between structs. Fields are matched by name, then by JSON name;
// fields of different types are converted through the engine.
// It is safe for concurrent use.
type Adapter struct {
	engine        *conversion.Engine[reflect.Type]
	converters    scoped[conversion.Converter]
	validators    scoped[ValidatorFunc]
	metadataCache sync.Map  // map[reflect.Type]*structMetadata
	boolMapPool   sync.Pool // map[string]bool reuse
	options       Options
}

// New creates an Adapter resolving field conversions with e. A nil engine limits the
// adapter to assignable fields and registered field converters.
func New(e *conversion.Engine[reflect.Type], opts ...Option) *Adapter {
	a := &Adapter{engine: e, options: Options{OverwritePolicy: PreferFields}}
	for _, f := range opts {
		f(&a.options)
	}
	a.boolMapPool = sync.Pool{New: func() any { return (map[string]bool)(nil) }}
	return a
}

// RegisterConverter adds a field converter applying to any src/dst containing fieldName.
func (a *Adapter) RegisterConverter(fieldName string, c conversion.Converter) {
	a.converters.set(nil, nil, fieldName, c)
}

// RegisterConverterFor scope: destination type + fieldName.
func (a *Adapter) RegisterConverterFor(dstType any, fieldName string, c conversion.Converter) {
	a.converters.set(nil, scopeType(dstType), fieldName, c)
}

// RegisterConverterForPair scope: (srcType,dstType)+fieldName, highest precedence.
func (a *Adapter) RegisterConverterForPair(srcType, dstType any, fieldName string, c conversion.Converter) {
	a.converters.set(scopeType(srcType), scopeType(dstType), fieldName, c)
}

// RegisterValidator adds a global validator for a field name.
func (a *Adapter) RegisterValidator(fieldName string, fn ValidatorFunc) {
	a.validators.set(nil, nil, fieldName, fn)
}

// RegisterValidatorFor adds a validator scoped to a destination type.
func (a *Adapter) RegisterValidatorFor(dstType any, fieldName string, fn ValidatorFunc) {
	a.validators.set(nil, scopeType(dstType), fieldName, fn)
}

// RegisterValidatorForPair adds a validator scoped to (srcType,dstType) for a field name.
func (a *Adapter) RegisterValidatorForPair(srcType, dstType any, fieldName string, fn ValidatorFunc) {
	a.validators.set(scopeType(srcType), scopeType(dstType), fieldName, fn)
}

// WarmMetadata pre-builds metadata for provided example values or types (pass either a value or a *T or T).
func (a *Adapter) WarmMetadata(examples ...any) {
	for _, e := range examples {
		if t := scopeType(e); t != nil && t.Kind() == reflect.Struct {
			_ = a.getOrBuildMetadata(t)
		}
	}
}

// Adapt copies src into dst; both must be pointers to structs.
func (a *Adapter) Adapt(src, dst any, hints conversion.Hints) error {
	const op errors.Op = "converters.structs.Adapter.Adapt"
	if src == nil || dst == nil {
		return errors.New(op).Msg("src and dst must not be nil")
	}
	srcVal := reflect.ValueOf(src)
	dstVal := reflect.ValueOf(dst)
	if srcVal.Kind() != reflect.Ptr || dstVal.Kind() != reflect.Ptr {
		return errors.New(op).Msg("src and dst must be pointers")
	}
	if srcVal.IsNil() || dstVal.IsNil() {
		return errors.New(op).Msg("src and dst must not be nil")
	}
	srcVal, dstVal = srcVal.Elem(), dstVal.Elem()
	if srcVal.Kind() != reflect.Struct || dstVal.Kind() != reflect.Struct {
		return errors.New(op).Msg("src and dst must point to structs")
	}
	return a.adaptStruct(dstVal, srcVal, hints, true)
}

func (a *Adapter) getBoolMap(capHint int) map[string]bool {
	pooled := a.boolMapPool.Get().(map[string]bool)
	if pooled == nil {
		return make(map[string]bool, capHint)
	}
	clear(pooled)
	return pooled
}

func (a *Adapter) putBoolMap(m map[string]bool) {
	if m != nil && len(m) <= 128 {
		a.boolMapPool.Put(m)
	}
}

// adaptStruct copies matching fields; in lenient mode a field that fails to convert is left unset.
func (a *Adapter) adaptStruct(dstVal, srcVal reflect.Value, hints conversion.Hints, strict bool) error {
	const op errors.Op = "converters.structs.Adapter.adaptStruct"
	dt := dstVal.Type()
	st := srcVal.Type()
	dstMeta := a.getOrBuildMetadata(dt)
	srcMeta := a.getOrBuildMetadata(st)
	hasAD := srcMeta.additionalDataField != nil || dstMeta.additionalDataField != nil
	var processed, dstSet map[string]bool
	if hasAD {
		capHint := max(len(srcMeta.fields), len(dstMeta.fields))
		processed = a.getBoolMap(capHint)
		dstSet = a.getBoolMap(capHint)
		defer func() { a.putBoolMap(processed); a.putBoolMap(dstSet) }()
	}
	for i := range dstMeta.fields {
		df := &dstMeta.fields[i]
		if df.isAdditionalData || df.ignore {
			continue
		}
		sf, found := srcMeta.fieldsByName[df.name]
		if !found && df.jsonName != "" {
			sf, found = srcMeta.fieldsByJSONName[df.jsonName]
		}
		if !found {
			continue
		}
		if sf.isAdditionalData || sf.ignore {
			if hasAD {
				processed[sf.name] = true
			}
			continue
		}
		srcField, ok := readField(srcVal, sf.index)
		if !ok {
			continue
		}
		dstField, ok := writableField(dstVal, df.index)
		if !ok {
			continue
		}
		set, err := a.adaptField(dstField, srcField, df.name, st, dt, hints)
		if err != nil {
			if strict {
				return errors.New(op).Err(err).Msg("adapting field " + df.name)
			}
			continue
		}
		if hasAD {
			processed[sf.name] = true
			if set {
				dstSet[df.name] = true
			}
		}
	}
	if srcMeta.additionalDataField != nil && !a.options.DisableUnmarshalAdditionalData {
		if srcAD, ok := readField(srcVal, srcMeta.additionalDataField.index); ok {
			if err := a.unmarshalAdditionalData(dstVal, dstMeta, srcAD, st, dstSet, hints); err != nil {
				return errors.New(op).Err(err).Msg("unmarshaling AdditionalData")
			}
		}
	}
	if dstMeta.additionalDataField != nil && !a.options.DisableMarshalAdditionalData {
		if dstAD, ok := writableField(dstVal, dstMeta.additionalDataField.index); ok {
			if err := a.marshalRemainingFields(dstAD, srcVal, srcMeta, processed); err != nil {
				return errors.New(op).Err(err).Msg("marshaling remaining fields to AdditionalData")
			}
		}
	}
	return nil
}

// adaptField assigns srcField to dstField: a registered field converter first, then direct
// assignment, then an engine conversion. It reports false when no path exists.
func (a *Adapter) adaptField(dstField, srcField reflect.Value, fieldName string, srcRoot, dstRoot reflect.Type, hints conversion.Hints) (bool, error) {
	const op errors.Op = "converters.structs.Adapter.adaptField"
	if c, ok := a.converters.lookup(srcRoot, dstRoot, fieldName); ok && c != nil {
		converted, err := c.Convert(srcField.Interface(), hints)
		if err != nil {
			return false, errors.New(op).Err(err)
		}
		if err = assign(dstField, converted); err != nil {
			return false, errors.New(op).Err(err)
		}
		return true, a.runValidators(dstField, fieldName, srcRoot, dstRoot)
	}
	srcType := srcField.Type()
	dstType := dstField.Type()
	if srcType.AssignableTo(dstType) {
		dstField.Set(srcField)
		return true, a.runValidators(dstField, fieldName, srcRoot, dstRoot)
	}
	converted, ok, err := a.convert(srcField, dstType, hints)
	if err != nil {
		return false, errors.New(op).Err(err)
	}
	if !ok {
		return false, nil
	}
	if err = assign(dstField, converted); err != nil {
		return false, errors.New(op).Err(err)
	}
	return true, a.runValidators(dstField, fieldName, srcRoot, dstRoot)
}

// convert runs an engine conversion, falling back to a same-kind reflect conversion
// (string to named string, int to named int).
func (a *Adapter) convert(v reflect.Value, dstType reflect.Type, hints conversion.Hints) (any, bool, error) {
	srcType := v.Type()
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false, nil
		}
		v = v.Elem()
		srcType = v.Type()
	}
	if a.engine != nil {
		c, err := a.engine.Resolve(srcType, dstType, 0)
		if err == nil {
			out, err := c.Convert(v.Interface(), hints)
			if err != nil {
				return nil, false, err
			}
			return out, true, nil
		}
		if !conversion.IsUnsupported(err) {
			return nil, false, err
		}
	}
	if srcType.ConvertibleTo(dstType) && srcType.Kind() == dstType.Kind() {
		return v.Convert(dstType).Interface(), true, nil
	}
	return nil, false, nil
}

func (a *Adapter) runValidators(dstField reflect.Value, fieldName string, srcRoot, dstRoot reflect.Type) error {
	if fn, ok := a.validators.lookup(srcRoot, dstRoot, fieldName); ok && fn != nil {
		return fn(dstField.Interface())
	}
	return nil
}

func (a *Adapter) unmarshalAdditionalData(dstVal reflect.Value, dstMeta *structMetadata, srcAdditionalData reflect.Value, srcRoot reflect.Type, dstFieldsSet map[string]bool, hints conversion.Hints) error {
	var rawBytes []byte
	switch v := srcAdditionalData.Interface().(type) {
	case null.JSON:
		if !v.Valid {
			return nil
		}
		rawBytes = v.JSON
	case boilertypes.JSON:
		rawBytes = v
	}
	if len(rawBytes) == 0 {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(rawBytes, &fields); err != nil {
		return err
	}
	dt := dstVal.Type()
	for k, raw := range fields {
		fi, ok := dstMeta.lookup(k, a.options.CaseInsensitiveAdditionalData)
		if !ok || fi.ignore || fi.isAdditionalData {
			continue
		}
		if a.options.OverwritePolicy == PreferFields && dstFieldsSet[fi.name] {
			continue
		}
		dstField, ok := writableField(dstVal, fi.index)
		if !ok {
			continue
		}
		if c, ok := a.converters.lookup(srcRoot, dt, fi.name); ok && c != nil {
			// A registered converter owns the field; no fallback on failure.
			var anyVal any
			if err := json.Unmarshal(raw, &anyVal); err != nil {
				continue
			}
			converted, err := c.Convert(anyVal, hints)
			if err != nil || converted == nil || assign(dstField, converted) != nil {
				continue
			}
		} else if !a.decodeInto(dstField, raw, hints) {
			continue
		}
		if err := a.runValidators(dstField, fi.name, srcRoot, dt); err != nil {
			return err
		}
		dstFieldsSet[fi.name] = true
	}
	return nil
}

// decodeInto unmarshals raw into the field's type, or converts the decoded value
// through the engine when the JSON shape does not match.
func (a *Adapter) decodeInto(dstField reflect.Value, raw json.RawMessage, hints conversion.Hints) bool {
	ptr := reflect.New(dstField.Type())
	if err := json.Unmarshal(raw, ptr.Interface()); err == nil {
		dstField.Set(ptr.Elem())
		return true
	}
	var anyVal any
	if err := json.Unmarshal(raw, &anyVal); err != nil || anyVal == nil {
		return false
	}
	converted, ok, err := a.convert(reflect.ValueOf(anyVal), dstField.Type(), hints)
	if err != nil || !ok {
		return false
	}
	return assign(dstField, converted) == nil
}

func (a *Adapter) marshalRemainingFields(dstAdditionalData reflect.Value, srcVal reflect.Value, srcMeta *structMetadata, processed map[string]bool) error {
	remaining := make(map[string]any)
	for i := range srcMeta.fields {
		sf := &srcMeta.fields[i]
		if sf.isAdditionalData || sf.ignore || processed[sf.name] {
			continue
		}
		srcField, ok := readField(srcVal, sf.index)
		if !ok || !srcField.CanInterface() {
			continue
		}
		if !a.options.IncludeZeroValues && srcField.IsZero() {
			continue
		}
		remaining[sf.name] = srcField.Interface()
	}
	if len(remaining) == 0 {
		dstAdditionalData.Set(reflect.Zero(dstAdditionalData.Type()))
		return nil
	}
	bytes, err := json.Marshal(remaining)
	if err != nil {
		return err
	}
	switch dstAdditionalData.Type() {
	case nullJSONType:
		dstAdditionalData.Set(reflect.ValueOf(null.JSONFrom(bytes)))
	case boilerJSONType:
		dstAdditionalData.Set(reflect.ValueOf(boilertypes.JSON(bytes)))
	}
	return nil
}

func assign(dstField reflect.Value, converted any) error {
	const op errors.Op = "converters.structs.assign"
	if converted == nil {
		dstField.Set(reflect.Zero(dstField.Type()))
		return nil
	}
	cv := reflect.ValueOf(converted)
	switch {
	case cv.Type().AssignableTo(dstField.Type()):
		dstField.Set(cv)
	case cv.Type().ConvertibleTo(dstField.Type()) && cv.Kind() == dstField.Kind():
		dstField.Set(cv.Convert(dstField.Type()))
	default:
		return errors.New(op).Errorf("converter returned type %s, expected %s", cv.Type(), dstField.Type())
	}
	return nil
}
