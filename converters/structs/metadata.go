package structs

import (
	"reflect"
	"strings"

	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
)

const additionalDataField = "AdditionalData"

var (
	nullJSONType   = reflect.TypeOf(null.JSON{})
	boilerJSONType = reflect.TypeOf(boilertypes.JSON(nil))
)

type fieldInfo struct {
	index            []int
	name             string
	jsonName         string
	typ              reflect.Type
	isAdditionalData bool
	ignore           bool
}

type structMetadata struct {
	fields              []fieldInfo
	fieldsByName        map[string]*fieldInfo
	fieldsByJSONName    map[string]*fieldInfo
	additionalDataField *fieldInfo
}

// lookup finds a field by Go name, then by JSON name; optionally ignoring case.
func (m *structMetadata) lookup(key string, caseInsensitive bool) (*fieldInfo, bool) {
	if fi, ok := m.fieldsByName[key]; ok {
		return fi, true
	}
	if fi, ok := m.fieldsByJSONName[key]; ok {
		return fi, true
	}
	if !caseInsensitive {
		return nil, false
	}
	for n, fi := range m.fieldsByName {
		if strings.EqualFold(n, key) {
			return fi, true
		}
	}
	for jn, fi := range m.fieldsByJSONName {
		if strings.EqualFold(jn, key) {
			return fi, true
		}
	}
	return nil, false
}

func (a *Adapter) getOrBuildMetadata(typ reflect.Type) *structMetadata {
	if cached, ok := a.metadataCache.Load(typ); ok {
		return cached.(*structMetadata)
	}
	fc := countFields(typ)
	meta := &structMetadata{fields: make([]fieldInfo, 0, fc), fieldsByName: make(map[string]*fieldInfo, fc), fieldsByJSONName: make(map[string]*fieldInfo, fc)}
	buildFieldMetadata(typ, meta, nil)
	for i := range meta.fields {
		fi := &meta.fields[i]
		meta.fieldsByName[fi.name] = fi
		if fi.jsonName != "" {
			meta.fieldsByJSONName[fi.jsonName] = fi
		}
	}
	if ad, ok := meta.fieldsByName[additionalDataField]; ok && ad.isAdditionalData {
		meta.additionalDataField = ad
	}
	actual, _ := a.metadataCache.LoadOrStore(typ, meta)
	return actual.(*structMetadata)
}

// countFields counts exported fields, flattening embedded structs.
func countFields(typ reflect.Type) int {
	c := 0
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.Anonymous {
			if ft := derefType(f.Type); ft.Kind() == reflect.Struct {
				c += countFields(ft)
				continue
			}
		}
		if f.PkgPath != "" {
			continue
		}
		c++
	}
	return c
}

func buildFieldMetadata(typ reflect.Type, meta *structMetadata, prefix []int) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		idx := append(append([]int(nil), prefix...), i)
		if f.Anonymous {
			if ft := derefType(f.Type); ft.Kind() == reflect.Struct {
				buildFieldMetadata(ft, meta, idx)
				continue
			}
		}
		if f.PkgPath != "" {
			continue
		}
		adapterTag := f.Tag.Get("adapter")
		jsonName := ""
		if jt, ok := f.Tag.Lookup("json"); ok {
			if j := strings.IndexByte(jt, ','); j >= 0 {
				jt = jt[:j]
			}
			if jt != "-" {
				jsonName = jt
			}
		}
		meta.fields = append(meta.fields, fieldInfo{
			index:            idx,
			name:             f.Name,
			jsonName:         jsonName,
			typ:              f.Type,
			isAdditionalData: f.Name == additionalDataField && (f.Type == nullJSONType || f.Type == boilerJSONType),
			ignore:           adapterTag == "ignore" || adapterTag == "-",
		})
	}
}

// readField walks index, returning false when an embedded pointer on the way is nil.
func readField(val reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && val.Kind() == reflect.Ptr {
			if val.IsNil() {
				return reflect.Value{}, false
			}
			val = val.Elem()
		}
		val = val.Field(x)
	}
	return val, true
}

// writableField walks index, allocating nil embedded pointers on the way.
func writableField(val reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && val.Kind() == reflect.Ptr {
			if val.IsNil() {
				if !val.CanSet() {
					return reflect.Value{}, false
				}
				val.Set(reflect.New(val.Type().Elem()))
			}
			val = val.Elem()
		}
		val = val.Field(x)
	}
	return val, val.CanSet()
}

func derefType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Ptr {
		return t.Elem()
	}
	return t
}
