package structs

// OverwritePolicy controls how AdditionalData values interact with already-set fields
type OverwritePolicy int

const (
	PreferFields         OverwritePolicy = iota // default: do not overwrite fields set from direct mapping
	PreferAdditionalData                        // overwrite fields with values from AdditionalData if present
)

type Options struct {
	IncludeZeroValues              bool            // when true, include zero-valued fields in marshaled AdditionalData
	CaseInsensitiveAdditionalData  bool            // when true, AdditionalData keys are matched case-insensitively
	OverwritePolicy                OverwritePolicy // controls if AdditionalData overwrites direct fields
	DisableMarshalAdditionalData   bool            // when true, do not marshal remaining fields into destination AdditionalData
	DisableUnmarshalAdditionalData bool            // when true, ignore source AdditionalData
}

type Option func(*Options)

func WithIncludeZeroValues(v bool) Option { return func(o *Options) { o.IncludeZeroValues = v } }
func WithCaseInsensitiveAdditionalData(v bool) Option {
	return func(o *Options) { o.CaseInsensitiveAdditionalData = v }
}
func WithOverwritePolicy(p OverwritePolicy) Option { return func(o *Options) { o.OverwritePolicy = p } }
func WithDisableMarshalAdditionalData(v bool) Option {
	return func(o *Options) { o.DisableMarshalAdditionalData = v }
}
func WithDisableUnmarshalAdditionalData(v bool) Option {
	return func(o *Options) { o.DisableUnmarshalAdditionalData = v }
}
