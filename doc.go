// Package conversion resolves converters between types at runtime.
//
// An Engine holds a registry of atomic edges (hand-registered converters from one type to
// another) and factories (converters for whole families of target types). Asked for a
// converter from a source to a target type it tries, in order:
//  1. Identity, when the source is already acceptable as the target
//  2. The negative cache of pairs proven unsupported
//  3. The positive cache of earlier resolutions
//  4. A direct edge, exact or through compatibility, then the first factory that accepts
//  5. Pipe search: the cheapest chain of edges no longer than the nesting depth
//  6. Hunt search: a depth-first fallback returning the first chain found
//
// Outcomes are cached; registering an edge drops the cached outcomes of its pair.
//
// # Basic Usage
//
//	e := conversion.NewReflect()
//	_ = common.Register(e)
//	n, err := conversion.ConvertTo[int64](e, "42", nil)
//
// # Scoring
//
// A pipe of n edges scores n times the sum of its edge weights: 3 for a clean edge and 13
// for a lossy one. The lowest score wins, ties going to the pipe found first.
//
// # Descriptors
//
// Engines are generic over the type descriptor. NewReflect builds one over reflect.Type,
// where compatibility is Go assignability. New accepts any comparable descriptor with a
// Compatibility relation, such as a Hierarchy of declared subtypes.
//
// # Hints
//
// Every conversion receives a Hints map. Converters read the keys they know (HintZone,
// HintStrict, HintEpochUnit, HintDateLayout) and ignore the rest.
//
// # Thread Safety
//
// Engines are safe for concurrent use. Edges and factories are swapped copy-on-write,
// caches are concurrent maps and each search keeps its frontier on the calling goroutine.
// WithSerializedSearch limits an engine to one search at a time.
//
// Built-in converters live under converters/: common Go and null types, SQLite and
// Postgres column formats, DynamoDB attribute values and struct-to-struct mapping.
package conversion
