// Package definitions is the static field registry the canonical binary
// serializer sorts and type-tags fields against. It mirrors the shape of
// rippled's definitions.json (type code table + per-field metadata),
// scoped to the fields this module's transaction and ledger-object model
// actually uses.
package definitions

// TypeCodes maps a serialization type name to its numeric type code, the
// high bits of a field's sort ordinal.
var TypeCodes = map[string]int32{
	"NotPresent": 0,
	"UInt16":     1,
	"UInt32":     2,
	"UInt64":     3,
	"Hash128":    4,
	"Hash256":    5,
	"Amount":     6,
	"Blob":       7,
	"AccountID":  8,
	"STObject":   14,
	"STArray":    15,
	"UInt8":      16,
	"Hash160":    17,
	"PathSet":    18,
	"Vector256":  19,
}

// TypeCode returns the numeric type code for a serialization type name.
func TypeCode(typeName string) (int32, bool) {
	code, ok := TypeCodes[typeName]
	return code, ok
}
