package definitions

// FieldInstance is the metadata the serializer needs for one named field:
// its serialization type, its sort code within that type, and whether it
// participates in serialization/signing at all.
type FieldInstance struct {
	Name           string
	Type           string
	TypeCode       int32
	Nth            int32
	IsVLEncoded    bool
	IsSerialized   bool
	IsSigningField bool
}

// Ordinal is the (type code, field code) sort key used to order fields in
// canonical serialization: ascending by type code, then by nth.
func (f FieldInstance) Ordinal() uint32 {
	return uint32(f.TypeCode)<<16 | uint32(uint16(f.Nth))
}

// FieldHeader returns the (type code, field code) pair used to build a
// field's header bytes.
func (f FieldInstance) FieldHeader() (typeCode int32, fieldCode int32) {
	return f.TypeCode, f.Nth
}
