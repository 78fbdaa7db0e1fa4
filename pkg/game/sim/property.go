package sim

import (
	"growify/pkg/game/city"
)

// Value is a city.Variant held in memory.
type Value struct {
	kind city.VariantType
	u8   uint8
	u32s []uint32
}

// Uint8Value creates a Uint8 variant
func Uint8Value(v uint8) Value {
	return Value{kind: city.VariantUint8, u8: v}
}

// Uint32Value creates a single Uint32 variant
func Uint32Value(v uint32) Value {
	return Value{kind: city.VariantUint32, u32s: []uint32{v}}
}

// Uint32ArrayValue creates a Uint32 array variant
func Uint32ArrayValue(v ...uint32) Value {
	return Value{kind: city.VariantUint32Array, u32s: v}
}

// Type implements city.Variant
func (v Value) Type() city.VariantType { return v.kind }

// Uint8 implements city.Variant
func (v Value) Uint8() uint8 { return v.u8 }

// Uint32s implements city.Variant
func (v Value) Uint32s() []uint32 { return v.u32s }

// Properties is an exemplar property table.
type Properties map[uint32]city.Variant

// Property implements city.PropertyHolder
func (p Properties) Property(id uint32) (city.Variant, bool) {
	v, ok := p[id]
	return v, ok
}
