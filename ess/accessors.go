package ess

// GetAs returns the value stored under name when it is of variant T, and
// T's zero value otherwise. It never fails: absent names and variant
// mismatches both produce the zero value (0, "", a nil sequence, a nil List
// or a nil *Compound).
func GetAs[T Value](c *Compound, name string) T {
	var zero T
	if c == nil {
		return zero
	}
	v, ok := c.m[name].(T)
	if !ok {
		return zero
	}
	return v
}

// -----------------------------------------------------------------------------
// Typed getters
// -----------------------------------------------------------------------------

// GetInt8 returns the Int8 stored under name, or 0.
func (c *Compound) GetInt8(name string) int8 { return int8(GetAs[Int8](c, name)) }

// GetInt16 returns the Int16 stored under name, or 0.
func (c *Compound) GetInt16(name string) int16 { return int16(GetAs[Int16](c, name)) }

// GetInt returns the Int32 stored under name, or 0.
func (c *Compound) GetInt(name string) int32 { return int32(GetAs[Int32](c, name)) }

// GetInt64 returns the Int64 stored under name, or 0.
func (c *Compound) GetInt64(name string) int64 { return int64(GetAs[Int64](c, name)) }

// GetFloat32 returns the Float32 stored under name, or 0.
func (c *Compound) GetFloat32(name string) float32 { return float32(GetAs[Float32](c, name)) }

// GetFloat64 returns the Float64 stored under name, or 0.
func (c *Compound) GetFloat64(name string) float64 { return float64(GetAs[Float64](c, name)) }

// GetString returns the String stored under name, or "".
func (c *Compound) GetString(name string) string { return string(GetAs[String](c, name)) }

// GetBytes returns the Bytes stored under name, or nil.
func (c *Compound) GetBytes(name string) []byte { return GetAs[Bytes](c, name) }

// GetInt16s returns the Int16s stored under name, or nil.
func (c *Compound) GetInt16s(name string) []int16 { return GetAs[Int16s](c, name) }

// GetInt32s returns the Int32s stored under name, or nil.
func (c *Compound) GetInt32s(name string) []int32 { return GetAs[Int32s](c, name) }

// GetInt64s returns the Int64s stored under name, or nil.
func (c *Compound) GetInt64s(name string) []int64 { return GetAs[Int64s](c, name) }

// GetFloat32s returns the Float32s stored under name, or nil.
func (c *Compound) GetFloat32s(name string) []float32 { return GetAs[Float32s](c, name) }

// GetFloat64s returns the Float64s stored under name, or nil.
func (c *Compound) GetFloat64s(name string) []float64 { return GetAs[Float64s](c, name) }

// GetStrings returns the Strings stored under name, or nil.
func (c *Compound) GetStrings(name string) []string { return GetAs[Strings](c, name) }

// GetList returns the List stored under name, or nil.
func (c *Compound) GetList(name string) List { return GetAs[List](c, name) }

// GetCompound returns the nested compound stored under name, or nil.
func (c *Compound) GetCompound(name string) *Compound { return GetAs[*Compound](c, name) }

// -----------------------------------------------------------------------------
// Typed setters
// -----------------------------------------------------------------------------

func (c *Compound) SetInt8(name string, v int8)          { c.Set(name, Int8(v)) }
func (c *Compound) SetInt16(name string, v int16)        { c.Set(name, Int16(v)) }
func (c *Compound) SetInt(name string, v int32)          { c.Set(name, Int32(v)) }
func (c *Compound) SetInt64(name string, v int64)        { c.Set(name, Int64(v)) }
func (c *Compound) SetFloat32(name string, v float32)    { c.Set(name, Float32(v)) }
func (c *Compound) SetFloat64(name string, v float64)    { c.Set(name, Float64(v)) }
func (c *Compound) SetString(name string, v string)      { c.Set(name, String(v)) }
func (c *Compound) SetBytes(name string, v []byte)       { c.Set(name, Bytes(v)) }
func (c *Compound) SetInt16s(name string, v []int16)     { c.Set(name, Int16s(v)) }
func (c *Compound) SetInt32s(name string, v []int32)     { c.Set(name, Int32s(v)) }
func (c *Compound) SetInt64s(name string, v []int64)     { c.Set(name, Int64s(v)) }
func (c *Compound) SetFloat32s(name string, v []float32) { c.Set(name, Float32s(v)) }
func (c *Compound) SetFloat64s(name string, v []float64) { c.Set(name, Float64s(v)) }
func (c *Compound) SetStrings(name string, v []string)   { c.Set(name, Strings(v)) }
func (c *Compound) SetList(name string, v ...Value)      { c.Set(name, List(v)) }

// SetCompound stores a nested compound. A nil child removes name.
func (c *Compound) SetCompound(name string, child *Compound) { c.Set(name, child) }
