// Package ess provides the compound: a mutable, named, heterogeneous value
// store with typed accessors, and the codec that persists it as a
// zlib/DEFLATE-compressed binary stream.
//
// # Overview
//
// A Compound maps names to values drawn from a closed set of variants
// (signed integers of each width, both float widths, strings, byte
// sequences, numeric and string arrays, lists of values and nested
// compounds). Every variant implements Value and reports its types.Tag.
//
// Typed getters never fail. Reading an absent name, or a name holding a
// different variant, returns the variant's zero value:
//
//	c := ess.New()
//	c.SetInt("TestInteger", 1337)
//	c.SetString("TestString", "Hello World!")
//
//	c.GetInt("TestInteger")    // 1337
//	c.GetInt("TestString")     // 0
//	c.GetString("TestInteger") // ""
//
// # Persistence
//
// WriteFile and Write serialize a compound; ReadFile and Read reconstruct
// it. The stream is a zlib container (RFC 1950) around a tag-prefixed,
// big-endian encoding of the value graph described in internal/format.
//
//	if err := ess.WriteFile("IOTest.dat", c); err != nil {
//	    return err
//	}
//	back, err := ess.ReadFile("IOTest.dat")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(back.Equal(c)) // true
//
// Failures are returned as *types.Error values whose Kind separates I/O
// problems from malformed input; a failed read never returns a partially
// populated compound.
//
// # Concurrency
//
// A Compound is not safe for concurrent mutation. Callers sharing one across
// goroutines must synchronize externally or hand each goroutine a Clone.
package ess
