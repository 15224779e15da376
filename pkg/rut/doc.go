// Package rut implements the Chilean national identification number (RUT) as a
// self-validating value type, together with the Modulo 11 checksum engine, a
// tolerant cleaner/parser, validation helpers, batch construction and a random
// generator for test data.
//
// A RUT is a numeric body followed by a single check character ("18.300.252-K").
// The check character is derived from the body with the Modulo 11 algorithm and
// is one of 0-9 or K. Case of the K is a presentation concern only.
//
// # Architecture
//
// Data flows in one direction: raw text is cleaned (Clean), split into body and
// check character (Separate), validated against the checksum (Validate) and
// finally wrapped into a RUT value that knows how to format, compare and
// serialise itself. The Generator flows the other way: a random body goes
// through Checksum and becomes a RUT.
//
// The RUT type is an immutable, comparable value. The zero value represents
// "no RUT yet" and may be filled exactly once through Set, which makes *RUT
// usable as a flag.Value. Presentation settings (letter case, string format,
// JSON shape) are attached per value with WithFormat, Uppercase, Lowercase and
// WithJSONShape; anything not overridden falls back to the process-wide
// Config returned by DefaultConfig.
//
// # Usage
//
//	r, err := rut.Parse("18.300.252-k")
//	if err != nil {
//	    // the input had no digits at all
//	}
//	r.IsValid()  // true
//	r.Strict()   // "18.300.252-K"
//	r.Raw()      // "18300252K"
//	r.IsPerson() // true
//
//	rut.Validate("24700909-4", "22.605.071-K") // true
//	rut.AreEqual("2470!!!###0909-4", "24.700.909-4") // true
//
// Batch construction never fails unless explicitly asked to:
//
//	ruts := rut.MakeMany("18300252-K", "garbage") // second slot is an absent RUT
//	ruts, err := rut.MakeAll("18300252-K", "garbage")
//	var batchErr *rut.BatchError
//	if errors.As(err, &batchErr) {
//	    // batchErr.Expected == 2, batchErr.Actual == 1
//	}
//
// Random RUTs for fixtures:
//
//	gen := rut.NewGenerator(rut.AsCompany(), rut.WithoutDuplicates())
//	companies, err := gen.Generate(100)
//
// # Error Handling
//
// Single-value lookups never fail: invalid input becomes false or an absent
// RUT. Only the explicitly throwing paths (Parse, MustParse, CleanChecked,
// Separate, MakeAll) return errors, all of which wrap the sentinel errors in
// errors.go and can be matched with errors.Is and errors.As.
//
// # Concurrency
//
// RUT values, the checksum, cleaning and validation helpers are pure and safe
// for concurrent use. The process-wide Config is stored atomically, Maker hooks
// are guarded by a mutex and every Generator serialises access to its random
// source.
package rut
