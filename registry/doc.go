/*
Package registry implements the per-type enumerator table behind enumb.

A Registry maps enumerator names to values of one comparable type and keeps
them in registration order:

	access := registry.New[int]("Access")
	access.MustRegister("Nones", 0x0)
	access.MustRegister("Somes", 0x1)
	access.MustRegister("Anys", 0x2)
	access.MustRegister("Each", 0x4)

	x := access.MustGet("Nones") | access.MustGet("Anys")
	x&access.MustGet("Anys") != 0 // true

Lookups:

	v, ok, err := access.Parse("ANYS")   // case-insensitive name lookup
	name, ok := access.Descriptor(0x2)   // first name whose value matches
	access.Contains(0x4)                 // membership

Enumeration comes in four shapes backed by the same snapshot: Values,
All (an iter.Seq), Each and Map.

Accessors:
Accessor(name) returns the zero-argument function bound when the name was
first registered. It reads the registry on every call, so registering the same
name again changes what existing accessors return. Named accessors such as
AccessNones() are produced at build time by the processor package and
dispatch through MustGet.

Registration writes the table and binds the accessor under one lock; readers
see either the state before or after a registration, never a partial entry.
*/
package registry
