/*
Package processor generates Go code for enumb enumerated types.

The processor reads enum definitions and generates, for each enum, the type
declaration, its registrations and one named accessor per enumerator. Named
call sites are produced at build time; at runtime they all dispatch through
the registry's MustGet.

Definition files (YAML, or TOML with a .toml extension):

	package: access
	enums:
	  - type: Access
	    kind: int
	    flags: true
	    values:
	      - {name: Nones, value: 0x0}
	      - {name: Somes, value: 0x1}
	      - {name: Anys, value: 0x2}
	      - {name: Each, value: 0x4}

OpenAPI Extension:
OpenAPI documents are recognized by their top-level openapi key. Every
component schema with an enum list is generated; names come from the
x-enum-varnames vendor extension or are derived from string values:

	Status:
	  type: string
	  description: Status of an order.
	  enum: [pending, in-progress, done]
	  x-enum-varnames: [Pending, InProgress, Done]

String enums may declare a format (uuid, email, hostname, ...). Every value
is checked against the strfmt registry.

Generated Code:

	type Access int

	var accessEnum = enumb.For[Access]()

	func init() {
	    accessEnum.MustRegister("Nones", Access(0x0))
	    ...
	}

	// AccessNones returns the Nones enumerator of Access.
	func AccessNones() Access {
	    return accessEnum.MustGet("Nones")
	}

	func ParseAccess(name string) (Access, bool)
	func AccessValues() []Access
	func (a Access) String() string
	func (a Access) IsValid() bool
	func (a Access) Has(flag Access) bool // flags only

Enums whose values have mixed types (kind any) get a registry.New[any]
variable and the same functions returning any, without a type or methods.
*/
package processor
