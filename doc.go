/*
Package enumb lets a Go type declare a fixed set of named values and then
query, compare and iterate over them as an enumerated type.

Every comparable type owns exactly one registry, created the first time it is
asked for:

	type Access int

	func init() {
	    access := enumb.For[Access]()
	    access.MustRegister("Nones", 0x0)
	    access.MustRegister("Somes", 0x1)
	    access.MustRegister("Anys", 0x2)
	    access.MustRegister("Each", 0x4)
	}

	v, ok, err := enumb.Parse[Access]("anys") // 0x2, true, nil
	name, ok := enumb.Descriptor(Access(0x4)) // "Each", true
	enumb.Contains(Access(0x8))               // false
	enumb.Values[Access]()                    // [0 1 2 4]

Registries of different types never share entries. Values of mixed dynamic
types can be held in a standalone registry.New[any].

The library follows a definition → build-time → runtime workflow:
  - Definition: describe enums in YAML, TOML or an OpenAPI document
  - Build-time: cmd/enumgen (package processor) generates the type, its
    registrations and one named accessor per enumerator
  - Runtime: generated code and callers use the registry operations

Subpackages:
  - registry: the Registry type and its operations
  - errors: semantic error types
  - codec: text, JSON and DynamoDB encoding of enumerators by name
  - processor: the code generator

For more information, see the documentation at https://github.com/suparena/enumb
*/
package enumb
