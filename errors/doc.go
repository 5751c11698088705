/*
Package errors provides semantic error types for enumb.

Registration and lookup failures are reported with a small taxonomy that can
be checked with the standard errors.Is() function or the provided helpers.

Common Errors:

	var (
	    ErrNotFound      = errors.New("enumerator not found")
	    ErrAlreadyExists = errors.New("enumerator already exists")
	    ErrInvalidInput  = errors.New("invalid input")
	)

Usage:

	get, err := reg.Accessor("Somes")
	if err != nil {
	    if errors.IsNotFound(err) {
	        // Somes was never registered on this type
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewNotFoundError("Access", "Somes")
	err := errors.NewValidationError("name", "must not be empty")
	err := errors.NewAlreadyExistsError("Access", "Nones")

A missing name in Parse or Descriptor is not an error: those lookups return
an ok flag so callers can probe. Only accessors for never-registered names
and malformed arguments surface errors.
*/
package errors
