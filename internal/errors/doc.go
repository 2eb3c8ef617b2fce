// Package errors provides structured, coded errors for gee.
//
// Every error produced by the builder, the document evaluator, the config
// loader and the CLI carries a registered code (e.g., "G001") that maps to:
//   - a category (builder, document, config, output, cli)
//   - a short message
//   - a longer explanation
//
// # Usage
//
//	err := errors.New("G001").
//	    WithDetail("descriptor is int, want string").
//	    WithSuggestion(`Pass the descriptor as a string, e.g. ".a #home nav"`)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR G001: Invalid descriptor
//	//
//	//   descriptor is int, want string
//	//
//	//   Hint: Pass the descriptor as a string, e.g. ".a #home nav"
//
// Errors wrap an underlying cause, so errors.Is and errors.As from the
// standard library work through them.
package errors
