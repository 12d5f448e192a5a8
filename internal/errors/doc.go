// Package errors provides structured, actionable errors for tabsd.
//
// Each error has a unique code (e.g., "E001") that maps to a category, a
// short message, and a longer explanation. Callers attach detail, a fix
// suggestion, and a wrapped cause:
//
//	err := errors.New("E001").
//	    WithDetail("root h12 has no [data-js-tabs-button] descendants").
//	    WithSuggestion("Add at least one button or remove the data-js-tabs marker")
//
//	fmt.Print(err.Format())
//	// ERROR E001: Tab group has no buttons
//	//
//	//   root h12 has no [data-js-tabs-button] descendants
//	//
//	//   Hint: Add at least one button or remove the data-js-tabs marker
//
// # Categories
//
//   - config: markup contract or tabs.json problems
//   - protocol: malformed frames or events from a client
//   - source: page markup that cannot be loaded
//   - runtime: failures while handling events
package errors
