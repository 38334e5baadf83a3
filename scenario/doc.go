// Package scenario loads expectation fixtures for mockstore doubles.
//
// A fixture is a YAML file declaring, in issue order, the queries and type
// queries a test expects together with the rows they should return. File
// order is FIFO order: the first declared query is the first one matched.
//
// # Fixture Format
//
//	name: contact_lookup
//	description: "Expectations for the contact detail screen"
//	queries:
//	  - target: res://contacts/1
//	    projection: [id, name]
//	    rows:
//	      - [1, alice]
//	  - target: res://contacts/1/phones
//	    any_projection: true
//	    selection: "deleted = ?"
//	    selection_args: ["0"]
//	type_queries:
//	  - target: res://contacts/1
//	    type: vnd.example/contact
//
// Fixtures are validated twice before use: against an embedded CUE schema
// (shape and cell types, floats rejected) and structurally in Go
// (required fields, wildcard conflicts). Unknown YAML fields are rejected
// to catch typos.
package scenario
