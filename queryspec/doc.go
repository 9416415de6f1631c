// Package queryspec loads declarative query documents and materializes
// them into sqlbuilder.Builder values.
//
// A document is YAML:
//
//	name: cool-cars
//	tables:
//	  - name: Car
//	fields:
//	  - name: Name
//	joins:
//	  - table: Colors
//	    on:
//	      - left: Color.ID
//	        right: Car.COLOR_ID
//	filters:
//	  - field: Car.IS_COOL
//	    value: true
//	  - field: Car.NAME
//	    value: Ford
//	    group: 1
//	order_by:
//	  - expr: Color.Name
//
// Loading is strict: unknown YAML fields are rejected (catching typos),
// the raw document is checked against an embedded CUE schema, and the
// decoded document is structurally validated before any builder state is
// created. Build then produces a builder equivalent to making the same
// calls by hand, so a fragment kept in configuration can be Apply-merged
// onto programmatic queries.
package queryspec
