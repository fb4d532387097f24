// Package model defines the core data structures for building Simple
// Archive Format packages.
//
// # Item
//
// Item represents one archive entry: an ordered list of file references
// plus a Dublin Core metadata collection. Items are parsed from flat
// tabular rows whose keys use dots for nesting:
//
//	row := model.Row{
//	    {Key: "files", Value: "simple.txt"},
//	    {Key: "dc.title", Value: "Simple"},
//	}
//	item, err := model.ItemFromRow(row)
//
// # Dublin Core
//
// DublinCore is an ordered collection of Statement values. A statement
// carries an element name, a value, and optional qualifier and language
// fields. Metadata keys may carry a bracketed language tag:
//
//	dc.description[sv_SE] = "beskrivning"
//
// which parses into element "description" with language "sv_SE".
//
// Row parsing goes through a typed intermediate tree: the flat keys are
// unflattened first, then validated and folded into Item fields. Malformed
// rows are rejected with errors wrapping ErrValidation before any file I/O
// takes place.
package model
