package model

import (
	"fmt"
	"strings"
)

// SchemaDC is the only metadata schema recognized in row keys and attached
// to serialized metadata documents.
const SchemaDC = "dc"

// Metadata groups an item's metadata collections by schema.
type Metadata struct {
	DC DublinCore
}

// Item is one archive entry: the files it references plus its metadata.
// File paths are relative to the archive's input folder.
type Item struct {
	Files    []string
	Metadata Metadata
}

// ItemFromRow parses a flat tabular row into an Item.
//
// The "files" key holds a "||"-joined list of relative paths; an empty
// value is a valid zero-file item. Every other key must start with the
// "dc" segment and folds into the item's metadata. Malformed rows return
// an error wrapping ErrValidation.
func ItemFromRow(row Row) (*Item, error) {
	root, err := unflatten(row)
	if err != nil {
		return nil, err
	}

	item := &Item{Files: []string{}}
	for _, c := range root.children {
		switch c.key {
		case "files":
			if !c.node.leaf {
				return nil, fmt.Errorf("%w: %q must be a plain value", ErrValidation, "files")
			}
			item.Files = splitFiles(c.node.value)
		case SchemaDC:
			if c.node.leaf {
				return nil, fmt.Errorf("%w: %q needs qualified keys such as %q", ErrValidation, SchemaDC, "dc.title")
			}
			dc, err := dublinCoreFromNode(c.node)
			if err != nil {
				return nil, err
			}
			item.Metadata.DC = dc
		default:
			return nil, fmt.Errorf("%w: unsupported metadata schema %q", ErrValidation, c.key)
		}
	}
	return item, nil
}

// splitFiles splits a "||"-joined file list. An empty string yields an
// empty list, not a list with one empty entry.
func splitFiles(v string) []string {
	if v == "" {
		return []string{}
	}
	return strings.Split(v, "||")
}
