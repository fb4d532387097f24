// Package archive assembles Simple Archive Format packages.
//
// An Archive is parsed from a CSV source (one row per item, header row
// defining the keys) and then written exactly once, either as a directory
// tree or as a single zip file:
//
//	a, err := archive.FromCSV("items.csv")
//	if err != nil {
//	    return err
//	}
//	err = a.WriteToPath(ctx, "output/items", nil)
//
// Both output modes produce, per item, an item_NNN folder (or entry
// prefix) holding the item's files, a "contents" listing of file base
// names, and a generated dublin_core.xml document. Items and files are
// processed strictly in input order so repeated runs over the same input
// produce identical output.
//
// Progress reporting is injected: pass a Reporter to the write methods to
// observe per-file operations, or nil to run silently.
package archive
