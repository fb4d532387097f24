// Package dcxml builds and serializes dublin_core.xml metadata documents.
//
// The output format is fixed: a dublin_core root with a schema attribute
// and one dcvalue child per statement, no XML declaration and no
// whitespace between tags:
//
//	<dublin_core schema="dc"><dcvalue element="title" qualifier="none">Simple</dcvalue></dublin_core>
//
// The same document serializes byte-for-byte identically whether written
// to a file or to an open stream, so directory and zip output stay in
// sync:
//
//	doc := dcxml.Build(item.Metadata.DC, model.SchemaDC)
//	err := doc.WriteFile(filepath.Join(itemPath, "dublin_core.xml"))
package dcxml
