package model

import "fmt"

// Statement is one qualified Dublin Core assertion, e.g. element "title"
// with value "Simple". Element is never empty. An empty Qualifier means
// the statement is unqualified and serializes with the literal qualifier
// "none"; an empty Language means no language attribute is written.
type Statement struct {
	Element   string
	Value     string
	Qualifier string
	Language  string
}

// DublinCore is an ordered collection of statements. Statement order
// follows the source row and is preserved through serialization.
type DublinCore struct {
	Statements []Statement
}

// NewDublinCore builds a collection from an explicit statement list.
// Building a collection from its own statements is the identity.
func NewDublinCore(statements []Statement) DublinCore {
	return DublinCore{Statements: statements}
}

// dublinCoreFromNode folds a branch of the unflattened row tree into an
// ordered statement list. Leaf children are plain element/value pairs,
// optionally carrying a bracketed language tag on the key. Branch children
// are pre-structured payloads with explicit value/qualifier/language
// subfields; their element name is the key verbatim, brackets included.
func dublinCoreFromNode(n *node) (DublinCore, error) {
	statements := make([]Statement, 0, len(n.children))
	for _, c := range n.children {
		if c.node.leaf {
			st := Statement{Element: c.key, Value: c.node.value}
			if element, lang, ok := splitLanguage(c.key); ok {
				st.Element = element
				st.Language = lang
			}
			statements = append(statements, st)
			continue
		}

		st, err := statementFromNode(c.key, c.node)
		if err != nil {
			return DublinCore{}, err
		}
		statements = append(statements, st)
	}
	return DublinCore{Statements: statements}, nil
}

// statementFromNode reads an explicit statement payload, e.g. the row keys
// dc.date.value / dc.date.qualifier. A payload without a value, with an
// unknown subfield, or with further nesting is rejected rather than
// silently dropped.
func statementFromNode(element string, n *node) (Statement, error) {
	st := Statement{Element: element}
	hasValue := false
	for _, c := range n.children {
		if !c.node.leaf {
			return Statement{}, fmt.Errorf("%w: metadata entry %q: subfield %q nests too deeply", ErrValidation, element, c.key)
		}
		switch c.key {
		case "value":
			st.Value = c.node.value
			hasValue = true
		case "qualifier":
			st.Qualifier = c.node.value
		case "language":
			st.Language = c.node.value
		default:
			return Statement{}, fmt.Errorf("%w: metadata entry %q: unknown subfield %q", ErrValidation, element, c.key)
		}
	}
	if !hasValue {
		return Statement{}, fmt.Errorf("%w: metadata entry %q has no value", ErrValidation, element)
	}
	return st, nil
}
