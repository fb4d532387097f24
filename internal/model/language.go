package model

import "regexp"

// languageBracket matches a bracketed locale-like tag such as "[sv_SE]".
// Only letters and underscores qualify.
var languageBracket = regexp.MustCompile(`\[([a-zA-Z_]+)\]`)

// splitLanguage extracts a bracketed language tag from a metadata key.
//
//	splitLanguage("description[sv_SE]") // "description", "sv_SE", true
//	splitLanguage("title")              // "title", "", false
//
// A bracket whose content is not a plain letter/underscore tag does not
// count as a language; the key is returned whole with ok=false.
func splitLanguage(key string) (element, lang string, ok bool) {
	m := languageBracket.FindStringSubmatchIndex(key)
	if m == nil {
		return key, "", false
	}
	return key[:m[0]], key[m[2]:m[3]], true
}
