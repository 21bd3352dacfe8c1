package service

import "strings"

// Irregular third-person-singular forms and their plural counterparts. "to
// be" is also the only verb whose past tense differs between third person
// singular and plural, hence the "was" entry.
var irregularPlural = map[string]string{
	"is":   "are",
	"was":  "were",
	"has":  "have",
	"does": "do",
}

// Stems that take "es" in the third person singular.
var esSuffixes = []string{"ss", "sh", "ch", "x", "z", "o"}

// pluralizeVerb converts a present-tense third-person-singular verb form to
// its plural form, e.g. "hears" to "hear". The second return is false when
// the word does not look like a singular conjugation, in which case the
// caller leaves the sentence alone.
func pluralizeVerb(verb string) (string, bool) {
	lowered := strings.ToLower(verb)
	if plural, ok := irregularPlural[lowered]; ok {
		return matchCase(verb, plural), true
	}

	if strings.HasSuffix(lowered, "ies") && len(lowered) > 3 {
		return matchCase(verb, lowered[:len(lowered)-3]+"y"), true
	}
	if strings.HasSuffix(lowered, "es") {
		stem := lowered[:len(lowered)-2]
		for _, suffix := range esSuffixes {
			if strings.HasSuffix(stem, suffix) {
				return matchCase(verb, stem), true
			}
		}
	}
	if strings.HasSuffix(lowered, "s") && !strings.HasSuffix(lowered, "ss") && len(lowered) > 1 {
		return matchCase(verb, lowered[:len(lowered)-1]), true
	}
	return verb, false
}

// matchCase carries an upper-case first letter over to the replacement.
func matchCase(original, replacement string) string {
	if original == "" || replacement == "" {
		return replacement
	}
	if original[0] >= 'A' && original[0] <= 'Z' {
		return strings.ToUpper(replacement[:1]) + replacement[1:]
	}
	return replacement
}
