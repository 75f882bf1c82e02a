package classify

import "strings"

// verbNounMap normalizes verb forms and gerunds the model tends to emit
// into the noun forms the ontology uses for technique names.
var verbNounMap = map[string]string{
	// Verbs to nouns
	"search":       "Search",
	"display":      "Display",
	"refresh":      "Refresh",
	"authenticate": "Authentication",
	"authorize":    "Authorization",
	"validate":     "Validation",
	"decrypt":      "Decryption",
	"encrypt":      "Encryption",
	"sync":         "Sync",
	"synchronize":  "Sync",
	"cache":        "Caching",
	"notify":       "Notification",
	"export":       "Export",
	"import":       "Import",
	"store":        "Store",
	"backup":       "Backup",
	"restore":      "Restoration",
	"monitor":      "Monitor",
	"index":        "Indexing",
	"log":          "Log",

	// Already noun forms, just needing canonical casing
	"decryption":      "Decryption",
	"encryption":      "Encryption",
	"validation":      "Validation",
	"authentication":  "Authentication",
	"authorization":   "Authorization",
	"synchronization": "Sync",
	"caching":         "Caching",
	"notification":    "Notification",
	"storage":         "Store",
	"monitoring":      "Monitor",
	"indexing":        "Indexing",
	"logging":         "Log",
}

// verbToNoun converts a verb the model returned into the noun form used
// for technique type names: "authenticate" → "Authentication". Unknown
// words fall through to suffix heuristics, then plain capitalization.
func verbToNoun(word string) string {
	lower := strings.ToLower(word)

	if noun, ok := verbNounMap[lower]; ok {
		return noun
	}

	switch {
	case strings.HasSuffix(lower, "ate"):
		// validate -> Validation
		return capitalize(word[:len(word)-1]) + "ion"
	case strings.HasSuffix(lower, "ify"):
		// notify -> Notification
		return capitalize(word[:len(word)-3]) + "ification"
	case strings.HasSuffix(lower, "ize"):
		// synchronize -> Synchronization
		return capitalize(word[:len(word)-1]) + "ation"
	}

	return capitalize(word)
}

// capitalize uppercases the first byte and lowercases the rest, mirroring
// how type names are cased in the ontology.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
