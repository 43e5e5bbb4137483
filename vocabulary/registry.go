package vocabulary

import (
	"sort"
	"strings"
	"sync"
)

// Concept is a single entry in the controlled vocabulary. Concepts are
// identified by dotted uppercase hierarchical notation, CATEGORY.SUBCATEGORY.SPECIFIC
// (e.g. "ACT.QUERY.DATA") or CATEGORY.SPECIFIC for two-level concepts
// (e.g. "MATH.ADD").
type Concept struct {
	// ID is the full dotted identifier.
	ID string
	// Category is the top-level category code (ENT, ACT, PROP, REL, LOG,
	// MATH, TIME, SPACE, DATA, META).
	Category string
	// Subcategory is the second level of the identifier, empty for
	// two-level concepts.
	Subcategory string
	// Description is a short human-readable definition.
	Description string
	// Examples are informal synonyms used by substring search.
	Examples []string
}

// Global concept registry
var (
	registryMu      sync.RWMutex
	conceptRegistry = make(map[string]Concept)
)

// Option is a functional option for configuring concept registration.
type Option func(*Concept)

// WithDescription sets the human-readable description of the concept.
func WithDescription(desc string) Option {
	return func(c *Concept) {
		c.Description = desc
	}
}

// WithExamples sets the informal synonyms searched alongside the
// identifier and description.
func WithExamples(examples ...string) Option {
	return func(c *Concept) {
		c.Examples = examples
	}
}

// Register registers a concept in the global registry. Category and
// subcategory are parsed from the dotted identifier. Registering an
// existing identifier overwrites it, which lets applications override
// the built-in definitions.
//
// The built-in vocabulary registers itself during package
// initialization; applications extend it by calling Register before
// any compact-format encoding takes place (the codec freezes a sorted
// snapshot of the identifier set on first use).
//
// Example:
//
//	vocabulary.Register("ACT.QUERY.DATA",
//	    vocabulary.WithDescription("Query for data or information"),
//	    vocabulary.WithExamples("select", "get", "fetch"))
func Register(id string, opts ...Option) {
	category, subcategory := parseCategory(id)

	concept := Concept{
		ID:          id,
		Category:    category,
		Subcategory: subcategory,
	}

	for _, opt := range opts {
		opt(&concept)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	conceptRegistry[id] = concept
}

// parseCategory extracts category and subcategory from a dotted
// identifier. For "ACT.QUERY.DATA" it returns ("ACT", "QUERY"); for the
// two-level "MATH.ADD" it returns ("MATH", "").
func parseCategory(id string) (category, subcategory string) {
	parts := strings.SplitN(id, ".", 3)
	switch len(parts) {
	case 1:
		return parts[0], ""
	case 2:
		return parts[0], ""
	default:
		return parts[0], parts[1]
	}
}

// Contains reports whether the identifier exists in the vocabulary.
// This function is thread-safe and can be called concurrently.
func Contains(id string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()

	_, exists := conceptRegistry[id]
	return exists
}

// Get retrieves a concept by identifier. The boolean reports whether it
// was found. The returned Concept is a copy; mutating it does not
// affect the registry.
func Get(id string) (Concept, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	concept, exists := conceptRegistry[id]
	return concept, exists
}

// Search returns the identifiers of all concepts matching the query by
// case-insensitive substring, scanning identifiers, descriptions, and
// examples. Results are sorted for deterministic output.
func Search(query string) []string {
	queryLower := strings.ToLower(query)

	registryMu.RLock()
	defer registryMu.RUnlock()

	var results []string
	for id, concept := range conceptRegistry {
		if strings.Contains(strings.ToLower(id), queryLower) {
			results = append(results, id)
			continue
		}
		if strings.Contains(strings.ToLower(concept.Description), queryLower) {
			results = append(results, id)
			continue
		}
		for _, example := range concept.Examples {
			if strings.Contains(strings.ToLower(example), queryLower) {
				results = append(results, id)
				break
			}
		}
	}

	sort.Strings(results)
	return results
}

// ListByCategory returns all identifiers in the given category code,
// sorted.
func ListByCategory(category string) []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var results []string
	for id, concept := range conceptRegistry {
		if concept.Category == category {
			results = append(results, id)
		}
	}

	sort.Strings(results)
	return results
}

// Categories returns the distinct category codes present in the
// vocabulary, sorted.
func Categories() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	seen := make(map[string]struct{})
	for _, concept := range conceptRegistry {
		seen[concept.Category] = struct{}{}
	}

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Identifiers returns every registered identifier in a deterministic
// sorted order. The compact codec builds its index from this sequence:
// same vocabulary contents, same ordering, same indices, on every
// implementation.
func Identifiers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	ids := make([]string, 0, len(conceptRegistry))
	for id := range conceptRegistry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of registered concepts.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(conceptRegistry)
}
