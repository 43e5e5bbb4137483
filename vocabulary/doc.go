// Package vocabulary provides the shared concept registry that gives
// protocol messages their meaning.
//
// A Concept is a dotted identifier such as "ACT.QUERY.DATA" whose first
// segment names its category (ENT, ACT, PROP, REL, LOG, MATH, TIME,
// SPACE, DATA, META). Around two hundred concepts covering common agent
// operations register themselves at package initialization; applications
// extend the registry with their own:
//
//	vocabulary.Register("ACT.CUSTOM.REINDEX",
//		vocabulary.WithDescription("Rebuild the search index"),
//		vocabulary.WithExamples("reindex", "rebuild"))
//
// Registration is safe for concurrent use. The compact wire format
// assigns numeric indices from the sorted identifier list, so all
// parties must register extensions before any compact encoding takes
// place and must share the same extension set.
package vocabulary
