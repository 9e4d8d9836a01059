// Package processor contains the core flow of quizdeck: it parses the
// quiz file, builds the slide deck, saves it, and optionally exports
// the pairs as an Anki package. This package serves as the coordinator
// between the parser, the slide builder, and the exporters.
package processor
