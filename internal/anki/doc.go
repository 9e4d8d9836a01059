// Package anki exports question/answer pairs as Anki packages (.apkg)
// so a quiz can also be studied as flashcards. An .apkg file is a zip
// archive holding a SQLite collection database and a media manifest.
package anki
