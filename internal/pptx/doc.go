// Package pptx writes minimal PowerPoint (.pptx) presentations. A .pptx
// file is a zip archive of PresentationML XML parts; this package
// assembles the fixed parts (content types, relationships, slide master,
// blank layout, theme) from templates and renders one XML part per slide.
// Only what the slide generator needs is supported: a solid background,
// a title box, and justified word-wrapped text boxes.
package pptx
