package pptx

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
)

// emuPerInch is the number of English Metric Units per inch, the length
// unit used throughout PresentationML.
const emuPerInch = 914400

// TextBox is a positioned block of text on a slide. Position and size
// are in inches, the font size in points.
type TextBox struct {
	Text   string
	Left   float64
	Top    float64
	Width  float64
	Height float64
	Size   int
	Bold   bool
	Color  string // hex RGB, e.g. "FFFFFF"
}

// Slide is one page of the deck: a title box plus any number of body
// text boxes.
type Slide struct {
	Title string
	Boxes []TextBox
}

// Deck is an ordered sequence of slides sharing canvas dimensions and
// visual defaults.
type Deck struct {
	// Canvas dimensions in inches.
	Width  float64
	Height float64

	// Background is the solid background color of every slide.
	Background string
	// TitleColor and TitleSize format the title box of every slide.
	TitleColor string
	TitleSize  int

	slides []Slide
}

// NewDeck creates an empty 10 x 7.5 inch deck with a dark background
// and a white 32pt title.
func NewDeck() *Deck {
	return &Deck{
		Width:      10,
		Height:     7.5,
		Background: "202020",
		TitleColor: "FFFFFF",
		TitleSize:  32,
	}
}

// AddSlide appends a slide with the given title and body text boxes.
func (d *Deck) AddSlide(title string, boxes ...TextBox) {
	d.slides = append(d.slides, Slide{Title: title, Boxes: boxes})
}

// SlideCount returns the number of slides added so far.
func (d *Deck) SlideCount() int {
	return len(d.slides)
}

// Slides returns the slides in presentation order.
func (d *Deck) Slides() []Slide {
	return d.slides
}

// Save writes the deck as a .pptx file. The package is written to a
// temporary file first and renamed into place, so a failed save never
// leaves a truncated file under outputPath.
func (d *Deck) Save(outputPath string) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(outputPath), ".quizdeck-*.pptx")
	if err != nil {
		return fmt.Errorf("failed to create temporary deck file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if err := d.writePackage(tmpFile); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to finish deck file: %w", err)
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write deck to %s: %w", outputPath, err)
	}
	return nil
}

// writePackage writes all package parts into a zip archive.
func (d *Deck) writePackage(w *os.File) error {
	archive := zip.NewWriter(w)

	parts := d.packageParts()
	for _, part := range parts {
		entry, err := archive.Create(part.name)
		if err != nil {
			return fmt.Errorf("failed to create package part %s: %w", part.name, err)
		}
		if _, err := entry.Write([]byte(part.content)); err != nil {
			return fmt.Errorf("failed to write package part %s: %w", part.name, err)
		}
	}

	if err := archive.Close(); err != nil {
		return fmt.Errorf("failed to close deck package: %w", err)
	}
	return nil
}

// part is a single named XML file inside the .pptx zip.
type part struct {
	name    string
	content string
}

// packageParts assembles every part of the .pptx package in a stable
// order, so the same deck always produces the same entry layout.
func (d *Deck) packageParts() []part {
	n := len(d.slides)

	parts := []part{
		{"[Content_Types].xml", d.contentTypesXML()},
		{"_rels/.rels", rootRelsXML},
		{"docProps/core.xml", corePropsXML},
		{"docProps/app.xml", d.appPropsXML()},
		{"ppt/presentation.xml", d.presentationXML()},
		{"ppt/_rels/presentation.xml.rels", d.presentationRelsXML()},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML},
		{"ppt/theme/theme1.xml", themeXML},
	}

	for i := 0; i < n; i++ {
		parts = append(parts,
			part{fmt.Sprintf("ppt/slides/slide%d.xml", i+1), d.slideXML(d.slides[i])},
			part{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), slideRelsXML},
		)
	}
	return parts
}

// emu converts inches to English Metric Units.
func emu(inches float64) int64 {
	return int64(inches*emuPerInch + 0.5)
}
