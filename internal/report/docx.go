package report

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
	headSize = 16
)

// WriteDocx renders the report as a styled .docx document.
func WriteDocx(d Data, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addHeading(doc, "Corpus Analysis Report", headSize)
	addLine(doc, "Generated: "+d.GeneratedAt.Format("2006-01-02 15:04:05"))
	doc.AddParagraph("")

	addHeading(doc, "Basic Statistics", 15)
	for _, row := range basicRows(d.Stats) {
		addLine(doc, fmt.Sprintf("%s: %s", row[0], row[1]))
	}
	doc.AddParagraph("")

	addHeading(doc, fmt.Sprintf("Top %d Most Frequent Words", len(d.TopWords)), 15)
	for _, wc := range d.TopWords {
		addLine(doc, fmt.Sprintf("%s: %d", wc.Word, wc.Count))
	}
	doc.AddParagraph("")

	addHeading(doc, "Sentence Length Distribution", 15)
	for _, row := range lengthRows(d.LengthDistribution) {
		addLine(doc, fmt.Sprintf("%s words: %s sentences", row[0], row[1]))
	}

	if len(d.Languages) > 0 {
		doc.AddParagraph("")
		addHeading(doc, "Detected Languages (approximate)", 15)
		for _, row := range languageRows(d.Languages) {
			addLine(doc, fmt.Sprintf("%s: %s sentences", row[0], row[1]))
		}
	}

	return doc.SaveTo(outputPath)
}

func addHeading(doc *docx.RootDoc, text string, size uint64) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(size).Color("000000").Bold(true)
}

func addLine(doc *docx.RootDoc, text string) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(fontSize).Color("000000")
}
