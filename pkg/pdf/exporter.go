package pdf

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"ai-research-be/internal/entity"

	"github.com/go-pdf/fpdf"
)

const lineHeight = 5.0

// Exporter renders a user's session history as a paginated PDF. Summaries
// keep their **bold** markdown emphasis; everything else is plain text.
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes a PDF covering every given session. Sessions are emitted
// in sorted key order so the document is deterministic.
func (e *Exporter) Export(name string, sessions map[string]*entity.Session, w io.Writer) error {
	doc := fpdf.New("P", "mm", "Letter", "")
	doc.SetMargins(18, 18, 18)
	doc.SetAutoPageBreak(true, 18)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 16)
	doc.MultiCell(0, 8, tr(fmt.Sprintf("AI Research Assistant — History for %s", name)), "", "L", false)

	doc.SetFont("Helvetica", "", 9)
	doc.MultiCell(0, lineHeight, fmt.Sprintf("Exported: %s", time.Now().UTC().Format(time.RFC3339)), "", "L", false)
	doc.Ln(6)

	sessionIds := make([]string, 0, len(sessions))
	for id := range sessions {
		sessionIds = append(sessionIds, id)
	}
	sort.Strings(sessionIds)

	for _, id := range sessionIds {
		session := sessions[id]

		doc.SetFont("Helvetica", "B", 12)
		doc.MultiCell(0, 7, tr(fmt.Sprintf("Session: %s", id)), "", "L", false)
		doc.Ln(2)

		if len(session.History) == 0 {
			doc.SetFont("Helvetica", "", 10)
			doc.MultiCell(0, lineHeight, "(no entries)", "", "L", false)
			doc.Ln(4)
			continue
		}

		for _, entry := range session.History {
			doc.SetFont("Helvetica", "B", 10)
			doc.Write(lineHeight, tr(entry.Timestamp))
			doc.SetFont("Helvetica", "", 10)
			doc.Write(lineHeight, tr(" — Query: "))
			writeRich(doc, tr, entry.Query)
			doc.Ln(lineHeight + 1)

			doc.SetFont("Helvetica", "B", 10)
			doc.Write(lineHeight, "Summary: ")
			doc.SetFont("Helvetica", "", 10)
			writeRich(doc, tr, entry.Summary)
			doc.Ln(lineHeight + 3)
		}

		doc.Ln(5)
	}

	return doc.Output(w)
}

// writeRich emits text inline, toggling bold at each **marker** pair and
// honoring newlines.
func writeRich(doc *fpdf.Fpdf, tr func(string) string, text string) {
	segments := strings.Split(text, "**")
	for i, segment := range segments {
		style := ""
		if i%2 == 1 {
			style = "B"
		}
		doc.SetFont("Helvetica", style, 10)

		lines := strings.Split(segment, "\n")
		for j, line := range lines {
			if j > 0 {
				doc.Ln(lineHeight)
			}
			if line != "" {
				doc.Write(lineHeight, tr(line))
			}
		}
	}
	doc.SetFont("Helvetica", "", 10)
}
