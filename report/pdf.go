package report

import (
    "fmt"
    "io"
    "sort"
    "github.com/go-pdf/fpdf"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/models"
)

// WritePDF renders the village gap report: one block per village with name,
// score, gaps and suggested improvements, sorted by priority score
// descending. Page breaks are handled by the document engine.
func WritePDF(w io.Writer, enriched []models.EnrichedVillage) error {
    ranked := make([]models.EnrichedVillage, len(enriched))
    copy(ranked, enriched)
    sort.SliceStable(ranked, func(i, j int) bool {
        return ranked[i].PriorityScore > ranked[j].PriorityScore
    })

    pdf := fpdf.New("P", "mm", "A4", "")
    pdf.SetTitle("Village Gap Report (AdarshPulse)", false)
    pdf.AddPage()

    pdf.SetFont("Helvetica", "B", 16)
    pdf.CellFormat(0, 10, "Village Gap Report (AdarshPulse)", "", 1, "C", false, 0, "")
    pdf.Ln(4)

    for _, village := range ranked {
        pdf.SetFont("Helvetica", "B", 12)
        pdf.MultiCell(0, 6, fmt.Sprintf("%s (Score: %d)", village.Name, village.PriorityScore), "", "L", false)

        pdf.SetFont("Helvetica", "", 10)
        pdf.MultiCell(0, 5, "Gaps: "+village.GapsText, "", "L", false)
        pdf.MultiCell(0, 5, "Suggested Improvement: "+village.ImprovementsText, "", "L", false)
        pdf.Ln(4)
    }

    return pdf.Output(w)
}
