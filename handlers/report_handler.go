package handlers

import (
    "log"
    "net/http"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/report"
)

// DownloadCSVReport streams the full enriched table as a CSV attachment.
func DownloadCSVReport(w http.ResponseWriter, r *http.Request) {
    thresholds := ThresholdsFromQuery(r.URL.Query())
    enriched := analysisFor(thresholds)

    w.Header().Set("Content-Type", "text/csv")
    w.Header().Set("Content-Disposition", `attachment; filename="village_gap_report.csv"`)

    if err := report.WriteEnrichedCSV(w, enriched); err != nil {
        log.Printf("Error writing CSV report: %v", err)
    }
}

// DownloadPDFReport streams the paginated gap report as a PDF attachment,
// villages sorted by priority score descending.
func DownloadPDFReport(w http.ResponseWriter, r *http.Request) {
    thresholds := ThresholdsFromQuery(r.URL.Query())
    enriched := analysisFor(thresholds)

    w.Header().Set("Content-Type", "application/pdf")
    w.Header().Set("Content-Disposition", `attachment; filename="village_gap_report.pdf"`)

    if err := report.WritePDF(w, enriched); err != nil {
        log.Printf("Error writing PDF report: %v", err)
    }
}
