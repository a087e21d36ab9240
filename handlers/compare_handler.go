package handlers

import (
    "log"
    "net/http"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/engine"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/models"
)

// ComparisonRow is one metric compared across two villages. Difference is
// v1 minus v2 where both sides are numeric, "N/A" otherwise.
type ComparisonRow struct {
    Metric     string      `json:"metric"`
    Village1   interface{} `json:"village_1"`
    Village2   interface{} `json:"village_2"`
    Difference interface{} `json:"difference"`
}

// CompareVillages returns a side-by-side comparison of two villages under
// the requested thresholds. Comparing a village with itself is rejected
// here; the engine is never invoked for the degenerate case.
func CompareVillages(w http.ResponseWriter, r *http.Request) {
    query := r.URL.Query()
    name1 := query.Get("v1")
    name2 := query.Get("v2")
    if name1 == "" || name2 == "" {
        http.Error(w, "v1 and v2 query parameters are required", http.StatusBadRequest)
        return
    }

    village1, ok := findVillage(name1)
    if !ok {
        http.Error(w, "Village not found: "+name1, http.StatusNotFound)
        return
    }
    village2, ok := findVillage(name2)
    if !ok {
        http.Error(w, "Village not found: "+name2, http.StatusNotFound)
        return
    }
    if village1.ID == village2.ID {
        http.Error(w, "Please select two different villages for comparison", http.StatusBadRequest)
        return
    }

    thresholds := ThresholdsFromQuery(query)
    enriched1 := engine.Enrich(village1, thresholds)
    enriched2 := engine.Enrich(village2, thresholds)

    log.Printf("Comparing villages %s and %s", village1.ID, village2.ID)

    writeJSON(w, map[string]interface{}{
        "thresholds": thresholds,
        "village_1":  enriched1.Name,
        "village_2":  enriched2.Name,
        "rows":       comparisonRows(enriched1, enriched2),
    })
}

func comparisonRows(a, b models.EnrichedVillage) []ComparisonRow {
    numeric := func(metric string, v1, v2 float64) ComparisonRow {
        return ComparisonRow{Metric: metric, Village1: v1, Village2: v2, Difference: v1 - v2}
    }

    return []ComparisonRow{
        numeric("population", float64(a.Population), float64(b.Population)),
        numeric("households", float64(a.Households), float64(b.Households)),
        numeric("schools", float64(a.Schools), float64(b.Schools)),
        numeric("toilets", float64(a.Toilets), float64(b.Toilets)),
        numeric("PHCs", float64(a.PHCs), float64(b.PHCs)),
        numeric("water_points", float64(a.WaterPoints), float64(b.WaterPoints)),
        numeric("electricity_hours", a.ElectricityHours, b.ElectricityHours),
        {Metric: "gaps", Village1: a.GapsText, Village2: b.GapsText, Difference: "N/A"},
        numeric("priority_score", float64(a.PriorityScore), float64(b.PriorityScore)),
    }
}
