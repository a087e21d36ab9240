package handlers

import (
    "encoding/json"
    "fmt"
    "log"
    "net/http"
    "strconv"
    "strings"
    "github.com/patrickmn/go-cache"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/config"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/engine"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/models"
)

// villages is the immutable collection loaded once at process start.
var villages []models.VillageRecord

// Init installs the loaded village collection. Called once from main before
// the router starts serving.
func Init(loaded []models.VillageRecord) {
    villages = loaded
    log.Printf("Handlers initialized with %d villages", len(villages))
}

// analysisFor returns the enriched collection for a threshold set, from
// cache when the same thresholds were evaluated before.
func analysisFor(t models.ThresholdSet) []models.EnrichedVillage {
    if config.AnalysisCache == nil {
        return engine.AnalyzeAll(villages, t)
    }

    key := analysisCacheKey(t)
    if cached, found := config.AnalysisCache.Get(key); found {
        return cached.([]models.EnrichedVillage)
    }

    enriched := engine.AnalyzeAll(villages, t)
    config.AnalysisCache.Set(key, enriched, cache.DefaultExpiration)
    return enriched
}

// findVillage looks a village up by id or name (case-insensitive).
func findVillage(nameOrID string) (models.VillageRecord, bool) {
    needle := strings.ToLower(strings.TrimSpace(nameOrID))
    for _, v := range villages {
        if strings.ToLower(v.ID) == needle || strings.ToLower(v.Name) == needle {
            return v, true
        }
    }
    return models.VillageRecord{}, false
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
    w.Header().Set("Content-Type", "application/json")
    w.Header().Set("Cache-Control", "public, max-age=60")
    if err := json.NewEncoder(w).Encode(payload); err != nil {
        log.Printf("Error encoding response: %v", err)
        http.Error(w, "Error encoding response", http.StatusInternalServerError)
    }
}

// GetVillages returns the full enriched village table under the requested
// thresholds.
func GetVillages(w http.ResponseWriter, r *http.Request) {
    thresholds := ThresholdsFromQuery(r.URL.Query())
    enriched := analysisFor(thresholds)

    writeJSON(w, map[string]interface{}{
        "thresholds": thresholds,
        "count":      len(enriched),
        "villages":   enriched,
    })
}

// GetTopVillages returns the n highest-priority villages (default 5).
func GetTopVillages(w http.ResponseWriter, r *http.Request) {
    n := 5
    if raw := r.URL.Query().Get("n"); raw != "" {
        parsed, err := strconv.Atoi(raw)
        if err != nil || parsed < 1 {
            http.Error(w, "n must be a positive integer", http.StatusBadRequest)
            return
        }
        n = parsed
    }

    thresholds := ThresholdsFromQuery(r.URL.Query())
    top := engine.TopN(analysisFor(thresholds), n)

    writeJSON(w, map[string]interface{}{
        "thresholds": thresholds,
        "count":      len(top),
        "villages":   top,
    })
}

// GetGapFrequency returns, per category, how many villages exhibit that
// gap. Feeds the gaps distribution chart.
func GetGapFrequency(w http.ResponseWriter, r *http.Request) {
    thresholds := ThresholdsFromQuery(r.URL.Query())
    frequency := engine.GapFrequency(analysisFor(thresholds))

    response := map[string]interface{}{
        "thresholds": thresholds,
        "frequency":  frequency,
    }
    if len(frequency) == 0 {
        response["message"] = "No infrastructure gaps detected based on current thresholds."
    }
    writeJSON(w, response)
}

// VillageMarker is one map marker. Only villages with parseable
// coordinates appear; the color is the priority tier.
type VillageMarker struct {
    VillageName   string  `json:"village_name"`
    Lat           float64 `json:"lat"`
    Lon           float64 `json:"lon"`
    Color         string  `json:"color"`
    Population    int     `json:"population"`
    PriorityScore int     `json:"priority_score"`
    Gaps          string  `json:"gaps"`
    Improvements  string  `json:"improvements"`
}

// GetVillageMarkers returns map markers for the priority view.
func GetVillageMarkers(w http.ResponseWriter, r *http.Request) {
    thresholds := ThresholdsFromQuery(r.URL.Query())
    enriched := analysisFor(thresholds)

    markers := make([]VillageMarker, 0, len(enriched))
    for _, village := range enriched {
        if !village.HasCoordinates() {
            continue
        }
        markers = append(markers, VillageMarker{
            VillageName:   village.Name,
            Lat:           *village.Lat,
            Lon:           *village.Lon,
            Color:         village.PriorityTier,
            Population:    village.Population,
            PriorityScore: village.PriorityScore,
            Gaps:          village.GapsText,
            Improvements:  village.ImprovementsText,
        })
    }

    writeJSON(w, map[string]interface{}{
        "thresholds": thresholds,
        "count":      len(markers),
        "markers":    markers,
    })
}

// GetSummary returns the dashboard headline metrics.
func GetSummary(w http.ResponseWriter, r *http.Request) {
    thresholds := ThresholdsFromQuery(r.URL.Query())
    summary := engine.Summarize(analysisFor(thresholds))

    writeJSON(w, map[string]interface{}{
        "thresholds": thresholds,
        "summary":    summary,
    })
}

// Suggestion is one project-focus line for a top-priority village.
type Suggestion struct {
    VillageName   string `json:"village_name"`
    PriorityScore int    `json:"priority_score"`
    Message       string `json:"message"`
}

// GetSuggestions returns project focus areas for the top-5 priority
// villages.
func GetSuggestions(w http.ResponseWriter, r *http.Request) {
    thresholds := ThresholdsFromQuery(r.URL.Query())
    top := engine.TopN(analysisFor(thresholds), 5)

    suggestions := make([]Suggestion, 0, len(top))
    for _, village := range top {
        message := fmt.Sprintf("%s has no major gaps based on current thresholds.", village.Name)
        if len(village.Gaps) > 0 {
            message = fmt.Sprintf("%s (Score: %d) requires: %s", village.Name, village.PriorityScore, village.ImprovementsText)
        }
        suggestions = append(suggestions, Suggestion{
            VillageName:   village.Name,
            PriorityScore: village.PriorityScore,
            Message:       message,
        })
    }

    writeJSON(w, map[string]interface{}{
        "thresholds":  thresholds,
        "suggestions": suggestions,
    })
}
