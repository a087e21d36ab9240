package handlers

import (
    "log"
    "net/http"
    "strconv"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/engine"
)

// SimulationStatus is the before/after pair of one simulation run.
type SimulationStatus struct {
    PriorityScore int    `json:"priority_score"`
    PriorityTier  string `json:"priority_color"`
}

// SimulateUpgrade re-scores a what-if copy of one village with a single
// infrastructure upgrade applied. The stored collection is never mutated;
// the simulation works on a derived copy.
func SimulateUpgrade(w http.ResponseWriter, r *http.Request) {
    query := r.URL.Query()

    name := query.Get("village")
    if name == "" {
        http.Error(w, "village query parameter is required", http.StatusBadRequest)
        return
    }
    village, ok := findVillage(name)
    if !ok {
        http.Error(w, "Village not found: "+name, http.StatusNotFound)
        return
    }

    upgrade, err := engine.ParseUpgradeKind(query.Get("infra"))
    if err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    // Upgrade slider range is 1..5
    increment := 1
    if raw := query.Get("increment"); raw != "" {
        parsed, err := strconv.Atoi(raw)
        if err != nil {
            http.Error(w, "increment must be an integer", http.StatusBadRequest)
            return
        }
        increment = parsed
    }
    if increment < 1 {
        increment = 1
    }
    if increment > 5 {
        increment = 5
    }

    thresholds := ThresholdsFromQuery(query)
    original := engine.Enrich(village, thresholds)
    simulated := engine.Simulate(village, upgrade, increment, thresholds)

    log.Printf("Simulated +%d %s for village %s: score %d -> %d",
        increment, upgrade, village.ID, original.PriorityScore, simulated.PriorityScore)

    writeJSON(w, map[string]interface{}{
        "thresholds": thresholds,
        "village":    village.Name,
        "upgrade":    upgrade,
        "increment":  increment,
        "original": SimulationStatus{
            PriorityScore: original.PriorityScore,
            PriorityTier:  original.PriorityTier,
        },
        "simulated": SimulationStatus{
            PriorityScore: simulated.PriorityScore,
            PriorityTier:  simulated.PriorityTier,
        },
        "result": simulated,
    })
}
