package engine

import (
    "fmt"
    "sort"
    "strings"
    "sync"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/models"
)

// UpgradeKind selects which field a simulation increments.
type UpgradeKind string

const (
    UpgradeSchool           UpgradeKind = "school"
    UpgradeToiletBlock      UpgradeKind = "toilet"
    UpgradePHC              UpgradeKind = "phc"
    UpgradeWaterPoint       UpgradeKind = "water"
    UpgradeElectricityHours UpgradeKind = "electricity"
)

// ParseUpgradeKind maps a request token onto an UpgradeKind.
func ParseUpgradeKind(value string) (UpgradeKind, error) {
    switch UpgradeKind(strings.ToLower(strings.TrimSpace(value))) {
    case UpgradeSchool:
        return UpgradeSchool, nil
    case UpgradeToiletBlock:
        return UpgradeToiletBlock, nil
    case UpgradePHC:
        return UpgradePHC, nil
    case UpgradeWaterPoint:
        return UpgradeWaterPoint, nil
    case UpgradeElectricityHours:
        return UpgradeElectricityHours, nil
    }
    return "", fmt.Errorf("unknown infrastructure kind: %q", value)
}

// Enrich evaluates one village under the given thresholds and attaches the
// gap list, improvement text, priority score and priority tier.
func Enrich(v models.VillageRecord, t models.ThresholdSet) models.EnrichedVillage {
    findings := Evaluate(&v, &t)

    gaps := make([]string, 0, len(findings))
    improvements := make([]string, 0, len(findings))
    for _, f := range findings {
        gaps = append(gaps, f.Category)
        improvements = append(improvements, f.Suggestion)
    }

    gapsText := "None"
    if len(gaps) > 0 {
        gapsText = strings.Join(gaps, ", ")
    }

    score := Score(findings)
    return models.EnrichedVillage{
        VillageRecord:    v,
        Gaps:             gaps,
        GapsText:         gapsText,
        Improvements:     improvements,
        ImprovementsText: strings.Join(improvements, ", "),
        PriorityScore:    score,
        PriorityTier:     ClassifyPriority(score),
    }
}

// AnalyzeAll enriches every village under one threshold set. Evaluations are
// independent and side-effect-free, so they fan out across goroutines with
// indexed writes; the output order always matches the input order.
func AnalyzeAll(villages []models.VillageRecord, t models.ThresholdSet) []models.EnrichedVillage {
    enriched := make([]models.EnrichedVillage, len(villages))

    var wg sync.WaitGroup
    for i := range villages {
        wg.Add(1)
        go func(i int) {
            defer wg.Done()
            enriched[i] = Enrich(villages[i], t)
        }(i)
    }
    wg.Wait()

    return enriched
}

// Simulate re-scores a derived copy of one village with a single upgrade
// applied. Toilets are built in blocks of 100 per increment; electricity
// hours clamp at 24. The original record is never touched.
func Simulate(v models.VillageRecord, upgrade UpgradeKind, increment int, t models.ThresholdSet) models.EnrichedVillage {
    sim := v
    switch upgrade {
    case UpgradeSchool:
        sim.Schools += increment
    case UpgradeToiletBlock:
        sim.Toilets += increment * 100
    case UpgradePHC:
        sim.PHCs += increment
    case UpgradeWaterPoint:
        sim.WaterPoints += increment
    case UpgradeElectricityHours:
        sim.ElectricityHours += float64(increment)
        if sim.ElectricityHours > 24 {
            sim.ElectricityHours = 24
        }
    }
    return Enrich(sim, t)
}

// TopN returns the n highest-priority villages, sorted by score descending.
// The sort is stable: equal-score villages keep their original relative
// order. The input slice is not reordered.
func TopN(enriched []models.EnrichedVillage, n int) []models.EnrichedVillage {
    ranked := make([]models.EnrichedVillage, len(enriched))
    copy(ranked, enriched)
    sort.SliceStable(ranked, func(i, j int) bool {
        return ranked[i].PriorityScore > ranked[j].PriorityScore
    })
    if n < len(ranked) {
        ranked = ranked[:n]
    }
    return ranked
}

// GapFrequency counts, per category, how many villages exhibit that gap.
// Feeds the gaps distribution chart.
func GapFrequency(enriched []models.EnrichedVillage) map[string]int {
    frequency := make(map[string]int)
    for _, village := range enriched {
        for _, gap := range village.Gaps {
            frequency[gap]++
        }
    }
    return frequency
}

// Summary holds the dashboard headline metrics.
type Summary struct {
    TotalVillages  int `json:"total_villages"`
    HighPriority   int `json:"high_priority"`
    MediumPriority int `json:"medium_priority"`
    LowPriority    int `json:"low_priority"`
}

// Summarize tallies villages per priority tier.
func Summarize(enriched []models.EnrichedVillage) Summary {
    summary := Summary{TotalVillages: len(enriched)}
    for _, village := range enriched {
        switch village.PriorityTier {
        case TierRed:
            summary.HighPriority++
        case TierOrange:
            summary.MediumPriority++
        default:
            summary.LowPriority++
        }
    }
    return summary
}
