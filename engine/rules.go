package engine

import (
    "fmt"
    "math"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/models"
)

// Gap category names, in evaluation order.
const (
    CategorySchools     = "Schools"
    CategoryToilets     = "Toilets"
    CategoryPHCs        = "PHCs"
    CategoryWaterPoints = "Water Points"
    CategoryElectricity = "Electricity"
)

// categoryRule is one minimum-standard rule: a required level computed from
// the village and the active thresholds, the village's actual level, a score
// weight applied to the deficit, and a human-readable suggestion. Rules are
// evaluated in a fixed order; the order shapes the gaps/improvements
// sequences, not the score, which is a plain sum.
type categoryRule struct {
    category string
    required func(v *models.VillageRecord, t *models.ThresholdSet) int
    actual   func(v *models.VillageRecord) float64
    weight   func(deficit float64) int
    suggest  func(shortfall, required int) string
}

var gapRules = []categoryRule{
    {
        // 1 school per 1000 population (or min 1)
        category: CategorySchools,
        required: func(v *models.VillageRecord, t *models.ThresholdSet) int {
            return maxInt(1, ceilDiv(v.Population, 1000)*t.SchoolsPer1000)
        },
        actual: func(v *models.VillageRecord) float64 { return float64(v.Schools) },
        weight: func(deficit float64) int { return int(math.Ceil(deficit)) },
        suggest: func(shortfall, required int) string {
            return fmt.Sprintf("%d more school(s) (Target: %d)", shortfall, required)
        },
    },
    {
        // 1 toilet per household (100% saturation). Toilet deficits are
        // numerous but individually low-weight, so the contribution
        // saturates at 5.
        category: CategoryToilets,
        required: func(v *models.VillageRecord, t *models.ThresholdSet) int {
            return int(math.Ceil(float64(v.Households) * t.ToiletsPerHousehold))
        },
        actual: func(v *models.VillageRecord) float64 { return float64(v.Toilets) },
        weight: func(deficit float64) int {
            return minInt(5, int(math.Ceil(deficit/100)))
        },
        suggest: func(shortfall, required int) string {
            return fmt.Sprintf("Complete %d household toilet(s) (Target: %d)", shortfall, required)
        },
    },
    {
        // Fixed minimum PHC/Sub-centre count, not population-scaled.
        // Triple weight for the critical health gap.
        category: CategoryPHCs,
        required: func(v *models.VillageRecord, t *models.ThresholdSet) int {
            return t.PHCsMin
        },
        actual: func(v *models.VillageRecord) float64 { return float64(v.PHCs) },
        weight: func(deficit float64) int { return int(math.Ceil(deficit)) * 3 },
        suggest: func(shortfall, required int) string {
            return fmt.Sprintf("%d more PHC/Sub-centre(s) (Target: %d)", shortfall, required)
        },
    },
    {
        // 1 water point per 50 households (or min 1)
        category: CategoryWaterPoints,
        required: func(v *models.VillageRecord, t *models.ThresholdSet) int {
            return maxInt(1, ceilDiv(v.Households, 50)*t.WaterPointsPer50HH)
        },
        actual: func(v *models.VillageRecord) float64 { return float64(v.WaterPoints) },
        weight: func(deficit float64) int { return int(math.Ceil(deficit)) },
        suggest: func(shortfall, required int) string {
            return fmt.Sprintf("%d more water point(s) (Target: %d)", shortfall, required)
        },
    },
    {
        // Fixed minimum hours of supply; each 4-hour deficit block
        // contributes 1 point. The suggestion states the target only,
        // not the shortfall.
        category: CategoryElectricity,
        required: func(v *models.VillageRecord, t *models.ThresholdSet) int {
            return t.ElectricityHoursMin
        },
        actual: func(v *models.VillageRecord) float64 { return v.ElectricityHours },
        weight: func(deficit float64) int { return int(math.Ceil(deficit / 4)) },
        suggest: func(shortfall, required int) string {
            return fmt.Sprintf("Need %d hrs electricity supply", required)
        },
    },
}

// Evaluate runs the five minimum-standard rules against one village under
// the given thresholds. Pure and deterministic: no I/O, no mutation of the
// inputs. A village that meets every requirement yields no findings.
func Evaluate(v *models.VillageRecord, t *models.ThresholdSet) []models.GapFinding {
    var findings []models.GapFinding
    for _, rule := range gapRules {
        required := rule.required(v, t)
        actual := rule.actual(v)
        if actual >= float64(required) {
            continue
        }
        deficit := float64(required) - actual
        shortfall := int(math.Ceil(deficit))
        findings = append(findings, models.GapFinding{
            Category:     rule.category,
            Shortfall:    shortfall,
            Suggestion:   rule.suggest(shortfall, required),
            Contribution: rule.weight(deficit),
        })
    }
    return findings
}

// Score sums the per-category contributions of a set of findings.
func Score(findings []models.GapFinding) int {
    total := 0
    for _, f := range findings {
        total += f.Contribution
    }
    return total
}

func ceilDiv(numerator, denominator int) int {
    return (numerator + denominator - 1) / denominator
}

func maxInt(a, b int) int {
    if a > b {
        return a
    }
    return b
}

func minInt(a, b int) int {
    if a < b {
        return a
    }
    return b
}
