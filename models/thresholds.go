package models

// ThresholdSet is the minimum-acceptable-service policy for one evaluation
// pass. Constructed once per pass and never mutated; a new pass builds a new
// set. The engine assumes all fields are inside their declared bounds, which
// the control surface (handlers) enforces via Clamp.
type ThresholdSet struct {
    SchoolsPer1000       int     `json:"schools_per_1000"`
    ToiletsPerHousehold  float64 `json:"toilets_per_household"`
    PHCsMin              int     `json:"PHCs_min"`
    WaterPointsPer50HH   int     `json:"water_points_per_50_hh"`
    ElectricityHoursMin  int     `json:"electricity_hours_min"`
}

// Threshold bounds exposed by the control surface. Based on the
// PM-AJAY/Adarsh Gram minimum standards.
const (
    SchoolsPer1000Min = 1
    SchoolsPer1000Max = 3

    ToiletsPerHouseholdMin = 1.0
    ToiletsPerHouseholdMax = 1.2

    PHCsMinLower = 1
    PHCsMinUpper = 3

    WaterPointsPer50HHMin = 1
    WaterPointsPer50HHMax = 3

    ElectricityHoursMinLower = 10
    ElectricityHoursMinUpper = 24
)

// BaseThresholds returns the process-wide default minimum standards:
// 1 school per 1000 population, 100% household toilet saturation, minimum
// 1 PHC/Sub-centre, 1 water point per 50 households, 24 hours electricity.
func BaseThresholds() ThresholdSet {
    return ThresholdSet{
        SchoolsPer1000:      1,
        ToiletsPerHousehold: 1.0,
        PHCsMin:             1,
        WaterPointsPer50HH:  1,
        ElectricityHoursMin: 24,
    }
}

// Clamp returns a copy with every field forced into its declared bounds.
// Out-of-range requests are clamped rather than rejected so the engine
// never sees an invalid threshold set.
func (t ThresholdSet) Clamp() ThresholdSet {
    t.SchoolsPer1000 = clampInt(t.SchoolsPer1000, SchoolsPer1000Min, SchoolsPer1000Max)
    t.ToiletsPerHousehold = clampFloat(t.ToiletsPerHousehold, ToiletsPerHouseholdMin, ToiletsPerHouseholdMax)
    t.PHCsMin = clampInt(t.PHCsMin, PHCsMinLower, PHCsMinUpper)
    t.WaterPointsPer50HH = clampInt(t.WaterPointsPer50HH, WaterPointsPer50HHMin, WaterPointsPer50HHMax)
    t.ElectricityHoursMin = clampInt(t.ElectricityHoursMin, ElectricityHoursMinLower, ElectricityHoursMinUpper)
    return t
}

func clampInt(value, min, max int) int {
    if value < min {
        return min
    }
    if value > max {
        return max
    }
    return value
}

func clampFloat(value, min, max float64) float64 {
    if value < min {
        return min
    }
    if value > max {
        return max
    }
    return value
}
