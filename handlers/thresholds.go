package handlers

import (
    "math"
    "net/url"
    "strconv"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/config"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/models"
)

// ThresholdsFromQuery builds the adjusted threshold set for one request.
// Every parameter is optional and defaults to the base standard;
// out-of-range values are clamped here so the engine never sees them.
func ThresholdsFromQuery(query url.Values) models.ThresholdSet {
    t := models.BaseThresholds()

    if raw := query.Get("schools_per_1000"); raw != "" {
        if n, err := strconv.Atoi(raw); err == nil {
            t.SchoolsPer1000 = n
        }
    }
    if raw := query.Get("toilets_per_household"); raw != "" {
        if f, err := strconv.ParseFloat(raw, 64); err == nil {
            // Slider steps in 0.1 increments
            t.ToiletsPerHousehold = math.Round(f*10) / 10
        }
    }
    if raw := query.Get("phcs_min"); raw != "" {
        if n, err := strconv.Atoi(raw); err == nil {
            t.PHCsMin = n
        }
    }
    if raw := query.Get("water_points_per_50_hh"); raw != "" {
        if n, err := strconv.Atoi(raw); err == nil {
            t.WaterPointsPer50HH = n
        }
    }
    if raw := query.Get("electricity_hours_min"); raw != "" {
        if n, err := strconv.Atoi(raw); err == nil {
            t.ElectricityHoursMin = n
        }
    }

    return t.Clamp()
}

func analysisCacheKey(t models.ThresholdSet) string {
    return config.GetCacheKey("analysis",
        t.SchoolsPer1000,
        t.ToiletsPerHousehold,
        t.PHCsMin,
        t.WaterPointsPer50HH,
        t.ElectricityHoursMin,
    )
}
