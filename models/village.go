package models

// VillageRecord holds one village's infrastructure counts as loaded from the
// tabular source. Count fields are normalized to non-negative integers on
// load; Lat/Lon are nil when the source value could not be parsed.
type VillageRecord struct {
    ID               string   `json:"village_id"`
    Name             string   `json:"village_name"`
    Population       int      `json:"population"`
    Households       int      `json:"households"`
    Schools          int      `json:"schools"`
    Toilets          int      `json:"toilets"`
    PHCs             int      `json:"PHCs"`
    WaterPoints      int      `json:"water_points"`
    ElectricityHours float64  `json:"electricity_hours"`
    Lat              *float64 `json:"lat,omitempty"`
    Lon              *float64 `json:"lon,omitempty"`
}

// HasCoordinates reports whether both lat and lon parsed on load.
// Villages without coordinates stay in tabular output but are excluded
// from map markers.
func (v *VillageRecord) HasCoordinates() bool {
    return v.Lat != nil && v.Lon != nil
}

// GapFinding is the result of evaluating a single category for one village.
type GapFinding struct {
    Category     string `json:"category"`
    Shortfall    int    `json:"shortfall"`
    Suggestion   string `json:"suggestion"`
    Contribution int    `json:"contribution"`
}

// EnrichedVillage is a VillageRecord plus its computed gap analysis.
// Derived, never persisted; recomputed whenever the threshold set changes.
type EnrichedVillage struct {
    VillageRecord
    Gaps             []string `json:"gaps_list"`
    GapsText         string   `json:"gaps"`
    Improvements     []string `json:"improvements_list"`
    ImprovementsText string   `json:"improvements"`
    PriorityScore    int      `json:"priority_score"`
    PriorityTier     string   `json:"priority_color"`
}
