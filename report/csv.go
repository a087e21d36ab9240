package report

import (
    "encoding/csv"
    "fmt"
    "io"
    "strconv"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/models"
)

var exportHeader = []string{
    "village_id", "village_name", "population", "households",
    "schools", "toilets", "PHCs", "water_points", "electricity_hours",
    "lat", "lon", "gaps", "improvements", "priority_score", "priority_color",
}

// WriteEnrichedCSV writes the full enriched village table as CSV, one row
// per village in input order. Absent coordinates export as empty cells.
func WriteEnrichedCSV(w io.Writer, enriched []models.EnrichedVillage) error {
    writer := csv.NewWriter(w)

    if err := writer.Write(exportHeader); err != nil {
        return fmt.Errorf("failed to write header: %w", err)
    }

    for _, village := range enriched {
        row := []string{
            village.ID,
            village.Name,
            strconv.Itoa(village.Population),
            strconv.Itoa(village.Households),
            strconv.Itoa(village.Schools),
            strconv.Itoa(village.Toilets),
            strconv.Itoa(village.PHCs),
            strconv.Itoa(village.WaterPoints),
            strconv.FormatFloat(village.ElectricityHours, 'f', -1, 64),
            formatCoordinate(village.Lat),
            formatCoordinate(village.Lon),
            village.GapsText,
            village.ImprovementsText,
            strconv.Itoa(village.PriorityScore),
            village.PriorityTier,
        }
        if err := writer.Write(row); err != nil {
            return fmt.Errorf("failed to write row for village %s: %w", village.ID, err)
        }
    }

    writer.Flush()
    return writer.Error()
}

func formatCoordinate(value *float64) string {
    if value == nil {
        return ""
    }
    return strconv.FormatFloat(*value, 'f', -1, 64)
}
