package store

import (
    "database/sql"
    "fmt"
    "log"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/models"
)

// LoadPostgres reads village records from the villages table. Numeric
// columns are defaulted to 0 in SQL so data-quality gaps never fail the
// load; lat/lon stay nullable and map to absent coordinates.
func LoadPostgres(db *sql.DB) ([]models.VillageRecord, []string, error) {
    rows, err := db.Query(`
        SELECT
            village_id::text,
            COALESCE(village_name, ''),
            COALESCE(NULLIF(trim(population::text), '')::int, 0),
            COALESCE(NULLIF(trim(households::text), '')::int, 0),
            COALESCE(NULLIF(trim(schools::text), '')::int, 0),
            COALESCE(NULLIF(trim(toilets::text), '')::int, 0),
            COALESCE(NULLIF(trim(phcs::text), '')::int, 0),
            COALESCE(NULLIF(trim(water_points::text), '')::int, 0),
            COALESCE(NULLIF(trim(electricity_hours::text), '')::float8, 0),
            NULLIF(trim(lat::text), '')::float8,
            NULLIF(trim(lon::text), '')::float8
        FROM villages
        ORDER BY village_id`)
    if err != nil {
        return nil, nil, fmt.Errorf("unable to query villages: %w", err)
    }
    defer rows.Close()

    var villages []models.VillageRecord
    var warnings []string
    for rows.Next() {
        var village models.VillageRecord
        var lat, lon sql.NullFloat64
        err := rows.Scan(
            &village.ID,
            &village.Name,
            &village.Population,
            &village.Households,
            &village.Schools,
            &village.Toilets,
            &village.PHCs,
            &village.WaterPoints,
            &village.ElectricityHours,
            &lat,
            &lon,
        )
        if err != nil {
            log.Printf("Error scanning village row: %v", err)
            warnings = append(warnings, fmt.Sprintf("row skipped: %v", err))
            continue
        }
        if lat.Valid {
            village.Lat = &lat.Float64
        }
        if lon.Valid {
            village.Lon = &lon.Float64
        }
        if village.ElectricityHours < 0 {
            village.ElectricityHours = 0
        }
        if !village.HasCoordinates() {
            warnings = append(warnings, fmt.Sprintf("village %s has no usable coordinates, excluded from map", village.ID))
        }
        villages = append(villages, village)
    }
    if err := rows.Err(); err != nil {
        return nil, warnings, fmt.Errorf("error reading villages: %w", err)
    }

    if len(villages) == 0 {
        return nil, warnings, fmt.Errorf("no village rows found in villages table")
    }

    return villages, warnings, nil
}
