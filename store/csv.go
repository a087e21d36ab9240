package store

import (
    "encoding/csv"
    "errors"
    "fmt"
    "io"
    "os"
    "strings"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/models"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/utils"
)

var requiredColumns = []string{
    "village_id", "village_name", "population", "households",
    "schools", "toilets", "PHCs", "water_points", "electricity_hours",
    "lat", "lon",
}

// LoadCSV reads village records from a CSV file. A missing file or missing
// required column is fatal; per-row data-quality problems (blank or
// non-numeric fields) are recovered by substitution and reported as
// warnings. Column names are matched case-insensitively after trimming.
func LoadCSV(path string) ([]models.VillageRecord, []string, error) {
    file, err := os.Open(path)
    if err != nil {
        return nil, nil, fmt.Errorf("unable to open village data: %w", err)
    }
    defer file.Close()

    return readVillages(file)
}

func readVillages(r io.Reader) ([]models.VillageRecord, []string, error) {
    reader := csv.NewReader(r)
    reader.TrimLeadingSpace = true

    header, err := reader.Read()
    if err != nil {
        return nil, nil, fmt.Errorf("unable to read header row: %w", err)
    }
    index := mapHeaders(header)

    if missing := missingHeaders(index); len(missing) > 0 {
        return nil, nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
    }

    var villages []models.VillageRecord
    var warnings []string
    line := 1
    for {
        line++
        record, err := reader.Read()
        if errors.Is(err, io.EOF) {
            break
        }
        if err != nil {
            warnings = append(warnings, fmt.Sprintf("line %d: %v", line, err))
            continue
        }

        village, warn := parseVillage(record, index, line)
        if warn != "" {
            warnings = append(warnings, warn)
        }
        if village != nil {
            villages = append(villages, *village)
        }
    }

    if len(villages) == 0 {
        return nil, warnings, fmt.Errorf("no valid village rows found")
    }

    return villages, warnings, nil
}

func mapHeaders(header []string) map[string]int {
    index := make(map[string]int, len(header))
    for i, name := range header {
        index[strings.ToLower(strings.TrimSpace(name))] = i
    }
    return index
}

func missingHeaders(index map[string]int) []string {
    var missing []string
    for _, name := range requiredColumns {
        if _, ok := index[strings.ToLower(name)]; !ok {
            missing = append(missing, name)
        }
    }
    return missing
}

func parseVillage(record []string, index map[string]int, line int) (*models.VillageRecord, string) {
    get := func(column string) string {
        pos, ok := index[strings.ToLower(column)]
        if !ok || pos >= len(record) {
            return ""
        }
        return strings.TrimSpace(record[pos])
    }

    id := get("village_id")
    if id == "" {
        return nil, fmt.Sprintf("line %d: missing village_id, row skipped", line)
    }

    village := &models.VillageRecord{
        ID:               id,
        Name:             get("village_name"),
        Population:       utils.ParseCount(get("population")),
        Households:       utils.ParseCount(get("households")),
        Schools:          utils.ParseCount(get("schools")),
        Toilets:          utils.ParseCount(get("toilets")),
        PHCs:             utils.ParseCount(get("PHCs")),
        WaterPoints:      utils.ParseCount(get("water_points")),
        ElectricityHours: utils.ParseHours(get("electricity_hours")),
        Lat:              utils.ParseCoordinate(get("lat")),
        Lon:              utils.ParseCoordinate(get("lon")),
    }

    var warn string
    if !village.HasCoordinates() {
        warn = fmt.Sprintf("line %d: village %s has no usable coordinates, excluded from map", line, id)
    }
    return village, warn
}
