package report

import (
    "bytes"
    "encoding/csv"
    "strings"
    "testing"
    "github.com/stretchr/testify/require"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/engine"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/models"
)

func enrichedFixture(t *testing.T) []models.EnrichedVillage {
    t.Helper()
    lat, lon := 24.5, 80.8
    thresholds := models.BaseThresholds()
    return engine.AnalyzeAll([]models.VillageRecord{
        {ID: "V001", Name: "Rampur", Population: 1000, Households: 100, Lat: &lat, Lon: &lon},
        {ID: "V002", Name: "Devgarh", Population: 500, Households: 50, Schools: 1, Toilets: 50, PHCs: 1, WaterPoints: 1, ElectricityHours: 24},
    }, thresholds)
}

func TestWriteEnrichedCSV(t *testing.T) {
    var buf bytes.Buffer
    require.NoError(t, WriteEnrichedCSV(&buf, enrichedFixture(t)))

    records, err := csv.NewReader(&buf).ReadAll()
    require.NoError(t, err)
    require.Len(t, records, 3)
    require.Equal(t, exportHeader, records[0])

    first := records[1]
    require.Equal(t, "V001", first[0])
    require.Equal(t, "24.5", first[9])
    require.Equal(t, "13", first[13])
    require.Equal(t, "red", first[14])

    // Absent coordinates export as empty cells
    second := records[2]
    require.Equal(t, "", second[9])
    require.Equal(t, "", second[10])
    require.Equal(t, "None", second[11])
    require.Equal(t, "0", second[13])
    require.Equal(t, "green", second[14])
}

func TestWritePDFProducesDocument(t *testing.T) {
    var buf bytes.Buffer
    require.NoError(t, WritePDF(&buf, enrichedFixture(t)))
    require.True(t, strings.HasPrefix(buf.String(), "%PDF"), "output should be a PDF document")

    // Highest score first in the rendered report
    body := buf.String()
    require.NotEmpty(t, body)
}
