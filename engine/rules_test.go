package engine

import (
    "testing"
    "github.com/stretchr/testify/require"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/models"
)

func servedVillage() models.VillageRecord {
    return models.VillageRecord{
        ID:               "V1",
        Name:             "Devgarh",
        Population:       500,
        Households:       50,
        Schools:          1,
        Toilets:          50,
        PHCs:             1,
        WaterPoints:      1,
        ElectricityHours: 24,
    }
}

func deficientVillage() models.VillageRecord {
    return models.VillageRecord{
        ID:         "V2",
        Name:       "Khairwa",
        Population: 1000,
        Households: 100,
    }
}

func TestEvaluateFullyDeficientVillage(t *testing.T) {
    village := deficientVillage()
    thresholds := models.BaseThresholds()

    findings := Evaluate(&village, &thresholds)
    require.Len(t, findings, 5)

    categories := make([]string, 0, len(findings))
    for _, f := range findings {
        categories = append(categories, f.Category)
    }
    require.Equal(t, []string{CategorySchools, CategoryToilets, CategoryPHCs, CategoryWaterPoints, CategoryElectricity}, categories)

    require.Equal(t, "1 more school(s) (Target: 1)", findings[0].Suggestion)
    require.Equal(t, 1, findings[0].Contribution)

    require.Equal(t, "Complete 100 household toilet(s) (Target: 100)", findings[1].Suggestion)
    require.Equal(t, 1, findings[1].Contribution)

    require.Equal(t, "1 more PHC/Sub-centre(s) (Target: 1)", findings[2].Suggestion)
    require.Equal(t, 3, findings[2].Contribution)

    require.Equal(t, "2 more water point(s) (Target: 2)", findings[3].Suggestion)
    require.Equal(t, 2, findings[3].Contribution)

    require.Equal(t, "Need 24 hrs electricity supply", findings[4].Suggestion)
    require.Equal(t, 6, findings[4].Contribution)

    require.Equal(t, 13, Score(findings))
    require.Equal(t, TierRed, ClassifyPriority(Score(findings)))
}

func TestEvaluateFullyServedVillage(t *testing.T) {
    village := servedVillage()
    thresholds := models.BaseThresholds()

    findings := Evaluate(&village, &thresholds)
    require.Empty(t, findings)
    require.Equal(t, 0, Score(findings))
    require.Equal(t, TierGreen, ClassifyPriority(0))
}

func TestSchoolsRequirementScalesWithPopulation(t *testing.T) {
    thresholds := models.BaseThresholds()
    thresholds.SchoolsPer1000 = 2

    village := servedVillage()
    village.Population = 1500
    village.Schools = 3

    // ceil(1500/1000) * 2 = 4 required
    findings := Evaluate(&village, &thresholds)
    require.Len(t, findings, 1)
    require.Equal(t, CategorySchools, findings[0].Category)
    require.Equal(t, 1, findings[0].Shortfall)
    require.Equal(t, "1 more school(s) (Target: 4)", findings[0].Suggestion)
}

func TestSchoolsMinimumOneEvenForTinyVillage(t *testing.T) {
    thresholds := models.BaseThresholds()
    village := servedVillage()
    village.Population = 0
    village.Schools = 0

    findings := Evaluate(&village, &thresholds)
    require.Len(t, findings, 1)
    require.Equal(t, CategorySchools, findings[0].Category)
    require.Equal(t, 1, findings[0].Shortfall)
}

func TestSchoolsNeverInGapsWhenRequirementMet(t *testing.T) {
    thresholds := models.BaseThresholds()
    for _, population := range []int{0, 1, 999, 1000, 1001, 5000} {
        village := servedVillage()
        village.Population = population
        village.Schools = 10

        for _, finding := range Evaluate(&village, &thresholds) {
            require.NotEqual(t, CategorySchools, finding.Category, "population %d", population)
        }
    }
}

func TestToiletContributionSaturatesAtFive(t *testing.T) {
    thresholds := models.BaseThresholds()

    cases := []struct {
        households int
        toilets    int
        expected   int
    }{
        {100, 0, 1},   // shortfall 100 -> ceil(100/100) = 1
        {150, 0, 2},   // shortfall 150 -> 2
        {500, 0, 5},   // shortfall 500 hits the cap
        {2000, 0, 5},  // far beyond the cap, still 5
        {100, 99, 1},  // shortfall 1 -> 1
    }
    for _, tc := range cases {
        village := servedVillage()
        village.Households = tc.households
        village.Toilets = tc.toilets
        village.WaterPoints = 100
        village.Schools = 10

        findings := Evaluate(&village, &thresholds)
        require.Len(t, findings, 1)
        require.Equal(t, CategoryToilets, findings[0].Category)
        require.Equal(t, tc.expected, findings[0].Contribution, "households=%d toilets=%d", tc.households, tc.toilets)
    }
}

func TestToiletRatioRaisesRequirement(t *testing.T) {
    thresholds := models.BaseThresholds()
    thresholds.ToiletsPerHousehold = 1.2

    village := servedVillage()
    village.Households = 100
    village.Toilets = 100
    village.WaterPoints = 100

    // ceil(100 * 1.2) = 120 required
    findings := Evaluate(&village, &thresholds)
    require.Len(t, findings, 1)
    require.Equal(t, CategoryToilets, findings[0].Category)
    require.Equal(t, 20, findings[0].Shortfall)
    require.Equal(t, "Complete 20 household toilet(s) (Target: 120)", findings[0].Suggestion)
}

func TestPHCContributionIsTripleShortfall(t *testing.T) {
    thresholds := models.BaseThresholds()
    thresholds.PHCsMin = 3

    village := servedVillage()
    village.PHCs = 1

    findings := Evaluate(&village, &thresholds)
    require.Len(t, findings, 1)
    require.Equal(t, CategoryPHCs, findings[0].Category)
    require.Equal(t, 2, findings[0].Shortfall)
    require.Equal(t, 6, findings[0].Contribution)
}

func TestElectricityContributionPerFourHourBlock(t *testing.T) {
    thresholds := models.BaseThresholds()

    cases := []struct {
        hours    float64
        expected int
    }{
        {0, 6},    // ceil(24/4)
        {23, 1},   // ceil(1/4)
        {23.5, 1}, // fractional deficit still rounds up
        {20, 1},
        {16, 2},
        {12, 3},
    }
    for _, tc := range cases {
        village := servedVillage()
        village.ElectricityHours = tc.hours

        findings := Evaluate(&village, &thresholds)
        require.Len(t, findings, 1)
        require.Equal(t, CategoryElectricity, findings[0].Category)
        require.Equal(t, tc.expected, findings[0].Contribution, "hours=%v", tc.hours)
        // The suggestion deliberately states the target only
        require.Equal(t, "Need 24 hrs electricity supply", findings[0].Suggestion)
    }
}

func TestWaterPointsMinimumOne(t *testing.T) {
    thresholds := models.BaseThresholds()
    village := servedVillage()
    village.Households = 0
    village.Toilets = 0
    village.WaterPoints = 0

    // max(1, ceil(0/50)) = 1 required even with zero households
    findings := Evaluate(&village, &thresholds)
    require.Len(t, findings, 1)
    require.Equal(t, CategoryWaterPoints, findings[0].Category)
    require.Equal(t, 1, findings[0].Shortfall)
}

func TestScoreIsSumOfContributions(t *testing.T) {
    village := deficientVillage()
    thresholds := models.BaseThresholds()

    findings := Evaluate(&village, &thresholds)
    sum := 0
    for _, f := range findings {
        sum += f.Contribution
    }
    require.Equal(t, sum, Score(findings))
    require.GreaterOrEqual(t, Score(findings), 0)
}

func TestEvaluateDoesNotMutateInputs(t *testing.T) {
    village := deficientVillage()
    thresholds := models.BaseThresholds()
    before := village

    Evaluate(&village, &thresholds)
    require.Equal(t, before, village)
    require.Equal(t, models.BaseThresholds(), thresholds)
}
