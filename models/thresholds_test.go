package models

import (
    "testing"
    "github.com/stretchr/testify/require"
)

func TestBaseThresholds(t *testing.T) {
    base := BaseThresholds()
    require.Equal(t, 1, base.SchoolsPer1000)
    require.Equal(t, 1.0, base.ToiletsPerHousehold)
    require.Equal(t, 1, base.PHCsMin)
    require.Equal(t, 1, base.WaterPointsPer50HH)
    require.Equal(t, 24, base.ElectricityHoursMin)
}

func TestClampForcesBounds(t *testing.T) {
    wild := ThresholdSet{
        SchoolsPer1000:      9,
        ToiletsPerHousehold: 2.5,
        PHCsMin:             0,
        WaterPointsPer50HH:  -1,
        ElectricityHoursMin: 30,
    }

    clamped := wild.Clamp()
    require.Equal(t, 3, clamped.SchoolsPer1000)
    require.Equal(t, 1.2, clamped.ToiletsPerHousehold)
    require.Equal(t, 1, clamped.PHCsMin)
    require.Equal(t, 1, clamped.WaterPointsPer50HH)
    require.Equal(t, 24, clamped.ElectricityHoursMin)
}

func TestClampLeavesValidValues(t *testing.T) {
    valid := ThresholdSet{
        SchoolsPer1000:      2,
        ToiletsPerHousehold: 1.1,
        PHCsMin:             2,
        WaterPointsPer50HH:  3,
        ElectricityHoursMin: 10,
    }
    require.Equal(t, valid, valid.Clamp())
}
