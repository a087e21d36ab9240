package utils

import (
    "testing"
    "github.com/stretchr/testify/require"
)

func TestParseCount(t *testing.T) {
    require.Equal(t, 3, ParseCount("3"))
    require.Equal(t, 3, ParseCount(" 3 "))
    require.Equal(t, 3, ParseCount("3.0"))
    require.Equal(t, 0, ParseCount(""))
    require.Equal(t, 0, ParseCount("abc"))
    require.Equal(t, 0, ParseCount("-2"))
}

func TestParseHours(t *testing.T) {
    require.Equal(t, 12.5, ParseHours("12.5"))
    require.Equal(t, 0.0, ParseHours(""))
    require.Equal(t, 0.0, ParseHours("n/a"))
    require.Equal(t, 0.0, ParseHours("-4"))
}

func TestParseCoordinate(t *testing.T) {
    lat := ParseCoordinate("24.5362")
    require.NotNil(t, lat)
    require.Equal(t, 24.5362, *lat)

    zero := ParseCoordinate("0")
    require.NotNil(t, zero, "zero is a valid coordinate, not absent")

    require.Nil(t, ParseCoordinate(""))
    require.Nil(t, ParseCoordinate("not-a-number"))
}
