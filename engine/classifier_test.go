package engine

import (
    "testing"
    "github.com/stretchr/testify/require"
)

func TestClassifyPriorityBands(t *testing.T) {
    cases := []struct {
        score int
        tier  string
    }{
        {0, TierGreen},
        {4, TierGreen},
        {5, TierOrange},
        {9, TierOrange},
        {10, TierRed},
        {13, TierRed},
        {100, TierRed},
    }
    for _, tc := range cases {
        require.Equal(t, tc.tier, ClassifyPriority(tc.score), "score %d", tc.score)
    }
}

func TestClassifyPriorityMonotonic(t *testing.T) {
    severity := map[string]int{TierGreen: 0, TierOrange: 1, TierRed: 2}

    previous := severity[ClassifyPriority(0)]
    for score := 1; score <= 50; score++ {
        current := severity[ClassifyPriority(score)]
        require.GreaterOrEqual(t, current, previous, "severity dropped at score %d", score)
        previous = current
    }
}
