package engine

// Priority tiers, used directly as map marker colors.
const (
    TierRed    = "red"
    TierOrange = "orange"
    TierGreen  = "green"
)

// ClassifyPriority maps a priority score onto its severity band. Total over
// all non-negative scores: >= 10 is high (red), >= 5 is medium (orange),
// everything else is low (green).
func ClassifyPriority(score int) string {
    if score >= 10 {
        return TierRed
    }
    if score >= 5 {
        return TierOrange
    }
    return TierGreen
}
