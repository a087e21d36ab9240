package config

import (
    "github.com/patrickmn/go-cache"
    "time"
    "fmt"
)

// AnalysisCache holds enriched analysis results keyed by the adjusted
// threshold set, so repeated requests under the same thresholds skip
// re-evaluation.
var AnalysisCache *cache.Cache

const (
    analysisCacheDuration  = 1 * time.Hour
    analysisCleanupInterval = 2 * time.Hour
)

func InitCache() {
    AnalysisCache = cache.New(analysisCacheDuration, analysisCleanupInterval)
}

func GetCacheKey(prefix string, params ...interface{}) string {
    key := prefix
    for _, param := range params {
        key += ":" + fmt.Sprintf("%v", param)
    }
    return key
}
