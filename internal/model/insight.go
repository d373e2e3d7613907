package model

// InsightRule names the rule that produced an insight.
type InsightRule string

const (
	RuleTrend              InsightRule = "trend"
	RuleSignificantChanges InsightRule = "significant_changes"
	RuleHighestRate        InsightRule = "highest_rate"
	RuleLowestRate         InsightRule = "lowest_rate"
	RuleVolatility         InsightRule = "volatility"
)

// Insight is a short rule-derived observation about a series.
type Insight struct {
	Rule    InsightRule `json:"rule"`
	Message string      `json:"message"`
}
