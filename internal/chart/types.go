package chart

// Point is one x/y sample. A nil Y is a gap.
type Point struct {
	X string   `json:"x"`
	Y *float64 `json:"y"`
}

// Series is a named sequence of points.
type Series struct {
	Name  string  `json:"name"`
	Mode  string  `json:"mode"` // "lines", "lines+markers"
	Color string  `json:"color,omitempty"`
	Data  []Point `json:"data"`
}

// Candle is one OHLC bar.
type Candle struct {
	X     string  `json:"x"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// Config is a render-ready chart description.
type Config struct {
	ChartType string   `json:"chartType"` // "line", "scatter", "candlestick"
	Title     string   `json:"title"`
	XAxis     string   `json:"xAxis"`
	YAxis     string   `json:"yAxis"`
	Series    []Series `json:"series,omitempty"`
	Candles   []Candle `json:"candles,omitempty"`
}

// Set groups the dashboard charts for one report.
type Set struct {
	Trend       *Config `json:"trend"`
	Advanced    *Config `json:"advanced"`
	Conversion  *Config `json:"conversion"`
	Candlestick *Config `json:"candlestick"`
}
