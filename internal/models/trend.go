package models

import "time"

// TrendPoint is a single dated value of a chart series.
type TrendPoint struct {
	Date  time.Time
	Value float64
}

// Trends holds the chart series shown to the user, oldest point first.
type Trends struct {
	Mood      []TrendPoint
	HeartRate []TrendPoint
	Weight    []TrendPoint
}
