package domain

import "fmt"

// Summary is the computed outcome of one workout. It is derived on every
// request and never stored.
type Summary struct {
	ActivityLabel string
	DurationHours float64
	DistanceKm    float64
	MeanSpeedKmh  float64
	CaloriesKcal  float64
}

// Render formats the summary as a single line with three decimals per metric.
func (s Summary) Render() string {
	return fmt.Sprintf(
		"Activity type: %s; Duration: %.3f h; Distance: %.3f km; Avg speed: %.3f km/h; Calories burned: %.3f.",
		s.ActivityLabel, s.DurationHours, s.DistanceKm, s.MeanSpeedKmh, s.CaloriesKcal,
	)
}
