package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_Render_ReferenceSamples(t *testing.T) {
	want := []string{
		"Activity type: Swimming; Duration: 1.000 h; Distance: 0.994 km; Avg speed: 1.000 km/h; Calories burned: 336.000.",
		"Activity type: Running; Duration: 1.000 h; Distance: 9.750 km; Avg speed: 9.750 km/h; Calories burned: 699.750.",
		"Activity type: SportsWalking; Duration: 1.000 h; Distance: 5.850 km; Avg speed: 5.850 km/h; Calories burned: 157.500.",
	}
	for i, p := range SamplePackages() {
		w, err := ReadPackage(p.Code, p.Values)
		require.NoError(t, err)
		s, err := BuildSummary(w)
		require.NoError(t, err)
		assert.Equal(t, want[i], s.Render())
	}
}

func TestSummary_Render_FixedPointThreeDecimals(t *testing.T) {
	cases := []struct {
		name    string
		summary Summary
		want    string
	}{
		{
			name:    "integral",
			summary: Summary{ActivityLabel: "Swimming", DurationHours: 2, DistanceKm: 0, MeanSpeedKmh: 1, CaloriesKcal: 336},
			want:    "Activity type: Swimming; Duration: 2.000 h; Distance: 0.000 km; Avg speed: 1.000 km/h; Calories burned: 336.000.",
		},
		{
			name:    "large",
			summary: Summary{ActivityLabel: "Running", DurationHours: 1e7, DistanceKm: 1.5e9, MeanSpeedKmh: 150, CaloriesKcal: 1e12},
			want:    "Activity type: Running; Duration: 10000000.000 h; Distance: 1500000000.000 km; Avg speed: 150.000 km/h; Calories burned: 1000000000000.000.",
		},
		{
			name:    "tiny",
			summary: Summary{ActivityLabel: "Running", DurationHours: 0.0001, DistanceKm: 1e-9, MeanSpeedKmh: 0.0006, CaloriesKcal: 0.12345},
			want:    "Activity type: Running; Duration: 0.000 h; Distance: 0.000 km; Avg speed: 0.001 km/h; Calories burned: 0.123.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.summary.Render())
		})
	}
}
