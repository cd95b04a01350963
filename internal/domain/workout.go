package domain

import "math"

const (
	MetersPerKm    = 1000.0
	MinutesPerHour = 60.0

	// StepLengthM is the distance covered by one step on foot.
	StepLengthM = 0.65
	// StrokeLengthM is the distance covered by one swimming stroke.
	StrokeLengthM = 1.38
)

// WorkoutRecord holds the readings common to every activity.
type WorkoutRecord struct {
	ActionCount   int
	DurationHours float64
	WeightKg      float64
}

// Trainable is a workout that can produce its statistics.
type Trainable interface {
	Code() ActivityCode
	Record() WorkoutRecord
	DistanceKm() float64
	MeanSpeedKmh() (float64, error)
	CaloriesKcal() (float64, error)
}

// Workout carries the formulas shared by all activities. It has no
// calorie formula of its own and is meant to be embedded by a variant.
type Workout struct {
	WorkoutRecord
}

func (w Workout) Record() WorkoutRecord {
	return w.WorkoutRecord
}

// DistanceKm converts the action count into kilometres using the step length.
func (w Workout) DistanceKm() float64 {
	return distanceKm(w.ActionCount, StepLengthM)
}

// MeanSpeedKmh is distance over duration. The duration must be positive.
func (w Workout) MeanSpeedKmh() (float64, error) {
	if err := w.checkDuration(); err != nil {
		return 0, err
	}
	return w.DistanceKm() / w.DurationHours, nil
}

func (w Workout) CaloriesKcal() (float64, error) {
	return 0, &UnimplementedOperationError{Op: "calories for a workout without an activity"}
}

func (w Workout) durationMinutes() float64 {
	return w.DurationHours * MinutesPerHour
}

func (w Workout) checkDuration() error {
	if !(w.DurationHours > 0) || math.IsInf(w.DurationHours, 1) {
		return &InvalidDurationError{Hours: w.DurationHours}
	}
	return nil
}

func distanceKm(actions int, stepLengthM float64) float64 {
	return float64(actions) * stepLengthM / MetersPerKm
}

// BuildSummary computes every metric of t. Nothing is returned on error.
func BuildSummary(t Trainable) (Summary, error) {
	speed, err := t.MeanSpeedKmh()
	if err != nil {
		return Summary{}, err
	}
	calories, err := t.CaloriesKcal()
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		ActivityLabel: t.Code().Label(),
		DurationHours: t.Record().DurationHours,
		DistanceKm:    t.DistanceKm(),
		MeanSpeedKmh:  speed,
		CaloriesKcal:  calories,
	}, nil
}
