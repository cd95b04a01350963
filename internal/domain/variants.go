package domain

import "math"

// Calorie formula coefficients.
const (
	runSpeedMultiplier = 18.0
	runSpeedShift      = 20.0

	walkWeightMultiplier = 0.035
	walkSpeedHeightCoeff = 0.029

	swimSpeedShift       = 1.1
	swimWeightMultiplier = 2.0
)

type Running struct {
	Workout
}

func NewRunning(rec WorkoutRecord) Running {
	return Running{Workout{rec}}
}

func (Running) Code() ActivityCode { return CodeRunning }

func (r Running) CaloriesKcal() (float64, error) {
	speed, err := r.MeanSpeedKmh()
	if err != nil {
		return 0, err
	}
	return (runSpeedMultiplier*speed - runSpeedShift) * r.WeightKg / MetersPerKm * r.durationMinutes(), nil
}

type SportsWalking struct {
	Workout
	HeightCm float64
}

func NewSportsWalking(rec WorkoutRecord, heightCm float64) SportsWalking {
	return SportsWalking{Workout: Workout{rec}, HeightCm: heightCm}
}

func (SportsWalking) Code() ActivityCode { return CodeWalking }

// CaloriesKcal floor-divides the squared speed by height, so short
// walks usually contribute only the weight term.
func (w SportsWalking) CaloriesKcal() (float64, error) {
	speed, err := w.MeanSpeedKmh()
	if err != nil {
		return 0, err
	}
	if !(w.HeightCm > 0) {
		return 0, &InvalidValueError{Field: "height_cm", Value: w.HeightCm, Reason: "must be > 0"}
	}
	speedTerm := floorDiv(speed*speed, w.HeightCm) * walkSpeedHeightCoeff * w.WeightKg
	return (walkWeightMultiplier*w.WeightKg + speedTerm) * w.durationMinutes(), nil
}

type Swimming struct {
	Workout
	PoolLengthM  float64
	PoolLapCount float64
}

func NewSwimming(rec WorkoutRecord, poolLengthM, poolLapCount float64) Swimming {
	return Swimming{Workout: Workout{rec}, PoolLengthM: poolLengthM, PoolLapCount: poolLapCount}
}

func (Swimming) Code() ActivityCode { return CodeSwimming }

func (s Swimming) DistanceKm() float64 {
	return distanceKm(s.ActionCount, StrokeLengthM)
}

// MeanSpeedKmh is derived from pool geometry, not from stroke count.
func (s Swimming) MeanSpeedKmh() (float64, error) {
	if err := s.checkDuration(); err != nil {
		return 0, err
	}
	return s.PoolLengthM * s.PoolLapCount / MetersPerKm / s.DurationHours, nil
}

func (s Swimming) CaloriesKcal() (float64, error) {
	speed, err := s.MeanSpeedKmh()
	if err != nil {
		return 0, err
	}
	return (speed + swimSpeedShift) * swimWeightMultiplier * s.WeightKg, nil
}

// floorDiv is floating-point floor division computed from the remainder,
// so exact multiples never round up to the next integer.
func floorDiv(x, y float64) float64 {
	mod := math.Mod(x, y)
	div := (x - mod) / y
	if mod != 0 && (y < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, x/y)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}
	return floor
}
