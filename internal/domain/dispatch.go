package domain

import "math"

// Package is one raw sensor reading: an activity code and its positional values.
type Package struct {
	Code   string
	Values []float64
	Label  string
}

// SamplePackages are the reference readings used when no input is given.
func SamplePackages() []Package {
	return []Package{
		{Code: string(CodeSwimming), Values: []float64{720, 1, 80, 25, 40}},
		{Code: string(CodeRunning), Values: []float64{15000, 1, 75}},
		{Code: string(CodeWalking), Values: []float64{9000, 1, 75, 180}},
	}
}

// ReadPackage builds the workout variant for code from its positional
// values: action, duration, weight, then height for WLK or pool length
// and pool laps for SWM. Every value must be finite.
func ReadPackage(code string, values []float64) (Trainable, error) {
	activity, err := ParseActivityCode(code)
	if err != nil {
		return nil, err
	}
	if want := activity.Arity(); len(values) != want {
		return nil, &ArityMismatchError{Code: activity, Want: want, Got: len(values)}
	}
	fields := activity.Fields()
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &InvalidValueError{Field: fields[i], Value: v, Reason: "must be finite"}
		}
	}

	actions, err := actionCount(values[0])
	if err != nil {
		return nil, err
	}
	rec := WorkoutRecord{ActionCount: actions, DurationHours: values[1], WeightKg: values[2]}

	switch activity {
	case CodeRunning:
		return NewRunning(rec), nil
	case CodeWalking:
		return NewSportsWalking(rec, values[3]), nil
	case CodeSwimming:
		return NewSwimming(rec, values[3], values[4]), nil
	}
	return nil, &UnknownActivityError{Code: code}
}

func actionCount(v float64) (int, error) {
	switch {
	case v < 0:
		return 0, &InvalidValueError{Field: "action", Value: v, Reason: "must be >= 0"}
	case v != math.Trunc(v):
		return 0, &InvalidValueError{Field: "action", Value: v, Reason: "must be a whole number"}
	case v > math.MaxInt32:
		return 0, &InvalidValueError{Field: "action", Value: v, Reason: "is out of range"}
	}
	return int(v), nil
}
