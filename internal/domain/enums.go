package domain

// ActivityCode is the sensor-side identifier of a workout type.
type ActivityCode string

const (
	CodeSwimming ActivityCode = "SWM"
	CodeRunning  ActivityCode = "RUN"
	CodeWalking  ActivityCode = "WLK"
)

// ActivityCodes lists the accepted codes in display order.
var ActivityCodes = []ActivityCode{CodeRunning, CodeWalking, CodeSwimming}

// ParseActivityCode matches s exactly (case-sensitive) against the known codes.
func ParseActivityCode(s string) (ActivityCode, error) {
	switch code := ActivityCode(s); code {
	case CodeSwimming, CodeRunning, CodeWalking:
		return code, nil
	default:
		return "", &UnknownActivityError{Code: s}
	}
}

// Label returns the activity label used in summaries.
func (c ActivityCode) Label() string {
	switch c {
	case CodeRunning:
		return "Running"
	case CodeWalking:
		return "SportsWalking"
	case CodeSwimming:
		return "Swimming"
	default:
		return string(c)
	}
}

// Fields returns the positional value names a package for c must carry.
func (c ActivityCode) Fields() []string {
	base := []string{"action", "duration_h", "weight_kg"}
	switch c {
	case CodeWalking:
		return append(base, "height_cm")
	case CodeSwimming:
		return append(base, "pool_length_m", "pool_laps")
	case CodeRunning:
		return base
	default:
		return nil
	}
}

// Arity is the number of positional values expected for c.
func (c ActivityCode) Arity() int {
	return len(c.Fields())
}
