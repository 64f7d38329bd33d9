package schedule

// Rules carries the placement tunables. All values are minutes.
type Rules struct {
	DefaultDuration int
	MinDuration     int
	Snap            int
}

func DefaultRules() Rules {
	return Rules{
		DefaultDuration: 60,
		MinDuration:     15,
		Snap:            15,
	}
}
