package domain

// Activity is a single extracurricular offering keyed by its name.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string // signup order
}
