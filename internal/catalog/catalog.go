// Package catalog provides the seed activity list for the registry.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"example.com/signup/internal/domain"
)

// entry mirrors one activity in the YAML catalog file.
type entry struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

type catalogFile struct {
	Activities []entry `yaml:"activities"`
}

// Load reads the activity catalog from path. An empty path returns the
// built-in school catalog.
func Load(path string) ([]domain.Activity, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var parsed catalogFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(parsed.Activities) == 0 {
		return nil, fmt.Errorf("catalog file %s defines no activities", path)
	}

	seen := make(map[string]struct{}, len(parsed.Activities))
	activities := make([]domain.Activity, 0, len(parsed.Activities))
	for i, e := range parsed.Activities {
		if e.Name == "" {
			return nil, fmt.Errorf("catalog entry %d is missing a name", i)
		}
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("duplicate activity %q in catalog", e.Name)
		}
		if e.MaxParticipants <= 0 {
			return nil, fmt.Errorf("activity %q must have a positive max_participants", e.Name)
		}
		members := make(map[string]struct{}, len(e.Participants))
		for _, email := range e.Participants {
			if _, dup := members[email]; dup {
				return nil, fmt.Errorf("duplicate participant %q in activity %q", email, e.Name)
			}
			members[email] = struct{}{}
		}
		seen[e.Name] = struct{}{}
		activities = append(activities, domain.Activity{
			Name:            e.Name,
			Description:     e.Description,
			Schedule:        e.Schedule,
			MaxParticipants: e.MaxParticipants,
			Participants:    e.Participants,
		})
	}
	return activities, nil
}

// Default returns the built-in extracurricular catalog.
func Default() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Soccer Team",
			Description:     "Competitive soccer team practicing drills and matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Basketball Club",
			Description:     "Pickup games, skills training, and intramural competition",
			Schedule:        "Wednesdays, 5:00 PM - 7:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"ethan@mergington.edu", "ava@mergington.edu"},
		},
		{
			Name:            "Art Club",
			Description:     "Explore drawing, painting, and mixed media projects",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"isabella@mergington.edu", "mia@mergington.edu"},
		},
		{
			Name:            "Drama Society",
			Description:     "Acting workshops, rehearsals, and school productions",
			Schedule:        "Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"charlotte@mergington.edu", "amelia@mergington.edu"},
		},
		{
			Name:            "Science Olympiad",
			Description:     "Prepare for science competitions across multiple disciplines",
			Schedule:        "Fridays, 3:30 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"logan@mergington.edu", "lucas@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Practice persuasive speaking and compete in debate tournaments",
			Schedule:        "Tuesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"grace@mergington.edu", "eva@mergington.edu"},
		},
	}
}
