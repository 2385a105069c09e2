package entities

// SeedActivities returns the initial activity catalog loaded into an empty
// store on first start.
func SeedActivities() []Activity {
	return []Activity{
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
			Description:     "Join the school soccer team and compete in matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Practice basketball skills and participate in tournaments",
			Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"ava@mergington.edu", "mia@mergington.edu"},
		},
		{
			Name:            "Art Club",
			Description:     "Explore various art techniques and create your own masterpieces",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"amelia@mergington.edu", "isabella@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Learn acting skills and participate in school plays",
			Schedule:        "Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"lucas@mergington.edu", "elijah@mergington.edu"},
		},
		{
			Name:            "Math Club",
			Description:     "Solve challenging math problems and prepare for competitions",
			Schedule:        "Wednesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"charlotte@mergington.edu", "harper@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Conduct experiments and explore scientific concepts",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 12,
			Participants:    []string{"evelyn@mergington.edu", "abigail@mergington.edu"},
		},
	}
}
