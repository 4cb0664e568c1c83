package service

import (
	"time"

	"go-gin-activities/internal/model"
)

type activitySeed struct {
	title       string
	daysAhead   int
	hour        int
	description string
	category    string
	city        string
	venue       string
	latitude    float64
	longitude   float64
}

var seedActivities = []activitySeed{
	{
		title:       "Hiking in the Alps",
		daysAhead:   7,
		hour:        8,
		description: "Join us for a breathtaking hike through the Swiss Alps. We'll meet at 8:00 AM at the Grindelwald Trailhead. Please bring water, snacks, and appropriate hiking gear. The hike will last approximately 5 hours with a lunch break at Lake Bachalpsee.",
		category:    "Outdoors",
		city:        "Interlaken",
		venue:       "Grindelwald Trailhead",
		latitude:    46.6242,
		longitude:   8.0414,
	},
	{
		title:       "Downtown Food Festival",
		daysAhead:   14,
		hour:        12,
		description: "Sample dishes from over 30 of Portland's best restaurants and food trucks. The festival runs from noon to 8 PM at Waterfront Park. Enjoy live music, cooking demonstrations, and a kids' play area. Entry is free, but food and drinks are available for purchase.",
		category:    "Food & Drink",
		city:        "Portland",
		venue:       "Waterfront Park",
		latitude:    45.5152,
		longitude:   -122.6784,
	},
	{
		title:       "Tech Innovators Meetup",
		daysAhead:   21,
		hour:        18,
		description: "Network with local tech professionals and hear talks from industry leaders at the SoMa Startup Hub. Doors open at 6:00 PM, with keynote at 7:00 PM. Complimentary pizza and drinks provided. Bring business cards for networking.",
		category:    "Networking",
		city:        "San Francisco",
		venue:       "SoMa Startup Hub",
		latitude:    37.7786,
		longitude:   -122.3893,
	},
	{
		title:       "Art in the Park",
		daysAhead:   28,
		hour:        10,
		description: "A day of painting, sculpture, and crafts in Zilker Park. All ages and skill levels welcome. Materials provided for the first 100 participants. Event runs from 10 AM to 4 PM. Local artists will be giving live demonstrations throughout the day.",
		category:    "Arts & Culture",
		city:        "Austin",
		venue:       "Zilker Park",
		latitude:    30.2669,
		longitude:   -97.7725,
	},
	{
		title:       "Charity 5K Run",
		daysAhead:   35,
		hour:        9,
		description: "Run or walk to support local children's charities. Registration opens at 8:00 AM, race starts at 9:00 AM on the Lakefront Trail. All finishers receive a medal and a free t-shirt. Water stations and first aid available along the route.",
		category:    "Sports",
		city:        "Chicago",
		venue:       "Lakefront Trail",
		latitude:    41.8826,
		longitude:   -87.6233,
	},
	{
		title:       "Evening Yoga at the Beach",
		daysAhead:   10,
		hour:        18,
		description: "Unwind with a relaxing yoga session at Santa Monica Beach. All levels welcome. Please bring your own mat. The session will be led by certified instructor Maya Lin and will last 75 minutes, followed by a group meditation.",
		category:    "Health & Wellness",
		city:        "Los Angeles",
		venue:       "Santa Monica Beach",
		latitude:    34.0100,
		longitude:   -118.4962,
	},
	{
		title:       "Board Game Night",
		daysAhead:   17,
		hour:        19,
		description: "Join us for a fun night of board games at The Game Room Café. Bring your favorite game or try something new from our collection. Snacks and drinks available for purchase. Event starts at 7:00 PM and goes until midnight.",
		category:    "Social",
		city:        "Seattle",
		venue:       "The Game Room Café",
		latitude:    47.6097,
		longitude:   -122.3331,
	},
	{
		title:       "Photography Walk: City Lights",
		daysAhead:   23,
		hour:        20,
		description: "Capture the beauty of the city at night with fellow photography enthusiasts. Meet at Millennium Park at 8:00 PM. Bring your camera and tripod. We'll walk through downtown and share tips on night photography.",
		category:    "Hobbies",
		city:        "Chicago",
		venue:       "Millennium Park",
		latitude:    41.8827,
		longitude:   -87.6233,
	},
	{
		title:       "Startup Pitch Night",
		daysAhead:   30,
		hour:        18,
		description: "Watch local startups pitch their ideas to a panel of investors at the Cambridge Innovation Center. Doors open at 6:00 PM, pitches start at 6:30 PM. Free pizza and drinks. RSVP required.",
		category:    "Business",
		city:        "Boston",
		venue:       "Cambridge Innovation Center",
		latitude:    42.3624,
		longitude:   -71.0846,
	},
	{
		title:       "Community Garden Volunteer Day",
		daysAhead:   40,
		hour:        9,
		description: "Help us plant, weed, and harvest at the Brooklyn Community Garden. Tools and gloves provided. Coffee and pastries served at 9:00 AM. Great opportunity to meet neighbors and learn about urban gardening.",
		category:    "Volunteer",
		city:        "New York",
		venue:       "Brooklyn Community Garden",
		latitude:    40.6782,
		longitude:   -73.9442,
	},
}

var seedTags = []string{"Outdoors", "Technology", "Music", "Community", "Food"}

type personSeed struct {
	first, last string
	age         int
	interests   string
}

var seedPeople = []personSeed{
	{first: "Alice", last: "Johnson", age: 29, interests: "Hiking, photography"},
	{first: "Brian", last: "Smith", age: 35, interests: "Startups, board games"},
	{first: "Carla", last: "Nguyen", age: 41, interests: "Gardening, cooking"},
	{first: "David", last: "Okafor", age: 24, interests: "Running, music"},
}

type groupSeed struct {
	name        string
	description string
	organizers  []string
	tags        []string
}

var seedGroups = []groupSeed{
	{
		name:        "Weekend Trail Club",
		description: "Casual hikes around the city every other weekend.",
		organizers:  []string{"Alice Johnson"},
		tags:        []string{"Outdoors", "Community"},
	},
	{
		name:        "Builders Circle",
		description: "Founders and engineers sharing what they are working on.",
		organizers:  []string{"Brian Smith", "David Okafor"},
		tags:        []string{"Technology"},
	},
}

type eventSeed struct {
	group        groupSeed
	name         string
	description  string
	location     string
	tags         []string
	registration []string
}

var seedEvents = []eventSeed{
	{
		group: groupSeed{
			name:       "Neighbourhood Music Collective",
			organizers: []string{"David Okafor"},
			tags:       []string{"Music", "Community"},
		},
		name:         "Summer Open Mic",
		description:  "Bring an instrument, a poem, or just yourself.",
		location:     "Riverside Amphitheatre",
		tags:         []string{"Music"},
		registration: []string{"Alice Johnson", "Carla Nguyen"},
	},
	{
		group: groupSeed{
			name:       "Builders Circle Live",
			organizers: []string{"Brian Smith"},
			tags:       []string{"Technology"},
		},
		name:         "Demo Day",
		description:  "Five-minute demos, then pizza, then more demos.",
		location:     "Innovation Hub, Room 4",
		tags:         []string{"Technology", "Food"},
		registration: []string{"David Okafor"},
	},
}

// seedActivityModels 依 now 計算日期：當天零點 + daysAhead 天 + hour 小時
func seedActivityModels(now time.Time) []model.Activity {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	out := make([]model.Activity, 0, len(seedActivities))
	for _, s := range seedActivities {
		description := s.description
		category := s.category
		out = append(out, model.Activity{
			Title:       s.title,
			Date:        today.AddDate(0, 0, s.daysAhead).Add(time.Duration(s.hour) * time.Hour),
			Description: &description,
			Category:    &category,
			City:        s.city,
			Venue:       s.venue,
			Latitude:    s.latitude,
			Longitude:   s.longitude,
		})
	}
	return out
}
