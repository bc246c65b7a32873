package catalog

// DefaultTransportFee is the current flat transport addon.  Transport is
// free at the moment but the plumbing keeps charging logic in one place
// should the business start billing for pickups again.
const DefaultTransportFee = 0

const (
	CategoryLocal       = "Local Tours & Experiences"
	CategoryDayTrips    = "Day Trips & Excursions"
	CategoryAttractions = "Unique Attractions"
)

// Default returns the production catalog.  To add a tour, append a block
// to the matching category below with a unique id and drop its images
// into the site's img/ folder.
func Default() *Catalog {
	return New(DefaultTransportFee, []Tour{
		// Local tours & experiences
		{
			ID:                "souk-tour",
			Title:             "Agadir Souk El Had Tour",
			Subtitle:          "Experience Agadir's largest market",
			Category:          CategoryLocal,
			Price:             15,
			TransportEligible: true,
			Images:            []string{"img/souk.png", "img/pic4.jpg", "img/pic6.jpg"},
			Details: []string{
				"Duration: 1-4 Hours",
				"Pick up: Any time",
				"Free time to explore the market independently",
				"Discover spices, crafts, and local culture",
			},
		},
		{
			ID:                "small-desert",
			Title:             "Small Desert Trip",
			Subtitle:          "Journey to the edge of the desert",
			Category:          CategoryLocal,
			Price:             30,
			TransportEligible: true,
			Images:            []string{"img/small-desert.jpg", "img/dunes.png", "img/pic7.jpg"},
			Details: []string{
				"Duration: 5-6 Hours",
				"Pick up: Any time",
				"Explore sand dunes and Berber villages",
				"Traditional Moroccan tea break (optional)",
			},
		},
		{
			ID:                "horse-riding",
			Title:             "Horse Riding",
			Subtitle:          "Sunset beach riding adventure",
			Category:          CategoryLocal,
			Price:             20,
			TransportEligible: true,
			Images:            []string{"img/horse-ride.png", "img/pic1.jpg"},
			Details: []string{
				"Duration: 2 Hours",
				"Ride along the beach and tamri village river",
				"Suitable for all skill levels",
				"Equipment and guide included",
				"Beautiful sunset option available",
			},
		},
		{
			ID:                "old-medina",
			Title:             "Visit Old Medina of Agadir",
			Subtitle:          "The historic heart of Agadir",
			Category:          CategoryLocal,
			Price:             20,
			TransportEligible: true,
			Images:            []string{"img/souk.png", "img/pic6.jpg"},
			Details: []string{
				"Duration: 2-3 Hours",
				"Admire traditional masonry and architecture",
				"Visit artisan workshops",
				"Great photo opportunities",
				"Entrance fee included",
			},
		},
		{
			ID:                "buggy-tour",
			Title:             "Buggy Tour",
			Subtitle:          "Thrilling dune-driving experience",
			Category:          CategoryLocal,
			Price:             65,
			TransportEligible: true,
			Images:            []string{"img/dunes.png", "img/pic4.jpg"},
			Details: []string{
				"Duration: 1 Hours (driving)",
				"Safety briefing and gear included",
				"Tea break (optional)",
			},
		},
		{
			ID:                "quad-bike",
			Title:             "Quad Bike Tour in the Sand",
			Subtitle:          "High-energy desert exploration",
			Category:          CategoryLocal,
			Price:             30,
			TransportEligible: true,
			Images:            []string{"img/dunes.png", "img/pic7.jpg"},
			Details: []string{
				"Duration: 1 Hours",
				"Ride through dunes and beach",
				"Safety equipment provided",
				"Briefing for beginners",
			},
		},
		{
			ID:                "hammam-massage",
			Title:             "Moroccan Hammam & Massage (2h)",
			Subtitle:          "Authentic relaxation ritual",
			Category:          CategoryLocal,
			Price:             40,
			TransportEligible: true,
			Images:            []string{"img/pic3.jpg", "img/pic2.jpg"},
			Details: []string{
				"1 Hour Traditional Hammam (Scrub)",
				"1 Hour Relaxing Massage with Argan Oil",
				"Towels and slippers provided",
				"Ultimate relaxation experience",
			},
		},
		{
			ID:                "cooking-class",
			Title:             "Cooking Class",
			Subtitle:          "Learn the secrets of Moroccan cuisine",
			Category:          CategoryLocal,
			Price:             40,
			TransportEligible: true,
			Images:            []string{"img/cooking.png", "img/pic6.jpg"},
			Details: []string{
				"Duration: 4 Hours",
				"Market visit for ingredients",
				"Learn to cook Tagine or Couscous",
				"Enjoy your meal afterwards",
			},
		},
		{
			ID:                "airport-transfer",
			Title:             "Airport Transfer",
			Subtitle:          "Stress-free private transport",
			Category:          CategoryLocal,
			Price:             40,
			TransportEligible: true,
			Images:            []string{"img/airport.png", "img/pic2.jpg", "img/pic6.jpg"},
			Details: []string{
				"Private comfortable vehicle",
				"Professional driver",
				"Meet and greet service at airport",
				"Available 24/7",
				"Fixed price, no hidden fees",
			},
		},

		// Day trips & excursions
		{
			ID:                "taroudant-trip",
			Title:             "Taroudant Trip",
			Subtitle:          "Discover the Little Marrakech",
			Category:          CategoryDayTrips,
			Price:             50,
			TransportEligible: true,
			Images:            []string{"img/souk.png", "img/pic4.jpg"},
			Details: []string{
				"Duration: Half Day or Full Day",
				`Explore the "Little Marrakech"`,
				"Visit ancient ramparts and souks",
				"See the Tiout Oasis",
				"Hotel pickup included",
			},
		},
		{
			ID:                "sahara-dunes",
			Title:             "Sahara Dunes Trip",
			Subtitle:          "Agadir's mini Sahara experience",
			Category:          CategoryDayTrips,
			Price:             25,
			TransportEligible: true,
			Images:            []string{"img/dunes.png", "img/pic7.jpg"},
			Details: []string{
				"Full day adventure",
				"Explore massive sand dunes",
				"Scenic drive through Anti-Atlas mountains",
			},
		},
		{
			ID:                "paradise-valley",
			Title:             "Paradise Valley Trip",
			Subtitle:          "Agadir's natural oasis adventure",
			Category:          CategoryDayTrips,
			Price:             20,
			TransportEligible: true,
			Images:            []string{"img/pic1.jpg", "img/pic2.jpg"},
			Details: []string{
				"Half day trip",
				"Short hike through palm groves",
				"Swimming in natural rock pools",
				"Stunning photography spots",
			},
		},
		{
			ID:                "souss-park",
			Title:             "Souss National Park Trip",
			Subtitle:          "Wildlife and birdwatching tour",
			Category:          CategoryDayTrips,
			Price:             45,
			TransportEligible: true,
			Images:            []string{"img/pic1.jpg", "img/pic4.jpg"},
			Details: []string{
				"Guided nature walk",
				"Spot migratory birds including flamingos",
				"Visit the museum of the park",
				"Ideal for nature lovers",
				"Morning tour recommended",
			},
		},
		{
			ID:                "city-tour",
			Title:             "City Tour from Agadir & Taghazout",
			Subtitle:          "The complete city overview",
			Category:          CategoryDayTrips,
			Price:             25,
			TransportEligible: true,
			Images:            []string{"img/souk.png", "img/pic6.jpg"},
			Details: []string{
				"Duration: 3 Hours",
				"Visit Kasbah Oufella (Historic Fortress)",
				"Drive through Marina and City Center",
			},
		},
		{
			ID:                "boat-trip",
			Title:             "Boat Trip",
			Subtitle:          "Relaxing cruise on the Atlantic",
			Category:          CategoryDayTrips,
			Price:             45,
			TransportEligible: true,
			Images:            []string{"img/pic5.jpg", "img/pic4.jpg"},
			Details:           []string{"30 min - 1 h", "Swimming break", "Relaxing atmosphere"},
		},
		{
			ID:                "camel-ride",
			Title:             "Camel Ride Tour",
			Subtitle:          "Traditional Moroccan beach riding",
			Category:          CategoryDayTrips,
			Price:             25,
			TransportEligible: true,
			Images:            []string{"img/horse-ride.png", "img/pic1.jpg"},
			Details: []string{
				"1 Hours riding experience",
				"Flamingo spotting (seasonally)",
				"Pick up and drop off included",
			},
		},
		{
			ID:                "sandboarding",
			Title:             "Sandboarding",
			Subtitle:          "Thrilling dune-surfing fun",
			Category:          CategoryDayTrips,
			Price:             25,
			TransportEligible: true,
			Images:            []string{"img/dunes.png", "img/pic7.jpg"},
			Details: []string{
				"Combine with half-day desert trip",
				"Boards provided",
				"Slide down the steep dunes",
				"panoramic view",
				"Fun for all ages",
			},
		},
		{
			ID:                "telepherique",
			Title:             "Telepherique",
			Subtitle:          "Modern cable car city views",
			Category:          CategoryDayTrips,
			Price:             25,
			TransportEligible: true,
			Images:            []string{"img/pic2.jpg", "img/pic1.jpg"},
			Details: []string{
				"Ride to the historic Kasbah Oufella",
				"Panoramic views of the city and bay",
				"Modern comfortable cabins",
				"Driver waits for return trip",
				"Ticket included",
			},
		},

		// Unique attractions
		{
			ID:                "crocoparc",
			Title:             "Crocoparc Tour",
			Subtitle:          "Family fun with 300+ crocodiles",
			Category:          CategoryAttractions,
			Price:             25,
			TransportEligible: true,
			Images:            []string{"img/pic1.jpg", "img/pic4.jpg"},
			Details: []string{
				"Entrance ticket included",
				"Walk through thematic botanical gardens",
				"Watch crocodile feeding times",
				"Educational and fun",
				"Great for families",
			},
		},
		{
			ID:                "dolphin-show",
			Title:             "Dolphin",
			Subtitle:          "Spectacular marine performances",
			Category:          CategoryAttractions,
			Price:             30,
			TransportEligible: true,
			Images:            []string{"img/pic5.jpg", "img/pic4.jpg"},
			Details: []string{
				"Show times vary (usually afternoon)",
				"Watch dolphins and sea lions perform",
				"Photo opportunities available",
			},
		},
		{
			ID:                "goats-tree",
			Title:             "Goats on the Tree Tour",
			Subtitle:          "The famous Moroccan viral phenomenon",
			Category:          CategoryAttractions,
			Price:             20,
			TransportEligible: true,
			Images:            []string{"img/pic1.jpg", "img/pic6.jpg"},
			Details: []string{
				"Short trip or included in Essaouira/Marrakech trips",
				"See goats climbing Argan trees",
				"Unique to this region of Morocco",
				"Photo stop",
				"Visit Argan cooperative",
			},
		},
	})
}
