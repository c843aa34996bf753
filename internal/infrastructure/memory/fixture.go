package memory

import "github.com/sngm3741/shopfront/internal/public/domain"

// FixtureSlug is the slug carried by the built-in profile.
const FixtureSlug = "precision-auto-detailing"

const weekdayHours = "9:00 AM – 6:00 PM"

// Fixture returns the built-in profile. Each call returns a fresh copy.
func Fixture() domain.ShopProfile {
	return domain.ShopProfile{
		Slug:         FixtureSlug,
		Name:         "Precision Auto Detailing",
		City:         "Chantilly, VA",
		AddressShort: "Chantilly, VA",
		IsOpen:       true,
		ClosesAt:     "6:00 PM",
		Rating:       4.9,
		ReviewCount:  128,
		ResponseTime: "15 minutes",
		Badges: []domain.Badge{
			{Label: "Verified Pro", Variant: domain.BadgeGreen},
			{Label: "Immaculate Reviews", Variant: domain.BadgeBlue},
			{Label: "Mobile Service", Variant: domain.BadgeGray},
		},
		Highlights: []string{"Mobile Service", "15 Mile Radius", "Fully Insured", "Eco-Friendly"},
		About:      "Over 10 years of experience in premium detailing and ceramic coatings. We specialize in paint correction, interior deep cleaning and ceramic coatings to make your car look brand new.",
		Serving:    []string{"Fairfax", "Chantilly", "Centreville"},
		Gallery: []string{
			"/detail-foam.jpg",
			"/car-detailing-1.jpg",
			"/shine-shop.webp",
			"/interior-steam.webp",
			"/auto-detailing-2.webp",
		},
		Services: []domain.Service{
			{
				Title:     "Full Interior Detail",
				PriceFrom: 150,
				Duration:  "2–3 Hours",
				Bullets:   []string{"Deep clean seats & carpets", "Dash & trim detail", "Windows cleaned", "Deodorize"},
			},
			{
				Title:     "Exterior Detail",
				PriceFrom: 180,
				Duration:  "2–3 Hours",
				Bullets:   []string{"Hand wash", "Clay bar (as needed)", "Wax/sealant", "Wheel & tire clean"},
			},
			{
				Title:     "Ceramic Coating",
				PriceFrom: 499,
				Duration:  "5+ Hours",
				Bullets:   []string{"Paint prep", "Long-lasting protection", "High gloss finish", "Aftercare tips"},
			},
		},
		Reviews: []domain.Review{
			{
				Name:     "Sarah P.",
				Location: "Fairfax, VA",
				Stars:    5,
				Date:     "Jan 2026",
				Text:     "Amazing job! My car looks brand new!",
				Photos:   []string{"/images/rev-1a.jpg", "/images/rev-1b.jpg"},
			},
			{
				Name:     "Michael T.",
				Location: "Chantilly, VA",
				Stars:    5,
				Date:     "Dec 2025",
				Text:     "Super professional and thorough. Highly recommend!",
				Verified: true,
			},
		},
		Hours: []domain.DayHours{
			{Day: "Mon", Hours: weekdayHours},
			{Day: "Tue", Hours: weekdayHours},
			{Day: "Wed", Hours: weekdayHours},
			{Day: "Thu", Hours: weekdayHours},
			{Day: "Fri", Hours: weekdayHours},
			{Day: "Sat", Hours: "10:00 AM – 4:00 PM"},
			{Day: "Sun", Hours: "Closed"},
		},
	}
}
