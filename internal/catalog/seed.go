package catalog

import "github.com/eventure/events-api/internal/models"

// Seed returns the pre-seeded gallery events. The slice is rebuilt per
// call so callers can never mutate the shared listing.
func Seed() []models.Event {
	return []models.Event{
		{
			ID:          1,
			Title:       "Frontend Futures Conference",
			Description: "A full day of talks on component frameworks, build tooling and the state of the web platform, with hallway-track networking between sessions.",
			Category:    models.CategoryConference,
			Date:        "2026-11-12",
			Time:        "09:00",
			Location:    "San Francisco, CA",
			Price:       199,
			Image:       "https://images.eventure.dev/seed/frontend-futures.jpg",
			Featured:    true,
		},
		{
			ID:          2,
			Title:       "Applied AI Summit",
			Description: "Practitioners share what it takes to ship machine learning systems to production, from data pipelines to evaluation.",
			Category:    models.CategoryConference,
			Date:        "2026-11-20",
			Time:        "08:30",
			Location:    "Boston, MA",
			Price:       250,
			Image:       "https://images.eventure.dev/seed/applied-ai.jpg",
			Featured:    true,
		},
		{
			ID:          3,
			Title:       "Cloud Infrastructure Days",
			Description: "Two tracks covering platform engineering, cost control and running stateful workloads on managed infrastructure.",
			Category:    models.CategoryConference,
			Date:        "2027-01-22",
			Time:        "10:00",
			Location:    "Seattle, WA",
			Price:       180,
			Image:       "https://images.eventure.dev/seed/cloud-days.jpg",
			Featured:    false,
		},
		{
			ID:          4,
			Title:       "Go Services Workshop",
			Description: "Hands-on workshop building and testing HTTP services in Go: routing, persistence, observability and deployment.",
			Category:    models.CategoryWorkshop,
			Date:        "2026-10-05",
			Time:        "13:00",
			Location:    "Austin, TX",
			Price:       99,
			Image:       "https://images.eventure.dev/seed/go-services.jpg",
			Featured:    true,
		},
		{
			ID:          5,
			Title:       "Interface Design Workshop",
			Description: "Learn research-driven design: interviews, prototyping and usability testing, with group critique of real products.",
			Category:    models.CategoryWorkshop,
			Date:        "2026-10-12",
			Time:        "14:00",
			Location:    "Los Angeles, CA",
			Price:       0,
			Image:       "https://images.eventure.dev/seed/interface-design.jpg",
			Featured:    false,
		},
		{
			ID:          6,
			Title:       "Data Analysis with Python",
			Description: "An introductory workshop on exploratory analysis and visualization with pandas and friends. Laptops required, experience not.",
			Category:    models.CategoryWorkshop,
			Date:        "2026-10-12",
			Time:        "10:00",
			Location:    "Virtual",
			Price:       0,
			Image:       "https://images.eventure.dev/seed/python-data.jpg",
			Featured:    false,
		},
		{
			ID:          7,
			Title:       "Founders & Engineers Mixer",
			Description: "An evening of open networking for startup founders and the engineers who want to meet them. Drinks and name tags provided.",
			Category:    models.CategoryNetworking,
			Date:        "2026-09-30",
			Time:        "18:30",
			Location:    "New York, NY",
			Price:       15,
			Image:       "https://images.eventure.dev/seed/founders-mixer.jpg",
			Featured:    false,
		},
		{
			ID:          8,
			Title:       "Women in Tech Breakfast",
			Description: "Monthly community breakfast with a short talk and plenty of time to meet peers across the industry.",
			Category:    models.CategoryNetworking,
			Date:        "2026-10-08",
			Time:        "08:00",
			Location:    "Chicago, IL",
			Price:       0,
			Image:       "https://images.eventure.dev/seed/wit-breakfast.jpg",
			Featured:    true,
		},
		{
			ID:          9,
			Title:       "Scaling Postgres at a Startup",
			Description: "A war-story tech talk on growing a single Postgres instance to billions of rows: partitioning, indexes and the mistakes along the way.",
			Category:    models.CategoryTechTalk,
			Date:        "2026-10-01",
			Time:        "19:00",
			Location:    "Virtual",
			Price:       0,
			Image:       "https://images.eventure.dev/seed/scaling-postgres.jpg",
			Featured:    false,
		},
		{
			ID:          10,
			Title:       "Inside a Modern Browser Engine",
			Description: "A deep technical tour of rendering pipelines and JavaScript engines, aimed at curious web developers.",
			Category:    models.CategoryTechTalk,
			Date:        "2026-11-05",
			Time:        "18:00",
			Location:    "Portland, OR",
			Price:       10,
			Image:       "https://images.eventure.dev/seed/browser-engine.jpg",
			Featured:    false,
		},
	}
}

// SeedFAQs returns the pre-seeded FAQ entries.
func SeedFAQs() []models.FAQ {
	return []models.FAQ{
		{
			ID:       1,
			Question: "How do I register for an event?",
			Answer:   "Use the register button on any event card. Each event has its own registration flow and confirmation.",
			Category: models.FAQRegistration,
		},
		{
			ID:       2,
			Question: "Can I attend more than one event?",
			Answer:   "Yes, register for as many as you like; confirmations are sent separately for each.",
			Category: models.FAQRegistration,
		},
		{
			ID:       3,
			Question: "Which payment methods are accepted?",
			Answer:   "Major credit cards and PayPal. Free events require no payment details at all.",
			Category: models.FAQPayment,
		},
		{
			ID:       4,
			Question: "What is the refund policy?",
			Answer:   "Full refund up to 7 days before the event, 50% within 7 days, no refund on the day itself.",
			Category: models.FAQPayment,
		},
		{
			ID:       5,
			Question: "How do I join a virtual event?",
			Answer:   "A unique access link is emailed 24 hours before the start time. Check spam if it does not arrive.",
			Category: models.FAQAccess,
		},
		{
			ID:       6,
			Question: "Are sessions recorded?",
			Answer:   "Most virtual sessions are recorded and available to registered attendees for 30 days.",
			Category: models.FAQAccess,
		},
		{
			ID:       7,
			Question: "Can I transfer my ticket?",
			Answer:   "Tickets are transferable up to 24 hours before the event; contact support with the recipient's details.",
			Category: models.FAQSupport,
		},
		{
			ID:       8,
			Question: "Who do I contact about technical problems?",
			Answer:   "Email support@eventure.dev; the support team answers around the clock.",
			Category: models.FAQSupport,
		},
	}
}
