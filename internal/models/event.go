package models

// Category classifies a read-side gallery event. The fixed set mirrors
// what the gallery renders; user submissions are not constrained to it
// (see SubmittedEvent).
type Category string

const (
	CategoryConference Category = "Conference"
	CategoryWorkshop   Category = "Workshop"
	CategoryNetworking Category = "Networking"
	CategoryTechTalk   Category = "Tech Talk"
)

// Categories lists every valid read-side category.
var Categories = []Category{
	CategoryConference,
	CategoryWorkshop,
	CategoryNetworking,
	CategoryTechTalk,
}

// Valid reports membership in the fixed enumeration.
func (c Category) Valid() bool {
	switch c {
	case CategoryConference, CategoryWorkshop, CategoryNetworking, CategoryTechTalk:
		return true
	}
	return false
}

// Event is a pre-seeded item shown in the public listing. Date is an
// ISO-8601 calendar date and Time a zero-padded 24h wall-clock time, so
// lexical order matches chronological order.
type Event struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Location    string   `json:"location"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Featured    bool     `json:"featured"`
}
