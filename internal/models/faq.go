package models

// FAQCategory groups frequently asked questions.
type FAQCategory string

const (
	FAQRegistration FAQCategory = "Registration"
	FAQPayment      FAQCategory = "Payment"
	FAQAccess       FAQCategory = "Access"
	FAQSupport      FAQCategory = "Support"
)

// FAQ is a pre-seeded question/answer pair.
type FAQ struct {
	ID       int         `json:"id"`
	Question string      `json:"question"`
	Answer   string      `json:"answer"`
	Category FAQCategory `json:"category"`
}
