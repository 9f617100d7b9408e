package domain

import "time"

// ContactMessage is a record created by the public contact form
type ContactMessage struct {
	ID               int64
	Name             string
	Email            string
	Phone            string
	PreferredChannel string // "email", "phone", ...
	Message          string
	CreatedAt        time.Time
}

// CorporateEnquiry is a record created by the corporate enquiry form
type CorporateEnquiry struct {
	ID               int64
	OrganizationName string
	ContactPerson    string
	Email            string
	Phone            string
	Requirements     string
	GroupSize        string
	CreatedAt        time.Time
}
