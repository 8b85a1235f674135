package models

import "encoding/json"

// ContactValue is one entry of a CRM multi-value contact field.
type ContactValue struct {
	Value     string `json:"VALUE"`
	ValueType string `json:"VALUE_TYPE,omitempty"`
}

// CandidateRecord is a lead as crm.lead.get returns it. Read-only from
// this service's perspective. ID stays a json.Number so its literal
// text flows through to the spreadsheet untouched.
type CandidateRecord struct {
	ID         json.Number    `json:"ID"`
	Name       string         `json:"NAME"`
	LastName   string         `json:"LAST_NAME"`
	Phones     []ContactValue `json:"PHONE"`
	Emails     []ContactValue `json:"EMAIL"`
	DateCreate string         `json:"DATE_CREATE"`
}

// ImportRow is one spreadsheet row destined to become a CRM lead.
type ImportRow struct {
	Title    string `json:"title"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// Valid reports whether the row carries the fields lead creation requires.
func (r ImportRow) Valid() bool {
	return r.Title != "" && r.LastName != ""
}
