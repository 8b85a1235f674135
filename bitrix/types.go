package bitrix

import (
	"encoding/json"

	"candidatesync/backend/models"
)

// REST method names consumed by this service.
const (
	methodLeadGet      = "crm.lead.get"
	methodUserFieldAdd = "crm.lead.userfield.add"
	methodLeadUpdate   = "crm.lead.update.json"
	methodLeadAdd      = "crm.lead.add"
)

type leadGetResponse struct {
	Result *models.CandidateRecord `json:"result"`
}

type userFieldAddRequest struct {
	Fields userFieldFields `json:"fields"`
}

// userFieldFields is the fixed shape of the file-link field. Y/N flags
// are what the CRM expects, not booleans.
type userFieldFields struct {
	FieldName       string `json:"FIELD_NAME"`
	EditFormLabel   string `json:"EDIT_FORM_LABEL"`
	ListColumnLabel string `json:"LIST_COLUMN_LABEL"`
	UserTypeID      string `json:"USER_TYPE_ID"`
	Multiple        string `json:"MULTIPLE"`
	Mandatory       string `json:"MANDATORY"`
	ShowFilter      string `json:"SHOW_FILTER"`
	ShowInList      string `json:"SHOW_IN_LIST"`
	IsSearchable    string `json:"IS_SEARCHABLE"`
	Sort            int    `json:"SORT"`
	XMLID           string `json:"XML_ID"`
}

type userFieldAddResponse struct {
	Result *json.Number `json:"result"`
}

// leadUpdateRequest keys the field map by the numeric field id rendered
// as a string, the way the update endpoint expects it.
type leadUpdateRequest struct {
	ID     int                       `json:"id"`
	Fields map[string]fieldFileValue `json:"fields"`
}

type fieldFileValue struct {
	Value string `json:"value"`
}

type leadUpdateResponse struct {
	Result *json.RawMessage `json:"result"`
}

type leadAddRequest struct {
	Fields leadFields `json:"fields"`
}

type leadFields struct {
	Title    string                `json:"TITLE"`
	Name     string                `json:"NAME"`
	LastName string                `json:"LAST_NAME"`
	Phone    []models.ContactValue `json:"PHONE"`
	Email    []models.ContactValue `json:"EMAIL"`
}

type leadAddResponse struct {
	Result *json.Number `json:"result"`
}
