// Package bitrix wraps the four CRM REST endpoints the sync pipelines
// consume. Every request is authorized implicitly by the pre-authorized
// webhook base address; no auth header is exchanged.
package bitrix

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"candidatesync/backend/errs"
	"candidatesync/backend/models"
)

const (
	contentTypeJSON = "application/json"

	// placeholderName substitutes a blank name cell at lead creation.
	placeholderName = "Empty name"
)

// Client talks to the CRM through an injected base address. All calls
// are synchronous and one-shot: no retries, and no client-imposed
// timeout, so a hung call stalls until the request context says stop.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Entry
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/") + "/",
		http:    &http.Client{},
		log:     logrus.WithField("component", "bitrix"),
	}
}

// GetLead fetches one lead by id. A response without a result payload
// is a data-availability condition, not a transport failure.
func (c *Client) GetLead(ctx context.Context, id int) (models.CandidateRecord, error) {
	const op = "bitrix.GetLead"
	c.log.WithField("lead_id", id).Info("fetching lead")

	u := c.baseURL + methodLeadGet + "?id=" + strconv.Itoa(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.CandidateRecord{}, errs.E(errs.Transport, op, err)
	}
	body, err := c.do(op, req)
	if err != nil {
		return models.CandidateRecord{}, err
	}
	var out leadGetResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return models.CandidateRecord{}, errs.E(errs.Decode, op, err)
	}
	if out.Result == nil {
		return models.CandidateRecord{}, errs.Errorf(errs.Data, op, "no result payload for lead %d", id)
	}
	c.log.WithField("lead_id", id).Info("lead details received")
	return *out.Result, nil
}

// AddUserField creates the file-typed link field on the lead entity.
// Labels embed the first underscore-delimited token of fileName. The
// field is created unconditionally on every export, with no existence
// check, so repeated exports accumulate duplicate fields in the CRM.
func (c *Client) AddUserField(ctx context.Context, fileName string) (int, error) {
	const op = "bitrix.AddUserField"
	token := strings.SplitN(fileName, "_", 2)[0]
	payload := userFieldAddRequest{Fields: userFieldFields{
		FieldName:       "LINK_TO_CANDIDATS",
		EditFormLabel:   fmt.Sprintf("File link %s", token),
		ListColumnLabel: fmt.Sprintf("File link '%s'", token),
		UserTypeID:      "file",
		Multiple:        "N",
		Mandatory:       "N",
		ShowFilter:      "N",
		ShowInList:      "Y",
		IsSearchable:    "N",
		Sort:            100,
		XMLID:           "LINK_TO_CANDIDATE_FILE",
	}}
	body, err := c.post(ctx, op, methodUserFieldAdd, payload)
	if err != nil {
		return 0, err
	}
	var out userFieldAddResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return 0, errs.E(errs.Decode, op, err)
	}
	if out.Result == nil {
		return 0, errs.Errorf(errs.Data, op, "no field id in response")
	}
	id64, err := out.Result.Int64()
	if err != nil {
		return 0, errs.E(errs.Decode, op, err)
	}
	c.log.WithField("field_id", id64).Info("user field created")
	return int(id64), nil
}

// AttachFileLink stores filePath as the value of fieldID on leadID. The
// stored value is a path reference, not an uploaded binary; whether any
// consumer can resolve that path is outside this method's guarantee.
func (c *Client) AttachFileLink(ctx context.Context, fieldID int, filePath string, leadID int) error {
	const op = "bitrix.AttachFileLink"
	payload := leadUpdateRequest{
		ID:     leadID,
		Fields: map[string]fieldFileValue{strconv.Itoa(fieldID): {Value: filePath}},
	}
	body, err := c.post(ctx, op, methodLeadUpdate, payload)
	if err != nil {
		return err
	}
	var out leadUpdateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return errs.E(errs.Decode, op, err)
	}
	if out.Result == nil {
		return errs.Errorf(errs.Data, op, "update not confirmed for lead %d", leadID)
	}
	c.log.WithFields(logrus.Fields{"lead_id": leadID, "field_id": fieldID}).Info("file link attached")
	return nil
}

// AddLead creates one lead from an import row. Phone and email become
// single-element HOME-typed contact lists when present, empty lists
// otherwise; a blank name gets a placeholder.
func (c *Client) AddLead(ctx context.Context, row models.ImportRow) error {
	const op = "bitrix.AddLead"
	if !row.Valid() {
		return errs.Errorf(errs.Validation, op, "row %q missing title or last name", row.Title)
	}
	name := row.Name
	if name == "" {
		name = placeholderName
	}
	fields := leadFields{
		Title:    row.Title,
		Name:     name,
		LastName: row.LastName,
		Phone:    []models.ContactValue{},
		Email:    []models.ContactValue{},
	}
	if row.Phone != "" {
		fields.Phone = []models.ContactValue{{Value: row.Phone, ValueType: "HOME"}}
	}
	if row.Email != "" {
		fields.Email = []models.ContactValue{{Value: row.Email, ValueType: "HOME"}}
	}
	body, err := c.post(ctx, op, methodLeadAdd, leadAddRequest{Fields: fields})
	if err != nil {
		return err
	}
	var out leadAddResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return errs.E(errs.Decode, op, err)
	}
	if out.Result == nil {
		return errs.Errorf(errs.Data, op, "no lead id in response")
	}
	c.log.WithField("title", row.Title).Info("lead created")
	return nil
}

func (c *Client) post(ctx context.Context, op, method string, payload any) ([]byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.E(errs.Decode, op, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+method, bytes.NewReader(b))
	if err != nil {
		return nil, errs.E(errs.Transport, op, err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	return c.do(op, req)
}

// do executes the request and classifies the outcome: connection and
// timeout failures are transport, non-2xx statuses are protocol.
func (c *Client) do(op string, req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return nil, errs.Errorf(errs.Transport, op, "timeout: %v", err)
		}
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return nil, errs.E(errs.Transport, op, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.E(errs.Transport, op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errs.Errorf(errs.Protocol, op, "status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
