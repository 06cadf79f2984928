package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ciberehd/proposaldb/internal/models"
)

// Client is the portal's HTTP API client. Every call is a single round trip;
// nothing is retried automatically.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the service at baseURL, e.g.
// "http://localhost:3000".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// createProposalResponse mirrors the {message, proposal} envelope.
type createProposalResponse struct {
	Message  string          `json:"message"`
	Proposal models.Proposal `json:"proposal"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// CreateProposal submits a draft and returns the stored proposal with its
// reference number populated.
func (c *Client) CreateProposal(ctx context.Context, draft *models.ProposalDraft) (*models.Proposal, error) {
	var out createProposalResponse
	if err := c.do(ctx, http.MethodPost, "/api/proposals", draft, &out); err != nil {
		return nil, err
	}
	return &out.Proposal, nil
}

// Proposals lists every submitted proposal.
func (c *Client) Proposals(ctx context.Context) ([]models.Proposal, error) {
	var out []models.Proposal
	if err := c.do(ctx, http.MethodGet, "/api/proposals", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Proposal fetches one proposal by id.
func (c *Client) Proposal(ctx context.Context, id uint) (*models.Proposal, error) {
	var out models.Proposal
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/proposals/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProposalByReference fetches one proposal by reference number.
func (c *Client) ProposalByReference(ctx context.Context, referenceNumber string) (*models.Proposal, error) {
	var out models.Proposal
	if err := c.do(ctx, http.MethodGet, "/api/proposals/reference/"+referenceNumber, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProposalStatus sets a proposal's status and returns the updated
// record.
func (c *Client) UpdateProposalStatus(ctx context.Context, id uint, status string) (*models.Proposal, error) {
	var out createProposalResponse
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/proposals/%d/status", id), body, &out); err != nil {
		return nil, err
	}
	return &out.Proposal, nil
}

// BudgetItems lists the budget items persisted for a proposal.
func (c *Client) BudgetItems(ctx context.Context, proposalID uint) ([]models.BudgetItem, error) {
	var out []models.BudgetItem
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/proposals/%d/budget-items", proposalID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBudgetItem persists one budget item as a proposal sub-resource.
func (c *Client) CreateBudgetItem(ctx context.Context, item *models.BudgetItem) error {
	return c.do(ctx, http.MethodPost, "/api/budget-items", item, nil)
}

// Files lists the file attachments persisted for a proposal.
func (c *Client) Files(ctx context.Context, proposalID uint) ([]models.File, error) {
	var out []models.File
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/proposals/%d/files", proposalID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateFile persists one file attachment as a proposal sub-resource.
func (c *Client) CreateFile(ctx context.Context, file *models.File) error {
	return c.do(ctx, http.MethodPost, "/api/files", file, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body *bytes.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Message != "" {
			return fmt.Errorf("%s %s: %s", method, path, errBody.Message)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
