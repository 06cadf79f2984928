package portal

import (
	"context"
	"sort"

	"github.com/ciberehd/proposaldb/internal/models"
)

// AdminView backs the administrator list/detail/status-change screens.
type AdminView struct {
	client *Client
}

// NewAdminView builds an admin view over the API client.
func NewAdminView(client *Client) *AdminView {
	return &AdminView{client: client}
}

// List returns all proposals sorted newest first. The ordering is applied
// here, before rendering; the repository itself guarantees none.
func (v *AdminView) List(ctx context.Context) ([]models.Proposal, error) {
	proposals, err := v.client.Proposals(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(proposals, func(i, j int) bool {
		return proposals[i].CreatedAt.After(proposals[j].CreatedAt)
	})
	return proposals, nil
}

// Proposal fetches the detail record for one proposal.
func (v *AdminView) Proposal(ctx context.Context, id uint) (*models.Proposal, error) {
	return v.client.Proposal(ctx, id)
}

// SetStatus applies an admin status decision and returns the updated record.
func (v *AdminView) SetStatus(ctx context.Context, id uint, status string) (*models.Proposal, error) {
	return v.client.UpdateProposalStatus(ctx, id, status)
}
