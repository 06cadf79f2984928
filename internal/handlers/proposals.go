// proposals.go
//
// Grant proposal submission and review service for CIBEREHD project calls.
//
// This file is part of proposaldb.
// proposaldb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// proposaldb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with proposaldb.
// If not, see <https://www.gnu.org/licenses/>.

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ciberehd/proposaldb/internal/models"
	"github.com/ciberehd/proposaldb/internal/repository"
	"github.com/ciberehd/proposaldb/internal/services"
	"github.com/ciberehd/proposaldb/internal/types"
	"github.com/ciberehd/proposaldb/internal/utils"
)

// ProposalHandler handles the proposal routes
type ProposalHandler struct {
	Service *services.ProposalService
}

// CreateProposal handles POST /api/proposals
// @Summary Submit a proposal
// @Description Validate a proposal draft, assign its reference number and store it as pending
// @Tags Proposals
// @Accept json
// @Produce json
// @Param draft body models.ProposalDraft true "Proposal draft"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /proposals [post]
func (h *ProposalHandler) CreateProposal(c *fiber.Ctx) error {
	draft := models.NewDraft()
	if err := c.BodyParser(&draft); err != nil {
		return utils.ErrorResponse(c, "Invalid JSON format", fiber.StatusBadRequest, types.ErrorTypeSchema)
	}

	proposal, err := h.Service.Submit(&draft)
	if err != nil {
		return proposalError(c, err)
	}

	return utils.MessageResponse(c, "Proposal created successfully", "proposal", proposal)
}

// ListProposals handles GET /api/proposals
// @Summary List proposals
// @Description Return every stored proposal, unsorted
// @Tags Proposals
// @Produce json
// @Success 200 {array} models.Proposal
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /proposals [get]
func (h *ProposalHandler) ListProposals(c *fiber.Ctx) error {
	proposals, err := h.Service.List()
	if err != nil {
		return proposalError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(proposals)
}

// GetProposal handles GET /api/proposals/:id
// @Summary Get a proposal by id
// @Tags Proposals
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {object} models.Proposal
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /proposals/{id} [get]
func (h *ProposalHandler) GetProposal(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return utils.ErrorResponse(c, "Invalid proposal ID", fiber.StatusBadRequest, types.ErrorTypeSchema)
	}

	proposal, err := h.Service.Get(uint(id))
	if err != nil {
		return proposalError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(proposal)
}

// GetProposalByReference handles GET /api/proposals/reference/:referenceNumber
// @Summary Get a proposal by reference number
// @Tags Proposals
// @Produce json
// @Param referenceNumber path string true "Reference number"
// @Success 200 {object} models.Proposal
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /proposals/reference/{referenceNumber} [get]
func (h *ProposalHandler) GetProposalByReference(c *fiber.Ctx) error {
	proposal, err := h.Service.GetByReference(c.Params("referenceNumber"))
	if err != nil {
		return proposalError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(proposal)
}

// UpdateProposalStatus handles PATCH /api/proposals/:id/status
// @Summary Update a proposal's status
// @Description Set the proposal status to pending, approved or rejected
// @Tags Proposals
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Param body body object true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /proposals/{id}/status [patch]
func (h *ProposalHandler) UpdateProposalStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return utils.ErrorResponse(c, "Invalid proposal ID", fiber.StatusBadRequest, types.ErrorTypeSchema)
	}

	var body struct {
		Status interface{} `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid JSON format", fiber.StatusBadRequest, types.ErrorTypeSchema)
	}

	status, ok := body.Status.(string)
	if !ok || status == "" {
		return utils.ErrorResponse(c, "Status is required", fiber.StatusBadRequest, types.ErrorTypeSchema)
	}
	if !models.ValidStatus(status) {
		return utils.ErrorResponse(c, "Invalid status value", fiber.StatusBadRequest, types.ErrorTypeValidation)
	}

	proposal, err := h.Service.UpdateStatus(uint(id), status)
	if err != nil {
		return proposalError(c, err)
	}

	return utils.MessageResponse(c, "Proposal status updated successfully", "proposal", proposal)
}

// proposalError translates service errors into the response envelope.
func proposalError(c *fiber.Ctx, err error) error {
	var cerr *types.CustomError
	if errors.As(err, &cerr) {
		return utils.ErrorResponse(c, cerr.Message, cerr.Code, cerr.Type)
	}
	if errors.Is(err, repository.ErrNotFound) {
		return utils.NotFoundResponse(c, "Proposal not found")
	}
	return utils.ErrorResponse(c, "Internal server error", fiber.StatusInternalServerError, types.ErrorTypeInternal)
}
