// subresources.go
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
	"github.com/gofiber/fiber/v2"

	"github.com/ciberehd/proposaldb/internal/models"
	"github.com/ciberehd/proposaldb/internal/types"
	"github.com/ciberehd/proposaldb/internal/utils"
)

// CreateBudgetItem handles POST /api/budget-items
// @Summary Persist a budget item for a proposal
// @Tags BudgetItems
// @Accept json
// @Produce json
// @Param item body models.BudgetItem true "Budget item"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /budget-items [post]
func (h *ProposalHandler) CreateBudgetItem(c *fiber.Ctx) error {
	var item models.BudgetItem
	if err := c.BodyParser(&item); err != nil {
		return utils.ErrorResponse(c, "Invalid JSON format", fiber.StatusBadRequest, types.ErrorTypeSchema)
	}

	if err := h.Service.AddBudgetItem(&item); err != nil {
		return proposalError(c, err)
	}

	return utils.MessageResponse(c, "Budget item created successfully", "budgetItem", item)
}

// GetBudgetItems handles GET /api/proposals/:id/budget-items
// @Summary List the budget items persisted for a proposal
// @Tags BudgetItems
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {array} models.BudgetItem
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /proposals/{id}/budget-items [get]
func (h *ProposalHandler) GetBudgetItems(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return utils.ErrorResponse(c, "Invalid proposal ID", fiber.StatusBadRequest, types.ErrorTypeSchema)
	}

	items, err := h.Service.BudgetItems(uint(id))
	if err != nil {
		return proposalError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

// CreateFile handles POST /api/files
// @Summary Persist a file attachment for a proposal
// @Tags Files
// @Accept json
// @Produce json
// @Param file body models.File true "File attachment"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /files [post]
func (h *ProposalHandler) CreateFile(c *fiber.Ctx) error {
	var file models.File
	if err := c.BodyParser(&file); err != nil {
		return utils.ErrorResponse(c, "Invalid JSON format", fiber.StatusBadRequest, types.ErrorTypeSchema)
	}

	if err := h.Service.AddFile(&file); err != nil {
		return proposalError(c, err)
	}

	return utils.MessageResponse(c, "File created successfully", "file", file)
}

// GetFiles handles GET /api/proposals/:id/files
// @Summary List the file attachments persisted for a proposal
// @Tags Files
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {array} models.File
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /proposals/{id}/files [get]
func (h *ProposalHandler) GetFiles(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return utils.ErrorResponse(c, "Invalid proposal ID", fiber.StatusBadRequest, types.ErrorTypeSchema)
	}

	files, err := h.Service.Files(uint(id))
	if err != nil {
		return proposalError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(files)
}
