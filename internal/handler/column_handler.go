package handler

import (
	"net/http"
	"strings"

	"teamboard/internal/model"
	"teamboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ColumnHandler struct {
	columnRepo *repository.ColumnRepository
	boardRepo  *repository.BoardRepository
	cardRepo   *repository.CardRepository
}

func NewColumnHandler(columnRepo *repository.ColumnRepository, boardRepo *repository.BoardRepository, cardRepo *repository.CardRepository) *ColumnHandler {
	return &ColumnHandler{
		columnRepo: columnRepo,
		boardRepo:  boardRepo,
		cardRepo:   cardRepo,
	}
}

type CreateColumnRequest struct {
	BoardID  string `json:"board_id" binding:"required,uuid"`
	Name     string `json:"name" binding:"required"`
	WIPLimit *int   `json:"wip_limit"`
}

type UpdateColumnRequest struct {
	Name     *string `json:"name"`
	WIPLimit *int    `json:"wip_limit"`
}

type ReorderColumnsRequest struct {
	ColumnIDs []string `json:"column_ids" binding:"required"`
}

type ColumnResponse struct {
	ID       string `json:"id"`
	BoardID  string `json:"board_id"`
	Name     string `json:"name"`
	Stage    string `json:"stage"`
	Position int    `json:"position"`
	WIPLimit *int   `json:"wip_limit,omitempty"`
}

func columnResponse(col *model.Column) ColumnResponse {
	return ColumnResponse{
		ID:       col.ID.String(),
		BoardID:  col.BoardID.String(),
		Name:     col.Name,
		Stage:    col.Stage,
		Position: col.Position,
		WIPLimit: col.WIPLimit,
	}
}

// checkBoardOwnership loads the board and verifies the actor owns it,
// writing the error response on failure.
func (h *ColumnHandler) checkBoardOwnership(c *gin.Context, boardID, userID uuid.UUID) bool {
	board, err := h.boardRepo.GetByID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve board"})
		return false
	}
	if board == nil || board.OwnerID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return false
	}
	return true
}

// Create appends a column to the board. The workflow stage is derived
// from the name once, here; later renames keep the stage.
func (h *ColumnHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	boardID, err := uuid.Parse(req.BoardID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	if !h.checkBoardOwnership(c, boardID, userID) {
		return
	}

	maxPos, err := h.columnRepo.GetMaxPosition(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve columns"})
		return
	}

	name := strings.TrimSpace(req.Name)
	column := &model.Column{
		BoardID:  boardID,
		Name:     name,
		Stage:    model.StageForName(name),
		Position: maxPos + 1,
		WIPLimit: req.WIPLimit,
	}

	if err := h.columnRepo.Create(c.Request.Context(), column); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create column"})
		return
	}

	c.JSON(http.StatusCreated, columnResponse(column))
}

func (h *ColumnHandler) GetByBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if !h.checkBoardOwnership(c, boardID, userID) {
		return
	}

	columns, err := h.columnRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve columns"})
		return
	}

	response := make([]ColumnResponse, len(columns))
	for i := range columns {
		response[i] = columnResponse(&columns[i])
	}
	c.JSON(http.StatusOK, response)
}

// Update renames the column and/or changes its WIP limit. The stage is
// deliberately left alone so a renamed "Doing" column keeps auto-assigning.
func (h *ColumnHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	columnID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	column, err := h.columnRepo.GetByID(c.Request.Context(), columnID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve column"})
		return
	}
	if column == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}

	if !h.checkBoardOwnership(c, column.BoardID, userID) {
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Column name cannot be empty"})
			return
		}
		column.Name = name
	}
	if req.WIPLimit != nil {
		column.WIPLimit = req.WIPLimit
	}

	if err := h.columnRepo.Update(c.Request.Context(), column); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update column"})
		return
	}

	c.JSON(http.StatusOK, columnResponse(column))
}

// Delete removes an empty column. Columns still holding cards are refused.
func (h *ColumnHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	columnID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	column, err := h.columnRepo.GetByID(c.Request.Context(), columnID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve column"})
		return
	}
	if column == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}

	if !h.checkBoardOwnership(c, column.BoardID, userID) {
		return
	}

	count, err := h.cardRepo.CountByColumn(c.Request.Context(), columnID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count cards"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete column with cards. Move or delete cards first."})
		return
	}

	if err := h.columnRepo.Delete(c.Request.Context(), columnID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete column"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ColumnHandler) Reorder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req ReorderColumnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !h.checkBoardOwnership(c, boardID, userID) {
		return
	}

	columnIDs := make([]uuid.UUID, len(req.ColumnIDs))
	for i, raw := range req.ColumnIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
			return
		}
		columnIDs[i] = id
	}

	if err := h.columnRepo.ReorderColumns(c.Request.Context(), columnIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder columns"})
		return
	}

	c.Status(http.StatusNoContent)
}
