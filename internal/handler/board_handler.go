package handler

import (
	"net/http"
	"strings"

	"teamboard/internal/model"
	"teamboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BoardHandler struct {
	boardRepo  *repository.BoardRepository
	columnRepo *repository.ColumnRepository
	cardRepo   *repository.CardRepository
}

func NewBoardHandler(boardRepo *repository.BoardRepository, columnRepo *repository.ColumnRepository, cardRepo *repository.CardRepository) *BoardHandler {
	return &BoardHandler{
		boardRepo:  boardRepo,
		columnRepo: columnRepo,
		cardRepo:   cardRepo,
	}
}

type CreateBoardRequest struct {
	Name string `json:"name" binding:"required"`
}

type RenameBoardRequest struct {
	Name string `json:"name" binding:"required"`
}

type BoardResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"owner_id"`
}

type ColumnWithCardsResponse struct {
	ColumnResponse
	Cards []CardResponse `json:"cards"`
}

type BoardDetailResponse struct {
	BoardResponse
	Columns []ColumnWithCardsResponse `json:"columns"`
}

func intPtr(v int) *int {
	return &v
}

// defaultColumns is the workflow every new board starts with. Doing and
// Review carry default WIP limits.
func defaultColumns() []model.Column {
	return []model.Column{
		{Name: "Ready", Stage: model.StageReady, Position: 0},
		{Name: "Doing", Stage: model.StageDoing, Position: 1, WIPLimit: intPtr(2)},
		{Name: "Review", Stage: model.StageReview, Position: 2, WIPLimit: intPtr(5)},
		{Name: "Done", Stage: model.StageDone, Position: 3},
	}
}

func (h *BoardHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Board name is required"})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Board name is required"})
		return
	}

	board := &model.Board{
		Name:    name,
		OwnerID: userID,
	}

	if err := h.boardRepo.CreateWithColumns(c.Request.Context(), board, defaultColumns()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create board"})
		return
	}

	c.JSON(http.StatusCreated, BoardResponse{
		ID:      board.ID.String(),
		Name:    board.Name,
		OwnerID: board.OwnerID.String(),
	})
}

func (h *BoardHandler) GetAll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boards, err := h.boardRepo.GetOwned(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve boards"})
		return
	}

	response := make([]BoardResponse, len(boards))
	for i, b := range boards {
		response[i] = BoardResponse{
			ID:      b.ID.String(),
			Name:    b.Name,
			OwnerID: b.OwnerID.String(),
		}
	}
	c.JSON(http.StatusOK, response)
}

// GetByID returns the board with its columns and their cards, the full
// view the kanban UI renders.
func (h *BoardHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	board, err := h.boardRepo.GetByID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve board"})
		return
	}
	if board == nil || board.OwnerID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	columns, err := h.columnRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve columns"})
		return
	}

	response := BoardDetailResponse{
		BoardResponse: BoardResponse{
			ID:      board.ID.String(),
			Name:    board.Name,
			OwnerID: board.OwnerID.String(),
		},
		Columns: make([]ColumnWithCardsResponse, len(columns)),
	}

	for i, col := range columns {
		cards, err := h.cardRepo.ListByColumnWithRelations(c.Request.Context(), col.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cards"})
			return
		}

		response.Columns[i] = ColumnWithCardsResponse{
			ColumnResponse: columnResponse(&col),
			Cards:          cardResponses(cards),
		}
	}

	c.JSON(http.StatusOK, response)
}

func (h *BoardHandler) Rename(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req RenameBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Board name is required"})
		return
	}

	board, err := h.loadOwnedBoard(c, boardID, userID)
	if board == nil || err != nil {
		return
	}

	board.Name = strings.TrimSpace(req.Name)
	if err := h.boardRepo.Update(c.Request.Context(), board); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename board"})
		return
	}

	c.JSON(http.StatusOK, BoardResponse{
		ID:      board.ID.String(),
		Name:    board.Name,
		OwnerID: board.OwnerID.String(),
	})
}

func (h *BoardHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	board, err := h.loadOwnedBoard(c, boardID, userID)
	if board == nil || err != nil {
		return
	}

	if err := h.boardRepo.Delete(c.Request.Context(), boardID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete board"})
		return
	}

	c.Status(http.StatusNoContent)
}

// loadOwnedBoard fetches the board and enforces ownership, writing the
// error response itself on failure.
func (h *BoardHandler) loadOwnedBoard(c *gin.Context, boardID, userID uuid.UUID) (*model.Board, error) {
	board, err := h.boardRepo.GetByID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve board"})
		return nil, err
	}
	if board == nil || board.OwnerID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return nil, nil
	}
	return board, nil
}
