package handler

import (
	"net/http"
	"strings"
	"time"

	"teamboard/internal/model"
	"teamboard/internal/repository"
	"teamboard/internal/templates"
	"teamboard/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CardHandler struct {
	cardRepo   *repository.CardRepository
	columnRepo *repository.ColumnRepository
	boardRepo  *repository.BoardRepository
	moves      *workflow.Service
}

func NewCardHandler(cardRepo *repository.CardRepository, columnRepo *repository.ColumnRepository, boardRepo *repository.BoardRepository, moves *workflow.Service) *CardHandler {
	return &CardHandler{
		cardRepo:   cardRepo,
		columnRepo: columnRepo,
		boardRepo:  boardRepo,
		moves:      moves,
	}
}

type CreateCardRequest struct {
	ColumnID           string     `json:"column_id" binding:"required,uuid"`
	Title              string     `json:"title" binding:"required"`
	Description        string     `json:"description"`
	AcceptanceCriteria string     `json:"acceptance_criteria"`
	Priority           string     `json:"priority" binding:"omitempty,oneof=P0 P1 P2 P3"`
	TaskType           string     `json:"task_type"`
	TemplateID         string     `json:"template_id"`
	TeamID             *string    `json:"team_id"`
	AssigneeID         *string    `json:"assignee_id"`
	DueDate            *time.Time `json:"due_date"`
	IsOnboarding       bool       `json:"is_onboarding"`
}

type UpdateCardRequest struct {
	Title              *string    `json:"title"`
	Description        *string    `json:"description"`
	AcceptanceCriteria *string    `json:"acceptance_criteria"`
	Priority           *string    `json:"priority" binding:"omitempty,oneof=P0 P1 P2 P3"`
	TaskType           *string    `json:"task_type"`
	TeamID             *string    `json:"team_id"`
	AssigneeID         *string    `json:"assignee_id"`
	DueDate            *time.Time `json:"due_date"`
	IsOnboarding       *bool      `json:"is_onboarding"`
	IsBlocked          *bool      `json:"is_blocked"`
	BlockedReason      *string    `json:"blocked_reason"`
}

type MoveCardRequest struct {
	TargetColumnID string `json:"target_column_id" binding:"required,uuid"`
	TargetIndex    *int   `json:"target_index" binding:"required,min=0"`
}

type CardResponse struct {
	ID                 string  `json:"id"`
	ColumnID           string  `json:"column_id"`
	Title              string  `json:"title"`
	Description        *string `json:"description,omitempty"`
	AcceptanceCriteria *string `json:"acceptance_criteria,omitempty"`
	Priority           string  `json:"priority"`
	TaskType           *string `json:"task_type,omitempty"`
	TeamID             *string `json:"team_id,omitempty"`
	TeamName           *string `json:"team_name,omitempty"`
	AssigneeID         *string `json:"assignee_id,omitempty"`
	AssigneeName       *string `json:"assignee_name,omitempty"`
	DueDate            *string `json:"due_date,omitempty"`
	IsOnboarding       bool    `json:"is_onboarding"`
	IsBlocked          bool    `json:"is_blocked"`
	BlockedReason      *string `json:"blocked_reason,omitempty"`
	IsApproved         bool    `json:"is_approved"`
	Position           int     `json:"position"`
}

func cardResponse(card *model.Card) CardResponse {
	resp := CardResponse{
		ID:                 card.ID.String(),
		ColumnID:           card.ColumnID.String(),
		Title:              card.Title,
		Description:        card.Description,
		AcceptanceCriteria: card.AcceptanceCriteria,
		Priority:           card.Priority,
		TaskType:           card.TaskType,
		IsOnboarding:       card.IsOnboarding,
		IsBlocked:          card.IsBlocked,
		BlockedReason:      card.BlockedReason,
		IsApproved:         card.IsApproved,
		Position:           card.Position,
	}

	if card.TeamID != nil {
		teamID := card.TeamID.String()
		resp.TeamID = &teamID
		if card.Team != nil {
			resp.TeamName = &card.Team.Name
		}
	}
	if card.AssigneeID != nil {
		assigneeID := card.AssigneeID.String()
		resp.AssigneeID = &assigneeID
		if card.Assignee != nil {
			resp.AssigneeName = &card.Assignee.Name
		}
	}
	if card.DueDate != nil {
		dueDate := card.DueDate.Format(time.RFC3339)
		resp.DueDate = &dueDate
	}
	return resp
}

func cardResponses(cards []model.Card) []CardResponse {
	out := make([]CardResponse, len(cards))
	for i := range cards {
		out[i] = cardResponse(&cards[i])
	}
	return out
}

// trimmedOrNil returns the trimmed string, or nil when it trims to empty.
func trimmedOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func parseOptionalUUID(raw *string) (*uuid.UUID, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}

// loadOwnedCard walks card→column→board and enforces board ownership,
// writing the error response itself on failure.
func (h *CardHandler) loadOwnedCard(c *gin.Context, cardID, userID uuid.UUID) *model.Card {
	card, err := h.cardRepo.GetByID(c.Request.Context(), cardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve card"})
		return nil
	}
	if card == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return nil
	}

	column, err := h.columnRepo.GetByID(c.Request.Context(), card.ColumnID)
	if err != nil || column == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve column"})
		return nil
	}

	board, err := h.boardRepo.GetByID(c.Request.Context(), column.BoardID)
	if err != nil || board == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve board"})
		return nil
	}

	if board.OwnerID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return nil
	}
	return card
}

func (h *CardHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	columnID, err := uuid.Parse(req.ColumnID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
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

	board, err := h.boardRepo.GetByID(c.Request.Context(), column.BoardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve board"})
		return
	}
	if board == nil || board.OwnerID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}

	count, err := h.cardRepo.CountByColumn(c.Request.Context(), columnID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count cards"})
		return
	}

	// Creation counts against the column's WIP limit like any other entry.
	if wip := workflow.CheckCapacity(column, int(count), true); !wip.Allowed {
		c.JSON(http.StatusConflict, gin.H{"error": wip.Reason})
		return
	}

	// A template pre-fills whatever the request left blank.
	if req.TemplateID != "" {
		if tpl := templates.ByID(req.TemplateID); tpl != nil {
			if req.Description == "" {
				req.Description = tpl.Description
			}
			if req.AcceptanceCriteria == "" {
				req.AcceptanceCriteria = tpl.AcceptanceCriteria
			}
			if req.TaskType == "" {
				req.TaskType = tpl.TaskType
			}
			if req.Priority == "" {
				req.Priority = tpl.Priority
			}
			req.IsOnboarding = req.IsOnboarding || tpl.IsOnboarding
		}
	}

	teamID, ok := parseOptionalUUID(req.TeamID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID format"})
		return
	}
	assigneeID, ok := parseOptionalUUID(req.AssigneeID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignee ID format"})
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = model.PriorityP2
	}

	card := &model.Card{
		ColumnID:           columnID,
		Title:              strings.TrimSpace(req.Title),
		Description:        trimmedOrNil(req.Description),
		AcceptanceCriteria: trimmedOrNil(req.AcceptanceCriteria),
		Priority:           priority,
		TaskType:           trimmedOrNil(req.TaskType),
		TeamID:             teamID,
		AssigneeID:         assigneeID,
		DueDate:            req.DueDate,
		IsOnboarding:       req.IsOnboarding,
		Position:           int(count),
	}

	if err := h.cardRepo.Create(c.Request.Context(), card); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create card"})
		return
	}

	c.JSON(http.StatusCreated, cardResponse(card))
}

func (h *CardHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cardID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	card := h.loadOwnedCard(c, cardID, userID)
	if card == nil {
		return
	}

	c.JSON(http.StatusOK, cardResponse(card))
}

func (h *CardHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cardID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	card := h.loadOwnedCard(c, cardID, userID)
	if card == nil {
		return
	}

	if req.Title != nil {
		card.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		card.Description = trimmedOrNil(*req.Description)
	}
	if req.AcceptanceCriteria != nil {
		card.AcceptanceCriteria = trimmedOrNil(*req.AcceptanceCriteria)
	}
	if req.Priority != nil {
		card.Priority = *req.Priority
	}
	if req.TaskType != nil {
		card.TaskType = trimmedOrNil(*req.TaskType)
	}
	if req.TeamID != nil {
		teamID, ok := parseOptionalUUID(req.TeamID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID format"})
			return
		}
		card.TeamID = teamID
	}
	if req.AssigneeID != nil {
		assigneeID, ok := parseOptionalUUID(req.AssigneeID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignee ID format"})
			return
		}
		card.AssigneeID = assigneeID
	}
	if req.DueDate != nil {
		card.DueDate = req.DueDate
	}
	if req.IsOnboarding != nil {
		card.IsOnboarding = *req.IsOnboarding
	}
	if req.IsBlocked != nil {
		card.IsBlocked = *req.IsBlocked
	}
	if req.BlockedReason != nil {
		card.BlockedReason = trimmedOrNil(*req.BlockedReason)
	}
	if !card.IsBlocked {
		card.BlockedReason = nil
	}

	if err := h.cardRepo.Update(c.Request.Context(), card); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card"})
		return
	}

	c.JSON(http.StatusOK, cardResponse(card))
}

func (h *CardHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cardID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	card := h.loadOwnedCard(c, cardID, userID)
	if card == nil {
		return
	}

	if err := h.cardRepo.Delete(c.Request.Context(), cardID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Move runs the full move pipeline: permission matrix, WIP limit,
// workflow gate, dense renumbering, atomic commit.
func (h *CardHandler) Move(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cardID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	targetColumnID, err := uuid.Parse(req.TargetColumnID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target column ID format"})
		return
	}

	if err := h.moves.MoveCard(c.Request.Context(), userID, cardID, targetColumnID, *req.TargetIndex); err != nil {
		writeWorkflowError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Claim assigns an unowned Ready card to the caller and moves it to Doing.
func (h *CardHandler) Claim(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cardID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.moves.ClaimCard(c.Request.Context(), userID, cardID); err != nil {
		writeWorkflowError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SubmitReview moves the caller's own Doing card into Review.
func (h *CardHandler) SubmitReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cardID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.moves.SubmitForReview(c.Request.Context(), userID, cardID); err != nil {
		writeWorkflowError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Approve records lead approval on the card without moving it.
func (h *CardHandler) Approve(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cardID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.moves.ApproveCard(c.Request.Context(), userID, cardID); err != nil {
		writeWorkflowError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
