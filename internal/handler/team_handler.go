package handler

import (
	"net/http"
	"strings"

	"teamboard/internal/model"
	"teamboard/internal/repository"
	"teamboard/internal/seed"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TeamHandler struct {
	teamRepo   *repository.TeamRepository
	memberRepo *repository.TeamMemberRepository
	userRepo   repository.UserRepositoryInterface
}

func NewTeamHandler(teamRepo *repository.TeamRepository, memberRepo *repository.TeamMemberRepository, userRepo repository.UserRepositoryInterface) *TeamHandler {
	return &TeamHandler{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		userRepo:   userRepo,
	}
}

type AddMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"omitempty,oneof=LEAD MEMBER"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=LEAD MEMBER"`
}

type TeamResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Slug           string  `json:"slug"`
	DiscordChannel *string `json:"discord_channel,omitempty"`
}

type TeamMemberResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type TeamDetailResponse struct {
	TeamResponse
	Members []TeamMemberResponse `json:"members"`
}

func teamResponse(team *model.Team) TeamResponse {
	return TeamResponse{
		ID:             team.ID.String(),
		Name:           team.Name,
		Slug:           team.Slug,
		DiscordChannel: team.DiscordChannel,
	}
}

// loadTeam fetches the team by slug, writing the error response on failure.
func (h *TeamHandler) loadTeam(c *gin.Context) *model.Team {
	team, err := h.teamRepo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve team"})
		return nil
	}
	if team == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return nil
	}
	return team
}

// requireLead verifies the actor holds the LEAD role in the team.
func (h *TeamHandler) requireLead(c *gin.Context, teamID, userID uuid.UUID) bool {
	membership, err := h.memberRepo.GetMembership(c.Request.Context(), teamID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check membership"})
		return false
	}
	if membership == nil || !membership.IsLead() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only team leads can do this"})
		return false
	}
	return true
}

func (h *TeamHandler) GetAll(c *gin.Context) {
	teams, err := h.teamRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve teams"})
		return
	}

	response := make([]TeamResponse, len(teams))
	for i := range teams {
		response[i] = teamResponse(&teams[i])
	}
	c.JSON(http.StatusOK, response)
}

func (h *TeamHandler) GetBySlug(c *gin.Context) {
	team, err := h.teamRepo.GetBySlugWithMembers(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve team"})
		return
	}
	if team == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	response := TeamDetailResponse{
		TeamResponse: teamResponse(team),
		Members:      make([]TeamMemberResponse, len(team.Members)),
	}
	for i, m := range team.Members {
		response.Members[i] = TeamMemberResponse{
			UserID: m.UserID.String(),
			Name:   m.User.Name,
			Email:  m.User.Email,
			Role:   m.Role,
		}
	}
	c.JSON(http.StatusOK, response)
}

// Join adds the caller to the team as a MEMBER.
func (h *TeamHandler) Join(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	team := h.loadTeam(c)
	if team == nil {
		return
	}

	existing, err := h.memberRepo.GetMembership(c.Request.Context(), team.ID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check membership"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Already a member of this team"})
		return
	}

	member := &model.TeamMember{
		TeamID: team.ID,
		UserID: userID,
		Role:   model.RoleMember,
	}
	if err := h.memberRepo.Create(c.Request.Context(), member); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join team"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TeamHandler) Leave(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	team := h.loadTeam(c)
	if team == nil {
		return
	}

	if err := h.memberRepo.Delete(c.Request.Context(), team.ID, userID); err != nil {
		if err == repository.ErrMemberNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not a member of this team"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave team"})
		return
	}

	c.Status(http.StatusNoContent)
}

// AddMember adds a user by email. Lead-only; the user must have signed in
// at least once.
func (h *TeamHandler) AddMember(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	team := h.loadTeam(c)
	if team == nil {
		return
	}

	if !h.requireLead(c, team.ID, userID) {
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.userRepo.FindByEmail(c.Request.Context(), strings.ToLower(req.Email))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found. They must sign in first."})
		return
	}

	existing, err := h.memberRepo.GetMembership(c.Request.Context(), team.ID, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check membership"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User is already a member of this team"})
		return
	}

	role := req.Role
	if role == "" {
		role = model.RoleMember
	}

	member := &model.TeamMember{
		TeamID: team.ID,
		UserID: user.ID,
		Role:   role,
	}
	if err := h.memberRepo.Create(c.Request.Context(), member); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member"})
		return
	}

	c.Status(http.StatusCreated)
}

// RemoveMember removes a member. Leads may remove anyone; anyone may
// remove themselves.
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	team := h.loadTeam(c)
	if team == nil {
		return
	}

	targetID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return
	}

	if targetID != userID {
		if !h.requireLead(c, team.ID, userID) {
			return
		}
	}

	if err := h.memberRepo.Delete(c.Request.Context(), team.ID, targetID); err != nil {
		if err == repository.ErrMemberNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove member"})
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateRole changes a member's role. Lead-only.
func (h *TeamHandler) UpdateRole(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	team := h.loadTeam(c)
	if team == nil {
		return
	}

	targetID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return
	}

	if !h.requireLead(c, team.ID, userID) {
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.memberRepo.UpdateRole(c.Request.Context(), team.ID, targetID, req.Role); err != nil {
		if err == repository.ErrMemberNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Seed creates the default team roster when no teams exist yet.
func (h *TeamHandler) Seed(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	created, err := seed.Teams(c.Request.Context(), h.teamRepo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed teams"})
		return
	}

	message := "Teams already exist"
	if created > 0 {
		message = "Teams created"
	}
	c.JSON(http.StatusOK, gin.H{"created": created, "message": message})
}
