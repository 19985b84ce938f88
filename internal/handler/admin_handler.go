package handler

import (
	"net/http"

	"teamboard/internal/config"
	"teamboard/internal/repository"
	"teamboard/internal/templates"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cfg      *config.Config
	userRepo *repository.UserRepository
	teamRepo *repository.TeamRepository
	cardRepo *repository.CardRepository
}

func NewAdminHandler(cfg *config.Config, userRepo *repository.UserRepository, teamRepo *repository.TeamRepository, cardRepo *repository.CardRepository) *AdminHandler {
	return &AdminHandler{
		cfg:      cfg,
		userRepo: userRepo,
		teamRepo: teamRepo,
		cardRepo: cardRepo,
	}
}

// requireAdmin checks the caller's email against the admin allowlist.
func (h *AdminHandler) requireAdmin(c *gin.Context) bool {
	userID, ok := currentUserID(c)
	if !ok {
		return false
	}

	user, err := h.userRepo.GetByID(c.Request.Context(), userID)
	if err != nil || user == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return false
	}

	if !h.cfg.IsAdmin(user.Email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return false
	}
	return true
}

// Stats returns org-wide counts for the admin dashboard.
func (h *AdminHandler) Stats(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	users, err := h.userRepo.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
		return
	}
	teams, err := h.teamRepo.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count teams"})
		return
	}
	cards, err := h.cardRepo.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count cards"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"teams": teams,
		"cards": cards,
	})
}

// TemplateHandler serves the static card scaffold catalog.
type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

func (h *TemplateHandler) GetAll(c *gin.Context) {
	c.JSON(http.StatusOK, templates.All())
}

func (h *TemplateHandler) GetOnboarding(c *gin.Context) {
	c.JSON(http.StatusOK, templates.Onboarding())
}
