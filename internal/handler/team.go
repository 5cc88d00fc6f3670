package handler

import (
	"net/http"

	"teamvote/internal/logger"
	"teamvote/internal/model"
	"teamvote/internal/service"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct{ svc *service.TeamService }

func NewTeamHandler(svc *service.TeamService) *TeamHandler { return &TeamHandler{svc: svc} }

// GET /v1/teams
func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GET /v1/teams/:team_id/users
func (h *TeamHandler) Members(c *gin.Context) {
	id, ok := pathID(c, "team_id")
	if !ok {
		return
	}
	roster, err := h.svc.Members(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, roster)
}

// POST /v1/teams (admin)
func (h *TeamHandler) Create(c *gin.Context) {
	var in model.TeamIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	team, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info("team created", "name", team.Name)
	c.JSON(http.StatusCreated, model.TeamIn{Name: team.Name, Avatar: team.Avatar})
}

// PATCH /v1/teams/:team_id (admin)
func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "team_id")
	if !ok {
		return
	}
	var patch model.TeamPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	team, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DELETE /v1/teams/:team_id (admin)
func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "team_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	logger.Warn("team deleted", "id", id)
	c.Status(http.StatusNoContent)
}
