package handler

import (
	"net/http"

	"teamvote/internal/middleware"
	"teamvote/internal/service"

	"github.com/gin-gonic/gin"
)

type VotingHandler struct{ svc *service.VotingService }

func NewVotingHandler(svc *service.VotingService) *VotingHandler { return &VotingHandler{svc: svc} }

// POST /v1/voting/:team_id
func (h *VotingHandler) Vote(c *gin.Context) {
	id, ok := pathID(c, "team_id")
	if !ok {
		return
	}
	if err := h.svc.Vote(c.Request.Context(), middleware.MemberFrom(c), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// POST /v1/voting/rollback/
func (h *VotingHandler) Rollback(c *gin.Context) {
	if err := h.svc.Rollback(c.Request.Context(), middleware.MemberFrom(c)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /v1/voting/count
func (h *VotingHandler) Count(c *gin.Context) {
	tally, err := h.svc.Count(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tally)
}
