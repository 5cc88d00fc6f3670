package handler

import (
	"net/http"

	"teamvote/internal/logger"
	"teamvote/internal/middleware"
	"teamvote/internal/model"
	"teamvote/internal/service"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct{ svc *service.MemberService }

func NewMemberHandler(svc *service.MemberService) *MemberHandler { return &MemberHandler{svc: svc} }

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookie, token, middleware.SessionCookieMaxAge, "/", "", false, true)
}

// GET /v1/token (admin)
func (h *MemberHandler) MintToken(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.IssueToken())
}

// POST /v1/register/:token
func (h *MemberHandler) Register(c *gin.Context) {
	token := c.Param("token")
	var in model.RegisterIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	m, err := h.svc.Register(c.Request.Context(), token, in)
	if err != nil {
		fail(c, err)
		return
	}
	setSessionCookie(c, m.Token)
	logger.Warn("new member registered", "username", m.Username)
	c.JSON(http.StatusCreated, model.RegisterOut{Name: m.Name, Username: m.Username})
}

// GET /v1/users/me
func (h *MemberHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.MemberFrom(c))
}

// PATCH /v1/users/me
func (h *MemberHandler) UpdateMe(c *gin.Context) {
	m := middleware.MemberFrom(c)
	var patch model.MemberPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.svc.UpdateSelf(c.Request.Context(), m, patch); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// DELETE /v1/users/me
func (h *MemberHandler) DeleteMe(c *gin.Context) {
	m := middleware.MemberFrom(c)
	if err := h.svc.Delete(c.Request.Context(), m.ID); err != nil {
		fail(c, err)
		return
	}
	logger.Warn("member deleted own account", "username", m.Username)
	c.Status(http.StatusNoContent)
}

// GET /v1/users/reset/:token
//
// Sets the session cookie to whatever token the caller supplies, without
// checking that it maps to a member. This is an admin support affordance for
// members who lost their cookie; a bogus token simply yields 401 on the next
// authenticated call.
func (h *MemberHandler) ResetCookie(c *gin.Context) {
	setSessionCookie(c, c.Param("token"))
	c.Status(http.StatusOK)
}

// POST /v1/users/join/:team_id
func (h *MemberHandler) Join(c *gin.Context) {
	id, ok := pathID(c, "team_id")
	if !ok {
		return
	}
	m := middleware.MemberFrom(c)
	team, err := h.svc.Join(c.Request.Context(), m, id)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Warn("member joined team", "username", m.Username, "team", team.Name)
	c.Status(http.StatusOK)
}

// POST /v1/users/leave/
func (h *MemberHandler) Leave(c *gin.Context) {
	m := middleware.MemberFrom(c)
	if err := h.svc.Leave(c.Request.Context(), m); err != nil {
		fail(c, err)
		return
	}
	logger.Warn("member left team", "username", m.Username)
	c.Status(http.StatusOK)
}
