package handler

import (
	"net/http"

	"teamvote/internal/logger"
	"teamvote/internal/model"
	"teamvote/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the member table to administrators. These views carry
// vote targets, so they stay behind the API key.
type AdminHandler struct{ svc *service.MemberService }

func NewAdminHandler(svc *service.MemberService) *AdminHandler { return &AdminHandler{svc: svc} }

// GET /v1/admin/members
func (h *AdminHandler) List(c *gin.Context) {
	members, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// GET /v1/admin/member/:member_id
func (h *AdminHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "member_id")
	if !ok {
		return
	}
	m, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// POST /v1/admin/member
func (h *AdminHandler) Create(c *gin.Context) {
	var in model.MemberInAdmin
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	m, err := h.svc.AdminCreate(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Warn("administrator created member", "username", m.Username)
	c.JSON(http.StatusCreated, m)
}

// PATCH /v1/admin/member/:member_id
func (h *AdminHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "member_id")
	if !ok {
		return
	}
	var patch model.MemberPatchAdmin
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	m, err := h.svc.AdminUpdate(c.Request.Context(), id, patch)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Warn("administrator updated member", "username", m.Username)
	c.JSON(http.StatusOK, m)
}

// DELETE /v1/admin/member/:member_id
func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "member_id")
	if !ok {
		return
	}
	m, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), m.ID); err != nil {
		fail(c, err)
		return
	}
	logger.Warn("administrator deleted member", "username", m.Username)
	c.Status(http.StatusNoContent)
}
