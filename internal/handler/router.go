package handler

import (
	"teamvote/internal/middleware"
	"teamvote/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires the /v1 API surface. db is needed directly for session
// resolution; everything else goes through the services.
func NewRouter(apiKey string, db *gorm.DB, teams *service.TeamService, members *service.MemberService, voting *service.VotingService) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.APIKeyHeader},
		AllowCredentials: true,
	}))

	teamH := NewTeamHandler(teams)
	memberH := NewMemberHandler(members)
	adminH := NewAdminHandler(members)
	votingH := NewVotingHandler(voting)

	v1 := r.Group("/v1")

	// public
	v1.GET("/teams", teamH.List)
	v1.GET("/teams/:team_id/users", teamH.Members)
	v1.POST("/register/:token", memberH.Register)
	v1.GET("/users/reset/:token", memberH.ResetCookie)
	v1.GET("/voting/count", votingH.Count)

	// admin API key
	admin := v1.Group("", middleware.APIKeyAuth(apiKey))
	admin.POST("/teams", teamH.Create)
	admin.PATCH("/teams/:team_id", teamH.Update)
	admin.DELETE("/teams/:team_id", teamH.Delete)
	admin.GET("/token", memberH.MintToken)
	admin.GET("/admin/members", adminH.List)
	admin.POST("/admin/member", adminH.Create)
	admin.GET("/admin/member/:member_id", adminH.Get)
	admin.PATCH("/admin/member/:member_id", adminH.Update)
	admin.DELETE("/admin/member/:member_id", adminH.Delete)

	// member session cookie
	session := v1.Group("", middleware.SessionAuth(db))
	session.GET("/users/me", memberH.Me)
	session.PATCH("/users/me", memberH.UpdateMe)
	session.DELETE("/users/me", memberH.DeleteMe)
	session.POST("/users/join/:team_id", memberH.Join)
	session.POST("/users/leave/", memberH.Leave)
	session.POST("/voting/:team_id", votingH.Vote)
	session.POST("/voting/rollback/", votingH.Rollback)

	return r
}
