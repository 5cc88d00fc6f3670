package model

// Patch types use pointer fields so a PATCH only touches what the caller
// actually sent; a nil field leaves the stored value alone.

type TeamIn struct {
	Name   string  `json:"name" binding:"required,max=32"`
	Avatar *string `json:"avatar"`
}

type TeamPatch struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=32"`
	Avatar *string `json:"avatar"`
}

type TeamMemberName struct {
	Name string `json:"name"`
}

// TeamMembers is the public roster view: member names only, no vote or
// identity data.
type TeamMembers struct {
	Name    string           `json:"name"`
	Avatar  *string          `json:"avatar"`
	Members []TeamMemberName `json:"members"`
}

type RegisterIn struct {
	Name     string `json:"name" binding:"omitempty,min=1,max=20"`
	Username string `json:"username" binding:"required,min=1,max=30"`
}

type RegisterOut struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

type MemberInAdmin struct {
	Name          string `json:"name" binding:"omitempty,min=1,max=20"`
	Username      string `json:"username" binding:"required,min=1,max=30"`
	Token         string `json:"token" binding:"required"`
	HasJoinedTeam bool   `json:"has_joined_team"`
	TeamID        *uint  `json:"team_id"`
}

type MemberPatch struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=20"`
}

type MemberPatchAdmin struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=20"`
	Username *string `json:"username" binding:"omitempty,min=1,max=30"`
	Token    *string `json:"token"`
}

type VoteStats struct {
	Votes int64 `json:"votes"`
}

type TeamVotes struct {
	Name  string    `json:"name"`
	Stats VoteStats `json:"stats"`
}
