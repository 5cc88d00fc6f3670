package model

// Team and Member carry two independent one-to-many relations: membership
// (Member.TeamID) and vote target (Member.VoteID). Both are plain nullable
// foreign keys navigated by query, never by in-memory back-pointers.

type Team struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Name   string  `gorm:"size:32;uniqueIndex" json:"name"`
	Avatar *string `json:"avatar"`

	Members []Member `gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL" json:"-"`
	Voters  []Member `gorm:"foreignKey:VoteID;constraint:OnDelete:SET NULL" json:"-"`
}

type Member struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"size:20" json:"name"`
	Username      string `gorm:"size:30;uniqueIndex" json:"username"`
	Token         string `gorm:"size:64;uniqueIndex" json:"-"`
	HasJoinedTeam bool   `json:"has_joined_team"`
	HasVoted      bool   `json:"has_voted"`
	TeamID        *uint  `json:"team_id"`
	VoteID        *uint  `json:"vote_id"`
}

func (Team) TableName() string   { return "teams" }
func (Member) TableName() string { return "members" }
