package service

import (
	"context"
	"errors"
	"fmt"

	"teamvote/internal/apperr"
	"teamvote/internal/model"

	"gorm.io/gorm"
)

type VotingService struct{ db *gorm.DB }

func NewVotingService(db *gorm.DB) *VotingService { return &VotingService{db: db} }

// Vote records the member's single vote. The own-team check compares the
// member's current team_id against the requested team, independent of any
// earlier vote, and runs before the already-voted check.
func (s *VotingService) Vote(ctx context.Context, m *model.Member, teamID uint) error {
	var team model.Team
	err := s.db.WithContext(ctx).First(&team, teamID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Team not found")
	}
	if err != nil {
		return fmt.Errorf("load team: %w", err)
	}
	if m.TeamID != nil && *m.TeamID == team.ID {
		return apperr.Invalid("You cannot vote for your own team.")
	}
	if m.HasVoted {
		return apperr.Invalid("You have already voted")
	}
	m.VoteID = &team.ID
	m.HasVoted = true
	if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("record vote: %w", err)
	}
	return nil
}

// Rollback withdraws the member's vote, after which they may vote again for
// any eligible team.
func (s *VotingService) Rollback(ctx context.Context, m *model.Member) error {
	if !m.HasVoted {
		return apperr.Invalid("You have not voted")
	}
	m.VoteID = nil
	m.HasVoted = false
	if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("rollback vote: %w", err)
	}
	return nil
}

// Count tallies votes per team, ordered by team name. Teams nobody voted
// for are absent from the result, not zero-filled.
func (s *VotingService) Count(ctx context.Context) ([]model.TeamVotes, error) {
	var rows []struct {
		Name  string
		Votes int64
	}
	err := s.db.WithContext(ctx).Model(&model.Member{}).
		Select("teams.name AS name, COUNT(members.id) AS votes").
		Joins("INNER JOIN teams ON teams.id = members.vote_id").
		Group("teams.name").
		Order("teams.name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count votes: %w", err)
	}
	out := make([]model.TeamVotes, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.TeamVotes{Name: r.Name, Stats: model.VoteStats{Votes: r.Votes}})
	}
	return out, nil
}
