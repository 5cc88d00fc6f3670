package service

import (
	"context"
	"errors"
	"fmt"

	"teamvote/internal/apperr"
	"teamvote/internal/model"

	"gorm.io/gorm"
)

type TeamService struct{ db *gorm.DB }

func NewTeamService(db *gorm.DB) *TeamService { return &TeamService{db: db} }

// List returns every team ordered by name. Zero teams is reported as not
// found rather than an empty list.
func (s *TeamService) List(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	if err := s.db.WithContext(ctx).Order("name").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	if len(teams) == 0 {
		return nil, apperr.NotFound("No teams found")
	}
	return teams, nil
}

func (s *TeamService) Get(ctx context.Context, id uint) (*model.Team, error) {
	var t model.Team
	err := s.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Team not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load team: %w", err)
	}
	return &t, nil
}

// Members returns the roster of a team: member names only. A team with no
// members is reported as not found, same convention as List.
func (s *TeamService) Members(ctx context.Context, id uint) (*model.TeamMembers, error) {
	team, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var members []model.Member
	if err := s.db.WithContext(ctx).Where("team_id = ?", team.ID).Find(&members).Error; err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	if len(members) == 0 {
		return nil, apperr.NotFound("Empty team")
	}
	out := &model.TeamMembers{Name: team.Name, Avatar: team.Avatar}
	for _, m := range members {
		out.Members = append(out.Members, model.TeamMemberName{Name: m.Name})
	}
	return out, nil
}

func (s *TeamService) Create(ctx context.Context, in model.TeamIn) (*model.Team, error) {
	if err := s.checkNameFree(ctx, in.Name); err != nil {
		return nil, err
	}
	t := model.Team{Name: in.Name, Avatar: in.Avatar}
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Team already exists")
		}
		return nil, fmt.Errorf("insert team: %w", err)
	}
	return &t, nil
}

// Update applies only the supplied fields. A supplied name is checked for
// uniqueness against every team including the target itself, so renaming a
// team to its current name conflicts. That matches the documented behavior
// of this API and is kept deliberately.
func (s *TeamService) Update(ctx context.Context, id uint, patch model.TeamPatch) (*model.Team, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		if err := s.checkNameFree(ctx, *patch.Name); err != nil {
			return nil, err
		}
		t.Name = *patch.Name
	}
	if patch.Avatar != nil {
		t.Avatar = patch.Avatar
	}
	if err := s.db.WithContext(ctx).Save(t).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Team already exists")
		}
		return nil, fmt.Errorf("update team: %w", err)
	}
	return t, nil
}

// Delete removes the team and, in the same transaction, clears membership
// and vote references on every member pointing at it, flags included, so
// has_joined_team and has_voted stay consistent with their foreign keys.
func (s *TeamService) Delete(ctx context.Context, id uint) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Member{}).Where("team_id = ?", t.ID).
			Updates(map[string]any{"team_id": nil, "has_joined_team": false}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Member{}).Where("vote_id = ?", t.ID).
			Updates(map[string]any{"vote_id": nil, "has_voted": false}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Team{}, t.ID).Error
	})
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}

func (s *TeamService) checkNameFree(ctx context.Context, name string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Team{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return fmt.Errorf("check team name: %w", err)
	}
	if count > 0 {
		return apperr.Conflict("Team already exists")
	}
	return nil
}
