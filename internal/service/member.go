package service

import (
	"context"
	"errors"
	"fmt"

	"teamvote/internal/apperr"
	"teamvote/internal/model"

	"gorm.io/gorm"
)

type MemberService struct {
	db     *gorm.DB
	tokens *TokenRegistry
}

func NewMemberService(db *gorm.DB, tokens *TokenRegistry) *MemberService {
	return &MemberService{db: db, tokens: tokens}
}

// IssueToken mints a one-time registration token.
func (s *MemberService) IssueToken() string { return s.tokens.Issue() }

// Register exchanges a registration token for a new member. The token is
// consumed exactly once and becomes the member's session credential; when
// the insert fails the token is restored so it stays usable.
func (s *MemberService) Register(ctx context.Context, token string, in model.RegisterIn) (*model.Member, error) {
	if !s.tokens.Consume(token) {
		return nil, apperr.Unauthenticated("Invalid token")
	}
	if err := s.checkUsernameFree(ctx, in.Username); err != nil {
		s.tokens.Restore(token)
		return nil, err
	}
	m := model.Member{Name: in.Name, Username: in.Username, Token: token}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		s.tokens.Restore(token)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("A member with that username already exists")
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}
	return &m, nil
}

// AdminCreate inserts a member directly, bypassing the token registry. The
// caller supplies the session token and may pre-assign a team.
func (s *MemberService) AdminCreate(ctx context.Context, in model.MemberInAdmin) (*model.Member, error) {
	if in.HasJoinedTeam && in.TeamID == nil {
		return nil, apperr.Logical("Logical error. A member has joined team, but no relationship found")
	}
	if err := s.checkUsernameFree(ctx, in.Username); err != nil {
		return nil, err
	}
	m := model.Member{
		Name:          in.Name,
		Username:      in.Username,
		Token:         in.Token,
		HasJoinedTeam: in.HasJoinedTeam,
		TeamID:        in.TeamID,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("A member with that username or token already exists")
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}
	return &m, nil
}

func (s *MemberService) List(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	if err := s.db.WithContext(ctx).Find(&members).Error; err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	if len(members) == 0 {
		return nil, apperr.NotFound("No members found")
	}
	return members, nil
}

func (s *MemberService) Get(ctx context.Context, id uint) (*model.Member, error) {
	var m model.Member
	err := s.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Member not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load member: %w", err)
	}
	return &m, nil
}

// UpdateSelf applies the member-facing patch, which only covers the display
// name.
func (s *MemberService) UpdateSelf(ctx context.Context, m *model.Member, patch model.MemberPatch) error {
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("update member: %w", err)
	}
	return nil
}

// AdminUpdate applies any subset of name, username and token. There is no
// application-level uniqueness pre-check on this path; the unique indexes
// still reject duplicates and surface as conflicts.
func (s *MemberService) AdminUpdate(ctx context.Context, id uint, patch model.MemberPatchAdmin) (*model.Member, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Username != nil {
		m.Username = *patch.Username
	}
	if patch.Token != nil {
		m.Token = *patch.Token
	}
	if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("A member with that username or token already exists")
		}
		return nil, fmt.Errorf("update member: %w", err)
	}
	return m, nil
}

func (s *MemberService) Delete(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&model.Member{}, id).Error; err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}

// Join puts the member on a team. A member already on a team must leave
// first; there is no direct team switch.
func (s *MemberService) Join(ctx context.Context, m *model.Member, teamID uint) (*model.Team, error) {
	var team model.Team
	err := s.db.WithContext(ctx).First(&team, teamID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Team not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load team: %w", err)
	}
	if m.HasJoinedTeam {
		return nil, apperr.Forbidden("You cannot join a team twice")
	}
	m.TeamID = &team.ID
	m.HasJoinedTeam = true
	if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, fmt.Errorf("join team: %w", err)
	}
	return &team, nil
}

// Leave clears team membership. Vote state is untouched: a member keeps
// their vote across membership changes.
func (s *MemberService) Leave(ctx context.Context, m *model.Member) error {
	if !m.HasJoinedTeam {
		return apperr.Forbidden("You have not joined a team yet")
	}
	m.TeamID = nil
	m.HasJoinedTeam = false
	if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("leave team: %w", err)
	}
	return nil
}

func (s *MemberService) checkUsernameFree(ctx context.Context, username string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Member{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if count > 0 {
		return apperr.Conflict("A member with that username already exists")
	}
	return nil
}
