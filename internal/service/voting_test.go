package service

import (
	"context"
	"net/http"
	"testing"

	"teamvote/internal/apperr"
	"teamvote/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteForOwnTeam(t *testing.T) {
	db := testDB(t)
	svc := NewVotingService(db)
	ctx := context.Background()
	alpha := seedTeam(t, db, "Alpha")

	m := seedMember(t, db, "john123", "tok-1")
	m.TeamID = &alpha.ID
	m.HasJoinedTeam = true
	require.NoError(t, db.Save(m).Error)

	err := svc.Vote(ctx, m, alpha.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.False(t, m.HasVoted)
}

func TestVoteOnce(t *testing.T) {
	db := testDB(t)
	svc := NewVotingService(db)
	ctx := context.Background()
	alpha := seedTeam(t, db, "Alpha")
	beta := seedTeam(t, db, "Beta")
	m := seedMember(t, db, "john123", "tok-1")

	require.NoError(t, svc.Vote(ctx, m, alpha.ID), "a teamless member may vote for any team")
	assert.True(t, m.HasVoted)
	require.NotNil(t, m.VoteID)
	assert.Equal(t, alpha.ID, *m.VoteID)

	err := svc.Vote(ctx, m, beta.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))

	err = svc.Vote(ctx, m, 99)
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
}

// Own-team check runs before the already-voted check, and against the
// member's current team, not their vote target.
func TestSelfVoteCheckedBeforeDoubleVote(t *testing.T) {
	db := testDB(t)
	svc := NewVotingService(db)
	ctx := context.Background()
	alpha := seedTeam(t, db, "Alpha")
	beta := seedTeam(t, db, "Beta")

	m := seedMember(t, db, "john123", "tok-1")
	m.TeamID = &alpha.ID
	m.HasJoinedTeam = true
	require.NoError(t, db.Save(m).Error)

	require.NoError(t, svc.Vote(ctx, m, beta.ID))

	err := svc.Vote(ctx, m, alpha.ID)
	require.Error(t, err)
	assert.EqualError(t, err, "You cannot vote for your own team.")
}

func TestRollbackThenVoteAgain(t *testing.T) {
	db := testDB(t)
	svc := NewVotingService(db)
	ctx := context.Background()
	alpha := seedTeam(t, db, "Alpha")
	beta := seedTeam(t, db, "Beta")
	m := seedMember(t, db, "john123", "tok-1")

	err := svc.Rollback(ctx, m)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err), "nothing to roll back")

	require.NoError(t, svc.Vote(ctx, m, alpha.ID))
	require.NoError(t, svc.Rollback(ctx, m))
	assert.False(t, m.HasVoted)
	assert.Nil(t, m.VoteID)

	// rollback then vote is the only path to change the vote target
	require.NoError(t, svc.Vote(ctx, m, beta.ID))
	m = reloadMember(t, db, m.ID)
	require.NotNil(t, m.VoteID)
	assert.Equal(t, beta.ID, *m.VoteID)
	assert.True(t, m.HasVoted)
}

func TestRollbackThenSameVoteIsIdempotent(t *testing.T) {
	db := testDB(t)
	svc := NewVotingService(db)
	ctx := context.Background()
	alpha := seedTeam(t, db, "Alpha")
	m := seedMember(t, db, "john123", "tok-1")

	require.NoError(t, svc.Vote(ctx, m, alpha.ID))
	before := *reloadMember(t, db, m.ID)

	require.NoError(t, svc.Rollback(ctx, m))
	require.NoError(t, svc.Vote(ctx, m, alpha.ID))

	after := *reloadMember(t, db, m.ID)
	assert.Equal(t, before, after)
}

func TestCountOmitsZeroVoteTeams(t *testing.T) {
	db := testDB(t)
	svc := NewVotingService(db)
	ctx := context.Background()
	alpha := seedTeam(t, db, "Alpha")
	beta := seedTeam(t, db, "Beta")
	seedTeam(t, db, "Gamma")

	for _, username := range []string{"a1", "a2", "a3"} {
		m := seedMember(t, db, username, "tok-"+username)
		m.VoteID = &alpha.ID
		m.HasVoted = true
		require.NoError(t, db.Save(m).Error)
	}
	b := seedMember(t, db, "b1", "tok-b1")
	b.VoteID = &beta.ID
	b.HasVoted = true
	require.NoError(t, db.Save(b).Error)

	tally, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.TeamVotes{
		{Name: "Alpha", Stats: model.VoteStats{Votes: 3}},
		{Name: "Beta", Stats: model.VoteStats{Votes: 1}},
	}, tally)
}

func TestCountWithNoVotes(t *testing.T) {
	db := testDB(t)
	svc := NewVotingService(db)
	seedTeam(t, db, "Alpha")

	tally, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tally)
	assert.NotNil(t, tally)
}
