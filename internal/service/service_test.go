package service

import (
	"testing"

	"teamvote/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, or every pooled conn would get its own :memory: db
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Team{}, &model.Member{}))
	return db
}

func seedTeam(t *testing.T, db *gorm.DB, name string) *model.Team {
	t.Helper()
	team := model.Team{Name: name}
	require.NoError(t, db.Create(&team).Error)
	return &team
}

func seedMember(t *testing.T, db *gorm.DB, username, token string) *model.Member {
	t.Helper()
	m := model.Member{Name: username, Username: username, Token: token}
	require.NoError(t, db.Create(&m).Error)
	return &m
}

func reloadMember(t *testing.T, db *gorm.DB, id uint) *model.Member {
	t.Helper()
	var m model.Member
	require.NoError(t, db.First(&m, id).Error)
	return &m
}
