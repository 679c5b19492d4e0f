// Package dbtest opens in-memory SQLite databases carrying the service schema.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	accessModel "github.com/staffhub/staffhub/internal/access/model"
	auditModel "github.com/staffhub/staffhub/internal/audit/model"
	"github.com/staffhub/staffhub/internal/database/database"
	membershipModel "github.com/staffhub/staffhub/internal/membership/model"
	teamModel "github.com/staffhub/staffhub/internal/team/model"
)

// pendingIndex mirrors uq_team_access_requests_pending from the migrations.
const pendingIndex = `CREATE UNIQUE INDEX IF NOT EXISTS uq_team_access_requests_pending
	ON team_access_requests (user_id, team_id) WHERE status = 'pending'`

// New returns a migrated in-memory database. A single connection is used so
// every query sees the same database and transactions are serialized.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&teamModel.Team{},
		&teamModel.Settings{},
		&membershipModel.Membership{},
		&accessModel.AccessRequest{},
		&auditModel.Event{},
	))
	require.NoError(t, db.Exec(pendingIndex).Error)

	return db
}

// SeedTeam inserts an active team created by owner together with its settings
// and the owner's admin membership.
func SeedTeam(t testing.TB, db *gorm.DB, name, owner string, discoverable bool) *teamModel.Team {
	t.Helper()

	team := &teamModel.Team{
		Name:           name,
		IsDiscoverable: discoverable,
		CreatedBy:      owner,
	}
	require.NoError(t, db.Create(team).Error)
	require.NoError(t, db.Create(&teamModel.Settings{
		TeamID:      team.ID,
		DefaultRole: string(membershipModel.RoleUser),
		Timezone:    teamModel.DefaultTimezone,
	}).Error)
	SeedMember(t, db, owner, team.ID, membershipModel.RoleAdmin)

	return team
}

// SeedMember inserts a membership.
func SeedMember(t testing.TB, db *gorm.DB, userID, teamID string, role membershipModel.Role) {
	t.Helper()
	require.NoError(t, db.Create(&membershipModel.Membership{
		UserID: userID,
		TeamID: teamID,
		Role:   role,
	}).Error)
}

// SeedRequest inserts an access request with the given status.
func SeedRequest(t testing.TB, db *gorm.DB, userID, teamID string, status accessModel.Status) *accessModel.AccessRequest {
	t.Helper()
	req := &accessModel.AccessRequest{
		UserID: userID,
		TeamID: teamID,
		Status: status,
	}
	require.NoError(t, db.Create(req).Error)
	return req
}
