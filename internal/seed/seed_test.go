package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/roost-dev/roost/internal/auth"
	"github.com/roost-dev/roost/internal/models"
)

const seedYAML = `
users:
  - name: Carol Agent
    email: carol@example.com
    password: password123
    role: AGENT
  - name: Bob Buyer
    email: bob@example.com
    password: password123
properties:
  - title: Lake View Cottage
    description: Quiet waterfront home
    address: 1 Shore Rd
    price: 350000
    type: SALE
    bedrooms: 3
    bathrooms: 2
    area_sq_ft: 1800
    agent_email: carol@example.com
  - title: Orphan Listing
    address: 5 Nowhere St
    price: 1
    type: SALE
    agent_email: ghost@example.com
`

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRunSeedsEmptyDatabase(t *testing.T) {
	db := testDB(t)
	require.NoError(t, Run(db, writeSeedFile(t, seedYAML), zerolog.Nop()))

	var users []models.User
	require.NoError(t, db.Order("email").Find(&users).Error)
	require.Len(t, users, 2)
	assert.Equal(t, models.RoleUser, users[0].Role)
	assert.Equal(t, models.RoleAgent, users[1].Role)
	assert.NoError(t, auth.VerifyPassword("password123", users[1].PasswordHash))

	// The listing with an unknown agent email is skipped, not fatal
	var properties []models.Property
	require.NoError(t, db.Find(&properties).Error)
	require.Len(t, properties, 1)
	assert.Equal(t, "Lake View Cottage", properties[0].Title)
	assert.Equal(t, users[1].ID, properties[0].AgentID)
	assert.Equal(t, models.StatusAvailable, properties[0].Status)
}

func TestRunSkipsPopulatedDatabase(t *testing.T) {
	db := testDB(t)
	existing := &models.User{Email: "first@example.com", Name: "First", PasswordHash: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(existing).Error)

	require.NoError(t, Run(db, writeSeedFile(t, seedYAML), zerolog.Nop()))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRunMissingFile(t *testing.T) {
	db := testDB(t)
	err := Run(db, filepath.Join(t.TempDir(), "missing.yaml"), zerolog.Nop())
	assert.Error(t, err)
}
