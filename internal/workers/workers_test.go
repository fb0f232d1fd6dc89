package workers

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/roost-dev/roost/internal/models"
	"github.com/roost-dev/roost/internal/tasks"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func TestExpireStaleListings(t *testing.T) {
	db := testDB(t)

	stale := &models.Property{
		Title: "Old Farmhouse", Address: "2 Field Ln", Price: 100000,
		Type: models.TypeSale, Status: models.StatusAvailable,
	}
	require.NoError(t, db.Create(stale).Error)
	require.NoError(t, db.Model(stale).
		Update("created_at", time.Now().AddDate(0, 0, -120)).Error)

	fresh := &models.Property{
		Title: "New Build", Address: "3 Hill Rd", Price: 200000,
		Type: models.TypeSale, Status: models.StatusAvailable,
	}
	require.NoError(t, db.Create(fresh).Error)

	sold := &models.Property{
		Title: "Sold Villa", Address: "4 Bay Ave", Price: 500000,
		Type: models.TypeSale, Status: models.StatusSold,
	}
	require.NoError(t, db.Create(sold).Error)
	require.NoError(t, db.Model(sold).
		Update("created_at", time.Now().AddDate(0, 0, -120)).Error)

	expireStaleListings(db, 90, zerolog.Nop())

	// A populated destination struct would feed its primary key back into
	// the next query as a condition, so each lookup gets its own
	var gotStale, gotFresh, gotSold models.Property
	require.NoError(t, db.First(&gotStale, "id = ?", stale.ID).Error)
	assert.Equal(t, models.StatusExpired, gotStale.Status)

	require.NoError(t, db.First(&gotFresh, "id = ?", fresh.ID).Error)
	assert.Equal(t, models.StatusAvailable, gotFresh.Status)

	// Only AVAILABLE listings are swept; sold ones keep their status
	require.NoError(t, db.First(&gotSold, "id = ?", sold.ID).Error)
	assert.Equal(t, models.StatusSold, gotSold.Status)
}

func TestParseScheduleInvalid(t *testing.T) {
	assert.Nil(t, parseSchedule("", zerolog.Nop()))
	assert.Nil(t, parseSchedule("not a cron expr", zerolog.Nop()))
	assert.NotNil(t, parseSchedule("0 3 * * *", zerolog.Nop()))
}

func TestHandleInquiryNotify(t *testing.T) {
	db := testDB(t)

	agent := &models.User{Email: "carol@example.com", Name: "Carol", Role: models.RoleAgent, PasswordHash: "x"}
	require.NoError(t, db.Create(agent).Error)
	buyer := &models.User{Email: "bob@example.com", Name: "Bob", Role: models.RoleUser, PasswordHash: "x"}
	require.NoError(t, db.Create(buyer).Error)

	property := &models.Property{
		Title: "Lake View Cottage", Address: "1 Shore Rd", Price: 350000,
		Type: models.TypeSale, Status: models.StatusAvailable, AgentID: agent.ID,
	}
	require.NoError(t, db.Create(property).Error)

	inquiry := &models.Inquiry{
		PropertyID: property.ID, UserID: buyer.ID, Message: "Is this still available?",
	}
	require.NoError(t, db.Create(inquiry).Error)

	task, err := tasks.NewInquiryNotifyTask(inquiry.ID)
	require.NoError(t, err)
	require.NoError(t, HandleInquiryNotify(context.Background(), task, db, zerolog.Nop()))

	var notification models.Notification
	require.NoError(t, db.First(&notification, "agent_id = ?", agent.ID).Error)
	assert.Equal(t, inquiry.ID, notification.InquiryID)
	assert.Contains(t, notification.Message, "Bob")
	assert.Contains(t, notification.Message, "Lake View Cottage")
}

func TestHandleInquiryNotifyUnknownInquiry(t *testing.T) {
	db := testDB(t)

	task, err := tasks.NewInquiryNotifyTask("no-such-inquiry")
	require.NoError(t, err)
	assert.Error(t, HandleInquiryNotify(context.Background(), task, db, zerolog.Nop()))
}
