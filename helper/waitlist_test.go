package helper

import (
	"fmt"
	"testing"

	"waitify/constants"
	"waitify/database"
	"waitify/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	database.Migrate(db)
	return db
}

func newTestWaitlist(t *testing.T, db *gorm.DB, maxCapacity int) *model.Waitlist {
	t.Helper()
	business := model.Business{Name: "Test Diner", Slug: "test-diner", Type: model.BUSINESS_RESTAURANT, Plan: "free", IsActive: true}
	require.NoError(t, db.Create(&business).Error)

	waitlist := model.Waitlist{
		BusinessId:        business.ID,
		Name:              "Walk-ins",
		MaxCapacity:       maxCapacity,
		IsActive:          true,
		AvgServiceMinutes: 10,
	}
	require.NoError(t, db.Create(&waitlist).Error)
	return &waitlist
}

func joinGuest(t *testing.T, db *gorm.DB, waitlistId uint, name string) *model.WaitlistEntry {
	t.Helper()
	entry := model.WaitlistEntry{GuestName: &name}
	require.NoError(t, JoinWaitlist(db, waitlistId, &entry))
	return &entry
}

func TestJoinAssignsSequentialPositions(t *testing.T) {
	db := newTestDB(t)
	waitlist := newTestWaitlist(t, db, 0)

	first := joinGuest(t, db, waitlist.ID, "Ada")
	second := joinGuest(t, db, waitlist.ID, "Grace")
	third := joinGuest(t, db, waitlist.ID, "Edsger")

	assert.Equal(t, 1, first.Position)
	assert.Equal(t, 2, second.Position)
	assert.Equal(t, 3, third.Position)
	assert.Equal(t, constants.ENTRY_WAITING, first.Status)

	// Estimate grows with the people already waiting.
	assert.Equal(t, 0, first.EstimatedWaitTime)
	assert.Equal(t, 10, second.EstimatedWaitTime)
	assert.Equal(t, 20, third.EstimatedWaitTime)
}

func TestRemovalLeavesGapAndNeverReusesPositions(t *testing.T) {
	db := newTestDB(t)
	waitlist := newTestWaitlist(t, db, 0)

	var entries []*model.WaitlistEntry
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		entries = append(entries, joinGuest(t, db, waitlist.ID, name))
	}
	require.Equal(t, 5, entries[4].Position)

	// Drop position 3: everyone else keeps their number.
	require.NoError(t, db.Delete(entries[2]).Error)

	var remaining []model.WaitlistEntry
	require.NoError(t, db.Where("waitlist_id = ?", waitlist.ID).Order("position ASC").Find(&remaining).Error)
	positions := []int{}
	for _, e := range remaining {
		positions = append(positions, e.Position)
	}
	assert.Equal(t, []int{1, 2, 4, 5}, positions)

	// The counter keeps climbing past the gap.
	next := joinGuest(t, db, waitlist.ID, "f")
	assert.Equal(t, 6, next.Position)

	// Even removing the max position does not roll it back.
	require.NoError(t, db.Delete(next).Error)
	after := joinGuest(t, db, waitlist.ID, "g")
	assert.Equal(t, 7, after.Position)
}

func TestJoinInactiveWaitlistRejected(t *testing.T) {
	db := newTestDB(t)
	waitlist := newTestWaitlist(t, db, 0)
	require.NoError(t, db.Model(waitlist).Update("is_active", false).Error)

	name := "Ada"
	err := JoinWaitlist(db, waitlist.ID, &model.WaitlistEntry{GuestName: &name})
	assert.ErrorIs(t, err, ErrWaitlistInactive)

	var count int64
	db.Model(&model.WaitlistEntry{}).Where("waitlist_id = ?", waitlist.ID).Count(&count)
	assert.Zero(t, count)
}

func TestJoinFullWaitlistRejected(t *testing.T) {
	db := newTestDB(t)
	waitlist := newTestWaitlist(t, db, 2)

	joinGuest(t, db, waitlist.ID, "Ada")
	joinGuest(t, db, waitlist.ID, "Grace")

	name := "Edsger"
	err := JoinWaitlist(db, waitlist.ID, &model.WaitlistEntry{GuestName: &name})
	assert.ErrorIs(t, err, ErrWaitlistFull)

	// The rejected join rolls back wholesale: no entry row, and the counter
	// bump it took while holding the row lock is reverted too.
	var count int64
	db.Model(&model.WaitlistEntry{}).Where("waitlist_id = ?", waitlist.ID).Count(&count)
	assert.EqualValues(t, 2, count)
	require.NoError(t, db.First(waitlist, waitlist.ID).Error)
	assert.Equal(t, 2, waitlist.LastPosition)

	// Seated entries stop counting against capacity.
	require.NoError(t, db.Model(&model.WaitlistEntry{}).
		Where("waitlist_id = ? AND position = ?", waitlist.ID, 1).
		Update("status", constants.ENTRY_SEATED).Error)

	third := joinGuest(t, db, waitlist.ID, "Edsger")
	assert.Equal(t, 3, third.Position)
}

func TestBuildQueueSnapshot(t *testing.T) {
	db := newTestDB(t)
	waitlist := newTestWaitlist(t, db, 0)

	joinGuest(t, db, waitlist.ID, "Ada")
	second := joinGuest(t, db, waitlist.ID, "Grace")
	third := joinGuest(t, db, waitlist.ID, "Edsger")

	require.NoError(t, db.Model(second).Update("status", constants.ENTRY_NOTIFIED).Error)
	require.NoError(t, db.Model(third).Update("status", constants.ENTRY_CANCELLED).Error)

	snapshot, err := BuildQueueSnapshot(db, waitlist.ID)
	require.NoError(t, err)

	assert.Equal(t, waitlist.ID, snapshot.WaitlistId)
	assert.Equal(t, 1, snapshot.Waiting)
	// Cancelled entries drop out of the live view, notified ones stay.
	require.Len(t, snapshot.Entries, 2)
	assert.Equal(t, "Ada", snapshot.Entries[0].Name)
	assert.Equal(t, constants.ENTRY_NOTIFIED, snapshot.Entries[1].Status)
}
