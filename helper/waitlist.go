package helper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"waitify/constants"
	"waitify/database"
	"waitify/model"

	"gorm.io/gorm"
)

var (
	ErrWaitlistInactive = errors.New("waitlist is not accepting entries")
	ErrWaitlistFull     = errors.New("waitlist is full")
)

// JoinWaitlist inserts a new entry with the next position. The position comes
// from a single atomic increment of the waitlist counter, so two concurrent
// joins can never observe the same value. The increment runs before the
// capacity check: it takes the waitlist's row lock, so a concurrent join has
// already committed (or rolled back) by the time the waiting entries are
// counted, and the queue cannot over-admit past max_capacity. A rejected join
// rolls the whole transaction back, counter bump included. The committed
// counter never goes down: removing an entry leaves a gap rather than
// renumbering the queue.
func JoinWaitlist(db *gorm.DB, waitlistId uint, entry *model.WaitlistEntry) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var waitlist model.Waitlist
		if err := tx.First(&waitlist, waitlistId).Error; err != nil {
			return err
		}
		if !waitlist.IsActive {
			return ErrWaitlistInactive
		}

		var position int
		if err := tx.Raw(
			"UPDATE waitlists SET last_position = last_position + 1 WHERE id = ? RETURNING last_position",
			waitlistId,
		).Scan(&position).Error; err != nil {
			return err
		}

		var waiting int64
		if err := tx.Model(&model.WaitlistEntry{}).
			Where("waitlist_id = ? AND status = ?", waitlistId, constants.ENTRY_WAITING).
			Count(&waiting).Error; err != nil {
			return err
		}
		if waitlist.MaxCapacity > 0 && waiting >= int64(waitlist.MaxCapacity) {
			return ErrWaitlistFull
		}

		entry.WaitlistId = waitlistId
		entry.Position = position
		entry.Status = constants.ENTRY_WAITING
		if entry.PartySize < 1 {
			entry.PartySize = 1
		}
		entry.EstimatedWaitTime = int(waiting) * waitlist.AvgServiceMinutes

		return tx.Create(entry).Error
	})
}

// BuildQueueSnapshot assembles the live view sent to websocket clients.
func BuildQueueSnapshot(db *gorm.DB, waitlistId uint) (*model.QueueSnapshot, error) {
	var entries model.WaitlistEntries
	if err := db.
		Where("waitlist_id = ? AND status IN ?", waitlistId,
			[]string{constants.ENTRY_WAITING, constants.ENTRY_NOTIFIED}).
		Order("position ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	snapshot := &model.QueueSnapshot{
		WaitlistId: waitlistId,
		Entries:    make([]model.QueueEntry, 0, len(entries)),
		UpdatedAt:  time.Now(),
	}
	for _, e := range entries {
		if e.Status == constants.ENTRY_WAITING {
			snapshot.Waiting++
		}
		name := "Guest"
		if e.GuestName != nil {
			name = *e.GuestName
		}
		snapshot.Entries = append(snapshot.Entries, model.QueueEntry{
			Id:                e.ID,
			Position:          e.Position,
			Status:            e.Status,
			Name:              name,
			PartySize:         e.PartySize,
			EstimatedWaitTime: e.EstimatedWaitTime,
			JoinedAt:          e.CreatedAt.Format(time.RFC3339),
			Notes:             e.Notes,
		})
	}
	return snapshot, nil
}

// PublishQueue pushes the current snapshot to the waitlist's redis channel.
// A missing redis client (tests, local runs without redis) is not an error.
func PublishQueue(waitlistId uint) {
	if RedisClient == nil {
		return
	}

	snapshot, err := BuildQueueSnapshot(database.DB, waitlistId)
	if err != nil {
		log.Printf("queue snapshot for waitlist %d failed: %v", waitlistId, err)
		return
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("queue snapshot marshal failed: %v", err)
		return
	}

	channel := fmt.Sprintf("waitlist:%d", waitlistId)
	if err := RedisClient.Publish(context.Background(), channel, payload).Err(); err != nil {
		log.Printf("redis publish to %s failed: %v", channel, err)
	}
}
