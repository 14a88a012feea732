package model

import (
	"sort"
	"time"
)

// RemindersListName is the only list the SMS assistant reads and writes.
const RemindersListName = "Reminders"

// ReminderList is a named collection of tasks owned by one user.
type ReminderList struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         uint   `gorm:"index;not null"`
	Name           string `gorm:"not null"`
	LeftPositioned bool
	CreatedAt      time.Time `gorm:"autoCreateTime"`

	Tasks []ReminderTask `gorm:"foreignKey:ListID"`
}

// ReminderTask is a single reminder inside a list.
type ReminderTask struct {
	ID          uint      `gorm:"primaryKey"`
	ListID      uint      `gorm:"index;not null"`
	Name        string    `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Colour      string
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// Latest returns up to n tasks, newest first.
func (l *ReminderList) Latest(n int) []ReminderTask {
	if l == nil || n <= 0 {
		return nil
	}
	tasks := make([]ReminderTask, len(l.Tasks))
	copy(tasks, l.Tasks)
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID > tasks[j].ID })
	if len(tasks) > n {
		tasks = tasks[:n]
	}
	return tasks
}
