package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReminderListLatest(t *testing.T) {
	t.Parallel()

	list := &ReminderList{Tasks: []ReminderTask{
		{ID: 3, Name: "Reminder 3"},
		{ID: 1, Name: "Reminder 1"},
		{ID: 2, Name: "Reminder 2"},
	}}

	latest := list.Latest(2)
	assert.Len(t, latest, 2)
	assert.Equal(t, "Reminder 3", latest[0].Name)
	assert.Equal(t, "Reminder 2", latest[1].Name)

	assert.Len(t, list.Latest(10), 3)
	assert.Equal(t, uint(3), list.Tasks[0].ID, "Latest must not reorder the list")

	var missing *ReminderList
	assert.Nil(t, missing.Latest(5))
}
