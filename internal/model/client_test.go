package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientUpdate_IsEmpty(t *testing.T) {
	city := "Lima"
	empty := ""

	assert.True(t, ClientUpdate{}.IsEmpty())
	assert.False(t, ClientUpdate{City: &city}.IsEmpty())
	assert.False(t, ClientUpdate{Phone: &empty}.IsEmpty(), "clearing a field is still a change")
}

func TestUser_SummaryDropsHash(t *testing.T) {
	u := User{ID: 3, Username: "root", PasswordHash: "$2a$10$abc", IsAdmin: true}

	assert.Equal(t, UserSummary{ID: 3, Username: "root", IsAdmin: true}, u.Summary())
}

func TestSortedCounts(t *testing.T) {
	got := SortedCounts(map[string]int{"pending": 2, "done": 5, "archived": 1})

	assert.Equal(t, []CountEntry{
		{Key: "archived", Count: 1},
		{Key: "done", Count: 5},
		{Key: "pending", Count: 2},
	}, got)
	assert.Empty(t, SortedCounts(nil))
}
