package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodBands(t *testing.T) {
	require.Len(t, AllMoods, 15)

	counts := map[MoodCategory]int{}
	for _, m := range AllMoods {
		assert.True(t, m.Valid(), "mood %q", m)
		counts[m.Category()]++
	}
	assert.Equal(t, 5, counts[MoodCategoryPositive])
	assert.Equal(t, 5, counts[MoodCategoryNeutral])
	assert.Equal(t, 5, counts[MoodCategoryNegative])
}

func TestMoodCategoryExamples(t *testing.T) {
	assert.Equal(t, MoodCategoryPositive, MoodGrateful.Category())
	assert.Equal(t, MoodCategoryNeutral, MoodNostalgic.Category())
	assert.Equal(t, MoodCategoryNegative, MoodAnxious.Category())
}

func TestParseMood(t *testing.T) {
	m, err := ParseMood("  Happy ")
	require.NoError(t, err)
	assert.Equal(t, MoodHappy, m)

	m, err = ParseMood("STRESSED")
	require.NoError(t, err)
	assert.Equal(t, MoodStressed, m)

	_, err = ParseMood("ecstatic")
	assert.Error(t, err)

	_, err = ParseMood("")
	assert.Error(t, err)
}

func TestMoodListRoundTrip(t *testing.T) {
	list := MoodList{MoodCalm, MoodGrateful}
	value, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, "calm,grateful", value)

	var scanned MoodList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, list, scanned)
}

func TestMoodListEmptyAndNil(t *testing.T) {
	value, err := MoodList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "", value)

	var scanned MoodList
	require.NoError(t, scanned.Scan(""))
	assert.Empty(t, scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)
}

func TestMoodListScanSkipsUnknown(t *testing.T) {
	var scanned MoodList
	require.NoError(t, scanned.Scan([]byte("calm,ecstatic,sad")))
	assert.Equal(t, MoodList{MoodCalm, MoodSad}, scanned)
}
