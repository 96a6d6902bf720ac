package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func barcodes(records []FeedRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Barcode)
	}
	return out
}

func TestBuildPlan_Partition(t *testing.T) {
	stored := []string{"A", "B", "C"}
	feed := []FeedRecord{
		{Barcode: "A", Name: "changed"},
		{Barcode: "C"},
		{Barcode: "D", Name: "new"},
	}

	plan := BuildPlan(feed, stored)

	assert.Equal(t, []string{"D"}, barcodes(plan.ToCreate))
	assert.Equal(t, []string{"A", "C"}, barcodes(plan.ToUpdate))
	assert.Equal(t, []string{"B"}, plan.ToDelete)
	assert.Zero(t, plan.Malformed)
}

func TestBuildPlan_UnchangedFeedIsCreateAndDeleteFree(t *testing.T) {
	stored := []string{"A", "B"}
	feed := []FeedRecord{{Barcode: "A"}, {Barcode: "B"}}

	plan := BuildPlan(feed, stored)

	assert.Empty(t, plan.ToCreate)
	assert.Empty(t, plan.ToDelete)
	assert.Len(t, plan.ToUpdate, 2)
}

func TestBuildPlan_LastOccurrenceWins(t *testing.T) {
	feed := []FeedRecord{
		{Barcode: "A", Quantity: 1},
		{Barcode: "B", Quantity: 7},
		{Barcode: "A", Quantity: 5},
	}

	plan := BuildPlan(feed, nil)

	require.Len(t, plan.ToCreate, 2)
	assert.Equal(t, "A", plan.ToCreate[0].Barcode)
	assert.Equal(t, 5, plan.ToCreate[0].Quantity, "last occurrence should win")
	assert.Equal(t, "B", plan.ToCreate[1].Barcode)
}

func TestBuildPlan_MalformedRecordsCountedNotFatal(t *testing.T) {
	feed := []FeedRecord{
		{Barcode: "", Name: "no barcode"},
		{Barcode: "A"},
		{Name: "also no barcode"},
	}

	plan := BuildPlan(feed, nil)

	assert.Equal(t, 2, plan.Malformed)
	assert.Equal(t, []string{"A"}, barcodes(plan.ToCreate))
}

func TestBuildPlan_EmptyFeedDeletesEverything(t *testing.T) {
	plan := BuildPlan(nil, []string{"A", "B"})

	assert.Empty(t, plan.ToCreate)
	assert.Empty(t, plan.ToUpdate)
	assert.Equal(t, []string{"A", "B"}, plan.ToDelete)
	assert.False(t, plan.IsEmpty())
}

func TestPlan_IsEmpty(t *testing.T) {
	assert.True(t, Plan{}.IsEmpty())
	assert.True(t, Plan{Malformed: 3}.IsEmpty())
	assert.False(t, Plan{ToDelete: []string{"A"}}.IsEmpty())
}
