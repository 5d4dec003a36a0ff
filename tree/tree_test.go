package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lingo/models"
)

func section(id uint, name string, parentID *uint, orderIndex int, isActive bool) models.Section {
	return models.Section{
		Model:      gorm.Model{ID: id},
		Name:       name,
		ParentID:   parentID,
		OrderIndex: orderIndex,
		IsActive:   isActive,
	}
}

func ptr(id uint) *uint { return &id }

func sampleRows() []models.Section {
	return []models.Section{
		section(1, "Grammar", nil, 0, true),
		section(2, "Tenses", ptr(1), 0, true),
		section(3, "Vocabulary", nil, 1, false),
	}
}

func TestBuildTreeExcludesInactive(t *testing.T) {
	forest := BuildTree(sampleRows(), false)

	require.Len(t, forest, 1)
	assert.Equal(t, uint(1), forest[0].ID)
	assert.Equal(t, "Grammar", forest[0].Name)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, uint(2), forest[0].Children[0].ID)
	assert.Equal(t, "Tenses", forest[0].Children[0].Name)
	assert.Empty(t, forest[0].Children[0].Children)
}

func TestBuildTreeIncludesInactive(t *testing.T) {
	forest := BuildTree(sampleRows(), true)

	require.Len(t, forest, 2)
	assert.Equal(t, uint(1), forest[0].ID)
	assert.Equal(t, uint(3), forest[1].ID)
	assert.False(t, forest[1].IsActive)
	assert.Empty(t, forest[1].Children)
}

func TestBuildTreeOrphanOfFilteredParentBecomesRoot(t *testing.T) {
	rows := []models.Section{
		section(1, "Grammar", nil, 0, false),
		section(2, "Tenses", ptr(1), 0, true),
	}

	forest := BuildTree(rows, false)

	require.Len(t, forest, 1)
	assert.Equal(t, uint(2), forest[0].ID)
}

func TestBuildTreeDanglingParentBecomesRoot(t *testing.T) {
	rows := []models.Section{
		section(5, "Idioms", ptr(99), 0, true),
	}

	forest := BuildTree(rows, true)

	require.Len(t, forest, 1)
	assert.Equal(t, uint(5), forest[0].ID)
}

func TestBuildTreeSelfParentBecomesRoot(t *testing.T) {
	rows := []models.Section{
		section(7, "Loops", ptr(7), 0, true),
	}

	forest := BuildTree(rows, true)

	require.Len(t, forest, 1)
	assert.Equal(t, uint(7), forest[0].ID)
	assert.Empty(t, forest[0].Children)
}

func TestBuildTreeSiblingOrder(t *testing.T) {
	rows := []models.Section{
		section(4, "Writing", nil, 2, true),
		section(2, "Listening", nil, 1, true),
		section(3, "Speaking", nil, 1, true),
		section(1, "Reading", nil, 0, true),
		section(6, "Past", ptr(1), 1, true),
		section(5, "Present", ptr(1), 0, true),
	}

	forest := BuildTree(rows, true)

	require.Len(t, forest, 4)
	// Ascending order index, ties broken by ascending id
	assert.Equal(t, uint(1), forest[0].ID)
	assert.Equal(t, uint(2), forest[1].ID)
	assert.Equal(t, uint(3), forest[2].ID)
	assert.Equal(t, uint(4), forest[3].ID)

	require.Len(t, forest[0].Children, 2)
	assert.Equal(t, uint(5), forest[0].Children[0].ID)
	assert.Equal(t, uint(6), forest[0].Children[1].ID)
}

func TestBuildTreeIsDeterministic(t *testing.T) {
	rows := sampleRows()
	first := Flatten(BuildTree(rows, true))
	second := Flatten(BuildTree(rows, true))
	assert.Equal(t, first, second)
}

func TestBuildTreeProducesForest(t *testing.T) {
	rows := []models.Section{
		section(1, "A", nil, 0, true),
		section(2, "B", ptr(1), 0, true),
		section(3, "C", ptr(1), 1, true),
		section(4, "D", ptr(2), 0, true),
		section(5, "E", ptr(99), 0, true),
	}

	forest := BuildTree(rows, true)

	seen := map[uint]int{}
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			seen[n.ID]++
			walk(n.Children)
		}
	}
	walk(forest)

	require.Len(t, seen, len(rows))
	for id, count := range seen {
		assert.Equalf(t, 1, count, "section %d appears %d times", id, count)
	}
}

func TestFlattenEmptyForest(t *testing.T) {
	assert.Empty(t, Flatten(BuildTree(nil, true)))
}

func TestFlattenSingleRoot(t *testing.T) {
	rows := []models.Section{section(1, "Grammar", nil, 0, true)}

	entries := Flatten(BuildTree(rows, true))

	require.Len(t, entries, 1)
	assert.Equal(t, Entry{ID: 1, Name: "Grammar", IsActive: true, Depth: 0}, entries[0])
}

func TestFlattenIndentsByDepth(t *testing.T) {
	entries := Flatten(BuildTree(sampleRows(), false))

	require.Len(t, entries, 2)
	assert.Equal(t, Entry{ID: 1, Name: "Grammar", IsActive: true, Depth: 0}, entries[0])
	assert.Equal(t, Entry{ID: 2, Name: "  Tenses", IsActive: true, Depth: 1}, entries[1])
}

func TestFlattenDepthSteps(t *testing.T) {
	rows := []models.Section{
		section(1, "A", nil, 0, true),
		section(2, "B", ptr(1), 0, true),
		section(3, "C", ptr(2), 0, true),
		section(4, "D", ptr(1), 1, true),
	}

	entries := Flatten(BuildTree(rows, true))

	require.Len(t, entries, 4)
	depths := []int{entries[0].Depth, entries[1].Depth, entries[2].Depth, entries[3].Depth}
	assert.Equal(t, []int{0, 1, 2, 1}, depths)

	// Child depth is always parent depth + 1, siblings return to the parent level
	assert.Equal(t, uint(4), entries[3].ID)
}

func TestFlattenTagsInactiveEntries(t *testing.T) {
	entries := Flatten(BuildTree(sampleRows(), true))

	require.Len(t, entries, 3)
	assert.Equal(t, uint(3), entries[2].ID)
	assert.False(t, entries[2].IsActive)
	assert.Equal(t, "Vocabulary", entries[2].Name) // Name itself is unchanged
}

func TestListChildrenRoots(t *testing.T) {
	children := ListChildren(sampleRows(), nil, true)

	require.Len(t, children, 2)
	assert.Equal(t, uint(1), children[0].ID)
	assert.Equal(t, uint(3), children[1].ID)
}

func TestListChildrenFiltersInactive(t *testing.T) {
	children := ListChildren(sampleRows(), nil, false)

	require.Len(t, children, 1)
	assert.Equal(t, uint(1), children[0].ID)
}

func TestListChildrenOfParent(t *testing.T) {
	children := ListChildren(sampleRows(), ptr(1), false)

	require.Len(t, children, 1)
	assert.Equal(t, uint(2), children[0].ID)
}

func TestListChildrenOrder(t *testing.T) {
	rows := []models.Section{
		section(3, "C", ptr(1), 0, true),
		section(2, "B", ptr(1), 0, true),
		section(4, "D", ptr(1), 1, true),
		section(1, "A", nil, 0, true),
	}

	children := ListChildren(rows, ptr(1), true)

	require.Len(t, children, 3)
	assert.Equal(t, uint(2), children[0].ID)
	assert.Equal(t, uint(3), children[1].ID)
	assert.Equal(t, uint(4), children[2].ID)
}

func TestPath(t *testing.T) {
	rows := []models.Section{
		section(1, "Grammar", nil, 0, true),
		section(2, "Tenses", ptr(1), 0, true),
		section(3, "Past Perfect", ptr(2), 0, true),
	}

	chain := Path(rows, 3)

	require.Len(t, chain, 3)
	assert.Equal(t, uint(1), chain[0].ID)
	assert.Equal(t, uint(2), chain[1].ID)
	assert.Equal(t, uint(3), chain[2].ID)
}

func TestPathUnknownSection(t *testing.T) {
	assert.Empty(t, Path(sampleRows(), 42))
}

func TestWouldCycle(t *testing.T) {
	rows := []models.Section{
		section(1, "A", nil, 0, true),
		section(2, "B", ptr(1), 0, true),
		section(3, "C", ptr(2), 0, true),
	}

	assert.True(t, WouldCycle(rows, 1, 1), "self parent")
	assert.True(t, WouldCycle(rows, 1, 3), "descendant as parent")
	assert.True(t, WouldCycle(rows, 2, 3), "direct child as parent")
	assert.False(t, WouldCycle(rows, 3, 1), "reparent to ancestor is fine")
	assert.False(t, WouldCycle(rows, 2, 99), "unknown parent cannot cycle")
}
