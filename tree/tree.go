// Package tree builds navigable section hierarchies from flat rows fetched
// by the persistence layer. All functions are pure: they never touch the
// database and rebuild their output from the given snapshot on every call,
// so there is no cached tree to invalidate on writes.
package tree

import (
	"sort"
	"strings"

	"lingo/models"
)

// Node is a section with its resolved children, ordered by (OrderIndex, ID).
type Node struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	ParentID   *uint   `json:"parent_id"`
	OrderIndex int     `json:"order_index"`
	IsActive   bool    `json:"is_active"`
	Children   []*Node `json:"children"`
}

// Entry is one row of a flattened forest, used to populate dropdown-style
// selection controls where hierarchy must stay visually legible.
type Entry struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"` // Indented two spaces per depth level
	IsActive bool   `json:"is_active"`
	Depth    int    `json:"depth"`
}

// BuildTree assembles a forest from flat section rows. When includeInactive
// is false, inactive rows are dropped before indexing; an active child of a
// dropped parent therefore surfaces as a root rather than disappearing.
// A row whose ParentID is nil or does not resolve to an indexed row becomes
// a root, so dangling references degrade to root placement instead of
// failing the traversal.
func BuildTree(rows []models.Section, includeInactive bool) []*Node {
	nodes := make([]*Node, 0, len(rows))
	byID := make(map[uint]*Node, len(rows))

	for _, row := range rows {
		if !includeInactive && !row.IsActive {
			continue
		}
		node := &Node{
			ID:         row.ID,
			Name:       row.Name,
			ParentID:   row.ParentID,
			OrderIndex: row.OrderIndex,
			IsActive:   row.IsActive,
			Children:   []*Node{},
		}
		nodes = append(nodes, node)
		byID[row.ID] = node
	}

	roots := []*Node{}
	for _, node := range nodes {
		if node.ParentID != nil {
			if parent, ok := byID[*node.ParentID]; ok && parent.ID != node.ID {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	sortSiblings(roots)
	return roots
}

// sortSiblings orders every sibling group by ascending OrderIndex, ties
// broken by ascending ID, recursively down the forest.
func sortSiblings(siblings []*Node) {
	sort.SliceStable(siblings, func(i, j int) bool {
		if siblings[i].OrderIndex != siblings[j].OrderIndex {
			return siblings[i].OrderIndex < siblings[j].OrderIndex
		}
		return siblings[i].ID < siblings[j].ID
	})
	for _, node := range siblings {
		sortSiblings(node.Children)
	}
}

// Flatten produces a pre-order traversal of the forest with display names
// indented two spaces per depth level.
func Flatten(forest []*Node) []Entry {
	entries := []Entry{}
	for _, root := range forest {
		entries = flattenNode(root, 0, entries)
	}
	return entries
}

func flattenNode(node *Node, depth int, entries []Entry) []Entry {
	entries = append(entries, Entry{
		ID:       node.ID,
		Name:     strings.Repeat("  ", depth) + node.Name,
		IsActive: node.IsActive,
		Depth:    depth,
	})
	for _, child := range node.Children {
		entries = flattenNode(child, depth+1, entries)
	}
	return entries
}

// ListChildren returns the direct children of parentID (roots when nil) in
// sibling order, filtered by active status per includeInactive. Used for
// one-level-at-a-time drill-down so deep trees need not be materialized.
func ListChildren(rows []models.Section, parentID *uint, includeInactive bool) []models.Section {
	children := []models.Section{}
	for _, row := range rows {
		if !includeInactive && !row.IsActive {
			continue
		}
		if parentID == nil {
			if row.ParentID != nil {
				continue
			}
		} else if row.ParentID == nil || *row.ParentID != *parentID {
			continue
		}
		children = append(children, row)
	}
	sort.SliceStable(children, func(i, j int) bool {
		if children[i].OrderIndex != children[j].OrderIndex {
			return children[i].OrderIndex < children[j].OrderIndex
		}
		return children[i].ID < children[j].ID
	})
	return children
}

// Path returns the parent chain from the root down to sectionID, resolved
// against the given rows. It backs breadcrumb navigation, keeping the
// selected path explicit instead of module-level state. The walk is bounded
// by the row count, so a corrupt parent cycle cannot loop forever; a missing
// link truncates the chain at the last resolvable ancestor.
func Path(rows []models.Section, sectionID uint) []models.Section {
	byID := make(map[uint]models.Section, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	chain := []models.Section{}
	seen := make(map[uint]bool, len(rows))
	current, ok := byID[sectionID]
	for ok && !seen[current.ID] {
		seen[current.ID] = true
		chain = append(chain, current)
		if current.ParentID == nil {
			break
		}
		current, ok = byID[*current.ParentID]
	}

	// Reverse so the chain reads root first
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// WouldCycle reports whether assigning newParentID as the parent of
// sectionID would make the node its own ancestor. Self-parenting counts as
// a cycle. Used by the update path to keep the parent relation a forest.
func WouldCycle(rows []models.Section, sectionID uint, newParentID uint) bool {
	if sectionID == newParentID {
		return true
	}
	byID := make(map[uint]models.Section, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	seen := make(map[uint]bool, len(rows))
	current, ok := byID[newParentID]
	for ok && !seen[current.ID] {
		if current.ID == sectionID {
			return true
		}
		seen[current.ID] = true
		if current.ParentID == nil {
			return false
		}
		current, ok = byID[*current.ParentID]
	}
	return false
}
