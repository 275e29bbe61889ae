package category

import "github.com/pharmanet/medsupply-api/internal/models"

// The category table is flat; clients see a nested forest. Assembly is a
// pure function over one parentID->children index so the build stays O(n)
// and never holds a live graph of owning pointers. Child order within a
// node follows the enumeration order of the input slice.

func BuildForest(all []models.Category) []models.Category {
	idx := childIndex(all)

	forest := make([]models.Category, 0)
	for _, c := range all {
		if c.ParentID == nil {
			forest = append(forest, attach(c, idx))
		}
	}
	return forest
}

// BuildSubtree roots the recursive build at one node. The root's own
// fields are taken from the given record, its descendants from the slice.
func BuildSubtree(all []models.Category, root models.Category) models.Category {
	return attach(root, childIndex(all))
}

func childIndex(all []models.Category) map[uint][]models.Category {
	idx := make(map[uint][]models.Category, len(all))
	for _, c := range all {
		if c.ParentID != nil {
			idx[*c.ParentID] = append(idx[*c.ParentID], c)
		}
	}
	return idx
}

func attach(node models.Category, idx map[uint][]models.Category) models.Category {
	children := idx[node.ID]

	node.SubCategories = make([]models.Category, 0, len(children))
	for _, child := range children {
		node.SubCategories = append(node.SubCategories, attach(child, idx))
	}
	return node
}
