package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pharmanet/medsupply-api/internal/httperr"
	"github.com/pharmanet/medsupply-api/internal/models"
)

// --------- in-memory repository ---------

type fakeRepo struct {
	cats     []models.Category
	products map[uint]int64
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: make(map[uint]int64), nextID: 1}
}

func (r *fakeRepo) ListAll(ctx context.Context) ([]models.Category, error) {
	out := make([]models.Category, len(r.cats))
	copy(out, r.cats)
	return out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	for i := range r.cats {
		if r.cats[i].ID == id {
			c := r.cats[i]
			return &c, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, c := range r.cats {
		if c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) Create(ctx context.Context, cat *models.Category) error {
	cat.ID = r.nextID
	r.nextID++
	r.cats = append(r.cats, *cat)
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, cat *models.Category) error {
	for i := range r.cats {
		if r.cats[i].ID == cat.ID {
			r.cats[i] = *cat
			return nil
		}
	}
	return errors.New("record not found")
}

func (r *fakeRepo) Delete(ctx context.Context, id uint) error {
	for i := range r.cats {
		if r.cats[i].ID == id {
			r.cats = append(r.cats[:i], r.cats[i+1:]...)
			return nil
		}
	}
	return errors.New("record not found")
}

func (r *fakeRepo) CountProducts(ctx context.Context, categoryID uint) (int64, error) {
	return r.products[categoryID], nil
}

func (r *fakeRepo) CountChildren(ctx context.Context, categoryID uint) (int64, error) {
	var n int64
	for _, c := range r.cats {
		if c.ParentID != nil && *c.ParentID == categoryID {
			n++
		}
	}
	return n, nil
}

func mustCreate(t *testing.T, repo *fakeRepo, name string, parentID *uint) *models.Category {
	t.Helper()
	cat, err := NewCreateCategory(repo).Execute(context.Background(), CreateCategoryInput{
		Name:     name,
		ParentID: parentID,
	})
	if err != nil {
		t.Fatalf("create %q: %v", name, err)
	}
	return cat
}

// --------- Create ---------

func TestCreateCategory(t *testing.T) {
	repo := newFakeRepo()

	cat := mustCreate(t, repo, "Pain Relief", nil)

	if cat.Slug != "pain-relief" {
		t.Errorf("slug = %q, want pain-relief", cat.Slug)
	}
	if !cat.IsActive {
		t.Errorf("new category must default to active")
	}
	if cat.ParentID != nil {
		t.Errorf("top-level category must have nil parent")
	}
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	repo := newFakeRepo()
	mustCreate(t, repo, "Pain Relief", nil)

	// A different display name normalizing to the same slug collides.
	_, err := NewCreateCategory(repo).Execute(context.Background(), CreateCategoryInput{
		Name: "pain-relief",
	})
	if !httperr.IsBusiness(err, "category_already_exists") {
		t.Fatalf("expected category_already_exists, got %v", err)
	}
}

func TestCreateCategoryParentNotFound(t *testing.T) {
	repo := newFakeRepo()

	missing := uint(42)
	_, err := NewCreateCategory(repo).Execute(context.Background(), CreateCategoryInput{
		Name:     "Tablets",
		ParentID: &missing,
	})
	if !httperr.IsBusiness(err, "parent_category_not_found") {
		t.Fatalf("expected parent_category_not_found, got %v", err)
	}
}

func TestCreateCategoryInvalidName(t *testing.T) {
	repo := newFakeRepo()

	_, err := NewCreateCategory(repo).Execute(context.Background(), CreateCategoryInput{
		Name: "!!!",
	})
	if !httperr.IsBusiness(err, "invalid_category_name") {
		t.Fatalf("expected invalid_category_name, got %v", err)
	}
}

// --------- GetAll / GetByID ---------

func TestGetAllCategoriesForest(t *testing.T) {
	repo := newFakeRepo()
	medicine := mustCreate(t, repo, "Medicine", nil)
	tablets := mustCreate(t, repo, "Tablets", &medicine.ID)
	mustCreate(t, repo, "Painkillers", &tablets.ID)
	mustCreate(t, repo, "Equipment", nil)

	forest, err := NewGetAllCategories(repo).Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(forest) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(forest))
	}
	if forest[0].Name != "Medicine" {
		t.Fatalf("first root = %q, want Medicine", forest[0].Name)
	}
	if len(forest[0].SubCategories) != 1 ||
		forest[0].SubCategories[0].Name != "Tablets" {
		t.Fatalf("Medicine must contain Tablets")
	}
	if len(forest[0].SubCategories[0].SubCategories) != 1 ||
		forest[0].SubCategories[0].SubCategories[0].Name != "Painkillers" {
		t.Fatalf("tree must recurse past one level")
	}
}

func TestGetCategoryByID(t *testing.T) {
	repo := newFakeRepo()
	medicine := mustCreate(t, repo, "Medicine", nil)
	tablets := mustCreate(t, repo, "Tablets", &medicine.ID)

	got, err := NewGetCategoryByID(repo).Execute(context.Background(), tablets.ID)
	if err != nil {
		t.Fatal(err)
	}

	if got.Parent == nil || got.Parent.ID != medicine.ID {
		t.Errorf("expected flat parent record attached")
	}
	if got.Parent != nil && len(got.Parent.SubCategories) != 0 {
		t.Errorf("parent must be flat, not a tree")
	}
}

func TestGetCategoryByIDNotFound(t *testing.T) {
	repo := newFakeRepo()

	_, err := NewGetCategoryByID(repo).Execute(context.Background(), 99)
	if !httperr.IsBusiness(err, "category_not_found") {
		t.Fatalf("expected category_not_found, got %v", err)
	}
}

// --------- Update ---------

func TestUpdateCategoryRenameRegeneratesSlug(t *testing.T) {
	repo := newFakeRepo()
	cat := mustCreate(t, repo, "Pain Relief", nil)

	newName := "Cough & Cold"
	got, err := NewUpdateCategory(repo).Execute(context.Background(), UpdateCategoryInput{
		ID:   cat.ID,
		Name: &newName,
	})
	if err != nil {
		t.Fatal(err)
	}

	if got.Slug != "cough-cold" {
		t.Errorf("slug = %q, want cough-cold", got.Slug)
	}
}

func TestUpdateCategoryRejectsNameWithEmptySlug(t *testing.T) {
	repo := newFakeRepo()
	cat := mustCreate(t, repo, "Pain Relief", nil)

	newName := "!!!"
	_, err := NewUpdateCategory(repo).Execute(context.Background(), UpdateCategoryInput{
		ID:   cat.ID,
		Name: &newName,
	})
	if !httperr.IsBusiness(err, "invalid_category_name") {
		t.Fatalf("expected invalid_category_name, got %v", err)
	}

	// A rejected rename must not touch the stored row.
	stored, err := repo.GetByID(context.Background(), cat.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Slug != "pain-relief" {
		t.Errorf("slug = %q, want pain-relief untouched", stored.Slug)
	}
}

func TestUpdateCategoryNotFound(t *testing.T) {
	repo := newFakeRepo()

	name := "x"
	_, err := NewUpdateCategory(repo).Execute(context.Background(), UpdateCategoryInput{
		ID:   7,
		Name: &name,
	})
	if !httperr.IsBusiness(err, "category_not_found") {
		t.Fatalf("expected category_not_found, got %v", err)
	}
}

// --------- Delete ---------

func TestDeleteCategoryWithProducts(t *testing.T) {
	repo := newFakeRepo()
	cat := mustCreate(t, repo, "Tablets", nil)
	repo.products[cat.ID] = 3

	err := NewDeleteCategory(repo).Execute(context.Background(), cat.ID)
	if !httperr.IsBusiness(err, "category_has_products") {
		t.Fatalf("expected category_has_products, got %v", err)
	}
	if !strings.Contains(err.Error(), "3") {
		t.Errorf("error message must state the product count, got %q", err.Error())
	}
}

func TestDeleteCategoryWithChildren(t *testing.T) {
	repo := newFakeRepo()
	medicine := mustCreate(t, repo, "Medicine", nil)
	mustCreate(t, repo, "Tablets", &medicine.ID)

	err := NewDeleteCategory(repo).Execute(context.Background(), medicine.ID)
	if !httperr.IsBusiness(err, "category_has_subcategories") {
		t.Fatalf("expected category_has_subcategories, got %v", err)
	}
	if !strings.Contains(err.Error(), "1") {
		t.Errorf("error message must state the sub-category count, got %q", err.Error())
	}
}

func TestDeleteCategoryLeaf(t *testing.T) {
	repo := newFakeRepo()
	medicine := mustCreate(t, repo, "Medicine", nil)
	tablets := mustCreate(t, repo, "Tablets", &medicine.ID)

	// Leaf first, then the now-childless root.
	if err := NewDeleteCategory(repo).Execute(context.Background(), tablets.ID); err != nil {
		t.Fatalf("deleting a leaf must succeed: %v", err)
	}
	if err := NewDeleteCategory(repo).Execute(context.Background(), medicine.ID); err != nil {
		t.Fatalf("deleting the emptied root must succeed: %v", err)
	}

	if _, err := NewGetCategoryByID(repo).Execute(context.Background(), medicine.ID); err == nil {
		t.Errorf("deleted category must not resolve")
	}
}

func TestDeleteCategoryNotFound(t *testing.T) {
	repo := newFakeRepo()

	err := NewDeleteCategory(repo).Execute(context.Background(), 5)
	if !httperr.IsBusiness(err, "category_not_found") {
		t.Fatalf("expected category_not_found, got %v", err)
	}
}
