package usecase_test

import (
	"context"
	"sort"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	seq   int64
	items map[int64]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: map[int64]*entity.Category{}}
}

func (r *fakeCategoryRepo) FindAll() ([]*entity.Category, error) {
	var list []*entity.Category
	for _, c := range r.items {
		cc := *c
		list = append(list, &cc)
	}
	// más recientes primero, como el ORDER BY created_at DESC real
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *fakeCategoryRepo) FindByID(id int64) (*entity.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (r *fakeCategoryRepo) FindByName(name string) (*entity.Category, error) {
	for _, c := range r.items {
		if c.Name == name {
			cc := *c
			return &cc, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Create(category *entity.Category) (int64, error) {
	r.seq++
	cc := *category
	cc.ID = r.seq
	r.items[cc.ID] = &cc
	return cc.ID, nil
}

func (r *fakeCategoryRepo) Update(category *entity.Category) (bool, error) {
	if _, ok := r.items[category.ID]; !ok {
		return false, nil
	}
	cc := *category
	r.items[category.ID] = &cc
	return true, nil
}

func (r *fakeCategoryRepo) Delete(id int64) (bool, error) {
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

type fakeSubCategoryRepo struct {
	seq   int64
	items map[int64]*entity.SubCategory
}

func newFakeSubCategoryRepo() *fakeSubCategoryRepo {
	return &fakeSubCategoryRepo{items: map[int64]*entity.SubCategory{}}
}

func (r *fakeSubCategoryRepo) FindAll() ([]*entity.SubCategory, error) {
	var list []*entity.SubCategory
	for _, sc := range r.items {
		c := *sc
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *fakeSubCategoryRepo) FindByID(id int64) (*entity.SubCategory, error) {
	sc, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	c := *sc
	return &c, nil
}

func (r *fakeSubCategoryRepo) Create(subCategory *entity.SubCategory) (int64, error) {
	r.seq++
	c := *subCategory
	c.ID = r.seq
	r.items[c.ID] = &c
	return c.ID, nil
}

func (r *fakeSubCategoryRepo) Update(subCategory *entity.SubCategory) (bool, error) {
	if _, ok := r.items[subCategory.ID]; !ok {
		return false, nil
	}
	c := *subCategory
	r.items[subCategory.ID] = &c
	return true, nil
}

func (r *fakeSubCategoryRepo) Delete(id int64) (bool, error) {
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

type fakeProductRepo struct {
	seq   int64
	items map[int64]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[int64]*entity.Product{}}
}

func (r *fakeProductRepo) FindAll() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.items {
		pp := *p
		list = append(list, &pp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *fakeProductRepo) FindByID(id int64) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	pp := *p
	return &pp, nil
}

func (r *fakeProductRepo) Create(product *entity.Product) (int64, error) {
	if product.SKU != nil {
		for _, p := range r.items {
			if p.SKU != nil && *p.SKU == *product.SKU {
				return 0, domain.ErrDuplicate
			}
		}
	}
	r.seq++
	pp := *product
	pp.ID = r.seq
	r.items[pp.ID] = &pp
	return pp.ID, nil
}

func (r *fakeProductRepo) Update(product *entity.Product) (bool, error) {
	if _, ok := r.items[product.ID]; !ok {
		return false, nil
	}
	pp := *product
	r.items[product.ID] = &pp
	return true, nil
}

func (r *fakeProductRepo) Delete(id int64) (bool, error) {
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

type fakeImageRepo struct {
	byProduct map[int64][]string
	failNext  error
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{byProduct: map[int64][]string{}}
}

func (r *fakeImageRepo) ReplaceForProduct(productID int64, imageURLs []string) error {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	r.byProduct[productID] = append([]string(nil), imageURLs...)
	return nil
}

// fakeTxRunner ejecuta fn sobre los fakes y simula rollback restaurando un
// snapshot del estado si fn falla.
type fakeTxRunner struct {
	products *fakeProductRepo
	images   *fakeImageRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	imageRepo repository.ProductImageRepository,
) error) error {
	snapshotSeq := t.products.seq
	snapshotItems := map[int64]*entity.Product{}
	for id, p := range t.products.items {
		pp := *p
		snapshotItems[id] = &pp
	}
	snapshotImages := map[int64][]string{}
	for id, urls := range t.images.byProduct {
		snapshotImages[id] = append([]string(nil), urls...)
	}

	if err := fn(t.products, t.images); err != nil {
		t.products.seq = snapshotSeq
		t.products.items = snapshotItems
		t.images.byProduct = snapshotImages
		return err
	}
	return nil
}
