package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soltana-store-api/internal/cache"
	"soltana-store-api/internal/model"
	"soltana-store-api/internal/repository"
)

// stubCatalogRepo counts calls and can be switched to fail, so tests can
// tell a cache hit from a backend read.
type stubCatalogRepo struct {
	products   []repository.ProductRow
	categories []model.Category
	wilayas    []model.Wilaya
	settings   *model.SiteSettings
	about      *model.AboutUsContent

	fail  bool
	calls int
}

var errBackendDown = errors.New("backend down")

func (r *stubCatalogRepo) ListProducts(ctx context.Context) ([]repository.ProductRow, error) {
	r.calls++
	if r.fail {
		return nil, errBackendDown
	}
	return r.products, nil
}

func (r *stubCatalogRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	r.calls++
	if r.fail {
		return nil, errBackendDown
	}
	return r.categories, nil
}

func (r *stubCatalogRepo) ListWilayas(ctx context.Context) ([]model.Wilaya, error) {
	r.calls++
	if r.fail {
		return nil, errBackendDown
	}
	return r.wilayas, nil
}

func (r *stubCatalogRepo) GetSiteSettings(ctx context.Context) (*model.SiteSettings, error) {
	r.calls++
	if r.fail {
		return nil, errBackendDown
	}
	return r.settings, nil
}

func (r *stubCatalogRepo) GetAboutUs(ctx context.Context) (*model.AboutUsContent, error) {
	r.calls++
	if r.fail {
		return nil, errBackendDown
	}
	return r.about, nil
}

func (r *stubCatalogRepo) Close() error { return nil }

var _ repository.CatalogRepository = (*stubCatalogRepo)(nil)

func newTestCatalog(repo *stubCatalogRepo) (*CatalogService, *cache.Manager) {
	c := cache.New(nil, cache.DefaultOptions())
	return NewCatalogService(repo, c), c
}

func TestNewCatalogServiceRequiresRepo(t *testing.T) {
	assert.Nil(t, NewCatalogService(nil, cache.New(nil, cache.DefaultOptions())))
}

func TestFetchProductsCachesResult(t *testing.T) {
	repo := &stubCatalogRepo{products: []repository.ProductRow{{ID: "p1", Name: "Kaftan", Price: 4500}}}
	svc, _ := newTestCatalog(repo)
	ctx := context.Background()

	first := svc.FetchProducts(ctx)
	second := svc.FetchProducts(ctx)

	require.Len(t, first, 1)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls, "second read must come from the cache")
}

func TestFetchProductsErrorDegradesToEmpty(t *testing.T) {
	repo := &stubCatalogRepo{fail: true}
	svc, _ := newTestCatalog(repo)

	products := svc.FetchProducts(context.Background())
	require.NotNil(t, products)
	assert.Empty(t, products)
}

func TestFetchProductsErrorIsNotCached(t *testing.T) {
	repo := &stubCatalogRepo{fail: true}
	svc, _ := newTestCatalog(repo)
	ctx := context.Background()

	svc.FetchProducts(ctx)

	repo.fail = false
	repo.products = []repository.ProductRow{{ID: "p1"}}
	assert.Len(t, svc.FetchProducts(ctx), 1, "next read must retry the backend")
}

func TestMapProductDerivesSizesAndColorsFromVariants(t *testing.T) {
	row := repository.ProductRow{
		ID:           "p1",
		StaticSizes:  []string{"XXL"},
		StaticColors: []model.Color{{Name: "Static", Hex: "#000"}},
		Variants: []model.ProductVariant{
			{Size: "M", ColorName: "Emerald", ColorHex: "#0a5"},
			{Size: "L", ColorName: "Emerald", ColorHex: "#0b6"},
			{Size: "M", ColorName: "Ivory", ColorHex: "#fff"},
		},
	}

	p := mapProduct(row)

	assert.Equal(t, []string{"M", "L"}, p.Sizes)
	require.Len(t, p.Colors, 2)
	assert.Equal(t, model.Color{Name: "Emerald", Hex: "#0a5"}, p.Colors[0], "first hex per name wins")
	assert.Equal(t, model.Color{Name: "Ivory", Hex: "#fff"}, p.Colors[1])
}

func TestMapProductWithoutVariantsKeepsStaticLists(t *testing.T) {
	row := repository.ProductRow{
		ID:           "p1",
		StaticSizes:  []string{"S", "M"},
		StaticColors: []model.Color{{Name: "Black", Hex: "#000"}},
	}

	p := mapProduct(row)

	assert.Equal(t, []string{"S", "M"}, p.Sizes)
	assert.Equal(t, []model.Color{{Name: "Black", Hex: "#000"}}, p.Colors)
}

func TestMapProductWithoutVariantsOrStaticListsIsEmptyNotNil(t *testing.T) {
	p := mapProduct(repository.ProductRow{ID: "p1"})

	require.NotNil(t, p.Sizes)
	require.NotNil(t, p.Colors)
	assert.Empty(t, p.Sizes)
	assert.Empty(t, p.Colors)
}

func TestFetchCategoriesCachesResult(t *testing.T) {
	repo := &stubCatalogRepo{categories: []model.Category{{ID: "c1", Name: "Dresses"}}}
	svc, _ := newTestCatalog(repo)
	ctx := context.Background()

	svc.FetchCategories(ctx)
	svc.FetchCategories(ctx)

	assert.Equal(t, 1, repo.calls)
}

func TestFetchWilayasFallsBackOnError(t *testing.T) {
	repo := &stubCatalogRepo{fail: true}
	svc, _ := newTestCatalog(repo)

	wilayas := svc.FetchWilayas(context.Background())
	assert.Len(t, wilayas, 58)
}

func TestFetchWilayasFallsBackOnEmptyResult(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc, _ := newTestCatalog(repo)

	wilayas := svc.FetchWilayas(context.Background())
	assert.Len(t, wilayas, 58)
}

func TestFetchWilayasFallbackIsNotCached(t *testing.T) {
	repo := &stubCatalogRepo{fail: true}
	svc, c := newTestCatalog(repo)
	ctx := context.Background()

	svc.FetchWilayas(ctx)

	_, err := cache.GetAs[[]model.Wilaya](ctx, c, cache.KeyWilayasList)
	assert.ErrorIs(t, err, cache.ErrCacheMiss)

	repo.fail = false
	repo.wilayas = []model.Wilaya{{ID: "16", Name: "Alger", DeliveryHome: 500, DeliveryPost: 300}}
	assert.Len(t, svc.FetchWilayas(ctx), 1, "recovered backend wins over the bundled table")
}

func TestFetchWilayasCachesBackendRows(t *testing.T) {
	repo := &stubCatalogRepo{wilayas: []model.Wilaya{{ID: "16", Name: "Alger"}}}
	svc, _ := newTestCatalog(repo)
	ctx := context.Background()

	svc.FetchWilayas(ctx)
	svc.FetchWilayas(ctx)

	assert.Equal(t, 1, repo.calls)
}

func TestFetchSiteSettingsNilWhenAbsent(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc, c := newTestCatalog(repo)
	ctx := context.Background()

	assert.Nil(t, svc.FetchSiteSettings(ctx))

	_, err := cache.GetAs[*model.SiteSettings](ctx, c, cache.KeySiteSettings)
	assert.ErrorIs(t, err, cache.ErrCacheMiss, "absent singleton is not cached")
}

func TestFetchSiteSettingsCachesResult(t *testing.T) {
	repo := &stubCatalogRepo{settings: &model.SiteSettings{SiteName: "Soltana"}}
	svc, _ := newTestCatalog(repo)
	ctx := context.Background()

	first := svc.FetchSiteSettings(ctx)
	second := svc.FetchSiteSettings(ctx)

	require.NotNil(t, first)
	assert.Equal(t, "Soltana", second.SiteName)
	assert.Equal(t, 1, repo.calls)
}

func TestFetchAboutUsNilOnError(t *testing.T) {
	repo := &stubCatalogRepo{fail: true}
	svc, _ := newTestCatalog(repo)

	assert.Nil(t, svc.FetchAboutUs(context.Background()))
}

func TestDefaultWilayasReturnsACopy(t *testing.T) {
	first := DefaultWilayas()
	first[0].Name = "mutated"

	assert.NotEqual(t, "mutated", DefaultWilayas()[0].Name)
}
