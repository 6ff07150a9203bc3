package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario/internal/domain"
	"github.com/jhoicas/inventario/internal/domain/entity"
	"github.com/jhoicas/inventario/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario/pkg/logger"
)

func openRepo(t *testing.T, path string) *sqlite.ProductRepo {
	t.Helper()
	db, err := sqlite.Open(context.Background(), path, logger.NewNop())
	require.NoError(t, err)
	repo := sqlite.NewProductRepository(db)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func newRepo(t *testing.T) *sqlite.ProductRepo {
	t.Helper()
	return openRepo(t, filepath.Join(t.TempDir(), "inventario.db"))
}

func product(name string, qty int, price, category string) *entity.Product {
	return &entity.Product{
		Name:        name,
		Description: "desc " + name,
		Quantity:    qty,
		Price:       decimal.RequireFromString(price),
		Category:    category,
	}
}

func seed(t *testing.T, repo *sqlite.ProductRepo, products ...*entity.Product) []int64 {
	t.Helper()
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		id, err := repo.Create(context.Background(), p)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func names(list []*entity.Product) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.Name)
	}
	return out
}

func TestCreateAndGetByID(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, product("Leche", 10, "2.50", "almacen"))
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Leche", got.Name)
	assert.Equal(t, "desc Leche", got.Description)
	assert.Equal(t, 10, got.Quantity)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, "almacen", got.Category)
}

func TestCreate_IDsIncrease(t *testing.T) {
	repo := newRepo(t)
	ids := seed(t, repo, product("A", 1, "1", "varios"), product("B", 1, "1", "varios"))
	assert.Greater(t, ids[1], ids[0])
}

func TestGetByID_NotFound(t *testing.T) {
	repo := newRepo(t)
	got, err := repo.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, got)

	list, err := repo.FindByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFindByID(t *testing.T) {
	repo := newRepo(t)
	ids := seed(t, repo, product("Queso", 3, "9.90", "almacen"))

	list, err := repo.FindByID(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"Queso"}, names(list))
}

func TestCreate_CheckConstraintRejectsNegatives(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, product("Malo", -1, "1", "varios"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = repo.Create(ctx, product("Malo", 1, "-1", "varios"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestList_OrderedByID(t *testing.T) {
	repo := newRepo(t)
	seed(t, repo,
		product("Leche", 10, "2.50", "almacen"),
		product("Asado", 2, "15", "carniceria"),
		product("Jabón", 0, "1.20", "perfumeria"),
	)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Leche", "Asado", "Jabón"}, names(list))
}

func TestUpdate_ReplacesAllFields(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	ids := seed(t, repo, product("Leche", 10, "2.50", "almacen"))

	n, err := repo.Update(ctx, &entity.Product{
		ID: ids[0], Name: "Leche entera", Description: "", Quantity: 4,
		Price: decimal.RequireFromString("3.10"), Category: "Lácteos",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := repo.GetByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Leche entera", got.Name)
	assert.Equal(t, "", got.Description)
	assert.Equal(t, 4, got.Quantity)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("3.1")))
	assert.Equal(t, "Lácteos", got.Category)
}

func TestUpdate_UnchangedValuesStillCountAsAffected(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	ids := seed(t, repo, product("Leche", 10, "2.50", "almacen"))

	got, err := repo.GetByID(ctx, ids[0])
	require.NoError(t, err)

	n, err := repo.Update(ctx, got)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestUpdate_Missing(t *testing.T) {
	repo := newRepo(t)
	n, err := repo.Update(context.Background(), &entity.Product{ID: 5, Name: "x"})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUpdate_NegativeQuantityRejected(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	ids := seed(t, repo, product("Leche", 10, "2.50", "almacen"))

	p := product("Leche", -5, "2.50", "almacen")
	p.ID = ids[0]
	_, err := repo.Update(ctx, p)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := repo.GetByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity)
}

func TestDelete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	ids := seed(t, repo, product("Leche", 10, "2.50", "almacen"), product("Pan", 5, "1", "almacen"))

	n, err := repo.Delete(ctx, ids[0])
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := repo.GetByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Nil(t, got)

	n, err = repo.Delete(ctx, ids[0])
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestSearchByName_CaseSensitiveSubstring(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	seed(t, repo,
		product("Leche entera", 10, "2.50", "almacen"),
		product("Dulce de leche", 3, "4", "almacen"),
		product("Pan", 5, "1", "almacen"),
	)

	list, err := repo.SearchByName(ctx, "Leche")
	require.NoError(t, err)
	assert.Equal(t, []string{"Leche entera"}, names(list))

	list, err = repo.SearchByName(ctx, "eche")
	require.NoError(t, err)
	assert.Equal(t, []string{"Leche entera", "Dulce de leche"}, names(list))
}

func TestSearchByName_WildcardsAreLiteral(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	seed(t, repo, product("Descuento 10%", 1, "1", "varios"), product("Pan", 5, "1", "almacen"))

	list, err := repo.SearchByName(ctx, "%")
	require.NoError(t, err)
	assert.Equal(t, []string{"Descuento 10%"}, names(list))

	list, err = repo.SearchByName(ctx, "_")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSearchByCategory(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	seed(t, repo,
		product("Leche", 10, "2.50", "almacen"),
		product("Asado", 2, "15", "carniceria"),
	)

	list, err := repo.SearchByCategory(ctx, "carni")
	require.NoError(t, err)
	assert.Equal(t, []string{"Asado"}, names(list))

	list, err = repo.SearchByCategory(ctx, "ferreteria")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListLowStock(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	seed(t, repo,
		product("Leche", 10, "2.50", "almacen"),
		product("Asado", 2, "15", "carniceria"),
		product("Jabón", 0, "1.20", "perfumeria"),
		product("Papa", 5, "0.80", "verduleria"),
	)

	list, err := repo.ListLowStock(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Asado", "Jabón", "Papa"}, names(list))

	list, err = repo.ListLowStock(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jabón"}, names(list))

	all, err := repo.ListLowStock(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestOpen_IsIdempotentAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventario.db")
	ctx := context.Background()

	first, err := sqlite.Open(ctx, path, logger.NewNop())
	require.NoError(t, err)
	repo := sqlite.NewProductRepository(first)
	_, err = repo.Create(ctx, product("Leche", 10, "2.50", "almacen"))
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	reopened := openRepo(t, path)
	n, err := reopened.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestOpen_LegacyNullColumnsReadAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventario.db")
	ctx := context.Background()

	db, err := sqlite.Open(ctx, path, logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, db.Exec(
		`INSERT INTO productos (nombre, descripcion, cantidad, precio, categoria) VALUES ('Viejo', NULL, 1, 2, NULL)`,
	).Error)
	repo := sqlite.NewProductRepository(db)
	t.Cleanup(func() { _ = repo.Close() })

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "", list[0].Description)
	assert.Equal(t, "", list[0].Category)
}

func TestOpen_FailsOnMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "existe", "inventario.db")
	_, err := sqlite.Open(context.Background(), path, logger.NewNop())
	assert.Error(t, err)
}

func TestCreate_RejectsPriceOutsideReal(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, product("Caro", 1, "1e400", "varios"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	ids := seed(t, repo, product("Leche", 1, "2.5", "almacen"))
	p := product("Leche", 1, "1e400", "almacen")
	p.ID = ids[0]
	_, err = repo.Update(ctx, p)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestList_NonFinitePriceIsAnErrorNotAPanic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventario.db")
	ctx := context.Background()

	db, err := sqlite.Open(ctx, path, logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, db.Exec(
		`INSERT INTO productos (nombre, descripcion, cantidad, precio, categoria) VALUES ('Roto', '', 1, 9e999, 'varios')`,
	).Error)
	repo := sqlite.NewProductRepository(db)
	t.Cleanup(func() { _ = repo.Close() })

	assert.NotPanics(t, func() {
		_, err = repo.List(ctx)
	})
	assert.ErrorIs(t, err, sqlite.ErrCorruptRow)

	assert.NotPanics(t, func() {
		_, err = repo.GetByID(ctx, 1)
	})
	assert.ErrorIs(t, err, sqlite.ErrCorruptRow)
}
