package utils

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/himtourism/homestay-portal/internal/models"
)

type memoryPropertyRepo struct {
	properties []*models.Property
}

func (r *memoryPropertyRepo) Create(_ context.Context, p *models.Property) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	r.properties = append(r.properties, p)
	return nil
}

func (r *memoryPropertyRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Property, error) {
	for _, p := range r.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memoryPropertyRepo) FindByRegistrationNo(_ context.Context, regNo string) (*models.Property, error) {
	for _, p := range r.properties {
		if p.RegistrationNo == regNo {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memoryPropertyRepo) Search(_ context.Context, _ models.PropertyFilter, _, _ int) ([]*models.Property, error) {
	return r.properties, nil
}

func (r *memoryPropertyRepo) Update(_ context.Context, _ *models.Property) error { return nil }

func (r *memoryPropertyRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.properties)), nil
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "legacy.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportProperties_LegacyRegister(t *testing.T) {
	repo := &memoryPropertyRepo{}
	importer := NewCSVImporter(repo)

	path := writeTempCSV(t, `Registration No,Homestay Name,Owner Name,District,Tehsil,Category,Rooms,Beds,Phone
HPHS/KULLU/2019/000123,Old Manali Retreat,Prem Singh,Kullu,Manali,Gold,3,6,9805011111
HPHS/SHIMLA/2017/000045,Cedar Lodge,Asha Devi,Shimla,Kotkhai,,2,4,
,Missing RegNo Homestay,X,Shimla,,,1,2,
`)

	result, err := importer.ImportProperties(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Len(t, result.Errors, 1)

	first, err := repo.FindByRegistrationNo(context.Background(), "HPHS/KULLU/2019/000123")
	require.NoError(t, err)
	assert.Equal(t, "Old Manali Retreat", first.Name)
	assert.Equal(t, models.CategoryGold, first.Category)
	assert.Equal(t, models.SourceLegacy, first.Source)
	assert.Equal(t, 3, first.Rooms)
	assert.Equal(t, 6, first.Beds)

	second, err := repo.FindByRegistrationNo(context.Background(), "HPHS/SHIMLA/2017/000045")
	require.NoError(t, err)
	assert.Equal(t, models.CategorySilver, second.Category, "blank legacy category defaults to silver")
}

func TestImportProperties_RerunIsIdempotent(t *testing.T) {
	repo := &memoryPropertyRepo{}
	importer := NewCSVImporter(repo)

	path := writeTempCSV(t, `Reg No,Name,District
HPHS/KANGRA/2020/000789,Dhauladhar Nest,Kangra
`)

	first, err := importer.ImportProperties(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Imported)

	second, err := importer.ImportProperties(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Imported)
	assert.Equal(t, 1, second.Skipped)
	assert.Len(t, repo.properties, 1)
}

func TestImportProperties_RequiresCoreColumns(t *testing.T) {
	importer := NewCSVImporter(&memoryPropertyRepo{})

	path := writeTempCSV(t, `Owner Name,Phone
Prem Singh,9805011111
`)
	_, err := importer.ImportProperties(context.Background(), path)
	assert.Error(t, err)
}
