package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/arabello/hub-frontend-new/internal/domain"
	"github.com/arabello/hub-frontend-new/internal/dto"
	"github.com/arabello/hub-frontend-new/internal/render"
	"github.com/arabello/hub-frontend-new/internal/testutil"
	"github.com/arabello/hub-frontend-new/internal/usecase"
)

func newExporter(t *testing.T, source domain.IndexSource) *Exporter {
	t.Helper()

	catalogUC := usecase.NewCatalogUseCase(source, nil)
	searchUC := usecase.NewSearchUseCase(catalogUC)

	tpl, err := render.Templates()
	assert.NoError(t, err)

	return New(catalogUC, searchUC, tpl, "Snippet Hub")
}

func TestExport(t *testing.T) {
	source := new(testutil.MockIndexSource)
	source.On("Snapshot", mock.Anything).Return(&domain.Snapshot{
		FetchedAt:  time.Now(),
		LastUpdate: time.Unix(1700000000, 0),
		Entries: []domain.IndexEntry{
			{Name: "emoji", Title: "Emoji Pack", Author: "jane", Version: "1.0.0", Tags: []string{"fun"}},
			{Name: "emoji", Title: "Emoji Pack", Author: "jane", Version: "1.1.0", Tags: []string{"fun"}},
		},
	}, nil)

	dir := filepath.Join(t.TempDir(), "out")
	err := newExporter(t, source).Export(context.Background(), dir)
	assert.NoError(t, err)

	for _, rel := range []string{
		"index.html",
		filepath.Join("search", "index.html"),
		filepath.Join("emoji", "index.html"),
		filepath.Join("emoji", "1.1.0", "index.html"),
		filepath.Join("emoji", "1.0.0", "index.html"),
		filepath.Join("api", "v1", "packages.json"),
		filepath.Join("api", "v1", "tags.json"),
		filepath.Join("api", "v1", "packages", "emoji.json"),
		filepath.Join("api", "v1", "packages", "emoji", "versions.json"),
		filepath.Join("api", "v1", "packages", "emoji", "versions", "1.0.0.json"),
	} {
		_, err := os.Stat(filepath.Join(dir, rel))
		assert.NoError(t, err, rel)
	}

	// Readable by a static host running as any user.
	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	raw, err := os.ReadFile(filepath.Join(dir, "api", "v1", "packages.json"))
	assert.NoError(t, err)
	var resp dto.ListPackagesResponse
	assert.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "1.1.0", resp.Items[0].Version)

	raw, err = os.ReadFile(filepath.Join(dir, "api", "v1", "packages", "emoji", "versions.json"))
	assert.NoError(t, err)
	var versions dto.ListVersionsResponse
	assert.NoError(t, json.Unmarshal(raw, &versions))
	assert.Equal(t, []string{"1.1.0", "1.0.0"}, versions.Versions)
}

func TestExport_AbortsBeforeWriting(t *testing.T) {
	source := new(testutil.MockIndexSource)
	source.On("Snapshot", mock.Anything).Return(nil, domain.ErrIndexUnavailable)

	dir := filepath.Join(t.TempDir(), "out")
	err := newExporter(t, source).Export(context.Background(), dir)

	assert.ErrorIs(t, err, domain.ErrIndexUnavailable)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExport_ReplacesPreviousBuild(t *testing.T) {
	source := new(testutil.MockIndexSource)
	source.On("Snapshot", mock.Anything).Return(&domain.Snapshot{
		Entries: []domain.IndexEntry{
			{Name: "accents", Title: "Accents", Author: "ada", Version: "2.0.0"},
		},
	}, nil)

	dir := filepath.Join(t.TempDir(), "out")
	assert.NoError(t, os.MkdirAll(filepath.Join(dir, "stale"), 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "stale", "index.html"), []byte("old"), 0o644))

	err := newExporter(t, source).Export(context.Background(), dir)
	assert.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "stale"))
	assert.True(t, os.IsNotExist(statErr))
	_, err = os.Stat(filepath.Join(dir, "accents", "index.html"))
	assert.NoError(t, err)
}
