package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearpath-labs/semcore-cli/internal/core/domain"
)

func TestBuildCmd_Use(t *testing.T) {
	assert.Equal(t, "build <seed>...", buildCmd.Use)
}

func TestBuildCmd_Short(t *testing.T) {
	assert.Equal(t, "Build a semantic core from seed phrases", buildCmd.Short)
}

func TestBuildCmd_RequiresSeeds(t *testing.T) {
	_, _, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute("build")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts between 1 and 5 arg(s)")
}

func TestBuildCmd_RejectsTooManySeeds(t *testing.T) {
	_, _, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute("build", "a", "b", "c", "d", "e", "f")

	assert.Error(t, err)
}

func TestBuildCmd_PassesRequestToService(t *testing.T) {
	core, _, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute("build", "running shoes", "trail shoes",
		"--language", "de", "--location", "2276", "--target", "50",
		"--competitor", "rival.example", "--min-volume", "100", "--max-difficulty", "70")

	require.NoError(t, err)
	require.Equal(t, 1, core.calls)
	assert.Equal(t, []string{"running shoes", "trail shoes"}, core.lastReq.Seeds)
	assert.Equal(t, "de", core.lastReq.Locale.LanguageCode)
	assert.Equal(t, 2276, core.lastReq.Locale.LocationCode)
	assert.Equal(t, 50, core.lastReq.TargetSize)
	assert.Equal(t, "rival.example", core.lastReq.CompetitorDomain)
	require.NotNil(t, core.lastReq.Filters)
	assert.Equal(t, 100, core.lastReq.Filters.MinSearchVolume)
	assert.Equal(t, 70, core.lastReq.Filters.MaxDifficulty)
}

func TestBuildCmd_ResolvesNamedLocation(t *testing.T) {
	core, _, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute("build", "налоговое по", "--location-name", "Russia")

	require.NoError(t, err)
	assert.Equal(t, 2643, core.lastReq.Locale.LocationCode)
	assert.Equal(t, "ru", core.lastReq.Locale.LanguageCode)
}

func TestBuildCmd_ExplicitLanguageBeatsNamedLocation(t *testing.T) {
	core, _, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute("build", "tax software", "--location-name", "Russia", "--language", "en")

	require.NoError(t, err)
	assert.Equal(t, 2643, core.lastReq.Locale.LocationCode)
	assert.Equal(t, "en", core.lastReq.Locale.LanguageCode)
}

func TestBuildCmd_UnknownLocationName(t *testing.T) {
	_, _, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute("build", "tax software", "--location-name", "Atlantis")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildCmd_TableOutput(t *testing.T) {
	_, _, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute("build", "running shoes")

	require.NoError(t, err)
	assert.Contains(t, out, "run-test-1")
	assert.Contains(t, out, "Keywords: 3 (of 17 found)")
	assert.Contains(t, out, "Clusters: 1")
	assert.Contains(t, out, "[0] running shoes sale")
	assert.Contains(t, out, "intent transactional")
	assert.Contains(t, out, "seed")
}

func TestBuildCmd_JSONOutput(t *testing.T) {
	_, _, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute("build", "running shoes", "--json")

	require.NoError(t, err)
	var result domain.CoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "run-test-1", result.RunID)
	assert.Len(t, result.Keywords, 3)
}

func TestBuildCmd_WritesCSV(t *testing.T) {
	_, _, cleanup := setupTestServices(t)
	defer cleanup()

	path := filepath.Join(t.TempDir(), "clusters.csv")
	out, err := execute("build", "running shoes", "--csv", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Clusters written to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cluster_id,cluster_name,keyword")
	assert.Contains(t, string(data), "running shoes sale")
}

func TestBuildCmd_SavesRunRecord(t *testing.T) {
	_, runs, cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute("build", "running shoes", "--target", "50")

	require.NoError(t, err)
	require.Len(t, runs.runs, 1)
	record := runs.runs[0]
	assert.Equal(t, "run-test-1", record.ID)
	assert.Equal(t, []string{"running shoes"}, record.Seeds)
	assert.Equal(t, 50, record.TargetSize)
	assert.Equal(t, 17, record.TotalFound)
	assert.Equal(t, 3, record.KeywordCount)
	assert.Equal(t, 1, record.ClusterCount)
}

func TestBuildCmd_SaveFailureDoesNotFailBuild(t *testing.T) {
	_, runs, cleanup := setupTestServices(t)
	defer cleanup()
	runs.saveErr = assert.AnError

	out, err := execute("build", "running shoes")

	require.NoError(t, err)
	assert.Contains(t, out, "run-test-1")
}

func TestBuildCmd_BudgetExceeded(t *testing.T) {
	core, _, cleanup := setupTestServices(t)
	defer cleanup()
	core.err = domain.ErrBudgetExceeded

	_, err := execute("build", "running shoes")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBudgetExceeded)
	assert.Contains(t, err.Error(), "blocked by budget")
}

func TestBuildCmd_ServiceError(t *testing.T) {
	core, _, cleanup := setupTestServices(t)
	defer cleanup()
	core.err = domain.ErrNoSeedData

	_, err := execute("build", "running shoes")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "build failed")
}
