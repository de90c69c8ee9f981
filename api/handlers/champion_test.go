package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"riftbook/api/handlers"
	"riftbook/api/routes"
	championservice "riftbook/api/services/champion"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChampionRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "champions.json")
	document := `[
		{"key":"266","id":"Aatrox","name":"Aatrox","title":"the Darkin Blade",
		 "tags":["Fighter"],"partype":"Blood Well",
		 "info":{"difficulty":4},"stats":{"hp":650,"attackrange":175}},
		{"key":"103","id":"Ahri","name":"Ahri","title":"the Nine-Tailed Fox",
		 "tags":["Mage"],"partype":"Mana",
		 "info":{"difficulty":5},"stats":{"hp":590,"attackrange":550}}
	]`
	require.NoError(t, os.WriteFile(path, []byte(document), 0o644))

	championService, err := championservice.NewService(championservice.ServiceDeps{
		ChampionsFile: path,
		Logger:        zerolog.Nop(),
	})
	require.NoError(t, err)

	engine := gin.New()
	router := routes.NewRouter(engine)
	router.SetupRoutes(handlers.NewChampionHandler(&handlers.ChampionHandlerDependencies{
		ChampionService: championService,
	}))

	return engine
}

func performRequest(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestListChampionsFiltered(t *testing.T) {
	engine := newChampionRouter(t)

	recorder := performRequest(engine, "/api/v1/champions?role=Mage")
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Result []struct {
			Name string `json:"name"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Result, 1)
	assert.Equal(t, "Ahri", response.Result[0].Name)
}

func TestGetChampionById(t *testing.T) {
	engine := newChampionRouter(t)

	recorder := performRequest(engine, "/api/v1/champions/266")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Aatrox")
}

func TestGetChampionUnknownId(t *testing.T) {
	engine := newChampionRouter(t)

	recorder := performRequest(engine, "/api/v1/champions/9999")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetRosterStats(t *testing.T) {
	engine := newChampionRouter(t)

	recorder := performRequest(engine, "/api/v1/champions/stats")
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Result struct {
			Total             int     `json:"total"`
			AverageDifficulty float64 `json:"averageDifficulty"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Result.Total)
	assert.Equal(t, 4.5, response.Result.AverageDifficulty)
}

func TestGetChampionFacets(t *testing.T) {
	engine := newChampionRouter(t)

	recorder := performRequest(engine, "/api/v1/champions/facets")
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Result struct {
			Roles     []string `json:"roles"`
			Resources []string `json:"resources"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, []string{"Fighter", "Mage"}, response.Result.Roles)
	assert.Equal(t, []string{"Blood Well", "Mana"}, response.Result.Resources)
}
