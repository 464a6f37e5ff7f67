package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gamelog-tracker/internal/api"
	"gamelog-tracker/internal/config"
	"gamelog-tracker/internal/database"
	"gamelog-tracker/internal/db"
	"gamelog-tracker/internal/repository"
	"gamelog-tracker/internal/server"
	"gamelog-tracker/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type stubFetcher map[string]string

func (f stubFetcher) Fetch(_ context.Context, rawURL string) (string, error) {
	if !strings.HasPrefix(rawURL, "http://") {
		return "", api.ErrInvalidURL
	}

	body, found := f[rawURL]
	if !found {
		return "", fmt.Errorf("%w: status 404", api.ErrRemoteFetch)
	}

	return body, nil
}

type uploadFile struct {
	name    string
	content string
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		DBPath:         filepath.Join(t.TempDir(), "test.db"),
		MaxUploadBytes: 1 << 20,
	}

	sqlDB, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	queries := db.New(sqlDB)
	matchRepo := repository.NewMatchRepository(sqlDB, queries, zerolog.Nop())
	playerStatsRepo := repository.NewPlayerStatsRepository(sqlDB, queries, zerolog.Nop())

	fetcher := stubFetcher{"http://logs.local/game.log": readExampleLog(t)}

	srv := server.NewServer(
		cfg,
		service.NewGameLogsService(matchRepo, fetcher, zerolog.Nop()),
		service.NewMatchService(matchRepo, zerolog.Nop()),
		service.NewPlayerService(playerStatsRepo, zerolog.Nop()),
	)

	return srv.Routes()
}

func readExampleLog(t *testing.T) string {
	t.Helper()

	body, err := os.ReadFile(filepath.Join("..", "logparse", "testdata", "three_matches.log"))
	require.NoError(t, err)

	return string(body)
}

func uploadRequest(t *testing.T, files ...uploadFile) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, file := range files {
		part, err := writer.CreateFormFile("file", file.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(file.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/game-logs/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func do(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var value T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &value))
	return value
}

type processResponse struct {
	ProcessedMatches int      `json:"processedMatches"`
	ParseErrors      []string `json:"parseErrors"`
}

type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func TestUploadGameLogs(t *testing.T) {
	handler := newTestServer(t)

	rec := do(handler, uploadRequest(t, uploadFile{name: "game.log", content: readExampleLog(t)}))
	require.Equal(t, http.StatusCreated, rec.Code)

	result := decode[processResponse](t, rec)
	require.Equal(t, 3, result.ProcessedMatches)
	require.Equal(t, []string{
		"game.log: Line 13: Match not started before processing event 'KILL'",
		"game.log: Line 21: Unknown event type",
	}, result.ParseErrors)
}

func TestUploadGameLogsUppercaseExtension(t *testing.T) {
	handler := newTestServer(t)

	rec := do(handler, uploadRequest(t, uploadFile{name: "GAME.TXT", content: ""}))
	require.Equal(t, http.StatusCreated, rec.Code)

	result := decode[processResponse](t, rec)
	require.Zero(t, result.ProcessedMatches)
	require.NotNil(t, result.ParseErrors)
	require.Empty(t, result.ParseErrors)
}

func TestUploadGameLogsRejected(t *testing.T) {
	tests := []struct {
		name    string
		req     func(t *testing.T) *http.Request
		message string
	}{
		{
			name: "no file",
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t)
			},
			message: "No file uploaded",
		},
		{
			name: "not multipart",
			req: func(*testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/game-logs/upload", strings.NewReader("{}"))
			},
			message: "No file uploaded",
		},
		{
			name: "bad extension",
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, uploadFile{name: "game.csv", content: "x"})
			},
			message: "Invalid file extension. Only .log, .txt files are allowed",
		},
		{
			name: "one bad extension among many",
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t,
					uploadFile{name: "a.log", content: ""},
					uploadFile{name: "b.exe", content: ""},
				)
			},
			message: "Invalid file extension. Only .log, .txt files are allowed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := newTestServer(t)

			rec := do(handler, tc.req(t))
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, errorResponse{Name: "BadRequestError", Message: tc.message}, decode[errorResponse](t, rec))
		})
	}
}

func TestUploadGameLogsDuplicate(t *testing.T) {
	handler := newTestServer(t)
	content := readExampleLog(t)

	require.Equal(t, http.StatusCreated, do(handler, uploadRequest(t, uploadFile{name: "a.log", content: content})).Code)

	rec := do(handler, uploadRequest(t, uploadFile{name: "a.log", content: content}))
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, errorResponse{
		Name:    "EntityAlreadyExistsError",
		Message: "Match with id 11348965 already exists",
	}, decode[errorResponse](t, rec))
}

func TestUploadGameLogsTooLarge(t *testing.T) {
	handler := newTestServer(t)

	rec := do(handler, uploadRequest(t, uploadFile{name: "a.log", content: strings.Repeat("x", 2<<20)}))
	require.GreaterOrEqual(t, rec.Code, http.StatusBadRequest)
	require.Less(t, rec.Code, http.StatusInternalServerError)
}

func TestProcessRemoteGameLog(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		errMsg string
	}{
		{name: "ok", body: `{"url":"http://logs.local/game.log"}`, status: http.StatusCreated},
		{name: "missing url", body: `{}`, status: http.StatusBadRequest, errMsg: "URL is required"},
		{name: "bad json", body: `{`, status: http.StatusBadRequest, errMsg: "Invalid request body"},
		{name: "bad scheme", body: `{"url":"ftp://logs.local/game.log"}`, status: http.StatusBadRequest, errMsg: api.ErrInvalidURL.Error()},
		{name: "not found", body: `{"url":"http://logs.local/missing.log"}`, status: http.StatusBadGateway, errMsg: api.ErrRemoteFetch.Error()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := newTestServer(t)

			rec := do(handler, httptest.NewRequest(http.MethodPost, "/game-logs/remote", strings.NewReader(tc.body)))
			require.Equal(t, tc.status, rec.Code)

			if tc.errMsg != "" {
				require.Equal(t, tc.errMsg, decode[errorResponse](t, rec).Message)
				return
			}

			require.Equal(t, 3, decode[processResponse](t, rec).ProcessedMatches)
		})
	}
}

func TestMatchesEndpoints(t *testing.T) {
	handler := newTestServer(t)

	require.Equal(t, http.StatusCreated, do(handler, uploadRequest(t, uploadFile{name: "a.log", content: readExampleLog(t)})).Code)

	rec := do(handler, httptest.NewRequest(http.MethodGet, "/matches", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	type matchSummary struct {
		ID        string `json:"id"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
		Players   []struct {
			Name string `json:"name"`
		} `json:"players"`
	}
	matches := decode[[]matchSummary](t, rec)
	require.Len(t, matches, 3)
	require.Equal(t, "11348965", matches[0].ID)
	require.Equal(t, "2019-04-23T15:34:22Z", matches[0].StartTime)
	require.Equal(t, "2019-04-23T15:39:22Z", matches[0].EndTime)
	require.Len(t, matches[0].Players, 2)

	rec = do(handler, httptest.NewRequest(http.MethodGet, "/matches/11348961/ranking", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	type rankingResponse struct {
		MatchID string `json:"matchId"`
		Ranking []struct {
			Position   int     `json:"position"`
			PlayerName string  `json:"playerName"`
			Kills      int     `json:"kills"`
			Deaths     int     `json:"deaths"`
			KDA        float64 `json:"KDA"`
		} `json:"ranking"`
	}
	ranking := decode[rankingResponse](t, rec)
	require.Equal(t, "11348961", ranking.MatchID)
	require.Equal(t, "Marcus", ranking.Ranking[0].PlayerName)
	require.Equal(t, 1, ranking.Ranking[0].Position)
	require.Equal(t, 4.0, ranking.Ranking[0].KDA)

	rec = do(handler, httptest.NewRequest(http.MethodGet, "/matches/404/ranking", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, errorResponse{
		Name:    "EntityNotFoundError",
		Message: "Match with ID 404 not found",
	}, decode[errorResponse](t, rec))

	rec = do(handler, httptest.NewRequest(http.MethodDelete, "/matches", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(handler, httptest.NewRequest(http.MethodGet, "/matches", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestGlobalRankingEndpoint(t *testing.T) {
	handler := newTestServer(t)

	rec := do(handler, httptest.NewRequest(http.MethodGet, "/players/ranking", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ranking":[]}`, rec.Body.String())

	require.Equal(t, http.StatusCreated, do(handler, uploadRequest(t, uploadFile{name: "a.log", content: readExampleLog(t)})).Code)

	rec = do(handler, httptest.NewRequest(http.MethodGet, "/players/ranking", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	type globalRanking struct {
		Ranking []struct {
			PlayerName    string  `json:"playerName"`
			TotalKills    int     `json:"totalKills"`
			TotalDeaths   int     `json:"totalDeaths"`
			OverallKDA    float64 `json:"overallKDA"`
			BestStreak    int     `json:"bestStreak"`
			MatchesPlayed int     `json:"matchesPlayed"`
		} `json:"ranking"`
	}
	ranking := decode[globalRanking](t, rec)
	require.Len(t, ranking.Ranking, 5)

	marcus := ranking.Ranking[0]
	require.Equal(t, "Marcus", marcus.PlayerName)
	require.Equal(t, 4, marcus.TotalKills)
	require.Equal(t, 1, marcus.TotalDeaths)
	require.Equal(t, 4.0, marcus.OverallKDA)
	require.Equal(t, 4, marcus.BestStreak)
	require.Equal(t, 1, marcus.MatchesPlayed)
}

func TestHealthz(t *testing.T) {
	rec := do(newTestServer(t), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
