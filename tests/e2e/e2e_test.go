package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/1Deeeeyl/multiple-activities/internal/database"
	"github.com/1Deeeeyl/multiple-activities/internal/domain"
	"github.com/1Deeeeyl/multiple-activities/internal/middleware"
	"github.com/1Deeeeyl/multiple-activities/internal/modules/account"
	"github.com/1Deeeeyl/multiple-activities/internal/modules/auth"
	"github.com/1Deeeeyl/multiple-activities/internal/modules/drive"
	"github.com/1Deeeeyl/multiple-activities/internal/modules/markdown"
	"github.com/1Deeeeyl/multiple-activities/internal/modules/todo"
	jwtsvc "github.com/1Deeeeyl/multiple-activities/internal/pkg/jwt"
	"github.com/1Deeeeyl/multiple-activities/internal/repository"
	"github.com/1Deeeeyl/multiple-activities/internal/storage"
)

const (
	driveBucket = "drive"
	foodBucket  = "food-imgs"
)

type E2ETestSuite struct {
	router *gin.Engine
	db     *gorm.DB
	store  *storage.Memory
}

type TestResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorDetail    `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db), "Failed to migrate test database")

	store := storage.NewMemory()

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	markdownRepo := repository.NewMarkdownRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	foodReviewRepo := repository.NewFoodReviewRepository(db)
	pokemonReviewRepo := repository.NewPokemonReviewRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, profileRepo, jwtService))
	todoHandler := todo.NewHandler(todo.NewService(todoRepo, nil))
	markdownHandler := markdown.NewHandler(markdown.NewService(markdownRepo, nil))
	driveHandler := drive.NewHandler(drive.NewService(store, driveBucket, nil))
	accountHandler := account.NewHandler(account.NewService(
		store,
		[]string{driveBucket, foodBucket},
		todoRepo, pokemonReviewRepo, markdownRepo, foodReviewRepo, foodRepo,
		profileRepo, userRepo,
	))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")

	authHandler.RegisterRoutes(v1, nil)

	protected := v1.Group("/")
	protected.Use(middleware.Auth(jwtService))
	{
		authHandler.RegisterRoutes(nil, protected)
		todoHandler.RegisterRoutes(protected)
		markdownHandler.RegisterRoutes(protected)
		driveHandler.RegisterRoutes(protected)
		accountHandler.RegisterRoutes(protected)
	}

	return &E2ETestSuite{router: r, db: db, store: store}
}

func (s *E2ETestSuite) makeRequest(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *E2ETestSuite) uploadFile(t *testing.T, path, filename string, data []byte, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *TestResponse {
	t.Helper()

	var resp TestResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Failed to parse response: status %d body %s", w.Code, w.Body.String())
	return &resp
}

func decodeData(t *testing.T, resp *TestResponse, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

// signup registers a fresh user and returns its token and id.
func (s *E2ETestSuite) signup(t *testing.T, username, email string) (string, string) {
	t.Helper()

	w := s.makeRequest("POST", "/api/v1/auth/signup", map[string]string{
		"username": username,
		"email":    email,
		"password": "Password123!",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, "signup failed: %s", w.Body.String())

	var data struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decodeData(t, parseResponse(t, w), &data)
	require.NotEmpty(t, data.Token)
	require.NotEmpty(t, data.User.ID)
	return data.Token, data.User.ID
}

func TestFlow_SignupAndLogin(t *testing.T) {
	suite := setupTestSuite(t)

	token, _ := suite.signup(t, "ash", "ash@test.com")

	t.Run("login with the same credentials", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/auth/login", map[string]string{
			"email":    "ash@test.com",
			"password": "Password123!",
		}, "")
		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		assert.True(t, resp.Success)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/auth/login", map[string]string{
			"email":    "ash@test.com",
			"password": "wrong",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("me returns the profile", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/auth/me", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		var me struct {
			Username string `json:"username"`
			Email    string `json:"email"`
		}
		decodeData(t, parseResponse(t, w), &me)
		assert.Equal(t, "ash", me.Username)
		assert.Equal(t, "ash@test.com", me.Email)
	})

	t.Run("protected route without token", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/todos", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestFlow_TodoLifecycle(t *testing.T) {
	suite := setupTestSuite(t)
	token, _ := suite.signup(t, "ash", "ash@test.com")

	var todoID string

	t.Run("create defaults priority to LOW", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/todos", map[string]string{"text": "Buy milk"}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created struct {
			ID       string `json:"id"`
			Text     string `json:"text"`
			IsDone   bool   `json:"is_done"`
			Priority string `json:"priority"`
		}
		decodeData(t, parseResponse(t, w), &created)
		assert.Equal(t, "Buy milk", created.Text)
		assert.False(t, created.IsDone)
		assert.Equal(t, "LOW", created.Priority)
		todoID = created.ID
	})

	t.Run("toggle flips only the done flag", func(t *testing.T) {
		w := suite.makeRequest("PATCH", "/api/v1/todos/"+todoID+"/toggle", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var toggled struct {
			Text   string `json:"text"`
			IsDone bool   `json:"is_done"`
		}
		decodeData(t, parseResponse(t, w), &toggled)
		assert.True(t, toggled.IsDone)
		assert.Equal(t, "Buy milk", toggled.Text)

		var count int64
		suite.db.Model(&domain.Todo{}).Count(&count)
		assert.Equal(t, int64(1), count, "toggle must not create a second row")
	})

	t.Run("listing twice returns the same single row", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			w := suite.makeRequest("GET", "/api/v1/todos", nil, token)
			require.Equal(t, http.StatusOK, w.Code)

			var todos []domain.Todo
			decodeData(t, parseResponse(t, w), &todos)
			require.Len(t, todos, 1)
			assert.True(t, todos[0].IsComplete)
		}
	})

	t.Run("delete then delete again", func(t *testing.T) {
		w := suite.makeRequest("DELETE", "/api/v1/todos/"+todoID, nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest("DELETE", "/api/v1/todos/"+todoID, nil, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFlow_DriveRename(t *testing.T) {
	suite := setupTestSuite(t)
	token, _ := suite.signup(t, "ash", "ash@test.com")

	w := suite.uploadFile(t, "/api/v1/drive/files", "draft.txt", []byte("contents"), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	t.Run("duplicate upload conflicts", func(t *testing.T) {
		w := suite.uploadFile(t, "/api/v1/drive/files", "draft.txt", []byte("other"), token)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("rename moves the object", func(t *testing.T) {
		w := suite.makeRequest("PATCH", "/api/v1/drive/files/draft.txt/rename",
			map[string]string{"new_name": "final.txt"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var result drive.RenameResult
		decodeData(t, parseResponse(t, w), &result)
		assert.Equal(t, []drive.RenameStep{drive.StepDownloaded, drive.StepUploaded, drive.StepOldDeleted}, result.Steps)
		require.Len(t, result.Files, 1)
		assert.Equal(t, "final.txt", result.Files[0].Name)
	})

	t.Run("old name is gone", func(t *testing.T) {
		w := suite.makeRequest("DELETE", "/api/v1/drive/files/draft.txt", nil, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFlow_AccountDeletion(t *testing.T) {
	suite := setupTestSuite(t)
	ctx := context.Background()

	token, userID := suite.signup(t, "ash", "ash@test.com")
	otherToken, _ := suite.signup(t, "misty", "misty@test.com")

	// Owned data across tables and buckets.
	for _, text := range []string{"Buy milk", "Walk the dog"} {
		w := suite.makeRequest("POST", "/api/v1/todos", map[string]string{"text": text}, token)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w := suite.makeRequest("POST", "/api/v1/markdowns", map[string]string{"title": "Notes", "body": "# hi"}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	w = suite.uploadFile(t, "/api/v1/drive/files", "keep.txt", []byte("data"), token)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, suite.store.Upload(ctx, foodBucket, userID+"/img.png", []byte("png"), "image/png"))

	t.Run("cannot delete another user's account", func(t *testing.T) {
		w := suite.makeRequest("DELETE", "/api/v1/users/"+userID, nil, otherToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("full deletion", func(t *testing.T) {
		w := suite.makeRequest("DELETE", "/api/v1/users/"+userID, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var report account.CleanupReport
		decodeData(t, parseResponse(t, w), &report)
		assert.True(t, report.Deleted)
		for _, step := range report.Steps {
			assert.True(t, step.OK, fmt.Sprintf("step %s failed: %s", step.Step, step.Error))
		}
	})

	t.Run("everything owned is gone", func(t *testing.T) {
		var todos, markdowns, profiles int64
		suite.db.Model(&domain.Todo{}).Where("profile_id = ?", userID).Count(&todos)
		suite.db.Model(&domain.Markdown{}).Where("profile_id = ?", userID).Count(&markdowns)
		suite.db.Model(&domain.Profile{}).Where("profile_id = ?", userID).Count(&profiles)
		assert.Zero(t, todos)
		assert.Zero(t, markdowns)
		assert.Zero(t, profiles)

		driveObjects, err := suite.store.List(ctx, driveBucket, userID)
		require.NoError(t, err)
		assert.Empty(t, driveObjects)
		foodObjects, err := suite.store.List(ctx, foodBucket, userID)
		require.NoError(t, err)
		assert.Empty(t, foodObjects)
	})

	t.Run("second delete fails authorization", func(t *testing.T) {
		// The old token is still cryptographically valid; the account
		// behind it is gone.
		w := suite.makeRequest("DELETE", "/api/v1/users/"+userID, nil, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		resp := parseResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)
	})

	t.Run("login no longer works", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/auth/login", map[string]string{
			"email":    "ash@test.com",
			"password": "Password123!",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("other user is untouched", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/auth/me", nil, otherToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
