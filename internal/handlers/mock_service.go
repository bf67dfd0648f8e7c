package handlers

import (
	"context"
	"net/http"

	"recipes_api/internal/models"
	"recipes_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID    string
	signUpErr   error
	loginUser   *models.User
	loginToken  string
	loginErr    error
	parseID     string
	parseErr    error
	passwordErr error

	lastUsername   string
	lastPassword   string
	lastParseToken string
	parseCalls     int
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (string, error) {
	m.lastUsername = username
	m.lastPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) Login(_ context.Context, username, password string) (*models.User, string, error) {
	m.lastUsername = username
	m.lastPassword = password
	return m.loginUser, m.loginToken, m.loginErr
}
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.parseCalls++
	m.lastParseToken = token
	return m.parseID, m.parseErr
}
func (m *mockAuth) ChangePassword(_ context.Context, username, password string) error {
	m.lastUsername = username
	m.lastPassword = password
	return m.passwordErr
}

type mockRecipes struct {
	saved     models.Recipe
	saveErr   error
	list      []models.Recipe
	listErr   error
	fetched   models.Recipe
	fetchErr  error
	updated   models.Recipe
	updateErr error
	deleteErr error

	lastID     string
	lastInput  models.RecipeInput
	lastPatch  models.RecipePatch
	saveCalls  int
	storeCalls int
}

func (m *mockRecipes) SaveRecipe(_ context.Context, in models.RecipeInput) (models.Recipe, error) {
	m.saveCalls++
	m.storeCalls++
	m.lastInput = in
	return m.saved, m.saveErr
}
func (m *mockRecipes) AllRecipes(context.Context) ([]models.Recipe, error) {
	m.storeCalls++
	return m.list, m.listErr
}
func (m *mockRecipes) FetchByID(_ context.Context, id string) (models.Recipe, error) {
	m.storeCalls++
	m.lastID = id
	return m.fetched, m.fetchErr
}
func (m *mockRecipes) FetchByIDAndUpdate(_ context.Context, id string, p models.RecipePatch) (models.Recipe, error) {
	m.storeCalls++
	m.lastID = id
	m.lastPatch = p
	return m.updated, m.updateErr
}
func (m *mockRecipes) FetchByIDAndDelete(_ context.Context, id string) error {
	m.storeCalls++
	m.lastID = id
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
