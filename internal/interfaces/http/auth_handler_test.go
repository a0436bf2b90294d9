package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayaneflai9-afk/phynteck/internal/application/auth"
	"github.com/rayaneflai9-afk/phynteck/internal/application/session"
	apphttp "github.com/rayaneflai9-afk/phynteck/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildAuthApp monte les routes d'auth sur une app Fiber sans latence simulée.
func buildAuthApp() (*fiber.App, *session.Store) {
	store := session.NewStore(session.NewMemorySlot())
	uc := auth.NewAuthUseCase(store, auth.Delays{})
	h := apphttp.NewAuthHandler(uc)

	app := fiber.New()
	app.Post("/api/auth/login", h.Login)
	app.Post("/api/auth/register", h.Register)
	app.Post("/api/auth/logout", h.Logout)
	app.Get("/api/auth/me", apphttp.RequireSession(store), h.Me)
	return app, store
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// formulaire fournisseur minimal valide.
func formulaireFournisseur() map[string]interface{} {
	return map[string]interface{}{
		"companyLegalName":     "Ferme Bio Alger",
		"commercialRegNumber":  "16/2020/1234567",
		"contactEmail":         "contact@fermebio.dz",
		"password":             "motdepasse1",
		"confirmPassword":      "motdepasse1",
		"acceptTerms":          true,
		"acceptDataProcessing": true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

// Cas 1 : connexion valide → 200 avec l'identité; la session est ouverte.
func TestLoginHandler_ConnexionValide(t *testing.T) {
	app, store := buildAuthApp()

	resp := postJSON(t, app, "/api/auth/login", map[string]string{
		"email": "admin@phynteck.dz", "password": "x",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		User struct {
			Role   string `json:"role"`
			Status string `json:"status"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "admin", body.User.Role)
	assert.Equal(t, "approved", body.User.Status)
	require.NotNil(t, store.Current())
}

// Cas 2 : champs manquants → 400 VALIDATION, pas de session ouverte.
func TestLoginHandler_ChampsManquants(t *testing.T) {
	app, store := buildAuthApp()

	resp := postJSON(t, app, "/api/auth/login", map[string]string{"email": "a@b.dz"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, store.Current())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register — validation du formulaire fournisseur
// ──────────────────────────────────────────────────────────────────────────────

// Cas 3 : formulaire fournisseur valide → 201, loggedIn=false, session fermée.
func TestRegisterHandler_FournisseurValide(t *testing.T) {
	app, store := buildAuthApp()

	resp := postJSON(t, app, "/api/auth/register", formulaireFournisseur())
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		User struct {
			Status      string `json:"status"`
			CompanyName string `json:"companyName"`
		} `json:"user"`
		LoggedIn bool `json:"loggedIn"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "pending", body.User.Status)
	assert.Equal(t, "Ferme Bio Alger", body.User.CompanyName)
	assert.False(t, body.LoggedIn)
	assert.Nil(t, store.Current(), "un fournisseur inscrit ne doit pas être connecté")
}

// Cas 4 : numéro de registre de commerce hors format → 400.
func TestRegisterHandler_RegistreCommerceInvalide(t *testing.T) {
	app, _ := buildAuthApp()

	form := formulaireFournisseur()
	form["commercialRegNumber"] = "1234567"
	resp := postJSON(t, app, "/api/auth/register", form)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "registre de commerce")
}

// Cas 5 : mots de passe différents → 400.
func TestRegisterHandler_MotsDePasseDifferents(t *testing.T) {
	app, _ := buildAuthApp()

	form := formulaireFournisseur()
	form["confirmPassword"] = "autrechose1"
	resp := postJSON(t, app, "/api/auth/register", form)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Cas 5b : conditions générales non acceptées → 400.
func TestRegisterHandler_ConditionsNonAcceptees(t *testing.T) {
	app, _ := buildAuthApp()

	form := formulaireFournisseur()
	form["acceptTerms"] = false
	resp := postJSON(t, app, "/api/auth/register", form)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Cas 6 : inscription admin → 201, loggedIn=true, session ouverte.
func TestRegisterHandler_AdminConnecte(t *testing.T) {
	app, store := buildAuthApp()

	resp := postJSON(t, app, "/api/auth/register", map[string]interface{}{
		"role":     "admin",
		"email":    "nouvel.admin@phynteck.dz",
		"name":     "Nouvel Admin",
		"password": "motdepasse1",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, store.Current(), "un admin inscrit est connecté immédiatement")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Logout et Me
// ──────────────────────────────────────────────────────────────────────────────

// Cas 7 : /me sans session → 401; après connexion → 200; après logout → 401.
func TestMeHandler_SuitLaSession(t *testing.T) {
	app, _ := buildAuthApp()

	get := func() *http.Response {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	resp := get()
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = postJSON(t, app, "/api/auth/login", map[string]string{"email": "ferme@exemple.dz", "password": "x"})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var me struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	assert.Equal(t, "ferme@exemple.dz", me.Email)

	logoutResp := postJSON(t, app, "/api/auth/logout", nil)
	logoutResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, logoutResp.StatusCode)

	resp = get()
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
