package http_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Registro completo → 201 con usuario y token; el password nunca sale en la respuesta.
func TestRegister_Exitoso_Retorna201ConToken(t *testing.T) {
	env := buildTestApp(t, true)
	body := `{"username":"maria","email":"maria@tienda.com","password":"secreto123"}`

	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/register", body, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), `"token"`)
	assert.Contains(t, string(raw), `"maria@tienda.com"`)
	assert.NotContains(t, string(raw), "secreto123", "el password no debe aparecer en la respuesta")
	assert.NotContains(t, string(raw), "password_hash")
}

// Registro con email repetido → 400 CONFLICT.
func TestRegister_EmailRepetido_Retorna400(t *testing.T) {
	env := buildTestApp(t, true)
	body := `{"username":"maria","email":"maria@tienda.com","password":"secreto123"}`
	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/register", body, "")
	resp.Body.Close()

	body2 := `{"username":"otra","email":"maria@tienda.com","password":"secreto123"}`
	resp2 := doJSON(t, env.app, http.MethodPost, "/api/auth/register", body2, "")
	defer resp2.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
	raw, _ := io.ReadAll(resp2.Body)
	assert.Contains(t, string(raw), "CONFLICT")
}

// Registro sin campos obligatorios → 400 VALIDATION.
func TestRegister_SinCampos_Retorna400(t *testing.T) {
	env := buildTestApp(t, true)
	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/register", `{"email":"x@y.com"}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Login con credenciales correctas → 200 con token utilizable en /me.
func TestLogin_CredencialesCorrectas_Retorna200(t *testing.T) {
	env := buildTestApp(t, true)
	registerAndLogin(t, env)

	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/login",
		`{"email":"admin@tienda.com","password":"secreto123"}`, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, decodeJSON(resp.Body, &out))
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "admin@tienda.com", out.User.Email)

	me := doJSON(t, env.app, http.MethodGet, "/api/auth/me", "", out.Token)
	defer me.Body.Close()
	assert.Equal(t, http.StatusOK, me.StatusCode)
}

// Login con password incorrecto → 401 sin distinguir causa.
func TestLogin_PasswordIncorrecto_Retorna401(t *testing.T) {
	env := buildTestApp(t, true)
	registerAndLogin(t, env)

	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/login",
		`{"email":"admin@tienda.com","password":"equivocado"}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Login con email desconocido → mismo 401 que password incorrecto.
func TestLogin_EmailDesconocido_Retorna401(t *testing.T) {
	env := buildTestApp(t, true)
	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/login",
		`{"email":"nadie@tienda.com","password":"loquesea"}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Forgot-password responde 200 exista o no la cuenta.
func TestForgotPassword_SiempreRetorna200(t *testing.T) {
	env := buildTestApp(t, true)
	registerAndLogin(t, env)

	existe := doJSON(t, env.app, http.MethodPost, "/api/auth/forgot-password",
		`{"email":"admin@tienda.com"}`, "")
	defer existe.Body.Close()
	assert.Equal(t, http.StatusOK, existe.StatusCode)

	noExiste := doJSON(t, env.app, http.MethodPost, "/api/auth/forgot-password",
		`{"email":"fantasma@tienda.com"}`, "")
	defer noExiste.Body.Close()
	assert.Equal(t, http.StatusOK, noExiste.StatusCode)
}

// /me sin token → 401.
func TestMe_SinToken_Retorna401(t *testing.T) {
	env := buildTestApp(t, true)
	resp := doJSON(t, env.app, http.MethodGet, "/api/auth/me", "", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
