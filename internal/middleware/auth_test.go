package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundthread/internal/models"
	"soundthread/internal/utils"
)

type fakeUsers map[int64]*models.User

func (f fakeUsers) UserByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, errors.New("not found")
}

func newEngine(users fakeUsers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("secret"))))
	r.Use(LoadUser(users))

	r.POST("/login/:id", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set(SessionUserKey, utils.ParseID(c.Param("id")))
		if err := session.Save(); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CallerID(c)})
	})
	r.GET("/private", AuthRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func login(t *testing.T, r *gin.Engine, id string) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login/"+id, nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

func TestLoadUser(t *testing.T) {
	r := newEngine(fakeUsers{7: {ID: 7, Username: "alice"}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.JSONEq(t, `{"id":0}`, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(login(t, r, "7"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.JSONEq(t, `{"id":7}`, w.Body.String())
}

func TestLoadUser_UnknownUserIsSignedOut(t *testing.T) {
	r := newEngine(fakeUsers{7: {ID: 7, Username: "alice"}})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(login(t, r, "8"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.JSONEq(t, `{"id":0}`, w.Body.String())
}

func TestAuthRequired(t *testing.T) {
	r := newEngine(fakeUsers{7: {ID: 7, Username: "alice"}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"errors":[{"message":"Must Be Signed In."}]}`, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(login(t, r, "7"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
