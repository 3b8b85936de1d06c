package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogapi/config"
	"blogapi/controllers"
	"blogapi/router"
	"blogapi/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// testEnv sobe o roteador real com stores em memória e mail gravado.
type testEnv struct {
	r        *gin.Engine
	cfg      config.Configuration
	users    *fakeUsers
	blogs    *fakeBlogs
	comments *fakeComments
	likes    *fakeLikes
	otps     *fakeOtps
	mail     *recorderMail
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Get("")
	users := newFakeUsers()
	blogs := newFakeBlogs(users)
	comments := newFakeComments(blogs)
	likes := newFakeLikes(blogs, comments)
	otps := newFakeOtps()
	mail := &recorderMail{}

	ctl := controllers.New(cfg, store.Stores{
		Users:    users,
		Blogs:    blogs,
		Comments: comments,
		Likes:    likes,
		Otps:     otps,
	}, mail)

	r := gin.New()
	router.Initialize(r, cfg, ctl)

	return &testEnv{
		r:        r,
		cfg:      cfg,
		users:    users,
		blogs:    blogs,
		comments: comments,
		likes:    likes,
		otps:     otps,
		mail:     mail,
	}
}

// do executa uma requisição JSON; token vazio = sem Authorization.
func (env *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.r.ServeHTTP(w, req)
	return w
}

func jsonUnmarshal(data json.RawMessage, v any) error {
	return json.Unmarshal(data, v)
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

type sessionData struct {
	User         map[string]any `json:"user"`
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
}

func decodeSession(t *testing.T, w *httptest.ResponseRecorder) sessionData {
	t.Helper()

	env := decodeEnvelope(t, w)
	var s sessionData
	require.NoError(t, json.Unmarshal(env.Data, &s))
	return s
}

func objectIDFromSession(t *testing.T, sess sessionData) primitive.ObjectID {
	t.Helper()

	hex, ok := sess.User["id"].(string)
	require.True(t, ok, "session user has no id")
	oid, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return oid
}

// register + login e devolve a sessão corrente.
func (env *testEnv) loginAs(t *testing.T, name, email, password string) sessionData {
	t.Helper()

	w := env.do(t, http.MethodPost, "/api/v1/users/register", gin.H{
		"name": name, "email": email, "password": password,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.do(t, http.MethodPost, "/api/v1/users/login", gin.H{
		"email": email, "password": password,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeSession(t, w)
}
