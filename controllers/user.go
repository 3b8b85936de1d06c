package controllers

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"blogapi/models"
	"blogapi/store"
	"blogapi/tools"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RegisterRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type SessionResponse struct {
	User         *models.User `json:"user,omitempty"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// issueTokenPair emite o par access+refresh para o usuário e persiste o
// refresh token no registro — este é o ponto de rotação: o valor anterior
// deixa de valer para renovação no mesmo instante.
func (ctl *Controller) issueTokenPair(ctx context.Context, userID primitive.ObjectID) (string, string, error) {
	if _, err := ctl.users.FindByID(ctx, userID); err != nil {
		return "", "", err
	}

	accessToken, err := generateToken(userID.Hex(),
		[]byte(ctl.cfg.Security.AccessTokenSecret), ctl.cfg.AccessTokenTTL())
	if err != nil {
		return "", "", err
	}

	refreshToken, err := generateToken(userID.Hex(),
		[]byte(ctl.cfg.Security.RefreshTokenSecret), ctl.cfg.RefreshTokenTTL())
	if err != nil {
		return "", "", err
	}

	if err := ctl.users.SetRefreshToken(ctx, userID, refreshToken); err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (ctl *Controller) setSessionCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetCookie("accessToken", accessToken, int(ctl.cfg.AccessTokenTTL().Seconds()), "/", "", true, true)
	c.SetCookie("refreshToken", refreshToken, int(ctl.cfg.RefreshTokenTTL().Seconds()), "/", "", true, true)
}

func clearSessionCookies(c *gin.Context) {
	c.SetCookie("accessToken", "", -1, "/", "", true, true)
	c.SetCookie("refreshToken", "", -1, "/", "", true, true)
}

// POST /api/v1/users/register
func (ctl *Controller) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		RespondError(c, http.StatusBadRequest, "all fields are required")
		return
	}
	if !tools.ValidateEmail(req.Email) {
		RespondError(c, http.StatusBadRequest, "email is invalid")
		return
	}
	if missing := tools.CheckPassword(req.Password); missing != "" {
		RespondError(c, http.StatusBadRequest, "password is too short")
		return
	}

	exists, err := ctl.users.ExistsByNameOrEmail(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if exists {
		RespondError(c, http.StatusConflict, "user already exists")
		return
	}

	hash, err := tools.HashPassword(req.Password)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	user, err := ctl.users.Create(c.Request.Context(), models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			RespondError(c, http.StatusConflict, "user already exists")
			return
		}
		RespondError(c, http.StatusInternalServerError, "user cannot be created")
		return
	}

	RespondSuccess(c, http.StatusCreated, user, "user created successfully")
}

// POST /api/v1/users/login
func (ctl *Controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Email == "" || req.Password == "" {
		RespondError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := ctl.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "user not found")
			return
		}
		RespondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	if !tools.CheckPasswordHash(req.Password, user.Password) {
		RespondError(c, http.StatusUnauthorized, "password is incorrect")
		return
	}

	accessToken, refreshToken, err := ctl.issueTokenPair(c.Request.Context(), user.ID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "could not issue tokens")
		return
	}

	ctl.setSessionCookies(c, accessToken, refreshToken)
	RespondSuccess(c, http.StatusCreated, SessionResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "user logged in successfully")
}

// POST /api/v1/users/logout (autenticado)
func (ctl *Controller) Logout(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	if err := ctl.users.ClearRefreshToken(c.Request.Context(), user.ID); err != nil {
		RespondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	clearSessionCookies(c)
	RespondSuccess(c, http.StatusOK, gin.H{}, "user logged out successfully")
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" form:"refreshToken"`
}

// POST /api/v1/users/refresh
// O refresh token é single-use: a renovação compara o valor recebido com o
// espelhado no registro do usuário e rotaciona — um valor já usado (ou
// sobrescrito por um login mais novo) falha fechado.
func (ctl *Controller) RefreshAccessToken(c *gin.Context) {
	incoming, _ := c.Cookie("refreshToken")
	if incoming == "" {
		var req RefreshRequest
		if err := c.Bind(&req); err == nil {
			incoming = req.RefreshToken
		}
	}
	if incoming == "" {
		RespondError(c, http.StatusBadRequest, "refresh token is required")
		return
	}

	userID, err := userIDFromToken(incoming, []byte(ctl.cfg.Security.RefreshTokenSecret))
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	user, err := ctl.users.FindByID(c.Request.Context(), oid)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	if subtle.ConstantTimeCompare([]byte(incoming), []byte(user.RefreshToken)) != 1 {
		RespondError(c, http.StatusUnauthorized, "refresh token expired or used")
		return
	}

	accessToken, refreshToken, err := ctl.issueTokenPair(c.Request.Context(), user.ID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "could not issue tokens")
		return
	}

	ctl.setSessionCookies(c, accessToken, refreshToken)
	RespondSuccess(c, http.StatusOK, SessionResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "access token refreshed successfully")
}

type UpdateAccountRequest struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
}

// PATCH /api/v1/users/updateAccnt (autenticado)
func (ctl *Controller) UpdateAccountDetails(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	var req UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" || req.Email == "" {
		RespondError(c, http.StatusBadRequest, "name and email are required")
		return
	}
	if !tools.ValidateEmail(req.Email) {
		RespondError(c, http.StatusBadRequest, "email is invalid")
		return
	}

	updated, err := ctl.users.UpdateAccount(c.Request.Context(), user.ID, req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			RespondError(c, http.StatusNotFound, "user not found")
		case errors.Is(err, store.ErrConflict):
			RespondError(c, http.StatusConflict, "email already in use")
		default:
			RespondError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	RespondSuccess(c, http.StatusOK, updated, "user updated successfully")
}
