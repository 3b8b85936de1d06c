package controllers

import (
	"net/http"
	"strings"

	"blogapi/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ctxUserKey = "auth_user"

// AuthRequired valida o access token (cookie "accessToken" ou header Bearer),
// carrega o usuário e o coloca no contexto da requisição.
func (ctl *Controller) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			tokenString, _ = c.Cookie("accessToken")
		}
		if tokenString == "" {
			RespondError(c, http.StatusUnauthorized, "unauthorized request")
			c.Abort()
			return
		}

		userID, err := userIDFromToken(tokenString, []byte(ctl.cfg.Security.AccessTokenSecret))
		if err != nil {
			RespondError(c, http.StatusUnauthorized, "invalid access token")
			c.Abort()
			return
		}

		oid, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			RespondError(c, http.StatusUnauthorized, "invalid access token")
			c.Abort()
			return
		}

		user, err := ctl.users.FindByID(c.Request.Context(), oid)
		if err != nil {
			RespondError(c, http.StatusUnauthorized, "user not found")
			c.Abort()
			return
		}

		c.Set(ctxUserKey, *user)
		c.Next()
	}
}

// GetUserLogged devolve o usuário carregado pelo AuthRequired.
func GetUserLogged(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(strings.ToLower(h), "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[len("Bearer "):])
}
