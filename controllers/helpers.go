package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParamObjectID lê um ObjectID de um parâmetro de rota; em caso de id vazio
// ou malformado já responde 400 e devolve ok=false.
func ParamObjectID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	v := c.Param(name)
	if v == "" {
		RespondError(c, http.StatusBadRequest, name+" is required")
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(v)
	if err != nil {
		RespondError(c, http.StatusBadRequest, name+" is invalid")
		return primitive.NilObjectID, false
	}
	return id, true
}
