package controllers

import (
	"errors"
	"net/http"

	"blogapi/models"
	"blogapi/store"

	"github.com/gin-gonic/gin"
)

type CommentRequest struct {
	Comment string `json:"comment" form:"comment"`
}

// POST /api/v1/comments/:blogId (autenticado)
func (ctl *Controller) AddComment(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	blogID, ok := ParamObjectID(c, "blogId")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Comment == "" {
		RespondError(c, http.StatusBadRequest, "comment is required")
		return
	}

	if _, err := ctl.blogs.FindByID(c.Request.Context(), blogID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "blog not found")
			return
		}
		RespondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	comment, err := ctl.comments.Create(c.Request.Context(), models.Comment{
		UserID:  user.ID,
		BlogID:  blogID,
		Comment: req.Comment,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "comment not created")
		return
	}

	RespondSuccess(c, http.StatusCreated, comment, "comment created successfully")
}

// loadOwnComment carrega o comentário e garante que pertence ao usuário.
func (ctl *Controller) loadOwnComment(c *gin.Context, user models.User) (*models.Comment, bool) {
	commentID, ok := ParamObjectID(c, "commentId")
	if !ok {
		return nil, false
	}

	comment, err := ctl.comments.FindByID(c.Request.Context(), commentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "comment not found")
			return nil, false
		}
		RespondError(c, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	if comment.UserID != user.ID {
		RespondError(c, http.StatusUnauthorized, "only the author can modify this comment")
		return nil, false
	}
	return comment, true
}

// PATCH /api/v1/comments/update/:commentId (autenticado, só o autor)
func (ctl *Controller) UpdateComment(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Comment == "" {
		RespondError(c, http.StatusBadRequest, "comment is required")
		return
	}

	comment, ok := ctl.loadOwnComment(c, user)
	if !ok {
		return
	}

	updated, err := ctl.comments.Update(c.Request.Context(), comment.ID, req.Comment)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "comment not updated")
		return
	}

	RespondSuccess(c, http.StatusOK, updated, "comment updated successfully")
}

// DELETE /api/v1/comments/:commentId (autenticado, só o autor)
func (ctl *Controller) DeleteComment(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	comment, ok := ctl.loadOwnComment(c, user)
	if !ok {
		return
	}

	if err := ctl.comments.Delete(c.Request.Context(), comment.ID); err != nil {
		RespondError(c, http.StatusInternalServerError, "comment not deleted")
		return
	}

	RespondSuccess(c, http.StatusOK, gin.H{}, "comment deleted successfully")
}

// GET /api/v1/comments/:blogId (autenticado)
func (ctl *Controller) GetBlogComments(c *gin.Context) {
	blogID, ok := ParamObjectID(c, "blogId")
	if !ok {
		return
	}

	if _, err := ctl.blogs.FindByID(c.Request.Context(), blogID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "blog not found")
			return
		}
		RespondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	comments, err := ctl.comments.ListByBlog(c.Request.Context(), blogID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "cannot fetch comments")
		return
	}
	if comments == nil {
		comments = []models.CommentWithTitle{}
	}

	RespondSuccess(c, http.StatusOK, comments, "comments found successfully")
}
