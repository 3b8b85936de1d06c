package controllers

import (
	"errors"
	"net/http"

	"blogapi/models"
	"blogapi/store"

	"github.com/gin-gonic/gin"
)

// GET /api/v1/like/toggleBlog/:blogId (autenticado)
// Sem like registrado -> cria (curtiu); com like -> apaga (descurtiu).
// Duas requisições concorrentes podem disputar o mesmo documento; o delete
// de quem perde a corrida simplesmente não encontra nada.
func (ctl *Controller) ToggleBlogLike(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	blogID, ok := ParamObjectID(c, "blogId")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if _, err := ctl.blogs.FindByID(ctx, blogID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "blog not found")
			return
		}
		RespondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	_, err := ctl.likes.FindBlogLike(ctx, blogID, user.ID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			RespondError(c, http.StatusInternalServerError, "internal server error")
			return
		}
		like, err := ctl.likes.CreateBlogLike(ctx, blogID, user.ID)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "error in liking blog")
			return
		}
		RespondSuccess(c, http.StatusCreated, like, "blog liked")
		return
	}

	if err := ctl.likes.DeleteBlogLike(ctx, blogID, user.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
		RespondError(c, http.StatusInternalServerError, "error in disliking blog")
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{"liked": false}, "blog disliked")
}

// GET /api/v1/like/toggleComment/:commentId (autenticado)
func (ctl *Controller) ToggleCommentLike(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	commentID, ok := ParamObjectID(c, "commentId")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if _, err := ctl.comments.FindByID(ctx, commentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "comment not found")
			return
		}
		RespondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	_, err := ctl.likes.FindCommentLike(ctx, commentID, user.ID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			RespondError(c, http.StatusInternalServerError, "internal server error")
			return
		}
		like, err := ctl.likes.CreateCommentLike(ctx, commentID, user.ID)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "error in liking comment")
			return
		}
		RespondSuccess(c, http.StatusCreated, like, "comment liked")
		return
	}

	if err := ctl.likes.DeleteCommentLike(ctx, commentID, user.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
		RespondError(c, http.StatusInternalServerError, "error in disliking comment")
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{"liked": false}, "comment disliked")
}

// GET /api/v1/like/likedBlog (autenticado)
func (ctl *Controller) GetLikedBlogs(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	liked, err := ctl.likes.LikedBlogs(c.Request.Context(), user.ID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "error in getting liked blogs")
		return
	}
	if liked == nil {
		liked = []models.LikedBlog{}
	}

	RespondSuccess(c, http.StatusOK, liked, "successfully fetched liked blogs")
}

// GET /api/v1/like/likedComment (autenticado)
func (ctl *Controller) GetLikedComments(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	liked, err := ctl.likes.LikedComments(c.Request.Context(), user.ID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "error in getting liked comments")
		return
	}
	if liked == nil {
		liked = []models.LikedComment{}
	}

	RespondSuccess(c, http.StatusOK, liked, "all liked comments fetched successfully")
}
