package controllers

import (
	"errors"
	"net/http"

	"blogapi/models"
	"blogapi/store"

	"github.com/gin-gonic/gin"
)

type BlogRequest struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
}

// POST /api/v1/blogs (autenticado)
func (ctl *Controller) CreateBlog(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	var req BlogRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Title == "" || req.Content == "" {
		RespondError(c, http.StatusBadRequest, "all fields are required")
		return
	}

	blog, err := ctl.blogs.Create(c.Request.Context(), models.Blog{
		UserID:  user.ID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "blog not created")
		return
	}

	RespondSuccess(c, http.StatusCreated, blog, "blog created successfully")
}

// PATCH /api/v1/blogs/update/:blogId (autenticado, só o dono)
func (ctl *Controller) UpdateBlog(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	blogID, ok := ParamObjectID(c, "blogId")
	if !ok {
		return
	}

	var req BlogRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Title == "" && req.Content == "" {
		RespondError(c, http.StatusBadRequest, "content or title is required")
		return
	}

	blog, err := ctl.blogs.FindByID(c.Request.Context(), blogID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "blog not found")
			return
		}
		RespondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if blog.UserID != user.ID {
		RespondError(c, http.StatusUnauthorized, "only the author can update")
		return
	}

	updated, err := ctl.blogs.Update(c.Request.Context(), blogID, req.Title, req.Content)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "blog not updated")
		return
	}

	RespondSuccess(c, http.StatusOK, updated, "blog updated successfully")
}

// DELETE /api/v1/blogs/:blogId (autenticado, só o dono)
func (ctl *Controller) DeleteBlog(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized request")
		return
	}

	blogID, ok := ParamObjectID(c, "blogId")
	if !ok {
		return
	}

	blog, err := ctl.blogs.FindByID(c.Request.Context(), blogID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "blog not found")
			return
		}
		RespondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if blog.UserID != user.ID {
		RespondError(c, http.StatusUnauthorized, "only the author can delete")
		return
	}

	if err := ctl.blogs.Delete(c.Request.Context(), blogID); err != nil {
		RespondError(c, http.StatusInternalServerError, "blog not deleted")
		return
	}

	RespondSuccess(c, http.StatusOK, blog, "blog deleted successfully")
}

// GET /api/v1/blogs/get/:userId (autenticado)
func (ctl *Controller) GetUserBlogs(c *gin.Context) {
	userID, ok := ParamObjectID(c, "userId")
	if !ok {
		return
	}

	if _, err := ctl.users.FindByID(c.Request.Context(), userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "user not found")
			return
		}
		RespondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	blogs, err := ctl.blogs.ListByUser(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "cannot fetch blogs")
		return
	}
	if blogs == nil {
		blogs = []models.BlogWithOwner{}
	}

	RespondSuccess(c, http.StatusOK, blogs, "all blogs fetched")
}
