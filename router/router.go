package router

import (
	"log"
	"net/http"

	"blogapi/config"
	"blogapi/controllers"
	"blogapi/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares:
// public routes + authenticated routes (access token required).
func Initialize(r *gin.Engine, cfg config.Configuration, ctl *controllers.Controller) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.CorsOrigin))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api/v1")

	// Public (no auth)
	users := api.Group("/users")
	users.POST("/register", Logger(), ctl.Register)
	users.POST("/login", Logger(), ctl.Login)
	users.POST("/refresh", Logger(), ctl.RefreshAccessToken)
	users.POST("/forgetPass", Logger(), ctl.ForgotPassword)
	users.POST("/resetPassword", Logger(), ctl.ResetPassword)

	// Authenticated routes (token required)
	auth := api.Group("")
	auth.Use(ctl.AuthRequired())

	auth.POST("/users/logout", Logger(), ctl.Logout)
	auth.PATCH("/users/updateAccnt", Logger(), ctl.UpdateAccountDetails)

	blogs := auth.Group("/blogs")
	blogs.POST("", Logger(), ctl.CreateBlog)
	blogs.PATCH("/update/:blogId", Logger(), ctl.UpdateBlog)
	blogs.DELETE("/:blogId", Logger(), ctl.DeleteBlog)
	blogs.GET("/get/:userId", Logger(), ctl.GetUserBlogs)

	comments := auth.Group("/comments")
	comments.POST("/:blogId", Logger(), ctl.AddComment)
	comments.GET("/:blogId", Logger(), ctl.GetBlogComments)
	comments.PATCH("/update/:commentId", Logger(), ctl.UpdateComment)
	comments.DELETE("/:commentId", Logger(), ctl.DeleteComment)

	likes := auth.Group("/like")
	likes.GET("/toggleBlog/:blogId", Logger(), ctl.ToggleBlogLike)
	likes.GET("/toggleComment/:commentId", Logger(), ctl.ToggleCommentLike)
	likes.GET("/likedBlog", Logger(), ctl.GetLikedBlogs)
	likes.GET("/likedComment", Logger(), ctl.GetLikedComments)

	log.Printf("Routes initialized")
}
