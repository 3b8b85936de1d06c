package controllers

import (
	"blogapi/config"
	"blogapi/store"

	"github.com/gin-gonic/gin"
)

// MailSender é o colaborador de e-mail visto pelos controllers
// (em produção, o workers.MailDispatcher).
type MailSender interface {
	Send(to, subject, htmlBody string) error
}

// Controller agrupa as dependências dos handlers — config, stores e mail —
// todas injetadas no boot (nada de singleton de processo).
type Controller struct {
	cfg      config.Configuration
	users    store.UserStore
	blogs    store.BlogStore
	comments store.CommentStore
	likes    store.LikeStore
	otps     store.OtpStore
	mail     MailSender
}

func New(cfg config.Configuration, st store.Stores, mail MailSender) *Controller {
	return &Controller{
		cfg:      cfg,
		users:    st.Users,
		blogs:    st.Blogs,
		comments: st.Comments,
		likes:    st.Likes,
		otps:     st.Otps,
		mail:     mail,
	}
}

// ApiResponse é o envelope uniforme de sucesso.
type ApiResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// ApiError é o envelope uniforme de erro.
type ApiError struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

func RespondSuccess(c *gin.Context, status int, data any, message string) {
	c.JSON(status, ApiResponse{StatusCode: status, Data: data, Message: message, Success: true})
}

func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, ApiError{StatusCode: status, Message: message, Success: false, Errors: []string{}})
}
