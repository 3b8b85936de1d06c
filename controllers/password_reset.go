package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"blogapi/store"
	"blogapi/tools"

	"github.com/gin-gonic/gin"
)

type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email"`
}

// POST /api/v1/users/forgetPass
// Gera um código de 6 dígitos, sobrescreve o registro pendente do usuário
// (upsert — invalida qualquer código anterior) e dispara o e-mail em
// best-effort. O código nunca aparece na resposta.
func (ctl *Controller) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Email == "" {
		RespondError(c, http.StatusBadRequest, "email is required")
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

	code, err := tools.GenerateOtp()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "otp not generated")
		return
	}

	if err := ctl.otps.Upsert(c.Request.Context(), user.ID, code, time.Now()); err != nil {
		RespondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	html := fmt.Sprintf("<p>Hi %s<br>Your OTP is <b>%s</b></p>", user.Name, code)
	if err := ctl.mail.Send(user.Email, "Otp for password", html); err != nil {
		// falha síncrona do dispatch; entrega em si é best-effort
		RespondError(c, http.StatusInternalServerError, "error in sending mail")
		return
	}

	RespondSuccess(c, http.StatusCreated, gin.H{"otpSent": true}, "otp has been sent to your mail")
}

type ResetPasswordRequest struct {
	Email           string `json:"email" form:"email"`
	UserOtp         string `json:"userOtp" form:"userOtp"`
	NewPassword     string `json:"newPassword" form:"newPassword"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

// POST /api/v1/users/resetPassword
// Valida o código (valor + verificado + frescor) e só então troca a senha.
// A expiração é computada sobre o timestamp de EMISSÃO — repetir o verify
// não estende a janela. Registro consumido ou expirado é apagado.
func (ctl *Controller) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Email == "" || req.UserOtp == "" || req.NewPassword == "" || req.ConfirmPassword == "" {
		RespondError(c, http.StatusBadRequest, "all fields are required")
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		RespondError(c, http.StatusBadRequest, "passwords do not match")
		return
	}

	ctx := c.Request.Context()

	user, err := ctl.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "user not found")
			return
		}
		RespondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	otp, err := ctl.otps.Find(ctx, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondError(c, http.StatusBadRequest, "otp is invalid")
			return
		}
		RespondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	if req.UserOtp == otp.Code && !otp.Verified {
		if err := ctl.otps.MarkVerified(ctx, user.ID); err != nil {
			RespondError(c, http.StatusInternalServerError, "internal server error")
			return
		}
		otp.Verified = true
	}

	if !otp.Verified {
		RespondError(c, http.StatusBadRequest, "otp is invalid")
		return
	}

	if time.Since(otp.CreatedAt) > ctl.cfg.OtpTTL() {
		_ = ctl.otps.Delete(ctx, user.ID)
		RespondError(c, http.StatusUnauthorized, "otp is expired")
		return
	}

	hash, err := tools.HashPassword(req.NewPassword)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if err := ctl.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		RespondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	// consumo: apaga o código e derruba a sessão ativa (força novo login)
	_ = ctl.otps.Delete(ctx, user.ID)
	_ = ctl.users.ClearRefreshToken(ctx, user.ID)

	RespondSuccess(c, http.StatusCreated, gin.H{"otpVerified": true},
		"your password has been changed successfully")
}
