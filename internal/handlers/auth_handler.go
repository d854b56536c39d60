package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/account"
	"github.com/BruksfildServices01/barbershop-reservation/internal/middleware"
	ucAccount "github.com/BruksfildServices01/barbershop-reservation/internal/usecase/account"
)

type AuthHandler struct {
	register *ucAccount.Register
	login    *ucAccount.Login
	me       *ucAccount.Me
}

func NewAuthHandler(
	register *ucAccount.Register,
	login *ucAccount.Login,
	me *ucAccount.Me,
) *AuthHandler {
	return &AuthHandler{register: register, login: login, me: me}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterInput
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.register.Execute(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginInput
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.login.Execute(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.me.Execute(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
