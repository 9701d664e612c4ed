package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dentismart/internal/httpresp"
	ucAccount "github.com/BruksfildServices01/dentismart/internal/usecase/account"
)

type AuthHandler struct {
	register *ucAccount.Register
	login    *ucAccount.Login
	log      *zap.Logger
}

func NewAuthHandler(register *ucAccount.Register, login *ucAccount.Login, log *zap.Logger) *AuthHandler {
	return &AuthHandler{register: register, login: login, log: log}
}

// --------- Requests ---------

type RegisterRequest struct {
	CabinetName    string `json:"cabinet_name"`
	CabinetAddress string `json:"cabinet_address"`
	CabinetPhone   string `json:"cabinet_phone"`
	Timezone       string `json:"timezone"`

	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	session, err := h.register.Execute(c.Request.Context(), ucAccount.RegisterInput{
		CabinetName:    req.CabinetName,
		CabinetAddress: req.CabinetAddress,
		CabinetPhone:   req.CabinetPhone,
		Timezone:       req.Timezone,
		FullName:       req.FullName,
		Email:          req.Email,
		Password:       req.Password,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.Created(c, session, "")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	session, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.OK(c, session, "")
}
