package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Gr10greesh/E-commerce/store"
)

type signupRequest struct {
	PhoneNumber string `json:"phonenumber"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /signup
func Signup(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "Invalid request body"})
			return
		}
		if req.PhoneNumber == "" || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "All fields are required"})
			return
		}

		token, err := svc.Register(c.Request.Context(), req.PhoneNumber, req.Email, req.Password)
		switch {
		case errors.Is(err, ErrEmailTaken) || errors.Is(err, ErrPhoneTaken):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": err.Error()})
		case err != nil:
			log.WithError(err).Error("signup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Internal Server Error"})
		default:
			c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
		}
	}
}

// POST /login
func Login(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "Invalid request body"})
			return
		}
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "All fields are required"})
			return
		}

		token, err := svc.Authenticate(c.Request.Context(), req.Email, req.Password)
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "User not found"})
		case errors.Is(err, ErrWrongPassword):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "Incorrect password"})
		case err != nil:
			log.WithError(err).Error("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Internal Server Error"})
		default:
			c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
		}
	}
}
