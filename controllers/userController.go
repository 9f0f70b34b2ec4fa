package controllers

import (
	"errors"
	"net/http"
	"time"

	"go-resto-manager/helpers"
	"go-resto-manager/models"
	"go-resto-manager/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type signUpRequest struct {
	Username    string      `json:"username" validate:"required,min=3,max=50"`
	Password    string      `json:"password" validate:"required,min=6"`
	FullName    string      `json:"fullName"`
	Email       string      `json:"email" validate:"omitempty,email"`
	Phone       string      `json:"phone"`
	Role        models.Role `json:"role"`
	Permissions []string    `json:"permissions"`
}

func SignUp() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var req signUpRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Role == "" {
			req.Role = models.RoleEmployee
		}
		if !req.Role.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
			return
		}

		if _, err := store.GetUserByUsername(ctx, req.Username); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username already exists"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}

		user := models.User{
			Username:    req.Username,
			Password:    string(hashed),
			FullName:    req.FullName,
			Email:       req.Email,
			Phone:       req.Phone,
			Role:        req.Role,
			Permissions: req.Permissions,
			IsActive:    true,
			CreatedAt:   time.Now(),
		}
		if err := store.CreateUser(ctx, &user); err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "username already exists"})
				return
			}
			respondError(c, err)
			return
		}

		token, refreshToken, err := helpers.GenerateAllTokens(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "refreshToken": refreshToken, "user": user})
	}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var req loginRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := store.GetUserByUsername(ctx, req.Username)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		if !user.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "account is disabled"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		token, refreshToken, err := helpers.GenerateAllTokens(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"token":        token,
			"refreshToken": refreshToken,
			"user": gin.H{
				"id":          user.ID,
				"username":    user.Username,
				"role":        user.Role,
				"permissions": user.Permissions,
			},
		})
	}
}

func GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		users, err := store.GetUsers(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

func GetUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "user_id")
		if !ok {
			return
		}
		user, err := store.GetUser(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
