package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/armory-api/controllers/render"
	"github.com/junaidrashid-git/armory-api/models"
)

type Authenticator interface {
	Authenticate(ctx context.Context, userName, password string) (*models.User, error)
}

type loginRequest struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler exchanges a user name and password for a bearer token.
func LoginHandler(users Authenticator, tokens *Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			render.BadRequest(c, err)
			return
		}

		user, err := users.Authenticate(c.Request.Context(), req.UserName, req.Password)
		if err != nil {
			render.Error(c, err)
			return
		}

		token, exp, err := tokens.Issue(user)
		if err != nil {
			render.Error(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":     token,
			"expiresAt": exp,
			"user":      user,
		})
	}
}
