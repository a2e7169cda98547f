package handlers

import (
	"net/http"

	"agri-program-api-server/internal/auth"
	"agri-program-api-server/internal/models"
	"agri-program-api-server/internal/shape"
	"agri-program-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type AuthHandler struct {
	Store store.Store
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the submitted credentials against the users collection.
// Authentication state is not persisted; no token is issued.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A missing or unreadable body is indistinguishable from bad
		// credentials to the caller.
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	ctx, cancel := queryContext(c)
	defer cancel()

	doc, err := h.Store.FindOne(ctx, usersCollection, bson.M{"username": req.Username})
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		serverError(c, "query users", err)
		return
	}

	cred := models.Credential{
		Username: shape.ToString(doc["username"]),
		Password: shape.ToString(doc["password"]),
		Role:     shape.ToString(doc["role"]),
		Name:     shape.ToString(doc["name"]),
	}

	if !auth.VerifyPassword(req.Password, cred.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	role := cred.Role
	if role == "" {
		role = "user"
	}
	name := cred.Name
	if name == "" {
		name = cred.Username
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"username": cred.Username,
			"role":     role,
			"name":     name,
		},
	})
}
