package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"ci-request-api/config"
	"ci-request-api/internal/logs"
	"ci-request-api/internal/util"
)

// TokenExpiration is the bearer token lifetime in seconds.
const TokenExpiration = 86400

type AuthController struct {
	AuthService AuthServicePort
	LS          LogServicePort
	CFG         *config.Config
}

// Login checks the credentials and issues a signed bearer token. The
// error body never says whether the username or the password was wrong.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.AuthService.GetUser(req.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := util.VerifyPassword(req.Password, user.PasswordHash); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is disabled"})
		return
	}

	exp := time.Now().Add(TokenExpiration * time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      exp.Unix(),
	})
	tokenString, err := token.SignedString([]byte(ac.CFG.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	uid := user.ID
	entry := logs.SystemLog{
		Level:   "info",
		Service: "auth",
		Action:  "login",
		Message: fmt.Sprintf("user %s logged in", user.Username),
		UserID:  &uid,
	}
	if err := ac.LS.Log(entry, nil); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     tokenString,
		ExpiresIn: TokenExpiration,
		User: UserInfo{
			ID:       user.ID,
			Username: user.Username,
			FullName: user.FullName,
			Email:    user.Email,
		},
	})
}

// Profile returns the authenticated user. Runs behind the auth
// middleware, which put user_id into the context.
func (ac *AuthController) Profile(c *gin.Context) {
	val, ok := c.Get("user_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	userID, ok := val.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := ac.AuthService.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, UserInfo{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Email:    user.Email,
	})
}

// Logout exists so clients have an explicit teardown call to audit;
// bearer tokens are not tracked server side.
func (ac *AuthController) Logout(c *gin.Context) {
	if val, ok := c.Get("user_id"); ok {
		if userID, ok := val.(uint); ok {
			uid := userID
			entry := logs.SystemLog{
				Level:   "info",
				Service: "auth",
				Action:  "logout",
				Message: fmt.Sprintf("user %d logged out", userID),
				UserID:  &uid,
			}
			if err := ac.LS.Log(entry, nil); err != nil {
				fmt.Printf("Failed to insert log: %v\n", err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
