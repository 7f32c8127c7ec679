package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/minutary/minutary/internal/webserver/model"
)

// SignIn checks the provided credentials and gives the user a JWT in a cookie.
func (a *Controller) SignIn(c *fiber.Ctx) error {
	user, err := a.repository.FindByEmail(c.FormValue("email"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	// If email or password are incorrect, do not allow access.
	if user == nil || user.Password != model.Hash(c.FormValue("password")) {
		return c.Status(fiber.StatusUnauthorized).Render("auth/login", fiber.Map{
			"Title":            "Login",
			"Error":            "Wrong email or password",
			"DisableLoginLink": true,
		}, "layout")
	}

	expiration := time.Now().Add(a.config.SessionTimeout)
	signedToken, err := GenerateToken(user, expiration, a.config.Secret)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	c.Cookie(&fiber.Cookie{
		Name:     "session",
		Value:    signedToken,
		Path:     "/",
		Expires:  expiration,
		Secure:   false,
		HTTPOnly: true,
	})

	referer := string(c.Request().Header.Referer())
	if referer != "" && !strings.Contains(referer, "/login") {
		return c.Redirect(referer)
	}

	return c.Redirect(fmt.Sprintf("/%s", c.Params("lang")))
}

func GenerateToken(user *model.User, expiration time.Time, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userdata": model.User{
			ID:       user.ID,
			Name:     user.Name,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
			Uuid:     user.Uuid,
		},
		"exp": jwt.NewNumericDate(expiration),
	},
	)

	return token.SignedString(secret)
}
