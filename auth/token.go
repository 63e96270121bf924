package auth

import (
	"time"

	"skillpass/config"
	"skillpass/repository"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserId int                 `json:"user_id"`
	Role   repository.UserRole `json:"role"`
	Exp    int64               `json:"exp"`
}

func (claims *Claims) FromJWTClaims(jwtClaims jwt.Claims) {
	mapClaims := jwtClaims.(jwt.MapClaims)
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = repository.UserRole(role)
	}
	claims.UserId = int(mapClaims["user_id"].(float64))
	claims.Exp = int64(mapClaims["exp"].(float64))
}

func (claims *Claims) Valid() error {
	if time.Now().Unix() > claims.Exp {
		return jwt.ErrTokenExpired
	}
	return nil
}

func CreateToken(user *repository.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"user_id": user.Id,
			"role":    string(user.Role),
			"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(),
		})

	tokenString, err := token.SignedString([]byte(config.Env().JWTSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Env().JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}
	return token, nil
}
