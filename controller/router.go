package controller

import (
	"skillpass/auth"
	"skillpass/repository"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
	RequiredRoles []repository.UserRole
}

func SetRoutes(r *gin.Engine, db *gorm.DB, cacheStore persistence.CacheStore) {
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupUserController(db)...)
	routes = append(routes, setupEventController(db)...)
	routes = append(routes, setupApplicationController(db)...)
	routes = append(routes, setupTeamController(db)...)
	routes = append(routes, setupSchemaController(db)...)
	routes = append(routes, setupScoreController(db)...)
	routes = append(routes, setupScoreboardController(db, cacheStore)...)
	routes = append(routes, setupPassportController(db)...)
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware(route.RequiredRoles))
		}
		handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		r.Handle(route.Method, "/api"+route.Path, handlerfuncs...)
	}
}

func AuthMiddleware(roles []repository.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		authCookie, err := c.Cookie("auth")
		if err != nil {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			c.Abort()
			return
		}
		token, err := auth.ParseToken(authCookie)
		if err != nil || !token.Valid {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			c.Abort()
			return
		}
		claims := &auth.Claims{}
		claims.FromJWTClaims(token.Claims)
		if err := claims.Valid(); err != nil {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			c.Abort()
			return
		}
		c.Set("user_id", claims.UserId)
		c.Set("role", claims.Role)
		if len(roles) == 0 {
			c.Next()
			return
		}
		for _, requiredRole := range roles {
			if claims.Role == requiredRole {
				c.Next()
				return
			}
		}
		c.JSON(403, gin.H{"error": "Forbidden"})
		c.Abort()
	}
}

func currentUserId(c *gin.Context) int {
	return c.GetInt("user_id")
}

func currentRole(c *gin.Context) repository.UserRole {
	if role, ok := c.Get("role"); ok {
		return role.(repository.UserRole)
	}
	return ""
}
