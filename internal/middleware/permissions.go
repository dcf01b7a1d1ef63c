package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Papéis da equipe do salão. O dono e a gerência administram tudo; a
// recepção opera a agenda; profissionais só mexem na própria agenda e
// pedem folga.
const (
	RoleOwner        = "owner"
	RoleManager      = "manager"
	RoleReceptionist = "receptionist"
	RoleStylist      = "stylist"
)

var rolePermissions = map[string]map[string]bool{
	RoleOwner: {
		"salon:manage":       true,
		"services:manage":    true,
		"appointments:write": true,
		"schedules:manage":   true,
		"timeoff:decide":     true,
		"timeoff:request":    true,
		"audit:read":         true,
	},
	RoleManager: {
		"services:manage":    true,
		"appointments:write": true,
		"schedules:manage":   true,
		"timeoff:decide":     true,
		"timeoff:request":    true,
		"audit:read":         true,
	},
	RoleReceptionist: {
		"appointments:write": true,
	},
	RoleStylist: {
		"timeoff:request": true,
	},
}

// RequirePermission roda depois do AuthMiddleware e barra o papel que
// não tem a permissão pedida.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.MustGet(ContextUserRole).(string)

		if !rolePermissions[role][permission] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "forbidden",
				"message": "Seu papel não permite esta operação.",
			})
			return
		}

		c.Next()
	}
}
