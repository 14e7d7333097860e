package middleware

import (
	"net/http"

	doctorRepo "clinicore/database/repository/doctor"
	"clinicore/models"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthDoctorMiddleware authenticates doctor requests. Revoked
// tokens and profiles that lost approval are both refused.
func JWTAuthDoctorMiddleware(repo doctorRepo.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()

		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		role, err := utils.ExtractRoleFromToken(tokenString)
		if err != nil || role != "doctor" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		doctorID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || doctorID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		rec, err := repo.GetByTokenHash(utils.HashToken(tokenString))
		if err != nil || rec == nil || rec.ID != doctorID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please sign in again"})
			return
		}
		if rec.Status != models.DoctorStatusApproved {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is not approved"})
			return
		}

		c.Set("doctorID", rec.ID)
		c.Set("doctorEmail", rec.Email)
		c.Next()
	}
}
