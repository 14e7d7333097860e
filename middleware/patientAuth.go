package middleware

import (
	"net/http"
	"strings"

	patientRepo "clinicore/database/repository/patient"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthPatientMiddleware authenticates patient-portal requests. The
// token must carry the patient role and its hash must still match the
// stored one, so password resets and sign-outs revoke it immediately.
func JWTAuthPatientMiddleware(repo patientRepo.PatientRepository) gin.HandlerFunc {
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
		if err != nil || role != "patient" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		patientID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || patientID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		rec, err := repo.GetByTokenHash(utils.HashToken(tokenString))
		if err != nil || rec == nil || rec.ID != patientID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please sign in again"})
			return
		}

		c.Set("patientID", rec.ID)
		c.Set("patientEmail", rec.Email)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", false
	}
	return token, true
}
