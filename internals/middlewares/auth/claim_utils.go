package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"bimbelku_backend/internals/constants"
)

// validateTokenExpiry memeriksa klaim exp dengan sedikit toleransi clock skew.
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("klaim exp tidak ada")
	}
	expTime := time.Unix(int64(exp), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token kedaluwarsa")
	}
	return nil
}

// extractAccountClaims mengambil sub (account id) dan role bertipe dari klaim.
func extractAccountClaims(claims jwt.MapClaims) (string, constants.AccountRole, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", errors.New("klaim sub tidak ada")
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", "", errors.New("klaim role tidak ada")
	}
	role := constants.AccountRole(roleStr)
	if !role.Valid() {
		return "", "", errors.New("role tidak dikenal: " + roleStr)
	}
	return sub, role, nil
}
