package handlers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIssueUserTokenCarriesRoleClaim(t *testing.T) {
	const secret = "test-secret"
	userID := primitive.NewObjectID()

	for _, role := range []string{"user", "admin"} {
		t.Run(role, func(t *testing.T) {
			signed, err := issueUserToken(userID, "jane@example.com", role, secret, time.Hour)
			if err != nil {
				t.Fatalf("issueUserToken: %v", err)
			}

			token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				t.Fatalf("parsing issued token: %v", err)
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				t.Fatal("claims are not MapClaims")
			}
			if got, _ := claims["role"].(string); got != role {
				t.Errorf("role claim = %q, want %q", got, role)
			}
			if got, _ := claims["userId"].(string); got != userID.Hex() {
				t.Errorf("userId claim = %q, want %q", got, userID.Hex())
			}
		})
	}
}
