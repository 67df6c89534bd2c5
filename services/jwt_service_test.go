package services

import (
	"testing"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	token, err := svc.GenerateToken(7, "office")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	parsed, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if !parsed.Valid {
		t.Error("token not valid")
	}

	claims, err := svc.ExtractClaims(token)
	if err != nil {
		t.Fatalf("ExtractClaims: %v", err)
	}
	if claims.AdminID != 7 {
		t.Errorf("AdminID = %d, want 7", claims.AdminID)
	}
	if claims.Username != "office" {
		t.Errorf("Username = %q, want office", claims.Username)
	}
	if claims.Issuer != "society-billing-service" {
		t.Errorf("Issuer = %q, want society-billing-service", claims.Issuer)
	}
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	token, err := svc.GenerateToken(1, "office")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.ValidateToken(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}

	other := NewJWTService(newTestConfig())
	other.(*JWTService).secretKey = "different-secret"
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with another key accepted")
	}
}
