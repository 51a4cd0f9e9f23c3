package config

import "testing"

func TestValidate_ProductionRequiresSecret(t *testing.T) {
	cfg := &Config{Env: "production"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for production without JWT_SECRET")
	}
}

func TestValidate_ProductionWithExplicitOverride(t *testing.T) {
	cfg := &Config{Env: "production", AllowInsecureJWTSecret: true}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_DevelopmentFallsBack(t *testing.T) {
	cfg := &Config{Env: "development"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.UsingFallbackSecret() {
		t.Fatal("expected fallback secret in use")
	}
	if cfg.EffectiveJWTSecret() != DevFallbackJWTSecret {
		t.Fatalf("unexpected effective secret")
	}
}

func TestEffectiveJWTSecret_Provided(t *testing.T) {
	cfg := &Config{JWTSecret: "operator-secret"}
	if cfg.EffectiveJWTSecret() != "operator-secret" {
		t.Fatalf("expected operator secret to win")
	}
	if cfg.UsingFallbackSecret() {
		t.Fatal("fallback should not be reported")
	}
}
