package auth

import (
	"testing"
	"time"
)

func TestTokenManager(t *testing.T) {
	t.Run("emite e valida token", func(t *testing.T) {
		m := NewTokenManager("test-secret", 15*time.Minute)

		token, err := m.Issue(42, "admin", "user")
		if err != nil {
			t.Fatalf("esperava sucesso ao emitir, obteve erro: %v", err)
		}

		claims, err := m.Parse(token)
		if err != nil {
			t.Fatalf("esperava sucesso ao validar, obteve erro: %v", err)
		}
		if claims.UID != 42 {
			t.Errorf("esperava UID 42, obteve %d", claims.UID)
		}
		if claims.Username != "admin" {
			t.Errorf("esperava username 'admin', obteve '%s'", claims.Username)
		}
		if claims.Kind != "user" {
			t.Errorf("esperava kind 'user', obteve '%s'", claims.Kind)
		}
	})

	t.Run("rejeita token assinado com outro segredo", func(t *testing.T) {
		m1 := NewTokenManager("secret-a", 15*time.Minute)
		m2 := NewTokenManager("secret-b", 15*time.Minute)

		token, err := m1.Issue(1, "worker1", "worker")
		if err != nil {
			t.Fatalf("esperava sucesso ao emitir, obteve erro: %v", err)
		}

		if _, err := m2.Parse(token); err == nil {
			t.Error("esperava erro para segredo incorreto")
		}
	})

	t.Run("rejeita token expirado", func(t *testing.T) {
		m := NewTokenManager("test-secret", -2*time.Minute)

		token, err := m.Issue(1, "admin", "user")
		if err != nil {
			t.Fatalf("esperava sucesso ao emitir, obteve erro: %v", err)
		}

		if _, err := m.Parse(token); err == nil {
			t.Error("esperava erro para token expirado")
		}
	})

	t.Run("rejeita string que não é token", func(t *testing.T) {
		m := NewTokenManager("test-secret", 15*time.Minute)
		if _, err := m.Parse("not-a-token"); err == nil {
			t.Error("esperava erro para token malformado")
		}
	})
}

func TestPassword(t *testing.T) {
	t.Run("hash e verificação com sucesso", func(t *testing.T) {
		hash, err := HashPassword("s3cret!")
		if err != nil {
			t.Fatalf("esperava sucesso ao gerar hash, obteve erro: %v", err)
		}
		if hash == "s3cret!" {
			t.Error("hash não deve ser igual à senha")
		}
		if !CheckPassword("s3cret!", hash) {
			t.Error("esperava senha válida")
		}
	})

	t.Run("senha incorreta falha", func(t *testing.T) {
		hash, err := HashPassword("s3cret!")
		if err != nil {
			t.Fatalf("esperava sucesso ao gerar hash, obteve erro: %v", err)
		}
		if CheckPassword("wrong", hash) {
			t.Error("esperava senha inválida")
		}
	})
}
