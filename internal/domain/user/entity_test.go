package user

import (
	"errors"
	"testing"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Admin", "  Admin@Example.COM ", "secret1", RoleAdmin)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if u.Email != "admin@example.com" {
		t.Errorf("email = %q, deveria ser normalizado para minúsculas", u.Email)
	}
	if u.Password == "secret1" {
		t.Error("a senha deveria ser armazenada com hash")
	}
	if !u.CheckPassword("secret1") {
		t.Error("CheckPassword deveria aceitar a senha original")
	}
	if u.CheckPassword("outra") {
		t.Error("CheckPassword deveria rejeitar senha incorreta")
	}
	if !u.IsAdmin() || !u.IsActive() {
		t.Error("usuário criado como admin deveria estar ativo e ser admin")
	}
}

func TestNewUserDefaultRole(t *testing.T) {
	u, err := NewUser("Operador", "op@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if u.Role != RoleStaff {
		t.Errorf("role = %q, esperado %q como padrão", u.Role, RoleStaff)
	}
}

func TestNewUserValidation(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{"", "a@b.com", "secret1", ErrEmptyName},
		{"Ana", "sem-arroba", "secret1", ErrInvalidEmail},
		{"Ana", "", "secret1", ErrInvalidEmail},
		{"Ana", "a@b.com", "12345", ErrShortPass},
	}

	for _, tc := range cases {
		if _, err := NewUser(tc.name, tc.email, tc.password, RoleStaff); !errors.Is(err, tc.want) {
			t.Errorf("NewUser(%q, %q): erro = %v, esperado %v", tc.name, tc.email, err, tc.want)
		}
	}
}
