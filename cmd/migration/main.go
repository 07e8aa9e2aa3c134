package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/adapter/repository"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/user"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/infrastructure/database"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	// Executar as migrações
	if err := database.RunMigrations(); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	// Garantir o usuário administrador inicial
	if err := seedAdminUser(); err != nil {
		log.Fatalf("Erro ao criar usuário administrador: %v", err)
	}

	log.Println("Migrações executadas com sucesso!")
}

// seedAdminUser cria o administrador inicial a partir de ADMIN_EMAIL e
// ADMIN_PASSWORD, caso ainda não exista
func seedAdminUser() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD não configurados; pulando seed do administrador")
		return nil
	}

	db, err := database.NewPostgresDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userRepo := repository.NewUserRepository(db)

	if _, err := userRepo.FindByEmail(ctx, email); err == nil {
		log.Printf("Usuário administrador %s já existe", email)
		return nil
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	admin, err := user.NewUser("Administrador", email, password, user.RoleAdmin)
	if err != nil {
		return err
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("Usuário administrador %s criado", email)
	return nil
}
