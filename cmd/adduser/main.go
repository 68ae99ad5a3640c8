// Command adduser creates a user account directly in the database. It is
// meant for bootstrapping an installation before the HTTP API is reachable.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dmitrijs2005/studynotes/internal/server/config"
	"github.com/dmitrijs2005/studynotes/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/studynotes/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/term"
)

func main() {

	dsn := flag.String("d", "", "database DSN")
	email := flag.String("e", "", "email of the new user")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("database DSN is required (-d)")
	}

	userEmail := *email
	if userEmail == "" {
		reader := bufio.NewReader(os.Stdin)
		fmt.Println("Enter email")
		line, err := reader.ReadString('\n')
		if err != nil {
			log.Fatal(err)
		}
		userEmail = strings.TrimSpace(line)
	}

	fmt.Println("Enter password")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rm, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		log.Fatal(err)
	}
	if err := rm.RunMigrations(ctx, db); err != nil {
		log.Fatal(err)
	}

	cfg := &config.Config{SecretKey: "unused"}
	svc := services.NewUserService(db, rm, cfg)

	user, err := svc.Register(ctx, userEmail, string(password))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Created user %s (id=%d)\n", user.Email, user.ID)
}
