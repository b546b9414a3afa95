// token emite un JWT firmado con JWT_SECRET para probar las rutas protegidas.
//
// Uso: go run ./cmd/token [userID] [role]
// Por defecto userID "dev" y role "admin". La expiración y el issuer salen de la configuración.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/arquetipo/clientes-api/pkg/config"
	"github.com/arquetipo/clientes-api/pkg/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	userID, role := "dev", "admin"
	if len(os.Args) > 1 {
		userID = os.Args[1]
	}
	if len(os.Args) > 2 {
		role = os.Args[2]
	}

	m, err := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.Expiration)*time.Minute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configurar JWT: %v\n", err)
		os.Exit(1)
	}
	token, err := m.Issue(jwt.Identity{UserID: userID, Role: role})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
