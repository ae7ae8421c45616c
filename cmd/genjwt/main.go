// genjwt emite un Bearer token para probar la API en local.
//
// Uso: go run ./cmd/genjwt --user analista-1 --role analista
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/jhoicas/sales-analytics/pkg/config"
	"github.com/jhoicas/sales-analytics/pkg/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	user := pflag.StringP("user", "u", "dev", "user_id del token")
	role := pflag.StringP("role", "r", jwt.RoleAnalyst, "rol: admin | analista")
	minutes := pflag.IntP("minutes", "m", cfg.JWT.Expiration, "minutos de validez")
	pflag.Parse()

	token, err := jwt.Generate(cfg.JWT.Secret, *user, *role, cfg.JWT.Issuer, *minutes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v (defina JWT_SECRET)\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
