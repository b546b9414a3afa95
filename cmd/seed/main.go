// seed carga clientes iniciales en la tabla customers.
//
// Uso: go run ./cmd/seed [ruta/clientes.csv]
// El CSV lleva las columnas firstName,lastName,email,phone (encabezado opcional),
// en UTF-8 o ISO-8859-1. Sin argumentos inserta el cliente de ejemplo Ana Garcia.
package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/arquetipo/clientes-api/internal/domain"
	"github.com/arquetipo/clientes-api/internal/domain/entity"
	"github.com/arquetipo/clientes-api/internal/infrastructure/postgres"
	"github.com/arquetipo/clientes-api/pkg/config"
	"github.com/arquetipo/clientes-api/pkg/logger"
)

var defaultSeed = []entity.CustomerWriteModel{
	{FirstName: "Ana", LastName: "Garcia", Email: "ana.garcia@test.com", Phone: "87654321"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	customers := defaultSeed
	if len(os.Args) > 1 {
		raw, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Str("file", os.Args[1]).Msg("abrir CSV")
		}
		customers, err = parseCustomers(raw)
		if err != nil {
			log.Fatal().Err(err).Str("file", os.Args[1]).Msg("leer CSV")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repo := postgres.NewCustomerRepository(pool)
	if err := repo.AddBatch(ctx, customers); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			log.Warn().Msg("alguno de los emails ya existe; no se insertó ningún cliente")
			return
		}
		log.Fatal().Err(err).Msg("insertar clientes")
	}
	log.Info().Int("count", len(customers)).Msg("clientes insertados")
}

// parseCustomers lee el CSV. Si el contenido no es UTF-8 válido se decodifica como ISO-8859-1.
func parseCustomers(raw []byte) ([]entity.CustomerWriteModel, error) {
	if !utf8.Valid(raw) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("decodificar ISO-8859-1: %w", err)
		}
		raw = decoded
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf")) // BOM

	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var out []entity.CustomerWriteModel
	for line := 1; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "firstName") {
			continue
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("línea %d: se esperan al menos 3 columnas (firstName,lastName,email)", line)
		}
		c := entity.CustomerWriteModel{
			FirstName: strings.TrimSpace(rec[0]),
			LastName:  strings.TrimSpace(rec[1]),
			Email:     strings.TrimSpace(rec[2]),
		}
		if len(rec) > 3 {
			c.Phone = strings.TrimSpace(rec[3])
		}
		if c.FirstName == "" || c.LastName == "" || c.Email == "" {
			return nil, fmt.Errorf("línea %d: firstName, lastName y email son obligatorios", line)
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, errors.New("el CSV no tiene clientes")
	}
	return out, nil
}
