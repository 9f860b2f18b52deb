// seed_catalog crea las tablas del catálogo (business, storage_stock_update,
// storage_article_price) y las puebla con productos de demostración, para
// levantar un entorno local sin la base de negocio real.
//
// Uso: go run ./cmd/seed_catalog
// Lee la conexión de las mismas variables CATALOG_DB_* que el API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/klium/quotation-api/internal/infrastructure/postgres"
	"github.com/klium/quotation-api/pkg/config"
)

var ddl = []string{
	`CREATE TABLE IF NOT EXISTS business (
		article_number     TEXT PRIMARY KEY,
		supplier_reference TEXT NOT NULL DEFAULT '',
		description        TEXT NOT NULL DEFAULT '',
		list_price         NUMERIC(12,4) NOT NULL DEFAULT 0,
		discount_amount    NUMERIC(12,4) NOT NULL DEFAULT 0,
		discount_pct       NUMERIC(8,6)  NOT NULL DEFAULT 0,
		ecotax             NUMERIC(12,4) NOT NULL DEFAULT 0,
		cost               NUMERIC(12,4) NOT NULL DEFAULT 0,
		margin             NUMERIC(12,4) NOT NULL DEFAULT 0,
		margin_pct         NUMERIC(8,6)  NOT NULL DEFAULT 0,
		active             BOOLEAN NOT NULL DEFAULT TRUE,
		visible_be         BOOLEAN NOT NULL DEFAULT FALSE,
		visible_nl         BOOLEAN NOT NULL DEFAULT FALSE,
		visible_com        BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS storage_stock_update (
		article_number TEXT PRIMARY KEY,
		stock          NUMERIC(12,2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS storage_article_price (
		article_number    TEXT PRIMARY KEY,
		min_sale_quantity NUMERIC(12,2),
		unit_of_measure   TEXT
	)`,
}

// (sku, referencia, nombre, lista, costo, stock) — margen derivado de lista − costo.
var demo = []struct {
	sku, ref, name       string
	listPrice, cost      string
	stock                string
	msq, uom             string
	visibleBE, visibleNL bool
}{
	{"00012345", "BOSCH-GSB13RE", "Klopboormachine GSB 13 RE", "89.95", "52.10", "12", "1", "ST", true, true},
	{"00067890", "MAKITA-DF333D", "Accuschroefmachine DF333D", "129.00", "81.40", "3", "1", "ST", true, false},
	{"00054321", "KNIPEX-7401250", "Zijsnijtang 250 mm", "46.50", "24.80", "0", "1", "ST", true, true},
	{"00099999", "SOUDAL-FIXALL", "Montagekit Fix All Classic", "7.85", "4.12", "240", "12", "DS", false, true},
	{"00011111", "REXEL-CABLE3G", "Installatiekabel 3G1.5 rol 100m", "58.20", "41.95", "7", "1", "RL", true, true},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Catalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conectar al catálogo: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	for _, stmt := range ddl {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			fmt.Fprintf(os.Stderr, "crear tablas: %v\n", err)
			os.Exit(1)
		}
	}

	for _, p := range demo {
		if _, err := pool.Exec(ctx, `
			INSERT INTO business (article_number, supplier_reference, description, list_price, cost, margin, margin_pct, active, visible_be, visible_nl)
			VALUES ($1, $2, $3, $4::numeric, $5::numeric, $4::numeric - $5::numeric,
				CASE WHEN $4::numeric = 0 THEN 0 ELSE ($4::numeric - $5::numeric) / $4::numeric END,
				TRUE, $6, $7)
			ON CONFLICT (article_number) DO UPDATE SET
				supplier_reference = EXCLUDED.supplier_reference,
				description = EXCLUDED.description,
				list_price = EXCLUDED.list_price,
				cost = EXCLUDED.cost,
				margin = EXCLUDED.margin,
				margin_pct = EXCLUDED.margin_pct`,
			p.sku, p.ref, p.name, p.listPrice, p.cost, p.visibleBE, p.visibleNL,
		); err != nil {
			fmt.Fprintf(os.Stderr, "insertar producto %s: %v\n", p.sku, err)
			os.Exit(1)
		}

		if _, err := pool.Exec(ctx, `
			INSERT INTO storage_stock_update (article_number, stock)
			VALUES ($1, $2::numeric)
			ON CONFLICT (article_number) DO UPDATE SET stock = EXCLUDED.stock`,
			p.sku, p.stock,
		); err != nil {
			fmt.Fprintf(os.Stderr, "insertar stock %s: %v\n", p.sku, err)
			os.Exit(1)
		}

		if _, err := pool.Exec(ctx, `
			INSERT INTO storage_article_price (article_number, min_sale_quantity, unit_of_measure)
			VALUES ($1, $2::numeric, $3)
			ON CONFLICT (article_number) DO UPDATE SET
				min_sale_quantity = EXCLUDED.min_sale_quantity,
				unit_of_measure = EXCLUDED.unit_of_measure`,
			p.sku, p.msq, p.uom,
		); err != nil {
			fmt.Fprintf(os.Stderr, "insertar unidad de venta %s: %v\n", p.sku, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Catálogo listo: %d productos de demostración\n", len(demo))
}
