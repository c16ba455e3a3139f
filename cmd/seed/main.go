// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"cableworks/internal/core/id"
	"cableworks/internal/infrastructure/storage/postgres"
	"cableworks/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Connect to database
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	// Seed admin user
	if _, err := seedAdminUser(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	// Seed demo data if requested
	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) (id.ID, error) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@cableworks.in"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	// Check if admin already exists
	var existingID id.ID
	err := pool.Pool.QueryRow(ctx,
		`SELECT id FROM users WHERE email = $1 AND NOT deletion_mark`,
		adminEmail,
	).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "email", adminEmail, "user_id", existingID)
		return existingID, nil
	}
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return id.Nil(), fmt.Errorf("check admin exists: %w", err)
	}

	// Hash password
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return id.Nil(), fmt.Errorf("hash password: %w", err)
	}

	userID := id.New()
	now := time.Now()

	// Create admin user
	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO users (
			id, email, password_hash, first_name, last_name,
			is_active, is_admin, email_verified, email_verified_at, version
		)
		VALUES ($1, $2, $3, 'System', 'Admin', true, true, true, $4, 1)
	`, userID, adminEmail, string(passwordHash), now)
	if err != nil {
		return id.Nil(), fmt.Errorf("insert admin user: %w", err)
	}

	// Assign admin role
	var adminRoleID id.ID
	err = pool.Pool.QueryRow(ctx,
		`SELECT id FROM roles WHERE code = 'admin'`,
	).Scan(&adminRoleID)
	if err != nil {
		log.Warnw("admin role not found, skipping role assignment", "error", err)
	} else {
		_, err = pool.Pool.Exec(ctx, `
			INSERT INTO user_roles (user_id, role_id, granted_by)
			VALUES ($1, $2, NULL)
			ON CONFLICT (user_id, role_id) DO NOTHING
		`, userID, adminRoleID)
		if err != nil {
			log.Warnw("failed to assign admin role", "error", err)
		}
	}

	log.Infow("admin user created",
		"email", adminEmail,
		"user_id", userID,
	)

	return userID, nil
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	log.Info("seeding demo data...")

	// 1. Seed Organization
	// Required for documents
	orgID := id.New()
	orgCode := "ORG-2025-00001"
	_, err := pool.Pool.Exec(ctx, `
		INSERT INTO cat_organizations (id, code, name, full_name, gstin, pan, address, is_default, version, deletion_mark, attributes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true, 1, false, '{}')
		ON CONFLICT (code) WHERE deletion_mark = FALSE DO NOTHING
	`, orgID, orgCode, "Sterling Cables", "Sterling Cables Pvt Ltd", "27AABCS1234F1Z5", "AABCS1234F", "Plot 14, MIDC Industrial Area, Pune 411026")
	if err != nil {
		log.Warnw("failed to seed organization", "error", err)
	}

	// 2. Seed Units with UQC codes
	type unitSeed struct {
		name    string
		symbol  string
		uqcCode string
		uType   string
	}

	units := []unitSeed{
		{"Numbers", "nos", "NOS", "piece"},
		{"Kilograms", "kg", "KGS", "weight"},
		{"Metres", "m", "MTR", "length"},
		{"Rolls", "roll", "ROL", "pack"},
		{"Drums", "drum", "DRM", "pack"},
	}

	// Map symbol -> UUID for product references
	unitIDs := make(map[string]id.ID)

	for _, u := range units {
		uid := id.New()
		commandTag, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_units (id, code, name, symbol, uqc_code, type, is_base, conversion_factor, version, deletion_mark, attributes)
			VALUES ($1, $2, $3, $4, $5, $6, true, 1, 1, false, '{}')
			ON CONFLICT (code) WHERE deletion_mark = FALSE DO NOTHING
		`, uid, u.symbol, u.name, u.symbol, u.uqcCode, u.uType)

		if err != nil {
			log.Warnw("failed to seed unit", "name", u.name, "error", err)
			continue
		}

		// If inserted, use new ID. If conflict, fetch existing ID.
		if commandTag.RowsAffected() == 0 {
			err = pool.Pool.QueryRow(ctx, `
				SELECT id FROM cat_units
				WHERE code = $1 AND deletion_mark = FALSE
			`, u.symbol).Scan(&uid)
			if err != nil {
				log.Warnw("failed to fetch existing unit id", "symbol", u.symbol, "error", err)
				continue
			}
		}

		unitIDs[u.symbol] = uid
	}

	// 3. Seed Partners
	partners := []struct {
		name  string
		ptype string
		form  string
		gstin string
		pan   string
	}{
		{"Vidarbha Copper Traders", "supplier", "company", "27AADCV5678K1Z3", "AADCV5678K"},
		{"Apex Electricals", "customer", "company", "29AAACA9012M1Z8", "AAACA9012M"},
		{"R K Enterprises", "both", "individual", "", "AKNPR3456L"},
	}

	batch := make([]postgres.BatchQuery, 0, len(partners))
	for i, p := range partners {
		var gstin any
		if p.gstin != "" {
			gstin = p.gstin
		}
		batch = append(batch, postgres.BatchQuery{
			SQL: `
				INSERT INTO cat_partners (id, code, name, type, legal_form, gstin, pan, full_name, version, deletion_mark, attributes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1, false, '{}')
				ON CONFLICT (code) WHERE deletion_mark = FALSE DO NOTHING
			`,
			Args: []any{id.New(), fmt.Sprintf("PTR-2025-%05d", i+1), p.name, p.ptype, p.form, gstin, p.pan, p.name},
		})
	}

	// 4. Seed Employees
	employees := []struct {
		name        string
		designation string
		department  string
		pan         string
		basic       string
	}{
		{"Suresh Patil", "Extrusion Operator", "production", "ABCPP1234D", "18000"},
		{"Meena Iyer", "Accounts Executive", "accounts", "AEFPI5678G", "25000"},
		{"Rahul Deshmukh", "Sales Engineer", "sales", "AGHPD9012J", "30000"},
	}

	for i, e := range employees {
		batch = append(batch, postgres.BatchQuery{
			SQL: `
				INSERT INTO cat_employees (id, code, name, designation, department, pan, basic_salary, version, deletion_mark, attributes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, 1, false, '{}')
				ON CONFLICT (code) WHERE deletion_mark = FALSE DO NOTHING
			`,
			Args: []any{id.New(), fmt.Sprintf("EMP-%05d", i+1), e.name, e.designation, e.department, e.pan, e.basic},
		})
	}

	// Partners and employees go in one round-trip
	txManager := postgres.NewTxManager(pool)
	executor := postgres.NewBatchExecutor(txManager)
	err = txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return executor.ExecuteBatch(ctx, batch)
	})
	if err != nil {
		log.Warnw("failed to seed partners and employees", "error", err)
	}

	// 5. Seed Products via COPY (cable SKUs share HSN 8544)
	products := []struct {
		name       string
		article    string
		hsn        string
		ptype      string
		unitSymbol string
		price      string
		weight     string
	}{
		{"FR PVC Wire 1.5 sqmm (90m coil)", "FR-1.5-90", "8544", "goods", "roll", "1450", "9.2"},
		{"FR PVC Wire 2.5 sqmm (90m coil)", "FR-2.5-90", "8544", "goods", "roll", "2350", "14.5"},
		{"Armoured Cable 4C x 10 sqmm", "ARM-4C10", "8544", "goods", "m", "310", "1.15"},
		{"Flexible Cable 3C x 1.5 sqmm", "FLX-3C15", "8544", "goods", "m", "48", "0.09"},
		{"Copper Rod 8mm", "CU-ROD-8", "7408", "goods", "kg", "780", "1"},
		{"Cable Testing Service", "SVC-TEST", "", "service", "nos", "1500", "0"},
	}

	inserter := postgres.NewBatchInserter(txManager)
	columns := []string{
		"id", "code", "name", "type", "article", "hsn_code", "base_unit_id",
		"unit_price", "weight", "version", "deletion_mark", "attributes",
	}

	rows := make([][]any, 0, len(products))
	for i, p := range products {
		unitID, ok := unitIDs[p.unitSymbol]
		if !ok {
			unitID = unitIDs["nos"]
		}

		var hsn any
		if p.hsn != "" {
			hsn = p.hsn
		}

		price, _ := decimal.NewFromString(p.price)
		weight, _ := decimal.NewFromString(p.weight)

		rows = append(rows, []any{
			id.New(), fmt.Sprintf("PRD-2025-%05d", i+1), p.name, p.ptype, p.article, hsn, unitID.String(),
			price, weight, 1, false, []byte("{}"),
		})
	}

	inserted, err := inserter.CopyFromSlice(ctx, "cat_products", columns, rows)
	if err != nil {
		// COPY has no ON CONFLICT; rerunning the seeder trips unique codes
		log.Warnw("failed to seed products (already seeded?)", "error", err)
	} else {
		log.Infow("products seeded", "count", inserted)
	}

	log.Info("demo data seeded successfully")
	return nil
}
