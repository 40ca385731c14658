// inventoryctl tareas administrativas sobre el almacén sin levantar el servidor HTTP.
//
// Uso:
//
//	inventoryctl add-user -username ana -password secreta [-role staff] [-email ana@x.com]
//	inventoryctl sweep
//	inventoryctl export-xlsx [-dir ./out]
//	inventoryctl export-pdf [-dir ./out]
//	inventoryctl report -kind low-stock|inventory|categories
//	inventoryctl audit [-limit 20]
//
// La configuración (DB_DRIVER, DB_PATH, ...) se lee igual que en cmd/api.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/inventory-pro/internal/application/dto"
	"github.com/jhoicas/inventory-pro/internal/bootstrap"
	"github.com/jhoicas/inventory-pro/internal/domain/entity"
	"github.com/jhoicas/inventory-pro/pkg/config"
	"github.com/jhoicas/inventory-pro/pkg/logger"
)

const usage = "uso: inventoryctl add-user|sweep|export-xlsx|export-pdf|report|audit [flags]"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	if err := run(ctx, cfg, log, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, cmd string, args []string) error {
	switch cmd {
	case "add-user", "sweep", "export-xlsx", "export-pdf", "report", "audit":
	default:
		return fmt.Errorf("subcomando desconocido; %s", usage)
	}

	rt, err := bootstrap.Open(ctx, cfg, log, bootstrap.Options{SkipSweep: true})
	if err != nil {
		return err
	}
	defer rt.Close()

	// Acciones administrativas explícitas: sin actor en la auditoría.
	sess := entity.SystemSession()

	switch cmd {
	case "add-user":
		fs := flag.NewFlagSet("add-user", flag.ExitOnError)
		username := fs.String("username", "", "nombre de usuario")
		password := fs.String("password", "", "contraseña (mínimo 4 caracteres)")
		role := fs.String("role", entity.RoleStaff, "admin | manager | staff")
		email := fs.String("email", "", "correo opcional")
		_ = fs.Parse(args)
		u, err := rt.Users.Create(ctx, sess, dto.CreateUserRequest{
			Username: *username, Password: *password, Role: *role, Email: *email,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Usuario '%s' creado (id %d, rol %s).\n", u.Username, u.ID, u.Role)

	case "sweep":
		n, err := rt.Items.SweepInvalid(ctx, sess)
		if err != nil {
			return err
		}
		fmt.Printf("Registros inválidos eliminados: %d\n", n)

	case "export-xlsx", "export-pdf":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		dir := fs.String("dir", cfg.Export.Dir, "directorio de salida")
		_ = fs.Parse(args)
		var f *dto.ExportFile
		if cmd == "export-xlsx" {
			f, err = rt.Exports.Spreadsheet(ctx)
		} else {
			f, err = rt.Exports.PDF(ctx)
		}
		if err != nil {
			return err
		}
		path := filepath.Join(*dir, f.Name)
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return err
		}
		fmt.Printf("Exportado a %s\n", path)

	case "report":
		fs := flag.NewFlagSet("report", flag.ExitOnError)
		kind := fs.String("kind", "inventory", "low-stock | inventory | categories")
		_ = fs.Parse(args)
		text, err := renderReport(ctx, rt, *kind)
		if err != nil {
			return err
		}
		fmt.Print(text)

	case "audit":
		fs := flag.NewFlagSet("audit", flag.ExitOnError)
		limit := fs.Int("limit", 20, "filas a mostrar")
		_ = fs.Parse(args)
		entries, err := rt.Audit.ListRecent(ctx, *limit)
		if err != nil {
			return err
		}
		for _, e := range entries {
			actor := "-"
			if e.UserID != nil {
				actor = fmt.Sprintf("%d", *e.UserID)
			}
			fmt.Printf("%s  %-6s %-16s %s\n", e.Timestamp.Format(entity.TimestampLayout), actor, e.Action, e.Details)
		}
	}
	return nil
}

func renderReport(ctx context.Context, rt *bootstrap.Runtime, kind string) (string, error) {
	switch kind {
	case "low-stock":
		rep, err := rt.Reports.LowStockReport(ctx)
		if err != nil {
			return "", err
		}
		return rt.Renderer.LowStock(rep), nil
	case "inventory":
		rep, err := rt.Reports.InventoryReport(ctx)
		if err != nil {
			return "", err
		}
		return rt.Renderer.Inventory(rep), nil
	case "categories":
		rep, err := rt.Reports.CategoryReport(ctx)
		if err != nil {
			return "", err
		}
		return rt.Renderer.Categories(rep), nil
	default:
		return "", fmt.Errorf("kind inválido %q (low-stock, inventory, categories)", kind)
	}
}
