package console

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/hardware-store/internal/application/inventory"
	"github.com/jhoicas/hardware-store/internal/domain"
	"github.com/jhoicas/hardware-store/internal/domain/repository"
	"github.com/jhoicas/hardware-store/pkg/logger"
)

// ConfirmToken es el texto exacto que confirma una operación destructiva.
const ConfirmToken = "YES"

// AppDeps dependencias de la interfaz de operador.
type AppDeps struct {
	Store     *inventory.Store
	Repo      repository.DatabaseRepository
	Reports   inventory.SalesReportGenerator // opcional; sin él la opción 11 avisa que no está disponible
	In        Input
	Out       Output
	Log       *logger.Logger
	StoreName string
	ReportDir string
}

// App menú principal y handlers de cada comando.
type App struct {
	store     *inventory.Store
	repo      repository.DatabaseRepository
	reports   inventory.SalesReportGenerator
	in        Input
	out       Output
	log       *logger.Logger
	storeName string
	reportDir string

	commands []command
}

type command struct {
	key   string
	label string
	run   func(ctx context.Context) error
}

// errExit termina el ciclo del menú.
var errExit = errors.New("salir")

// NewApp construye la aplicación y registra los comandos del menú.
func NewApp(d AppDeps) *App {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	a := &App{
		store:     d.Store,
		repo:      d.Repo,
		reports:   d.Reports,
		in:        d.In,
		out:       d.Out,
		log:       d.Log.Component("console"),
		storeName: d.StoreName,
		reportDir: d.ReportDir,
	}
	a.commands = []command{
		{"1", "Mostrar todos los artículos", a.listItems},
		{"2", "Agregar artículo / reponer stock", a.addItem},
		{"3", "Eliminar artículo", a.removeItem},
		{"4", "Buscar artículos por nombre", a.searchItems},
		{"5", "Mostrar todos los usuarios", a.listUsers},
		{"6", "Agregar usuario", a.addUser},
		{"7", "Editar usuario", a.editUser},
		{"8", "Registrar venta", a.completeSale},
		{"9", "Mostrar todas las transacciones", a.listTransactions},
		{"10", "Guardar base de datos", a.save},
		{"11", "Exportar reporte de ventas (PDF)", a.exportReport},
		{"0", "Salir", a.exit},
	}
	return a
}

// Run muestra el menú y ejecuta comandos hasta que el operador sale o la entrada termina.
func (a *App) Run(ctx context.Context) error {
	a.log.Info().Msg("sesión iniciada")
	for {
		choice, err := a.in.Prompt(ctx, Field{Label: a.menu(), Kind: FieldString})
		if errors.Is(err, domain.ErrCancelled) {
			if a.store.Dirty() {
				a.log.Warn().Msg("entrada terminada con cambios sin guardar")
			}
			a.log.Info().Msg("sesión terminada")
			return nil
		}
		if err != nil {
			return err
		}

		cmd, ok := a.lookup(choice)
		if !ok {
			a.out.Show(fmt.Sprintf("Opción %q inválida.", choice))
			continue
		}
		a.log.Info().Str("command", cmd.key).Msg("comando seleccionado")

		err = cmd.run(ctx)
		if errors.Is(err, errExit) {
			a.log.Info().Msg("sesión terminada")
			return nil
		}
		if err != nil {
			a.notify(cmd, err)
		}
	}
}

func (a *App) menu() string {
	var b strings.Builder
	b.WriteString("\n==== " + a.storeName + ": menú principal ====\n")
	for _, c := range a.commands {
		fmt.Fprintf(&b, "%3s. %s\n", c.key, c.label)
	}
	b.WriteString("Elija una opción:")
	return b.String()
}

func (a *App) lookup(key string) (command, bool) {
	for _, c := range a.commands {
		if c.key == key {
			return c, true
		}
	}
	return command{}, false
}

// notify traduce el error de un comando en un aviso para el operador. La sesión sigue.
func (a *App) notify(cmd command, err error) {
	var fe *fieldError
	var se *saveError
	switch {
	case errors.As(err, &se):
		a.log.Error().Err(se.err).Str("command", cmd.key).Msg("no se pudo guardar la base de datos")
		a.out.Show("No se pudo guardar la base de datos: " + se.err.Error())
		return
	case errors.Is(err, domain.ErrCancelled):
		a.log.Info().Str("command", cmd.key).Msg("operación cancelada")
		a.out.Show("Operación cancelada. Volviendo al menú principal.")
		return
	case errors.As(err, &fe):
		// el motivo ya se mostró al rechazar el valor
		a.out.Show("Volviendo al menú principal.")
	case errors.Is(err, domain.ErrItemNotFound):
		a.out.Show("Artículo no encontrado. Volviendo al menú principal.")
	case errors.Is(err, domain.ErrUserNotFound):
		a.out.Show("Usuario no encontrado. Volviendo al menú principal.")
	case errors.Is(err, domain.ErrInsufficientStock):
		a.out.Show("Stock insuficiente: la operación no se aplicó.")
	case errors.Is(err, domain.ErrStaleIndex):
		a.out.Show("El inventario cambió durante la operación: no se aplicó ningún cambio.")
	case errors.Is(err, domain.ErrRoleMismatch):
		a.out.Show("El usuario no tiene el rol requerido: la operación no se aplicó.")
	default:
		a.log.Error().Err(err).Str("command", cmd.key).Msg("comando falló")
		a.out.Show("Error: " + err.Error())
		return
	}
	a.log.Warn().Err(err).Str("command", cmd.key).Msg("operación abortada")
}

// ── Persistencia y salida ─────────────────────────────────────────────────────

// saveError el repositorio rechazó el guardado; los cambios siguen pendientes en memoria.
type saveError struct{ err error }

func (e *saveError) Error() string { return "guardar base de datos: " + e.err.Error() }
func (e *saveError) Unwrap() error { return e.err }

func (a *App) save(ctx context.Context) error {
	if err := a.repo.Save(ctx, a.store.Snapshot()); err != nil {
		return &saveError{err: err}
	}
	a.store.MarkSaved()
	a.log.Info().Msg("base de datos guardada")
	a.out.Show("Base de datos guardada.")
	return nil
}

// exit ofrece guardar si hay cambios. Si el guardado falla, solo sale cuando el operador lo confirma.
func (a *App) exit(ctx context.Context) error {
	if a.store.Dirty() {
		answer, err := a.in.Prompt(ctx, Field{
			Label: fmt.Sprintf("Hay cambios sin guardar. Escriba %s para guardarlos antes de salir.", ConfirmToken),
			Kind:  FieldConfirmation,
		})
		if err == nil && answer == ConfirmToken {
			if err := a.save(ctx); err != nil {
				a.notify(command{key: "0"}, err)
				answer, err := a.in.Prompt(ctx, Field{
					Label: fmt.Sprintf("Los cambios no se guardaron. Escriba %s para salir de todos modos.", ConfirmToken),
					Kind:  FieldConfirmation,
				})
				if err != nil || answer != ConfirmToken {
					a.out.Show("Volviendo al menú principal.")
					return nil
				}
				a.log.Warn().Msg("salida con cambios sin guardar")
			}
		}
	}
	a.out.Show("Hasta luego.")
	return errExit
}

func (a *App) exportReport(ctx context.Context) error {
	if a.reports == nil {
		a.out.Show("La exportación de reportes no está disponible.")
		return nil
	}
	report := a.store.SalesReport(a.storeName)
	data, err := a.reports.GenerateSalesReport(ctx, report)
	if err != nil {
		return fmt.Errorf("generar reporte: %w", err)
	}
	path := filepath.Join(a.reportDir, "sales_report_"+report.GeneratedAt.Format("20060102_150405")+".pdf")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("escribir reporte: %w", err)
	}
	a.log.Info().Str("path", path).Int("transactions", len(report.Transactions)).Msg("reporte de ventas exportado")
	a.out.Show("Reporte de ventas exportado a " + path)
	return nil
}
