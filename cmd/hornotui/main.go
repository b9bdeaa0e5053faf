// Package main provides the CLI entrypoint for hornotui.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/modepsa/hornotui/internal/api"
	"github.com/modepsa/hornotui/internal/auth"
	"github.com/modepsa/hornotui/internal/config"
	"github.com/modepsa/hornotui/internal/dashui"
	"github.com/modepsa/hornotui/internal/export"
	"github.com/modepsa/hornotui/internal/logger"
	"github.com/modepsa/hornotui/internal/model"
	"github.com/modepsa/hornotui/internal/report"
	"github.com/modepsa/hornotui/internal/store"
)

const (
	defaultServer   = "http://localhost:8000/api"
	defaultTimeout  = 30
	defaultTheme    = "light"
	defaultLogLevel = logger.InfoLevel
)

var (
	rootServer   string
	rootTimeout  int
	rootTheme    string
	rootLogLevel string

	exportDesde string
	exportHasta string
	exportOT    string
	exportOut   string

	exportsLimit int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hornotui",
		Short:         "TUI admin dashboard for furnace reports",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDashboardCmd,
	}

	rootCmd.PersistentFlags().StringVar(&rootServer, "server", defaultServer, "reporting service base URL")
	rootCmd.PersistentFlags().IntVar(&rootTimeout, "timeout", defaultTimeout, "request timeout in seconds")
	rootCmd.Flags().StringVar(&rootTheme, "theme", defaultTheme, "color theme (light|dark)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", defaultLogLevel, "log level (debug|info|warn|error)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newExportsCmd())

	return rootCmd
}

func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "server", &rootServer, fileCfg.API.BaseURL)
	applyIntConfig(cmd, "timeout", &rootTimeout, fileCfg.API.TimeoutSeconds)
	applyStringConfig(cmd, "theme", &rootTheme, fileCfg.UI.Theme)
	applyStringConfig(cmd, "log-level", &rootLogLevel, fileCfg.UI.LogLevel)

	cfg := model.Config{
		APIBaseURL:     rootServer,
		TimeoutSeconds: rootTimeout,
		Theme:          rootTheme,
		LogLevel:       rootLogLevel,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func runDashboardCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	log := logger.Get(cfg.LogLevel, config.DefaultLogPath())
	defer func() {
		_ = log.Sync()
	}()

	ctx := context.Background()
	if err := auth.EnsureDefaultUser(ctx, st); err != nil {
		return fmt.Errorf("failed to seed default account: %w", err)
	}

	session, err := st.LoadSession(ctx)
	if err != nil {
		log.Errorw("failed to restore session", "error", err)
		session = nil
	}

	settings, err := st.LoadSettings(ctx)
	if err != nil {
		log.Errorw("failed to load settings", "error", err)
	}
	if cmd.Flags().Changed("theme") {
		settings.Theme = cfg.Theme
	} else if settings.Theme == "" {
		settings.Theme = cfg.Theme
	}

	cli := api.New(cfg.APIBaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
	app := dashui.New(st, cli, log, cfg, session, settings, config.DefaultExportDir())
	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		Args:  cobra.NoArgs,
		RunE:  runLoginCmd,
	}
}

func runLoginCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := context.Background()
	if err := auth.EnsureDefaultUser(ctx, st); err != nil {
		return fmt.Errorf("failed to seed default account: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), "Usuario: ")
	reader := bufio.NewReader(cmd.InOrStdin())
	usuario, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read usuario: %w", err)
	}
	usuario = strings.TrimSpace(usuario)

	fmt.Fprint(cmd.OutOrStdout(), "Contraseña: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	session, err := auth.Login(ctx, st, usuario, string(password))
	if err != nil {
		return err
	}
	if err := st.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Sesión iniciada como %s\n", session.User.Name)
	return nil
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the persisted session",
		Args:  cobra.NoArgs,
		RunE:  runLogoutCmd,
	}
}

func runLogoutCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if err := st.DeleteSession(context.Background()); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Sesión cerrada")
	return nil
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the filtered report as a spreadsheet",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
	cmd.Flags().StringVar(&exportDesde, "desde", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&exportHasta, "hasta", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&exportOT, "ot", "", "order number filter")
	cmd.Flags().StringVar(&exportOut, "out", "", "output directory (default: data dir)")
	return cmd
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	filters := model.Filters{NumeroOT: exportOT, OOT: "all"}
	if exportDesde != "" {
		parsed, err := time.ParseInLocation("2006-01-02", exportDesde, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --desde value: %w", err)
		}
		filters.Desde = &parsed
	}
	if exportHasta != "" {
		parsed, err := time.ParseInLocation("2006-01-02", exportHasta, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --hasta value: %w", err)
		}
		filters.Hasta = &parsed
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	outDir := exportOut
	if outDir == "" {
		outDir = config.DefaultExportDir()
	}

	ctx := context.Background()
	cli := api.New(cfg.APIBaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
	data, err := cli.ExportExcel(ctx, report.BuildPayload(filters, 0, 0))
	if err != nil {
		return fmt.Errorf("failed to download spreadsheet: %w", err)
	}

	now := time.Now()
	path, err := export.Save(outDir, data, now)
	if err != nil {
		return err
	}
	if err := st.LogExport(ctx, filepath.Base(path), now); err != nil {
		logErrf("failed to record export: %v\n", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Guardado en %s\n", path)
	return nil
}

func newExportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exports",
		Short: "List saved spreadsheets",
		Args:  cobra.NoArgs,
		RunE:  runExportsCmd,
	}
	cmd.Flags().IntVar(&exportsLimit, "last", 20, "limit to last N exports")
	return cmd
}

func runExportsCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	records, err := st.ListExports(context.Background(), exportsLimit)
	if err != nil {
		return fmt.Errorf("failed to list exports: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Sin exportaciones")
		return nil
	}
	for _, rec := range records {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", rec.CreatedAt.Format("2006-01-02 15:04"), rec.Filename)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# hornotui configuration
# Uncomment a value to enable it. CLI flags override config values.

[api]
# base-url = %q        # Reporting service base URL
# timeout-seconds = %d # Request timeout

[ui]
# theme = %q           # Color theme (light|dark)
# log-level = %q       # Log level (debug|info|warn|error)
`,
		defaultServer,
		defaultTimeout,
		defaultTheme,
		defaultLogLevel,
	)
}

func validateConfig(cfg model.Config) error {
	if strings.TrimSpace(cfg.APIBaseURL) == "" {
		return fmt.Errorf("--server must not be empty")
	}
	if cfg.TimeoutSeconds <= 0 {
		return fmt.Errorf("--timeout must be > 0")
	}
	if cfg.Theme != "light" && cfg.Theme != "dark" {
		return fmt.Errorf("--theme must be light or dark")
	}
	switch cfg.LogLevel {
	case logger.DebugLevel, logger.InfoLevel, logger.WarnLevel, logger.ErrorLevel:
	default:
		return fmt.Errorf("--log-level must be debug, info, warn or error")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
