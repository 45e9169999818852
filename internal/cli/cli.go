package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cbbstats/team-registry/internal/config"
	"github.com/cbbstats/team-registry/internal/logger"
	"github.com/cbbstats/team-registry/internal/lookup"
	"github.com/cbbstats/team-registry/internal/registry"
	"github.com/cbbstats/team-registry/internal/storage"
	"github.com/cbbstats/team-registry/internal/team"
	"github.com/cbbstats/team-registry/internal/validate"
)

const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitNotFound = 2
)

var (
	flagRegistry string
	flagFormat   string
	flagVerbose  bool

	flagMaster      string
	flagMappingsDir string
	flagMappings    map[string]string
	flagAliases     string
	flagOut         string

	flagService string
)

// NewRootCmd creates the root command with defaults seeded from cfg.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team-registry",
		Short: "Build and query the NCAA team identity registry",
		Long: `Resolves any NCAA team name variant to one canonical team and to the
identifier each external stats service uses for it. The registry is built
offline from the master team list plus per-service name→slug maps, then
queried read-only at runtime.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logger.ParseLevel(cfg.LogLevel)
			if flagVerbose {
				level = logger.LevelDebug
			}
			logger.SetDefault(logger.New(level, os.Stderr))
		},
	}

	cmd.PersistentFlags().StringVar(&flagRegistry, "registry", cfg.RegistryPath, "Path to the registry snapshot")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newBuildCmd(cfg))
	cmd.AddCommand(newLookupCmd())
	cmd.AddCommand(newTeamsCmd())
	cmd.AddCommand(newMissingCmd())
	cmd.AddCommand(newValidateCmd())

	return cmd
}

func newBuildCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the registry from the master list and mapping files",
		Long: `Builds one consolidated registry snapshot. A missing or malformed
mapping file degrades to partial data for that service; only a missing
master list fails the build.`,
		RunE: runBuild,
	}

	cmd.Flags().StringVar(&flagMaster, "master", cfg.MasterPath, "Master team list (JSON id → display name)")
	cmd.Flags().StringVar(&flagMappingsDir, "mappings-dir", cfg.MappingsDir, "Directory of <service>.json mapping files")
	cmd.Flags().StringToStringVar(&flagMappings, "mapping", nil, "Explicit service=path mapping file (repeatable)")
	cmd.Flags().StringVar(&flagAliases, "aliases", cfg.AliasesPath, "Operator alias-override YAML (merged with built-in table)")
	cmd.Flags().StringVar(&flagOut, "out", cfg.RegistryPath, "Output path for the registry snapshot")

	return cmd
}

// runBuild is the build command logic
func runBuild(cmd *cobra.Command, args []string) error {
	format, err := ParseFormat(flagFormat)
	if err != nil {
		return err
	}

	paths := make(map[string]string, len(team.AllServices))
	for _, service := range team.AllServices {
		// Conventional location; only picked up when the file exists so
		// services without a scraper don't warn on every build.
		p := filepath.Join(flagMappingsDir, service+".json")
		if _, err := os.Stat(p); err == nil {
			paths[service] = p
		}
	}
	for service, p := range flagMappings {
		if !validService(service) {
			return fmt.Errorf("unknown service in --mapping: %s", service)
		}
		paths[service] = p
	}

	result, err := registry.Build(registry.Sources{
		MasterPath:   flagMaster,
		MappingPaths: paths,
		AliasesPath:  flagAliases,
	})
	if err != nil {
		return err
	}

	if err := storage.Save(result.Registry, flagOut); err != nil {
		return fmt.Errorf("saving registry: %w", err)
	}

	out := &BuildOutput{
		RegistryPath:  flagOut,
		TeamCount:     result.Registry.TeamCount,
		AliasCount:    result.Registry.AliasCount,
		MappingCounts: result.MappingCounts,
		Collisions:    result.Collisions,
		Unmapped:      result.Unmapped,
	}
	if format == FormatJSON {
		return writeJSON(os.Stdout, out)
	}
	return writeBuildText(os.Stdout, out, flagVerbose)
}

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup NAME",
		Short: "Resolve a team name to its id and service identifiers",
		Args:  cobra.ExactArgs(1),
		RunE:  runLookup,
	}

	cmd.Flags().StringVar(&flagService, "service", "", "Print only this service's identifier")

	return cmd
}

// runLookup is the lookup command logic
func runLookup(cmd *cobra.Command, args []string) error {
	format, err := ParseFormat(flagFormat)
	if err != nil {
		return err
	}
	if flagService != "" && !validService(flagService) {
		return fmt.Errorf("unknown service: %s (known: %s)", flagService, strings.Join(team.AllServices, ", "))
	}

	svc, err := lookup.Open(flagRegistry)
	if err != nil {
		return err
	}

	name := args[0]
	id, ok := svc.TeamID(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Team not found: %s\n", name)
		os.Exit(ExitNotFound)
	}

	t := svc.Team(id)
	out := &LookupOutput{
		Name:          name,
		TeamID:        id,
		CanonicalName: t.CanonicalName,
		DisplayName:   t.DisplayName,
	}
	if flagService != "" {
		slug, ok := svc.ServiceSlug(id, flagService)
		if !ok {
			fmt.Fprintf(os.Stderr, "No %s identifier for %s\n", flagService, t.CanonicalName)
			os.Exit(ExitNotFound)
		}
		out.Service = flagService
		out.Slug = slug
	} else {
		out.Services = t.Services
	}

	if format == FormatJSON {
		return writeJSON(os.Stdout, out)
	}
	return writeLookupText(os.Stdout, out)
}

func newTeamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List all teams in the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseFormat(flagFormat)
			if err != nil {
				return err
			}
			svc, err := lookup.Open(flagRegistry)
			if err != nil {
				return err
			}
			teams := svc.Teams()
			if format == FormatJSON {
				return writeJSON(os.Stdout, teams)
			}
			return writeTeamsText(os.Stdout, teams)
		},
	}
}

func newMissingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "missing SERVICE",
		Short: "List teams with no identifier for a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseFormat(flagFormat)
			if err != nil {
				return err
			}
			service := args[0]
			if !validService(service) {
				return fmt.Errorf("unknown service: %s (known: %s)", service, strings.Join(team.AllServices, ", "))
			}
			svc, err := lookup.Open(flagRegistry)
			if err != nil {
				return err
			}
			missing := svc.MissingService(service)
			if format == FormatJSON {
				return writeJSON(os.Stdout, missing)
			}
			return writeTeamsText(os.Stdout, missing)
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Run consistency checks against a registry snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseFormat(flagFormat)
			if err != nil {
				return err
			}
			reg, err := storage.Load(flagRegistry)
			if err != nil {
				return err
			}

			report := validate.Check(reg)
			if format == FormatJSON {
				if err := writeJSON(os.Stdout, report); err != nil {
					return err
				}
			} else if err := writeReportText(os.Stdout, report); err != nil {
				return err
			}

			if !report.OK() {
				os.Exit(ExitError)
			}
			return nil
		},
	}
}

func validService(service string) bool {
	for _, s := range team.AllServices {
		if s == service {
			return true
		}
	}
	return false
}

// Execute runs the CLI
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		os.Exit(ExitError)
	}

	if err := NewRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
