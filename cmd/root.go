package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mamchoi/internal/config"
	"github.com/abhisek/mamchoi/internal/logger"
	"github.com/abhisek/mamchoi/internal/problemgen"
	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/rewards"
	"github.com/abhisek/mamchoi/internal/round"
	"github.com/abhisek/mamchoi/internal/store"
)

// Set by the root command before any subcommand runs.
var (
	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mamchoi",
	Short: "Math and logic games for pre-school children",
	Long: `Mầm Chồi builds rounds of math and logic questions for children aged 3-5,
in two tiers: Mầm (3-4 years) and Chồi (4-5 years).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("config")
		c, err := config.Load(file)
		if err != nil {
			return err
		}
		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			c.Log.Level = lvl
		}
		if p, _ := cmd.Flags().GetString("db"); p != "" {
			c.DB.Path = p
		}
		l, err := logger.New(c.Log)
		if err != nil {
			return err
		}
		cfg, log = c, l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides config and MAMCHOI_DB)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: search ./, ./config, $XDG_CONFIG_HOME/mamchoi)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// openStore opens the database at the configured path, falling back to
// MAMCHOI_DB and then the default XDG location.
func openStore() (*store.Store, error) {
	p := cfg.DB.Path
	if p != "" {
		if err := store.EnsureDir(p); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	} else {
		var err error
		if p, err = store.DefaultDBPath(); err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	}
	st, err := store.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", zap.String("path", p))
	return st, nil
}

func newRewardService(st *store.Store) *rewards.Service {
	return rewards.NewService(st.ProfileRepo(), st.IconHistoryRepo(), st.SessionRepo(),
		rewards.WithTransactor(st),
		rewards.WithLogger(log.Named("rewards")),
		rewards.WithLimits(cfg.History.MaxRecentIcons, cfg.History.MaxSessions))
}

func newGenerator() *round.Generator {
	pc := problemgen.DefaultConfig()
	pc.AttemptsPerSlot = cfg.Round.AttemptsPerSlot
	return round.New(pc, round.WithLogger(log.Named("round")))
}

// addRoundFlags registers the flags shared by the commands that build a
// round.
func addRoundFlags(cmd *cobra.Command) {
	cmd.Flags().String("mode", "", "Game mode (required): "+modeList())
	cmd.Flags().String("difficulty", string(question.DifficultyMam), "Tier: mam or choi")
	cmd.Flags().Int("count", 0, "Number of questions (0 = mode default)")
	cmd.Flags().Uint64("seed", 0, "Random seed for a reproducible round (0 = random)")
	_ = cmd.MarkFlagRequired("mode")
}

// roundRequest builds a round request from the flags of addRoundFlags.
func roundRequest(cmd *cobra.Command) (round.Request, error) {
	modeVal, _ := cmd.Flags().GetString("mode")
	diffVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")

	mode, err := question.ParseMode(modeVal)
	if err != nil {
		return round.Request{}, err
	}
	diff, err := question.ParseDifficulty(diffVal)
	if err != nil {
		return round.Request{}, err
	}
	if count < 0 {
		return round.Request{}, fmt.Errorf("invalid count %d: must be >= 0", count)
	}
	return round.Request{Mode: mode, Difficulty: diff, Count: count, Seed: seed}, nil
}

func modeList() string {
	var s string
	for i, m := range question.AllModes {
		if i > 0 {
			s += ", "
		}
		s += string(m)
	}
	return s
}
