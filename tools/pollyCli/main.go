package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/MauriceNgicho/Polly-API/client"
	"github.com/MauriceNgicho/Polly-API/internal/config"
	"github.com/MauriceNgicho/Polly-API/internal/logger"
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// cliState is shared by the root command and its sub-commands. Flags land
// here; PersistentPreRunE merges them over the POLLY_* environment.
type cliState struct {
	baseURL string
	timeout float64
	debug   bool
	envFile string

	cfg    *config.Config
	client *client.Client
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	st := &cliState{}

	rootCmd := &cobra.Command{
		Use:          "pollyCli",
		Short:        "pollyCli talks to a Polly-API server: register, list polls, vote, results",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&st.baseURL, "base-url", "", "Polly-API base URL (default $POLLY_BASE_URL or http://localhost:8000)")
	rootCmd.PersistentFlags().Float64Var(&st.timeout, "timeout", 0, "Per-request timeout in seconds (default $POLLY_TIMEOUT_SECONDS or 10)")
	rootCmd.PersistentFlags().BoolVarP(&st.debug, "debug", "d", false, "Enable verbose debug output, including HTTP dumps")
	rootCmd.PersistentFlags().StringVar(&st.envFile, "env-file", config.DefaultEnvFile, "File of POLLY_* variables loaded before the environment is read")

	rootCmd.AddCommand(newRegisterCmd(st))
	rootCmd.AddCommand(newListPollsCmd(st))
	rootCmd.AddCommand(newVoteCmd(st))
	rootCmd.AddCommand(newResultsCmd(st))

	return rootCmd
}

func (st *cliState) init(cmd *cobra.Command) error {
	config.LoadEnvFile(st.envFile)
	cfg, err := config.New()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = st.baseURL
	}
	if flags.Changed("timeout") {
		cfg.TimeoutSeconds = st.timeout
	}
	if flags.Changed("debug") {
		cfg.Debug = st.debug
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return err
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = logger.Console(cmd.ErrOrStderr(), cfg.Level())
	log.Debug().Str("base_url", cfg.BaseURL).Float64("timeout_seconds", cfg.TimeoutSeconds).Msg("debug logging enabled")

	c, err := cfg.NewClient(log.Logger)
	if err != nil {
		return err
	}
	st.cfg = cfg
	st.client = c
	return nil
}

// printJSON writes v to the command's stdout as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}

func newRegisterCmd(st *cliState) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().Str("username", username).Str("base_url", st.cfg.BaseURL).Msg("registering user")

			start := time.Now()
			user, err := st.client.Register(cmd.Context(), username, password)
			elapsed := time.Since(start)
			if err != nil {
				log.Error().
					Err(err).
					Str("username", username).
					Int("status_code", client.StatusCode(err)).
					Dur("elapsed", elapsed).
					Msg("register failed")
				return err
			}

			log.Debug().Str("username", username).Dur("elapsed", elapsed).Msg("register completed")
			return printJSON(cmd, user)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newListPollsCmd(st *cliState) *cobra.Command {
	var skip, limit int

	cmd := &cobra.Command{
		Use:   "list-polls",
		Short: "List polls, one page at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			polls, err := st.client.ListPolls(cmd.Context(), skip, limit)
			elapsed := time.Since(start)
			if err != nil {
				log.Error().
					Err(err).
					Int("skip", skip).
					Int("limit", limit).
					Dur("elapsed", elapsed).
					Msg("list polls failed")
				return err
			}

			log.Debug().Int("count", len(polls)).Dur("elapsed", elapsed).Msg("list polls completed")
			return printJSON(cmd, polls)
		},
	}

	cmd.Flags().IntVar(&skip, "skip", client.DefaultSkip, "Number of polls to skip")
	cmd.Flags().IntVar(&limit, "limit", client.DefaultLimit, "Maximum number of polls to return")

	return cmd
}

func newVoteCmd(st *cliState) *cobra.Command {
	var pollID, optionID int
	var token string

	cmd := &cobra.Command{
		Use:   "vote",
		Short: "Cast a vote on a poll",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				token = st.cfg.Token
			}

			start := time.Now()
			res, err := st.client.Vote(cmd.Context(), pollID, optionID, token)
			elapsed := time.Since(start)
			if err != nil {
				log.Error().
					Err(err).
					Int("poll_id", pollID).
					Int("option_id", optionID).
					Int("status_code", client.StatusCode(err)).
					Dur("elapsed", elapsed).
					Msg("vote failed")
				return err
			}

			log.Debug().Int("poll_id", pollID).Int("option_id", optionID).Dur("elapsed", elapsed).Msg("vote completed")
			return printJSON(cmd, res)
		},
	}

	cmd.Flags().IntVar(&pollID, "poll-id", 0, "Poll ID (required)")
	cmd.Flags().IntVar(&optionID, "option-id", 0, "Option ID (required)")
	cmd.Flags().StringVar(&token, "token", "", "JWT access token (default $POLLY_TOKEN)")
	_ = cmd.MarkFlagRequired("poll-id")
	_ = cmd.MarkFlagRequired("option-id")

	return cmd
}

func newResultsCmd(st *cliState) *cobra.Command {
	var pollID int

	cmd := &cobra.Command{
		Use:   "results",
		Short: "Show the current results of a poll",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			res, err := st.client.GetResults(cmd.Context(), pollID)
			elapsed := time.Since(start)
			if err != nil {
				log.Error().
					Err(err).
					Int("poll_id", pollID).
					Int("status_code", client.StatusCode(err)).
					Dur("elapsed", elapsed).
					Msg("get results failed")
				return err
			}

			log.Debug().Int("poll_id", pollID).Dur("elapsed", elapsed).Msg("get results completed")
			return printJSON(cmd, res)
		},
	}

	cmd.Flags().IntVar(&pollID, "poll-id", 0, "Poll ID (required)")
	_ = cmd.MarkFlagRequired("poll-id")

	return cmd
}
