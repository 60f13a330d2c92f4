// Package cli implements the underbar command line: JSON documents in,
// go-underbar operations applied, JSON documents out.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-underbar/arr"
)

type app struct {
	v   *viper.Viper
	cfg Config
	log *zap.Logger

	// src is nil unless a seed was configured.
	src arr.IntNSource
}

// NewRootCommand builds the underbar command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "underbar",
		Short: "Apply collection utilities to JSON documents",
		Long: `underbar reads JSON documents from its arguments, or one per line from
stdin when no argument is given, applies an operation and writes JSON to stdout.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	def := DefaultConfig()
	flags := root.PersistentFlags()
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.Int("indent", def.Indent, "indent output JSON by this many spaces")
	flags.String("log-level", def.LogLevel.String(), "log level: debug, info, warn or error")
	flags.Uint64("seed", def.Seed, "seed for shuffle; 0 draws from the global source")

	root.AddCommand(a.commands()...)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(a.v, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if cfg.Seed != 0 {
		a.src = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	a.log.Debug("config loaded",
		zap.Int("indent", cfg.Indent),
		zap.Stringer("log_level", cfg.LogLevel),
		zap.Uint64("seed", cfg.Seed),
	)
	return nil
}

// eachDocument builds a command that applies op to every input document and
// writes one result per document.
func (a *app) eachDocument(use, short string, op func(cmd *cobra.Command, doc json.RawMessage) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [json...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := readDocuments(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			a.log.Debug("running command", zap.String("command", use), zap.Int("documents", len(docs)))
			for i, doc := range docs {
				res, err := op(cmd, doc)
				if err != nil {
					return fmt.Errorf("document %d: %w", i+1, err)
				}
				if err := a.write(cmd.OutOrStdout(), res); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// allDocuments builds a command that applies op to all input documents at
// once and writes a single result.
func (a *app) allDocuments(use, short string, op func(cmd *cobra.Command, docs []json.RawMessage) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [json...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := readDocuments(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			a.log.Debug("running command", zap.String("command", use), zap.Int("documents", len(docs)))
			res, err := op(cmd, docs)
			if err != nil {
				return err
			}
			return a.write(cmd.OutOrStdout(), res)
		},
	}
}

func (a *app) write(w io.Writer, v any) error {
	var (
		b   []byte
		err error
	)
	if a.cfg.Indent > 0 {
		b, err = json.MarshalIndent(v, "", strings.Repeat(" ", a.cfg.Indent))
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("cli: encode result: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
