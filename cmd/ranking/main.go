package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/aquasecurity/table"
	"github.com/pkg/errors"
	"github.com/scottcagno/collections/pkg/logging"
	"github.com/scottcagno/collections/pkg/ranking"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	contestFile string
	topN        int
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "ranking",
	Short: "score voting contests",
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "score a contest file and print the standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.NewDefaultLogger(verbose)
		defer log.Sync()

		standings, err := score(contestFile, topN, log)
		if err != nil {
			log.Error("scoring failed", zap.Error(err))
			return err
		}
		render(cmd.OutOrStdout(), standings)
		return nil
	},
}

func score(path string, top int, log *zap.Logger) ([]ranking.Standing, error) {
	c, err := ranking.Load(path)
	if err != nil {
		return nil, err
	}
	standings, err := ranking.NewScorer(ranking.Config{TopN: top}, log).Score(c)
	if err != nil {
		return nil, errors.Wrapf(err, "score %q", path)
	}
	return standings, nil
}

func render(w io.Writer, standings []ranking.Standing) {
	tbl := table.New(w)
	tbl.SetHeaders("#", "State", "Points")
	for _, s := range standings {
		tbl.AddRow(strconv.Itoa(s.Place), s.Name, strconv.Itoa(s.Points))
	}
	tbl.Render()
}

func init() {
	scoreCmd.Flags().StringVarP(&contestFile, "file", "f", "", "contest file (yaml)")
	scoreCmd.Flags().IntVar(&topN, "top", ranking.DefaultTopN, "number of states each voter awards points to")
	scoreCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	_ = scoreCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(scoreCmd)
}

func main() {
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
