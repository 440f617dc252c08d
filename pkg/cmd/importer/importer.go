package importer

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1-history-service-go/log"
	"github.com/mpapenbr/f1-history-service-go/pkg/config"
	"github.com/mpapenbr/f1-history-service-go/pkg/db/postgres"
	"github.com/mpapenbr/f1-history-service-go/pkg/importer"
	"github.com/mpapenbr/f1-history-service-go/pkg/utils"
)

var sourceDir string

func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "imports the historical dataset from CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport()
		},
	}
	cmd.Flags().StringVarP(&sourceDir,
		"source-dir",
		"s",
		".",
		"directory containing the dataset CSV files")
	return cmd
}

func runImport() error {
	timeout, err := time.ParseDuration(config.WaitForServices)
	if err != nil {
		log.Warn("Invalid duration value. Setting default 60s",
			log.ErrorField(err))
		timeout = 60 * time.Second
	}
	postgresAddr := utils.ExtractFromDBURL(config.DB)
	if err = utils.WaitForTCP(postgresAddr, timeout); err != nil {
		log.Fatal("database not ready", log.ErrorField(err))
	}

	pool := postgres.InitWithURL(config.DB)
	defer pool.Close()

	start := time.Now()
	imp := importer.New(
		importer.WithPool(pool),
		importer.WithSourceDir(sourceDir))
	summary, err := imp.Run(context.Background())
	if err != nil {
		return err
	}
	log.Info("import finished",
		log.Duration("duration", time.Since(start)),
		log.Int("status", summary.Status),
		log.Int("circuits", summary.Circuits),
		log.Int("drivers", summary.Drivers),
		log.Int("constructors", summary.Constructors),
		log.Int("races", summary.Races),
		log.Int("results", summary.Results),
		log.Int("qualifying", summary.Qualifying),
		log.Int("pitStops", summary.PitStops),
		log.Int("lapTimes", summary.LapTimes))
	return nil
}
