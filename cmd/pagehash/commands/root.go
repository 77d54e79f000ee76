package commands

import (
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pagehash/pagehash/batch"
	cfg "github.com/pagehash/pagehash/config"
	"github.com/pagehash/pagehash/crypto/sm3"
	pagelog "github.com/pagehash/pagehash/log"
)

const logModule = "cmd"

var (
	config = cfg.DefaultConfig()
)

var RootCmd = &cobra.Command{
	Use:   "pagehash",
	Short: "SM3 digests of 4KB pages across CPU cores.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.Unmarshal(config); err != nil {
			return err
		}
		pathParts := strings.SplitN(config.RootDir, "/", 2)
		if len(pathParts) == 2 && (pathParts[0] == "~" || pathParts[0] == "$HOME") {
			home, err := homedir.Dir()
			if err != nil {
				return err
			}
			pathParts[0] = home
			config.RootDir = strings.Join(pathParts, "/")
		}
		config.SetRoot(config.RootDir)
		return nil
	},
}

func setLogLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	case "fatal":
		log.SetLevel(log.FatalLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// applyEngineConfig pushes the worker, accel and log sections into
// the hashing packages before any digests are computed.
func applyEngineConfig() error {
	setLogLevel(config.LogLevel)
	if config.RootDir != "" {
		if err := pagelog.InitLogFile(config); err != nil {
			return err
		}
	}

	batch.Affinity = config.Worker.Affinity
	if config.Accel.Enable && !sm3.EnableAccel(true) {
		log.WithFields(log.Fields{"module": logModule}).Warn("accelerated backend unavailable, staying on the software path")
	}
	return nil
}
