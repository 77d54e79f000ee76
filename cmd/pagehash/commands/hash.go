package commands

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagehash/pagehash/batch"
	"github.com/pagehash/pagehash/crypto/sm3"
)

var hashCmd = &cobra.Command{
	Use:   "hash [file ...]",
	Short: "Print the SM3 digest of each file, or of stdin",
	RunE:  runHash,
}

func init() {
	hashCmd.Flags().Int("width", config.Width, "Digest width in bits (128 or 256)")
	hashCmd.Flags().Int("worker.threads", config.Worker.Threads, "Worker thread hint, 0 means one per CPU")
	hashCmd.Flags().Bool("worker.affinity", config.Worker.Affinity, "Pin workers to CPU cores (advisory)")
	hashCmd.Flags().Bool("accel.enable", config.Accel.Enable, "Enable the accelerated compression backend")

	RootCmd.AddCommand(hashCmd)
}

func runHash(cmd *cobra.Command, args []string) error {
	if err := applyEngineConfig(); err != nil {
		return err
	}

	if len(args) == 0 {
		data, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		digest, err := sm3.Digest(data, config.Width)
		if err != nil {
			return err
		}
		fmt.Printf("%s  -\n", hex.EncodeToString(digest))
		return nil
	}

	msgs := make([][]byte, len(args))
	for i, name := range args {
		data, err := ioutil.ReadFile(name)
		if err != nil {
			return err
		}
		msgs[i] = data
	}

	digests, err := batch.Digest(msgs, config.Worker.Threads, config.Width)
	if err != nil {
		return err
	}
	for i, digest := range digests {
		fmt.Printf("%s  %s\n", hex.EncodeToString(digest), args[i])
	}
	return nil
}
