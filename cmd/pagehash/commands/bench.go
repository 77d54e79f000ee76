package commands

import (
	"crypto/sha256"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/pagehash/pagehash/batch"
	"github.com/pagehash/pagehash/crypto"
	"github.com/pagehash/pagehash/crypto/sm3"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark page hashing throughput against SHA-256 and SHA3-256",
	RunE:  runBench,
}

var benchPages int

func init() {
	benchCmd.Flags().IntVar(&benchPages, "pages", 1024, "Number of 4KB pages per round")
	benchCmd.Flags().Int("worker.threads", config.Worker.Threads, "Worker thread hint, 0 means one per CPU")
	benchCmd.Flags().Bool("worker.affinity", config.Worker.Affinity, "Pin workers to CPU cores (advisory)")
	benchCmd.Flags().Bool("accel.enable", config.Accel.Enable, "Enable the accelerated compression backend")

	RootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	if err := applyEngineConfig(); err != nil {
		return err
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	pages := make([][]byte, benchPages)
	for i := range pages {
		pages[i] = make([]byte, sm3.PageSize)
		r.Read(pages[i])
	}
	totalMB := float64(benchPages) * sm3.PageSize / (1 << 20)

	start := time.Now()
	for _, page := range pages {
		if _, err := sm3.SumPage(page); err != nil {
			return err
		}
	}
	report("sm3 sequential", totalMB, time.Since(start))

	for _, hint := range []int{1, 2, 4, 8} {
		start = time.Now()
		if _, err := batch.Digest(pages, hint, 256); err != nil {
			return err
		}
		report(fmt.Sprintf("sm3 batch x%d", hint), totalMB, time.Since(start))
	}

	start = time.Now()
	for _, page := range pages {
		sha256.Sum256(page)
	}
	report("sha256 sequential", totalMB, time.Since(start))

	start = time.Now()
	for _, page := range pages {
		crypto.Sha3(page)
	}
	report("sha3-256 sequential", totalMB, time.Since(start))

	return nil
}

func report(name string, mb float64, elapsed time.Duration) {
	fmt.Printf("%-20s %10.2f MB/s  (%.3fs)\n", name, mb/elapsed.Seconds(), elapsed.Seconds())
}
