package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortlab/internal/algo"
	"github.com/san-kum/sortlab/internal/bench"
	"github.com/san-kum/sortlab/internal/config"
	"github.com/san-kum/sortlab/internal/export"
	"github.com/san-kum/sortlab/internal/player"
	"github.com/san-kum/sortlab/internal/show"
	"github.com/san-kum/sortlab/internal/storage"
	"github.com/san-kum/sortlab/internal/tone"
	"github.com/san-kum/sortlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir      string
	configFile   string
	preset       string
	frameMs      int
	fastInterval int
	slowInterval int
	fastN        int
	slowN        int
	wave         string
	seed         int64
	noSound      bool
	plain        bool
	countN       int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sortlab",
		Short: "sorting algorithm visualization lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg, nil)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sortlab", "data directory")

	addPlaybackFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
		cmd.Flags().IntVar(&frameMs, "frame", config.DefaultFrameDuration, "frame budget (ms)")
		cmd.Flags().IntVar(&fastInterval, "fast-interval", config.DefaultFastInterval, "pacing interval for merge-like algorithms (ms)")
		cmd.Flags().IntVar(&slowInterval, "slow-interval", config.DefaultSlowInterval, "pacing interval for quadratic algorithms (ms)")
		cmd.Flags().IntVar(&fastN, "fast-n", config.DefaultFastN, "element count for merge-like algorithms")
		cmd.Flags().IntVar(&slowN, "slow-n", config.DefaultSlowN, "element count for quadratic algorithms")
		cmd.Flags().StringVar(&wave, "wave", config.DefaultWave, "tone wave (sine|square|triangle|sawtooth)")
		cmd.Flags().Int64Var(&seed, "seed", 0, "shuffle seed (0 = time-based)")
		cmd.Flags().BoolVar(&noSound, "no-sound", false, "disable tone playback")
	}
	addPlaybackFlags(rootCmd)

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "play one algorithm",
		Args:  cobra.ExactArgs(1),
		RunE:  playAlgorithm,
	}
	addPlaybackFlags(playCmd)
	playCmd.Flags().BoolVar(&plain, "plain", false, "plain terminal strip instead of the full-screen ui")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "run one algorithm headless and record the trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runAlgorithm,
	}
	addPlaybackFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	algosCmd := &cobra.Command{
		Use:   "algos",
		Short: "list algorithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := algo.NewRegistry()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCLASS")
			for _, name := range reg.List() {
				alg, _ := reg.Get(name)
				fmt.Fprintf(w, "%s\t%s\n", alg.Name, alg.Class)
			}
			return w.Flush()
		},
	}

	countsCmd := &cobra.Command{
		Use:   "counts",
		Short: "compare step counts across algorithms",
		RunE:  countAlgorithms,
	}
	countsCmd.Flags().IntVar(&countN, "n", 64, "element count")
	countsCmd.Flags().Int64Var(&seed, "seed", 42, "shuffle seed")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run's counter curves",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a recorded trace to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a recorded run's counter chart as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(playCmd, runCmd, listCmd, algosCmd, countsCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective config: defaults, then preset, then
// config file, then any explicitly changed flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("frame") {
		cfg.FrameDuration = frameMs
	}
	if flags.Changed("fast-interval") {
		cfg.FastInterval = fastInterval
	}
	if flags.Changed("slow-interval") {
		cfg.SlowInterval = slowInterval
	}
	if flags.Changed("fast-n") {
		cfg.FastN = fastN
	}
	if flags.Changed("slow-n") {
		cfg.SlowN = slowN
	}
	if flags.Changed("wave") {
		cfg.Wave = wave
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if noSound {
		cfg.Sound = false
	}
	return cfg, nil
}

func playAlgorithm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	name := args[0]
	if _, err := algo.NewRegistry().Get(name); err != nil {
		return err
	}
	if !plain {
		return viz.Run(cfg, []string{name})
	}

	renderer := viz.NewStripRenderer()
	renderer.Start()
	defer renderer.Stop()

	var t player.Tone = tone.Null{}
	if cfg.Sound {
		w, err := tone.ParseWave(cfg.Wave)
		if err != nil {
			return err
		}
		tp := tone.NewPlayer(w)
		if err := tp.Start(); err == nil {
			t = tp
			defer tp.Stop()
		}
	}

	sess := show.New(cfg, player.New(renderer, t))
	sess.OnPhase = renderer.SetPhase
	return sess.Run(context.Background(), []string{name})
}

func runAlgorithm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	name := args[0]

	reg := algo.NewRegistry()
	alg, err := reg.Get(name)
	if err != nil {
		return err
	}

	n := cfg.FastN
	if alg.Class == algo.ClassSlow {
		n = cfg.SlowN
	}
	runSeed := cfg.Seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	arr := algo.Sequence(n)
	rng := rand.New(rand.NewSource(runSeed))
	for range algo.Shuffle(rng)(arr, false) {
	}

	fmt.Printf("running %s (n=%d)...\n", name, n)
	start := time.Now()

	steps := make([]algo.Step, 0, 1024)
	for step := range alg.Drive(arr, true) {
		steps = append(steps, step)
		if len(steps) >= player.MaxSteps {
			break
		}
	}
	elapsed := time.Since(start)

	runID, err := st.Save(name, n, runSeed, steps, elapsed)
	if err != nil {
		return err
	}

	last := steps[len(steps)-1]
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", len(steps))
	fmt.Printf("comparisons: %d\n", last.Comparisons)
	fmt.Printf("swaps: %d\n", last.Swaps)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tN\tCOMPARISONS\tSWAPS\tSTEPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Algorithm,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.N,
			run.Comparisons,
			run.Swaps,
			run.Steps,
		)
	}
	return w.Flush()
}

func countAlgorithms(cmd *cobra.Command, args []string) error {
	reg := algo.NewRegistry()

	base := algo.Sequence(countN)
	rng := rand.New(rand.NewSource(seed))
	for range algo.Shuffle(rng)(base, false) {
	}

	results, err := bench.Run(cmd.Context(), reg, reg.List(), base, player.MaxSteps)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tCLASS\tCOMPARISONS\tSWAPS\tSTEPS")
	for _, res := range results {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", res.Name, res.Class, res.Comparisons, res.Swaps, res.Steps)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(trace) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("algorithm: %s (n=%d)\n\n", meta.Algorithm, meta.N)

	comparisons := make([]float64, len(trace))
	swaps := make([]float64, len(trace))
	for i, row := range trace {
		comparisons[i] = float64(row.Comparisons)
		swaps[i] = float64(row.Swaps)
	}

	fmt.Println(asciigraph.Plot(comparisons,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("comparisons vs step"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(swaps,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("swaps vs step"),
	))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"step", "comparisons", "swaps", "compare", "swapped"}); err != nil {
		return err
	}
	for i, row := range trace {
		record := []string{
			strconv.Itoa(i),
			strconv.Itoa(row.Comparisons),
			strconv.Itoa(row.Swaps),
			joinIndexes(row.Compare),
			joinIndexes(row.Swapped),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	if len(trace) < 2 {
		return fmt.Errorf("not enough data to chart")
	}

	comparisons := make([]int, len(trace))
	swaps := make([]int, len(trace))
	for i, row := range trace {
		comparisons[i] = row.Comparisons
		swaps[i] = row.Swaps
	}

	fmt.Println(export.CountersToSVG(comparisons, swaps, 800, 400))
	return nil
}

func joinIndexes(v []int) string {
	if len(v) == 0 {
		return ""
	}
	s := strconv.Itoa(v[0])
	for _, x := range v[1:] {
		s += "|" + strconv.Itoa(x)
	}
	return s
}
