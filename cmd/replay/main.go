package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"spaceshooter/game"
	"spaceshooter/replay"
)

func main() {
	verbose := flag.Bool("v", false, "log mode changes and spawns")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-v] <recording>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "replay"})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	file, err := os.Open(flag.Arg(0))
	if err != nil {
		logger.Fatal("failed to open recording", "err", err)
	}
	defer file.Close()

	rec, err := replay.Read(file)
	if err != nil {
		logger.Fatal("failed to decode recording", "err", err)
	}
	logger.Info("loaded",
		"frames", len(rec.Frames),
		"seed", rec.Header.Config.Seed,
		"recorded", rec.Header.Recorded.Format(time.RFC3339))

	// Runs are replayed against an in-memory store so the real leaderboard is untouched
	store := &game.MemoryScores{}
	_, res := replay.Play(rec, game.WithLogger(logger), game.WithScoreStore(store))

	fmt.Printf("frames:     %d\n", res.Frames)
	fmt.Printf("mode:       %s\n", res.Final.Mode)
	fmt.Printf("score:      %d\n", res.Final.Score)
	fmt.Printf("kills:      %d\n", res.Kills)
	fmt.Printf("runs ended: %d\n", res.Runs)
	for i, s := range store.Records() {
		fmt.Printf("run %d:      %s\n", i+1, game.FormatClock(s))
	}
}
