// Command scan runs the slip pipeline on a single image and prints the
// draft lineup plus its validation report. Useful for tuning heuristics
// against a problem screenshot without the service or database.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"slipscan/pkg/ocr"
)

func main() {
	jsonOut := flag.Bool("json", false, "print lineup and report as JSON")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: scan [-json] <image>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	engine := ocr.NewTesseractEngine()
	defer engine.Close()

	p := ocr.New(engine)
	if !*jsonOut {
		p.Progress = func(pct int, status string) {
			log.Printf("%3d%% %s", pct, status)
		}
	}

	lineup, report, err := p.ScanImage(path)
	if err != nil {
		log.Fatalf("scan %s: %v", path, err)
	}

	if *jsonOut {
		out := struct {
			Lineup any `json:"lineup"`
			Report any `json:"report"`
		}{lineup, report}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Fatalf("encode: %v", err)
		}
		return
	}

	fmt.Printf("%s  entry $%.2f  to pay $%.2f  status %s\n",
		lineup.Type, lineup.EntryAmount, lineup.PotentialPayout, lineup.Status)
	for _, pl := range lineup.Players {
		fmt.Printf("  %d. %-24s %-8s %-16s %s %.1f", pl.Slot+1, pl.Name, pl.Sport, pl.StatType, pl.Direction, pl.Line)
		if pl.Opponent != "" {
			fmt.Printf("  vs %s", pl.Opponent)
		}
		fmt.Println()
	}
	if report.IsValid {
		fmt.Println("valid")
		return
	}
	fmt.Printf("%d validation findings:\n", len(report.Errors))
	for _, e := range report.Errors {
		fmt.Printf("  - %s\n", e)
	}
	if report.Corrected != nil {
		fmt.Printf("suggested corrections: entry $%.2f  to pay $%.2f\n",
			report.Corrected.EntryAmount, report.Corrected.PotentialPayout)
	}
}
