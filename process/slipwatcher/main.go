// Command slipwatcher drains a slip-screenshot inbox directory: an initial
// scan of whatever is already there, then (with -watch) fsnotify Create
// events debounced until the file stops growing. Each file runs through the
// scan pipeline and becomes a draft Lineup plus a SlipUpload row; processed
// files are moved aside so a crash never re-ingests half the inbox.
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fsnotify/fsnotify"

	"slipscan/models"
	"slipscan/pkg/ocr"
)

var db *gorm.DB

// global flags (parsed in main)
var (
	verbose bool
	dryRun  bool
)

var pipeline *ocr.Pipeline

func main() {
	dirFlag := flag.String("dir", "slips/inbox", "directory to scan for slip screenshots")
	userFlag := flag.String("user", "admin", "username to assign scanned lineups to")
	watch := flag.Bool("watch", false, "watch directory for new files after the initial scan")
	workers := flag.Int("workers", 0, "worker pool size (default NumCPU)")
	flag.BoolVar(&dryRun, "dry", false, "print proposed records without touching the database or moving files")
	flag.BoolVar(&verbose, "verbose", false, "verbose per-file logging")
	flag.Parse()

	engine := ocr.NewTesseractEngine()
	defer engine.Close()
	pipeline = ocr.New(engine)

	var owner models.User
	if dryRun {
		log.Printf("dry run: scanning %s (no DB interaction)", *dirFlag)
	} else {
		db = mustInitDBFromEnv()
		if err := db.Where("username = ?", *userFlag).First(&owner).Error; err != nil {
			log.Fatalf("user %q not found: %v", *userFlag, err)
		}
	}

	files := listImageFiles(*dirFlag)
	log.Printf("scanning %d files (workers=%d)", len(files), effectiveWorkers(*workers))
	runWorkerPool(*dirFlag, owner, files, effectiveWorkers(*workers))

	if *watch {
		if err := watchDirectory(*dirFlag, owner, effectiveWorkers(*workers)); err != nil {
			log.Fatalf("watch failed: %v", err)
		}
	}
}

func mustInitDBFromEnv() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatalf("DB_DSN must be set in environment to run this tool")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return gdb
}

func effectiveWorkers(w int) int {
	if w <= 0 {
		return runtime.NumCPU()
	}
	return w
}

func logV(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

func listImageFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !isSupportedExt(e.Name()) {
			continue
		}
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

func isSupportedExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return true
	}
	return false
}

func watchDirectory(dir string, owner models.User, workers int) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}
	log.Printf("watching %s (debounced) ...", dir)

	fileCh := make(chan string, 256)
	go func() {
		// simple debounce map of pending files
		pending := map[string]time.Time{}
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					close(fileCh)
					return
				}
				if ev.Op&fsnotify.Create == fsnotify.Create {
					name := filepath.Base(ev.Name)
					if !isSupportedExt(name) {
						continue
					}
					pending[name] = time.Now()
				}
			case <-ticker.C:
				now := time.Now()
				for name, t := range pending {
					if now.Sub(t) > 300*time.Millisecond { // stable
						fileCh <- name
						delete(pending, name)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					close(fileCh)
					return
				}
				log.Printf("watch error: %v", err)
			}
		}
	}()

	go runWorkerPool(dir, owner, nil, workers, fileCh)
	// block forever (Ctrl+C to exit)
	select {}
}

// runWorkerPool fans filenames out to processSingleFile. With extra
// channels it keeps running (watch mode); without, it drains and returns.
func runWorkerPool(dir string, owner models.User, initial []string, workers int, extraCh ...<-chan string) {
	fileCh := make(chan string, 1024)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range fileCh {
				processSingleFile(dir, name, owner)
			}
		}()
	}
	go func() {
		for _, f := range initial {
			fileCh <- f
		}
		for _, ch := range extraCh {
			go func(c <-chan string) {
				for n := range c {
					fileCh <- n
				}
			}(ch)
		}
		if len(extraCh) == 0 {
			close(fileCh)
		}
	}()
	if len(extraCh) == 0 {
		wg.Wait()
	}
}

// processSingleFile scans one slip and records the outcome. Failures are
// logged and stored, never fatal to the pool.
func processSingleFile(dir, name string, owner models.User) {
	filePath := filepath.Join(dir, name)

	lineup, report, err := pipeline.ScanImage(filePath)
	if err != nil {
		log.Printf("slipwatcher: %s: %v", name, err)
		if dryRun {
			return
		}
		up := models.SlipUpload{
			UserID:       owner.ID,
			FileName:     name,
			StorePath:    filePath,
			Failed:       true,
			FailedReason: reasonFor(err),
		}
		if dbErr := db.Create(&up).Error; dbErr != nil {
			log.Printf("slipwatcher: record failure for %s: %v", name, dbErr)
		}
		moveProcessed(dir, name, "failed")
		return
	}

	if dryRun {
		log.Printf("dry run: %s -> %s entry=%.2f payout=%.2f players=%d valid=%v",
			name, lineup.Type, lineup.EntryAmount, lineup.PotentialPayout, len(lineup.Players), report.IsValid)
		for _, p := range lineup.Players {
			logV("  pick %d: %s %s %s %.1f %s", p.Slot, p.Name, p.Sport, p.StatType, p.Line, p.Direction)
		}
		return
	}

	lineup.UserID = owner.ID
	if err := db.Create(lineup).Error; err != nil {
		log.Printf("slipwatcher: save lineup for %s: %v", name, err)
		return
	}
	up := models.SlipUpload{
		UserID:      owner.ID,
		FileName:    name,
		StorePath:   filePath,
		ContentType: mimeForExt(name),
		LineupID:    &lineup.ID,
	}
	if err := db.Create(&up).Error; err != nil {
		log.Printf("slipwatcher: record upload for %s: %v", name, err)
	}
	if !report.IsValid {
		log.Printf("slipwatcher: %s scanned with %d validation findings", name, len(report.Errors))
	}
	moveProcessed(dir, name, "processed")
	logV("slipwatcher: %s -> lineup %d", name, lineup.ID)
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, ocr.ErrDecode):
		return "decode: " + err.Error()
	case errors.Is(err, ocr.ErrEngine):
		return "engine: " + err.Error()
	}
	return err.Error()
}

// moveProcessed shifts a handled file into a subdirectory so a rescan of
// the inbox never double-ingests it.
func moveProcessed(dir, name, sub string) {
	dest := filepath.Join(dir, sub)
	if err := os.MkdirAll(dest, 0755); err != nil {
		log.Printf("slipwatcher: mkdir %s: %v", dest, err)
		return
	}
	if err := os.Rename(filepath.Join(dir, name), filepath.Join(dest, name)); err != nil {
		log.Printf("slipwatcher: move %s: %v", name, err)
	}
}

// MIME mapping to avoid opening files to sniff
var extMime = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

func mimeForExt(name string) string {
	return extMime[strings.ToLower(filepath.Ext(name))]
}
