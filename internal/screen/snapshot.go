package screen

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"glowsync/internal/util"
)

// Saver persists classified frames as PNGs from a single worker so the
// sampling loop never blocks on disk.
type Saver struct {
	dir  string
	jobs chan snapshotJob
	wg   sync.WaitGroup
}

type snapshotJob struct {
	img   *image.RGBA
	label string
}

func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}
	s := &Saver{
		dir:  dir,
		jobs: make(chan snapshotJob, 8),
	}
	s.wg.Add(1)
	go s.worker()
	return s, nil
}

// Save queues one frame for persistence. Dropped when the saver is
// backlogged; snapshots are best-effort.
func (s *Saver) Save(img *image.RGBA, label string) {
	select {
	case s.jobs <- snapshotJob{img: img, label: label}:
	default:
		logger.With(zap.String("label", label)).Debug("Snapshot dropped, saver busy")
	}
}

// Close drains pending snapshots and stops the worker.
func (s *Saver) Close() {
	close(s.jobs)
	s.wg.Wait()
}

func (s *Saver) worker() {
	defer s.wg.Done()
	for job := range s.jobs {
		s.write(job)
	}
}

func (s *Saver) write(job snapshotJob) {
	name := fmt.Sprintf("screen_%s_%s_%s.png",
		job.label, time.Now().Format("20060102_150405"), util.RandomString(6))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		logger.With(zap.String("path", path), zap.Error(err)).Error("Failed to create snapshot file")
		return
	}
	defer f.Close()

	if err := png.Encode(f, job.img); err != nil {
		logger.With(zap.String("path", path), zap.Error(err)).Error("Failed to encode snapshot")
		return
	}
	logger.With(zap.String("path", path)).Debug("Saved snapshot")
}
