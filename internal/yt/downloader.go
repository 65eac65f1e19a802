package yt

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Some sources block requests without a browser-looking user agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Result is the outcome of one extraction. An empty Result means the link
// produced nothing usable; the reason is already logged.
type Result struct {
	Path string
	Size int64
}

func (r Result) Empty() bool { return r.Path == "" }

// SizeMB is the file size in mebibytes.
func (r Result) SizeMB() float64 { return float64(r.Size) / 1024 / 1024 }

// Downloader runs yt-dlp inside a bounded worker pool. One Fetch call is one
// job; callers block until their own job finishes, but at most `workers`
// extractions run at once.
type Downloader struct {
	format  string
	destDir string
	timeout time.Duration
	workers *pool.Pool
	log     *zap.Logger
}

func NewDownloader(format, destDir string, workers int, timeout time.Duration, log *zap.Logger) (*Downloader, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, err
	}
	return &Downloader{
		format:  format,
		destDir: destDir,
		timeout: timeout,
		workers: pool.New().WithMaxGoroutines(workers),
		log:     log,
	}, nil
}

// Close waits for in-flight extractions to finish.
func (d *Downloader) Close() {
	d.workers.Wait()
}

// Fetch downloads the media behind url and returns the resulting file. The
// file belongs to the caller and must be removed after use. Failures never
// surface as errors, only as an empty Result.
func (d *Downloader) Fetch(ctx context.Context, url string) Result {
	out := make(chan Result, 1)
	d.workers.Go(func() {
		out <- d.fetch(ctx, url)
	})
	return <-out
}

func (d *Downloader) fetch(ctx context.Context, url string) Result {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	scratch, err := os.MkdirTemp("", "ultrahigh-*")
	if err != nil {
		d.log.Error("create scratch dir", zap.Error(err))
		return Result{}
	}
	defer os.RemoveAll(scratch)

	args := ytdlpArgs(d.format, filepath.Join(scratch, "%(id)s.%(ext)s"), url)
	cmd := exec.CommandContext(ctx, "yt-dlp", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		d.log.Warn("yt-dlp failed",
			zap.String("url", url),
			zap.String("platform", Platform(url)),
			zap.Error(err),
			zap.ByteString("output", output))
		return Result{}
	}

	picked, size, ok := pickLargest(scratch)
	if !ok {
		d.log.Warn("yt-dlp produced no files", zap.String("url", url))
		return Result{}
	}

	// Move the file out before the deferred RemoveAll eats it.
	final := filepath.Join(d.destDir, uuid.NewString()+filepath.Ext(picked))
	if err := os.Rename(picked, final); err != nil {
		d.log.Error("move download", zap.String("file", picked), zap.Error(err))
		return Result{}
	}

	d.log.Info("download finished",
		zap.String("url", url),
		zap.String("file", final),
		zap.String("size", humanize.IBytes(uint64(size))))
	return Result{Path: final, Size: size}
}

// ytdlpArgs builds the yt-dlp invocation: single entry only even for
// playlist links, capped format, everything written under outTemplate.
func ytdlpArgs(format, outTemplate, url string) []string {
	return []string{
		"-f", format,
		"--no-playlist",
		"--merge-output-format", "mp4",
		"--ignore-errors",
		"--retries", "10",
		"--no-warnings",
		"--user-agent", userAgent,
		"--output", outTemplate,
		url,
	}
}

var videoExts = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".webm": true,
	".mov":  true,
	".m4v":  true,
}

// pickLargest selects the best candidate among whatever yt-dlp left in the
// scratch dir. Files with a video container extension win over sidecars
// (thumbnails, subtitles, .info.json) regardless of size; within a group the
// largest file is taken. Empty files never qualify.
func pickLargest(dir string) (string, int64, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", 0, false
	}

	var anyPath, videoPath string
	var anySize, videoSize int64
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil || info.Size() == 0 {
			continue
		}
		p := filepath.Join(dir, e.Name())
		if info.Size() > anySize {
			anyPath, anySize = p, info.Size()
		}
		if videoExts[strings.ToLower(filepath.Ext(e.Name()))] && info.Size() > videoSize {
			videoPath, videoSize = p, info.Size()
		}
	}

	if videoPath != "" {
		return videoPath, videoSize, true
	}
	if anyPath != "" {
		return anyPath, anySize, true
	}
	return "", 0, false
}
