package tgbot

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/mstanssa/ultra-high-bot/internal/yt"
)

type fakeGate struct {
	allow bool
	calls int
}

func (g *fakeGate) IsSubscribed(int64) bool {
	g.calls++
	return g.allow
}

type fakeFetcher struct {
	res   yt.Result
	calls int
}

func (f *fakeFetcher) Fetch(context.Context, string) yt.Result {
	f.calls++
	return f.res
}

type fakeConversation struct {
	events   []string
	videos   int
	videoErr error
	tooBigMB float64
}

func (c *fakeConversation) InvalidLink()         { c.events = append(c.events, "invalid") }
func (c *fakeConversation) JoinPrompt()          { c.events = append(c.events, "join") }
func (c *fakeConversation) Placeholder() (int, error) {
	c.events = append(c.events, "downloading")
	return 1, nil
}
func (c *fakeConversation) Edit(_ int, key string) { c.events = append(c.events, key) }
func (c *fakeConversation) TooBig(_ int, mb float64) {
	c.events = append(c.events, "too_big")
	c.tooBigMB = mb
}
func (c *fakeConversation) SendVideo(string) error {
	c.events = append(c.events, "video")
	c.videos++
	return c.videoErr
}

func tempVideo(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "out.mp4")
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatalf("write temp video: %v", err)
	}
	return p
}

func run(t *testing.T, text string, g *fakeGate, f *fakeFetcher, c *fakeConversation) {
	t.Helper()
	runDownload(context.Background(), 42, text, g, f, c, zap.NewNop())
}

func TestPipelineRejectsNonURL(t *testing.T) {
	g := &fakeGate{allow: true}
	f := &fakeFetcher{}
	c := &fakeConversation{}

	run(t, "hello", g, f, c)

	if !reflect.DeepEqual(c.events, []string{"invalid"}) {
		t.Errorf("events = %v", c.events)
	}
	if g.calls != 0 || f.calls != 0 {
		t.Errorf("gate=%d fetch=%d, want 0/0", g.calls, f.calls)
	}
}

func TestPipelineGatesUnsubscribedUser(t *testing.T) {
	g := &fakeGate{allow: false}
	f := &fakeFetcher{}
	c := &fakeConversation{}

	run(t, "https://example.com/v", g, f, c)

	if !reflect.DeepEqual(c.events, []string{"join"}) {
		t.Errorf("events = %v", c.events)
	}
	if f.calls != 0 {
		t.Errorf("fetch calls = %d, want 0", f.calls)
	}
}

func TestPipelineHappyPath(t *testing.T) {
	path := tempVideo(t)
	g := &fakeGate{allow: true}
	f := &fakeFetcher{res: yt.Result{Path: path, Size: 10 * 1024 * 1024}}
	c := &fakeConversation{}

	run(t, "https://example.com/v", g, f, c)

	want := []string{"downloading", "uploading", "video", "done"}
	if !reflect.DeepEqual(c.events, want) {
		t.Errorf("events = %v, want %v", c.events, want)
	}
	if c.videos != 1 {
		t.Errorf("videos sent = %d, want 1", c.videos)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("downloaded file still exists after the run")
	}
}

func TestPipelineOversizeResult(t *testing.T) {
	path := tempVideo(t)
	g := &fakeGate{allow: true}
	f := &fakeFetcher{res: yt.Result{Path: path, Size: 100 * 1024 * 1024}}
	c := &fakeConversation{}

	run(t, "https://example.com/v", g, f, c)

	want := []string{"downloading", "too_big"}
	if !reflect.DeepEqual(c.events, want) {
		t.Errorf("events = %v, want %v", c.events, want)
	}
	if c.tooBigMB != 100 {
		t.Errorf("reported size = %v MB, want 100", c.tooBigMB)
	}
	if c.videos != 0 {
		t.Errorf("videos sent = %d, want 0", c.videos)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("oversize file still exists after the run")
	}
}

func TestPipelineEmptyResult(t *testing.T) {
	g := &fakeGate{allow: true}
	f := &fakeFetcher{}
	c := &fakeConversation{}

	run(t, "https://example.com/v", g, f, c)

	want := []string{"downloading", "failed"}
	if !reflect.DeepEqual(c.events, want) {
		t.Errorf("events = %v, want %v", c.events, want)
	}
}

func TestPipelineUploadFailureStillCleansUp(t *testing.T) {
	path := tempVideo(t)
	g := &fakeGate{allow: true}
	f := &fakeFetcher{res: yt.Result{Path: path, Size: 1024}}
	c := &fakeConversation{videoErr: os.ErrPermission}

	run(t, "https://example.com/v", g, f, c)

	want := []string{"downloading", "uploading", "video", "failed"}
	if !reflect.DeepEqual(c.events, want) {
		t.Errorf("events = %v, want %v", c.events, want)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file still exists after failed upload")
	}
}
