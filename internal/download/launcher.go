package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/osa911/giraffecloud-portal/internal/logging"
	"github.com/osa911/giraffecloud-portal/internal/safego"
	"github.com/osa911/giraffecloud-portal/internal/telemetry"
)

// Launcher performs the one-shot download side effect for a descriptor.
// Launch must not block on transfer completion.
type Launcher interface {
	Launch(ctx context.Context, r Receipt) error
}

// BrowserLauncher opens the download link with the operating system's URL
// handler. Only initiation is observable.
type BrowserLauncher struct {
	// Command overrides the opener, mainly for tests
	Command func(url string) *exec.Cmd
}

// NewBrowserLauncher creates a launcher using the platform opener
func NewBrowserLauncher() *BrowserLauncher {
	return &BrowserLauncher{Command: openerCommand}
}

func openerCommand(url string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return exec.Command("xdg-open", url)
	}
}

func (b *BrowserLauncher) Launch(ctx context.Context, r Receipt) error {
	command := b.Command
	if command == nil {
		command = openerCommand
	}

	cmd := command(r.Descriptor.Link)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", r.Descriptor.Link, err)
	}
	telemetry.DownloadsInitiatedTotal.WithLabelValues(string(r.Descriptor.Kind), r.Descriptor.Platform).Inc()

	// Reap the opener without waiting on it
	go cmd.Wait()
	return nil
}

// FileLauncher streams the download link into a directory. Launch returns
// once the request is started; OnConfirmed fires after the file is written.
type FileLauncher struct {
	Dir         string
	HTTPClient  *http.Client
	OnConfirmed func(Receipt, string)
	OnFailed    func(Receipt, error)

	logger *logging.Logger
}

// NewFileLauncher creates a launcher writing into dir
func NewFileLauncher(dir string, timeout time.Duration) *FileLauncher {
	return &FileLauncher{
		Dir: dir,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		logger: logging.GetGlobalLogger(),
	}
}

func (f *FileLauncher) Launch(ctx context.Context, r Receipt) error {
	if err := os.MkdirAll(f.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create download directory: %w", err)
	}

	// The transfer outlives the caller's context
	req, err := http.NewRequestWithContext(context.WithoutCancel(ctx), http.MethodGet, r.Descriptor.Link, nil)
	if err != nil {
		return fmt.Errorf("failed to build download request: %w", err)
	}
	telemetry.DownloadsInitiatedTotal.WithLabelValues(string(r.Descriptor.Kind), r.Descriptor.Platform).Inc()

	safego.Go(func() {
		path := filepath.Join(f.Dir, filepath.Base(r.Descriptor.Filename))
		if err := f.downloadFile(req, path); err != nil {
			f.log().Error("Download of %s failed: %v", r.Descriptor.Link, err)
			if f.OnFailed != nil {
				f.OnFailed(r, err)
			}
			return
		}
		confirmed := r.Confirm()
		f.log().Info("Download %s confirmed: %s", confirmed.ID, path)
		if f.OnConfirmed != nil {
			f.OnConfirmed(confirmed, path)
		}
	})
	return nil
}

// downloadFile downloads the request body to path. The body is written to a
// temporary file in the same directory and renamed into place only once it
// is complete, so a failed transfer never leaves a file under path.
func (f *FileLauncher) downloadFile(req *http.Request, path string) (err error) {
	client := f.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed with status: %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.part")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = io.Copy(tmp, resp.Body); err != nil {
		return fmt.Errorf("failed to write download: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to finish download: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move download into place: %w", err)
	}
	return nil
}

func (f *FileLauncher) log() *logging.Logger {
	if f.logger == nil {
		return logging.GetGlobalLogger()
	}
	return f.logger
}
