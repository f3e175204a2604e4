package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ExportService renders the storefront page headlessly so the shop can share
// the catalog as a PDF or image on WhatsApp.
type ExportService struct {
	baseURL string
}

// NewExportService creates a new ExportService
func NewExportService(baseURL string) *ExportService {
	return &ExportService{baseURL: baseURL}
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// newBrowserContext configures a chromedp context against the detected
// Chrome binary. NoSandbox is required when running in containers.
func (s *ExportService) newBrowserContext(ctx context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.NoSandbox)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	cancel := func() {
		browserCancel()
		allocCancel()
	}
	return browserCtx, cancel
}

// waitForImages waits for every product image on the page to finish loading
// before capture, with a per-image timeout.
var waitForImages = chromedp.Evaluate(`
	(function() {
		return Promise.all([
			document.fonts.ready,
			Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
				return new Promise((resolve) => {
					if (img.complete) {
						resolve();
						return;
					}
					const timeout = setTimeout(() => resolve(), 5000);
					img.onload = () => { clearTimeout(timeout); resolve(); };
					img.onerror = () => { clearTimeout(timeout); resolve(); };
				});
			}))
		]);
	})();
`, nil)

// GeneratePDF renders the storefront page to an A4 PDF.
func (s *ExportService) GeneratePDF(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	browserCtx, browserCancel := s.newBrowserContext(ctx)
	defer browserCancel()

	var pdfBuf []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(794, 1123),
		chromedp.Navigate(s.baseURL+"/"),
		chromedp.WaitReady("body"),
		waitForImages,
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).   // 210mm in inches
				WithPaperHeight(11.69). // 297mm in inches
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}

// GeneratePNG renders the storefront page to a single full-height PNG.
func (s *ExportService) GeneratePNG(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	browserCtx, browserCancel := s.newBrowserContext(ctx)
	defer browserCancel()

	var pngBuf []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(794, 1123),
		chromedp.Navigate(s.baseURL+"/"),
		chromedp.WaitReady("body"),
		waitForImages,
		chromedp.FullScreenshot(&pngBuf, 90),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}

	return pngBuf, nil
}
