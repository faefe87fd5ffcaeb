package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/custodia-labs/groundkit/internal/core/domain"
	"github.com/custodia-labs/groundkit/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// ErrPDFToolNotFound indicates pdftotext is not installed.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH")

// CommandRunner executes an external command and returns its stdout.
// Abstracted for testing with a mock runner.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands via os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Extractor handles PDF documents by delegating to the external
// pdftotext tool (poppler-utils).
type Extractor struct {
	runner CommandRunner
}

// New creates a new PDF extractor using the system pdftotext.
func New() *Extractor {
	return &Extractor{runner: execRunner{}}
}

// NewWithRunner creates a PDF extractor with a custom command runner.
func NewWithRunner(runner CommandRunner) *Extractor {
	return &Extractor{runner: runner}
}

// CheckAvailable verifies pdftotext is installed.
func CheckAvailable() error {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}

// InstallInstructions returns platform-specific install guidance.
func InstallInstructions() string {
	return `PDF extraction requires pdftotext (poppler-utils):
  macOS:         brew install poppler
  Debian/Ubuntu: sudo apt install poppler-utils
  Fedora:        sudo dnf install poppler-utils`
}

// Format returns the document format this extractor produces.
func (e *Extractor) Format() domain.Format {
	return domain.FormatPDF
}

// SupportedExtensions returns the file extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".pdf"}
}

// Extract converts the PDF to plain text via pdftotext.
// The raw bytes are written to a temp file because pdftotext requires
// a file path input. Tool failures, missing tool, and context timeouts
// are all wrapped as *domain.ExtractionError.
func (e *Extractor) Extract(ctx context.Context, raw *domain.RawDocument) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}

	if err := CheckAvailable(); err != nil {
		return "", domain.NewExtractionError(domain.FormatPDF, raw.Filename, err)
	}

	tmpDir, err := os.MkdirTemp("", "groundkit-pdf-*")
	if err != nil {
		return "", domain.NewExtractionError(domain.FormatPDF, raw.Filename, err)
	}
	defer os.RemoveAll(tmpDir)

	tmpFile := filepath.Join(tmpDir, "input.pdf")
	if err := os.WriteFile(tmpFile, raw.Content, 0600); err != nil {
		return "", domain.NewExtractionError(domain.FormatPDF, raw.Filename, err)
	}

	// "-" writes the extracted text to stdout.
	output, err := e.runner.Run(ctx, "pdftotext", "-layout", tmpFile, "-")
	if err != nil {
		// Prefer the context error so timeouts stay distinguishable
		// from corrupt input.
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return "", domain.NewExtractionError(domain.FormatPDF, raw.Filename,
			fmt.Errorf("pdftotext: %w", err))
	}

	return string(output), nil
}
