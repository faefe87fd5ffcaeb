package extractors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/groundkit/internal/core/domain"
	"github.com/custodia-labs/groundkit/internal/core/ports/driven"
)

// stubExtractor is a configurable test double for driven.Extractor.
type stubExtractor struct {
	format     domain.Format
	extensions []string
	content    string
	err        error
}

func (s *stubExtractor) Format() domain.Format { return s.format }

func (s *stubExtractor) SupportedExtensions() []string { return s.extensions }

func (s *stubExtractor) Extract(_ context.Context, _ *domain.RawDocument) (string, error) {
	return s.content, s.err
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)
	assert.Empty(t, r.SupportedExtensions())
}

func TestRegistry_InterfaceCompliance(t *testing.T) {
	var _ driven.ExtractorRegistry = (*Registry)(nil)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubExtractor{format: domain.FormatText, extensions: []string{".txt", ".TEXT"}})

	exts := r.SupportedExtensions()
	assert.Equal(t, []string{".text", ".txt"}, exts)
}

func TestRegistry_FormatFor(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubExtractor{format: domain.FormatText, extensions: []string{".txt"}})
	r.Register(&stubExtractor{format: domain.FormatPDF, extensions: []string{".pdf"}})

	tests := []struct {
		name     string
		filename string
		expected domain.Format
		wantErr  bool
	}{
		{"txt file", "notes.txt", domain.FormatText, false},
		{"pdf file", "report.pdf", domain.FormatPDF, false},
		{"uppercase extension", "REPORT.PDF", domain.FormatPDF, false},
		{"unknown extension", "image.png", "", true},
		{"no extension", "README", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := r.FormatFor(tt.filename)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

// TestRegistry_Extract_UnknownExtension verifies unknown extensions are
// rejected before any extraction attempt, never treated as plain text.
func TestRegistry_Extract_UnknownExtension(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubExtractor{format: domain.FormatText, extensions: []string{".txt"}})

	raw := &domain.RawDocument{
		TenantID: "tenant-1",
		Filename: "diagram.svg",
		Content:  []byte("<svg/>"),
	}

	content, format, err := r.Extract(context.Background(), raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Empty(t, content)
	assert.Empty(t, format)
}

func TestRegistry_Extract_Dispatch(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubExtractor{
		format:     domain.FormatDocx,
		extensions: []string{".docx"},
		content:    "extracted docx text",
	})

	raw := &domain.RawDocument{
		TenantID: "tenant-1",
		Filename: "memo.docx",
		Content:  []byte("zip bytes"),
	}

	content, format, err := r.Extract(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "extracted docx text", content)
	assert.Equal(t, domain.FormatDocx, format)
}

func TestRegistry_Extract_PropagatesExtractorError(t *testing.T) {
	cause := errors.New("corrupt archive")
	r := NewRegistry()
	r.Register(&stubExtractor{
		format:     domain.FormatDocx,
		extensions: []string{".docx"},
		err:        domain.NewExtractionError(domain.FormatDocx, "memo.docx", cause),
	})

	raw := &domain.RawDocument{
		TenantID: "tenant-1",
		Filename: "memo.docx",
		Content:  []byte("bad"),
	}

	_, format, err := r.Extract(context.Background(), raw)
	require.Error(t, err)
	assert.Equal(t, domain.FormatDocx, format)
	assert.ErrorIs(t, err, domain.ErrExtraction)
	assert.ErrorIs(t, err, cause)
}

func TestRegistry_Extract_NilDocument(t *testing.T) {
	r := NewRegistry()

	_, _, err := r.Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	exts := r.SupportedExtensions()
	assert.Contains(t, exts, ".txt")
	assert.Contains(t, exts, ".docx")
	assert.Contains(t, exts, ".pdf")
}
