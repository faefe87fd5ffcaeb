package extractors

import (
	"github.com/custodia-labs/groundkit/internal/extractors/docx"
	"github.com/custodia-labs/groundkit/internal/extractors/pdf"
	"github.com/custodia-labs/groundkit/internal/extractors/plaintext"
)

// RegisterDefaults registers all built-in extractors with the registry.
// Call this during application initialisation to enable the standard
// upload formats (.txt, .docx, .pdf).
func RegisterDefaults(r *Registry) {
	r.Register(plaintext.New())
	r.Register(docx.New())
	r.Register(pdf.New())
}
