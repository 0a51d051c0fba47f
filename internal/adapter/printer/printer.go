// Package printer renders party statements into printable artifacts.
package printer

import (
	"io"

	"github.com/iho/partyledger/internal/domain"
)

// Renderer writes a statement to w in some presentation format.
type Renderer interface {
	Render(w io.Writer, statement *domain.Statement) error
}
