package cli

import (
	apperrors "github.com/agbru/ultranum/internal/errors"
	"github.com/agbru/ultranum/internal/ui"
)

// CLIColorProvider supplies the active theme's colors to
// apperrors.HandleCalculationError.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

// Red returns the theme error color.
func (CLIColorProvider) Red() string    { return ui.ColorRed() }
// Yellow returns the theme warning color.
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
// Reset returns the theme reset sequence.
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }
