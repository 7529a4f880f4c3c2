package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/agbru/ultranum/internal/config"
	"github.com/agbru/ultranum/internal/orchestration"
	"github.com/agbru/ultranum/internal/ui"
)

// CPUFeatures lists the instruction set extensions relevant to word
// arithmetic that the host reports.
func CPUFeatures() []string {
	var f []string
	switch runtime.GOARCH {
	case "amd64", "386":
		for _, c := range []struct {
			name string
			ok   bool
		}{{"adx", cpu.X86.HasADX}, {"bmi2", cpu.X86.HasBMI2}, {"avx2", cpu.X86.HasAVX2}, {"popcnt", cpu.X86.HasPOPCNT}} {
			if c.ok {
				f = append(f, c.name)
			}
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			f = append(f, "asimd")
		}
		if cpu.ARM64.HasATOMICS {
			f = append(f, "atomics")
		}
	}
	return f
}

// PrintExecutionConfig describes the window, timeout and host.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	features := strings.Join(CPUFeatures(), ", ")
	if features == "" {
		features = "none detected"
	}
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Window: %s%d × %d-bit words%s (%d bits), timeout %s%s%s.\n",
		ui.ColorMagenta(), cfg.Words, cfg.Width, ui.ColorReset(), cfg.WindowBits(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s, %s/%s, CPU features: %s.\n",
		ui.ColorBlue(), runtime.NumCPU(), ui.ColorReset(), runtime.Version(), runtime.GOOS, runtime.GOARCH, features)
}

// PrintExecutionMode names the backend, or says that all are compared.
func PrintExecutionMode(evaluators []orchestration.Evaluator, out io.Writer) {
	var modeDesc string
	switch len(evaluators) {
	case 0:
		modeDesc = "no backend supports this window"
	case 1:
		modeDesc = fmt.Sprintf("single evaluation with the %s%s%s backend",
			ui.ColorGreen(), evaluators[0].Name(), ui.ColorReset())
	default:
		names := make([]string, len(evaluators))
		for i, e := range evaluators {
			names[i] = e.Name()
		}
		modeDesc = "comparison of " + strings.Join(names, ", ")
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
